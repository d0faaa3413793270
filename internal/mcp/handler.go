package mcp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/2beens/fittrack/internal/stats"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// Handler turns tool calls into stats reads and formats the results as JSON text.
type Handler struct {
	service statsReader
}

func NewHandler(service statsReader) *Handler {
	return &Handler{
		service: service,
	}
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

// LatestWeightTool returns the handler for get_latest_weight.
func (h *Handler) LatestWeightTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		entry, err := h.service.LatestWeight(ctx)
		if err != nil {
			return errorResult("Error fetching latest weight: " + err.Error()), nil, nil
		}
		if entry == nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "No weight logged yet"}},
			}, nil, nil
		}
		return jsonResult(entry), nil, nil
	}
}

// DailyTotalsInput is the input for get_daily_totals.
type DailyTotalsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max number of days to return, most recent first (default 30)"`
}

// DailyTotalsTool returns the handler for get_daily_totals.
func (h *Handler) DailyTotalsTool() func(context.Context, *mcp.CallToolRequest, DailyTotalsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in DailyTotalsInput) (*mcp.CallToolResult, any, error) {
		if in.Limit < 0 {
			return errorResult("Invalid limit: must not be negative"), nil, nil
		}
		s, err := h.service.Stats(ctx)
		if err != nil {
			return errorResult("Error fetching daily totals: " + err.Error()), nil, nil
		}
		daily := s.Daily
		if in.Limit > 0 && in.Limit < len(daily) {
			daily = daily[:in.Limit]
		}
		return jsonResult(daily), nil, nil
	}
}

// PersonalRecordsInput is the input for get_personal_records.
type PersonalRecordsInput struct {
	Exercise string `json:"exercise,omitempty" jsonschema:"Only records of this exercise (case insensitive)"`
}

// PersonalRecordsTool returns the handler for get_personal_records.
func (h *Handler) PersonalRecordsTool() func(context.Context, *mcp.CallToolRequest, PersonalRecordsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in PersonalRecordsInput) (*mcp.CallToolResult, any, error) {
		s, err := h.service.Stats(ctx)
		if err != nil {
			return errorResult("Error fetching personal records: " + err.Error()), nil, nil
		}
		if in.Exercise == "" {
			return jsonResult(s.PersonalRecords), nil, nil
		}
		records := []stats.PersonalRecord{}
		for _, pr := range s.PersonalRecords {
			if strings.EqualFold(pr.Exercise, in.Exercise) {
				records = append(records, pr)
			}
		}
		return jsonResult(records), nil, nil
	}
}

// PeriodSummariesInput is the input for get_period_summaries.
type PeriodSummariesInput struct {
	Period string `json:"period,omitempty" jsonschema:"weekly or monthly; both when empty"`
}

type periodSummaries struct {
	Weekly  []stats.WeeklySummary  `json:"weekly,omitempty"`
	Monthly []stats.MonthlySummary `json:"monthly,omitempty"`
}

// PeriodSummariesTool returns the handler for get_period_summaries.
func (h *Handler) PeriodSummariesTool() func(context.Context, *mcp.CallToolRequest, PeriodSummariesInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in PeriodSummariesInput) (*mcp.CallToolResult, any, error) {
		period := strings.ToLower(strings.TrimSpace(in.Period))
		if period != "" && period != PeriodWeekly && period != PeriodMonthly {
			return errorResult("Invalid period: use weekly or monthly"), nil, nil
		}
		s, err := h.service.Stats(ctx)
		if err != nil {
			return errorResult("Error fetching period summaries: " + err.Error()), nil, nil
		}

		var out periodSummaries
		if period == "" || period == PeriodWeekly {
			out.Weekly = s.Weekly
		}
		if period == "" || period == PeriodMonthly {
			out.Monthly = s.Monthly
		}
		return jsonResult(out), nil, nil
	}
}

// MuscleDistributionTool returns the handler for get_muscle_distribution.
func (h *Handler) MuscleDistributionTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		s, err := h.service.Stats(ctx)
		if err != nil {
			return errorResult("Error fetching muscle distribution: " + err.Error()), nil, nil
		}
		return jsonResult(s.MuscleDistribution), nil, nil
	}
}
