package mcp

import (
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewServer builds the read-only fittrack MCP server. It is mounted at /mcp by the web
// service and served over stdio by `fittrackctl mcp`.
func NewServer(service statsReader, version string) *mcp.Server {
	h := NewHandler(service)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "fittrack",
		Version: version,
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_latest_weight",
		Description: "Returns the most recent daily body weight entry (date, weight in kg). Use when you need the current weight.",
	}, h.LatestWeightTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_daily_totals",
		Description: "Returns per-day training totals (sets, reps, volume = weight x sets x reps) for days with logged exercises, most recent first. Optional: limit.",
	}, h.DailyTotalsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_personal_records",
		Description: "Returns the heaviest weight ever logged per exercise, with the date. Ties are all listed. Optional: exercise.",
	}, h.PersonalRecordsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_period_summaries",
		Description: "Returns weekly (last 4 weeks) and monthly (last 6 months) summaries: workout days, sets, reps, volume. Optional: period (weekly | monthly).",
	}, h.PeriodSummariesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_muscle_distribution",
		Description: "Returns how many log rows each muscle has, most trained first. Use to check training balance.",
	}, h.MuscleDistributionTool())

	return s
}

// NewHTTPHandler serves s over streamable HTTP, traced with otelhttp.
func NewHTTPHandler(s *mcp.Server) http.Handler {
	streamable := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s
	}, nil)
	return otelhttp.NewHandler(streamable, "mcp")
}
