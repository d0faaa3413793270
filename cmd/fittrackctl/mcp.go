package main

import (
	"os"
	"os/signal"
	"syscall"

	fittrackmcp "github.com/2beens/fittrack/internal/mcp"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/stats"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/weight"
	"github.com/2beens/fittrack/internal/workouts"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the read-only stats MCP server over stdio",
	Long: `Starts the Model Context Protocol server on stdin/stdout. The same tools are
served by the web service at /mcp when mcp_enabled is set.

Client configuration:

  {
    "mcpServers": {
      "fittrack": { "command": "fittrackctl", "args": ["mcp", "--env", "prod"] }
    }
  }

Tools: get_latest_weight, get_daily_totals, get_personal_records,
get_period_summaries, get_muscle_distribution.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		// nothing scrapes these, the cache just needs somewhere to count
		metricsManager := metrics.NewManager("fittrack", "ctl", prometheus.NewRegistry())

		weightRepo := weight.NewRepo(dbPool)
		statsService := stats.NewService(
			stats.NewRepo(dbPool),
			workouts.NewRepo(dbPool),
			weightRepo,
			profile.NewService(dbPool),
			stats.NewCache(cfg.StatsCacheSizeMB, cfg.StatsCacheTTLSeconds, metricsManager),
		)
		server := fittrackmcp.NewServer(statsService, "fittrackctl")

		ctx, cancel := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		err := server.Run(ctx, &mcp.StdioTransport{})
		if err != nil && ctx.Err() != nil {
			// interrupted
			return nil
		}
		return err
	},
}
