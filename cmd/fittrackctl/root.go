package main

import (
	"context"
	"fmt"
	"os"

	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/logging"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	envFlag    string
	configPath string

	cfg    *config.Config
	dbPool *pgxpool.Pool
)

var rootCmd = &cobra.Command{
	Use:   "fittrackctl",
	Short: "Maintenance tool for the fittrack database",
	Long: `fittrackctl works directly on the fittrack postgres database, using the same
config.toml as the web service.

  $ fittrackctl migrate                     # create missing tables
  $ fittrackctl seed                        # add the built-in muscle/exercise catalog
  $ fittrackctl seed --file my-catalog.yaml
  $ fittrackctl weight add 81.4 --date 2024-03-01
  $ fittrackctl weight latest
  $ fittrackctl mcp                         # stats MCP server over stdio

The postgres password is read from FITTRACK_PG_PASS.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load(envFlag, configPath)
		if err != nil {
			return err
		}

		// stdout carries the MCP protocol, logs go to stderr
		log.SetOutput(os.Stderr)
		log.SetLevel(logging.GetLevel(cfg.LogLevel))

		dbPool, err = db.NewDBPool(commandContext(cmd), db.NewDBPoolParams{
			DBHost:     cfg.PostgresHost,
			DBPort:     cfg.PostgresPort,
			DBName:     cfg.PostgresDBName,
			DBUser:     cfg.PostgresUser,
			DBPassword: os.Getenv("FITTRACK_PG_PASS"),
		})
		if err != nil {
			return fmt.Errorf("db pool: %w", err)
		}
		return dbPool.Ping(commandContext(cmd))
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		if dbPool != nil {
			dbPool.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFlag, "env", "development", "environment [prod | production | dev | development | ddev | dockerdev]")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./config.toml", "path to the TOML config file")

	rootCmd.AddCommand(migrateCmd, seedCmd, weightCmd, mcpCmd)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
