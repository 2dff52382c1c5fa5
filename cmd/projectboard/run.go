package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jpalmerr/projectboard"
	"github.com/jpalmerr/projectboard/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// newLogger creates a JSON logger for CLI use.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// runCmd opens an interactive board session.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open an interactive board session",
	Long: `Open an interactive ProjectBoard session on standard input.

The session will:
  - Load configuration from the specified YAML file, if any
  - Seed the board with the configured projects
  - Read one command per line until "quit", end of input or Ctrl+C

Commands:
  add <title> | <description> | <people>
  move <id> <active|completed>
  show
  stats
  help
  quit

Logs are written as JSON to stderr.

Example:
  projectboard run
  projectboard run -c board.yaml
  echo "add Docs | Write the docs | 2" | projectboard run`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("config", "c", "", "path to config file")
	runCmd.Flags().Bool("debug", false, "enable debug logging")
}

func runRun(cmd *cobra.Command, args []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	logger := newLogger(cmd.ErrOrStderr(), debug)
	out := cmd.OutOrStdout()

	var opts []projectboard.Option
	configFile, _ := cmd.Flags().GetString("config")
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger.Info("config loaded", "path", configFile, "projects", len(cfg.Projects))
		opts = config.BuildOptions(cfg)
	}

	reg := prometheus.NewRegistry()
	opts = append(opts,
		projectboard.WithLogger(logger),
		projectboard.WithMetricsRegisterer(reg),
		projectboard.WithAlerter(func(message string) {
			fmt.Fprintf(out, "! %s\n", message)
		}),
		projectboard.WithProjectsCallback(func(projects []projectboard.Project) {
			logger.Debug("projects changed", "projects", len(projects))
		}),
	)

	board, err := projectboard.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to create board: %w", err)
	}
	defer board.Close()

	// interrupt ends the session like "quit"
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := newSession(board, reg, out, logger)
	if err := s.run(ctx, cmd.InOrStdin()); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	logger.Info("session closed")
	return nil
}
