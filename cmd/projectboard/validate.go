package main

import (
	"fmt"

	"github.com/jpalmerr/projectboard"
	"github.com/jpalmerr/projectboard/config"
	"github.com/spf13/cobra"
)

// validateCmd validates a config file without opening a session.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a config file",
	Long: `Validate a ProjectBoard configuration file without opening a session.

This command parses the YAML, expands environment variables, and checks the
form limits and every seeded project against them. It's useful for CI/CD
pipelines or pre-deployment checks.

Exit codes:
  0 - Config is valid
  1 - Config is invalid (error details printed to stderr)

Example:
  projectboard validate -c board.yaml
  projectboard validate --config /etc/projectboard/board.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	_ = validateCmd.MarkFlagRequired("config")
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	active, completed := 0, 0
	for _, p := range cfg.Projects {
		if p.Status.Status() == projectboard.StatusCompleted {
			completed++
		} else {
			active++
		}
	}

	limits := cfg.Validation.Limits()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config is valid!\n")
	fmt.Fprintf(out, "  Title:       %s\n", cfg.Title)
	fmt.Fprintf(out, "  Description: %d-%d characters\n", limits.DescriptionMin, limits.DescriptionMax)
	fmt.Fprintf(out, "  People:      %d-%d\n", limits.PeopleMin, limits.PeopleMax)
	fmt.Fprintf(out, "  Projects:    %d active + %d completed = %d total\n",
		active, completed, active+completed)

	return nil
}
