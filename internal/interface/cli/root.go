// Package cli wires the registrar command line: configuration, logging and
// the commands that load rosters and render reports.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alem-hub/gradebook/config"
	"github.com/alem-hub/gradebook/pkg/logger"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// globals holds state shared by every subcommand once the root has run its
// pre-run hook.
type globals struct {
	logLevel  string
	logFormat string
	timezone  string

	cfg *config.Config
	log *logger.Logger
}

// NewRootCmd builds the registrar command tree.
func NewRootCmd() *cobra.Command {
	g := &globals{}

	cmd := &cobra.Command{
		Use:          "registrar",
		Short:        "In-memory gradebook for learners, courses and enrollments",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return g.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides LOG_LEVEL)")
	cmd.PersistentFlags().StringVar(&g.logFormat, "log-format", "", "log format: json, text (overrides LOG_FORMAT)")
	cmd.PersistentFlags().StringVar(&g.timezone, "timezone", "", "timezone used to group enrollments by day (overrides APP_TIMEZONE)")

	cmd.AddCommand(newReportCmd(g))
	cmd.AddCommand(newVersionCmd(g))
	return cmd
}

func (g *globals) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if g.logLevel != "" {
		cfg.Observability.LogLevel = g.logLevel
	}
	if g.logFormat != "" {
		cfg.Observability.LogFormat = g.logFormat
	}
	if g.timezone != "" {
		if err := cfg.SetTimezone(g.timezone); err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	opts := cfg.LoggerOptions()
	opts.Output = cmd.ErrOrStderr()
	g.cfg = cfg
	g.log = logger.New(opts).With(logger.String("app", cfg.App.Name))

	cmd.SetContext(logger.WithContext(cmd.Context(), g.log))
	g.log.Debug("configuration loaded",
		logger.String("env", string(cfg.App.Environment)),
		logger.String("timezone", cfg.App.Location.String()),
	)
	return nil
}

func newVersionCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the registrar version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", g.cfg.App.Name, g.cfg.App.Version)
			return err
		},
	}
}
