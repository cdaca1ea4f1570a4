// Package cli implements signdeckctl, the operator command line for
// migrations, catalog seeding and user maintenance.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/signdeck-backend/internal/app"
	"github.com/heartmarshall/signdeck-backend/internal/config"
	"github.com/heartmarshall/signdeck-backend/pkg/ctxutil"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Timeout    time.Duration

	// loadConfig is replaced in tests.
	loadConfig func() (*config.Config, error)
}

// NewRootCommand creates the root command for signdeckctl.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{loadConfig: config.Load})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "signdeckctl",
		Short:         "signdeck operator tool",
		Long:          "Apply migrations, seed the card catalog and maintain users of a signdeck deployment.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Timeout <= 0 {
				return fmt.Errorf("invalid timeout %s: must be > 0", opts.Timeout)
			}
			if opts.ConfigPath != "" {
				return os.Setenv("CONFIG_PATH", opts.ConfigPath)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to config.yaml (overrides CONFIG_PATH)")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", 5*time.Minute, "deadline for the whole command")

	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewUserCommand(opts))
	cmd.AddCommand(NewCleanupCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// session is the per-invocation environment handed to command bodies.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
}

// begin loads configuration and returns a context tagged with the operator
// name and bounded by the global timeout.
func (o *RootOptions) begin(cmd *cobra.Command) (context.Context, context.CancelFunc, *session, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	if cfg.Database.ApplicationName == "signdeck" {
		cfg.Database.ApplicationName = "signdeckctl"
	}

	ctx := ctxutil.WithOperator(cmd.Context(), cmd.CommandPath())
	ctx, cancel := context.WithTimeout(ctx, o.Timeout)

	return ctx, cancel, &session{cfg: cfg, logger: app.NewLogger(cfg.Log)}, nil
}

// withContainer runs fn with fully wired services.
func (o *RootOptions) withContainer(cmd *cobra.Command, fn func(ctx context.Context, c *app.Container) error) error {
	ctx, cancel, s, err := o.begin(cmd)
	if err != nil {
		return err
	}
	defer cancel()

	c, err := app.NewContainer(ctx, s.cfg, s.logger)
	if err != nil {
		return err
	}
	defer c.Close()

	return fn(ctx, c)
}
