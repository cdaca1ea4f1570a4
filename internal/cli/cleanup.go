package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/signdeck-backend/internal/app"
)

// NewCleanupCommand creates the cleanup command. It is meant to be run from
// an external cron job.
func NewCleanupCommand(rootOpts *RootOptions) *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Purge users soft-deleted longer ago than --older-than",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if olderThan <= 0 {
				return fmt.Errorf("invalid --older-than %s: must be > 0", olderThan)
			}

			return rootOpts.withContainer(cmd, func(ctx context.Context, c *app.Container) error {
				threshold := time.Now().Add(-olderThan)

				deleted, err := c.Users.HardDeleteOld(ctx, threshold)
				if err != nil {
					c.Logger.ErrorContext(ctx, "hard delete failed",
						slog.String("error", err.Error()),
						slog.Time("threshold", threshold))
					return err
				}

				c.Logger.InfoContext(ctx, "hard delete completed",
					slog.Int64("deleted", deleted),
					slog.Time("threshold", threshold))
				fmt.Fprintf(cmd.OutOrStdout(), "purged %d user(s)\n", deleted)
				return nil
			})
		},
	}

	cmd.Flags().DurationVar(&olderThan, "older-than", 30*24*time.Hour, "retention period for soft-deleted users")

	return cmd
}
