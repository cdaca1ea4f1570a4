package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/signdeck-backend/internal/app"
	"github.com/heartmarshall/signdeck-backend/internal/seed"
)

type seedOptions struct {
	File      string
	DryRun    bool
	BatchSize int
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a card deck into the catalog",
		Long: `Load a card deck into the catalog.

Without --file the built-in 21-card deck is used. Cards whose code already
exists are skipped, so the command can be re-run safely. Users registered
before the run do not receive the new cards.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := seed.LoadConfig("")
			if err != nil {
				return err
			}
			opts.apply(cmd, cfg)

			deck, err := cfg.Deck()
			if err != nil {
				return err
			}

			return rootOpts.withContainer(cmd, func(ctx context.Context, c *app.Container) error {
				s := seed.NewSeeder(c.Logger, c.Cards, c.Cache, *cfg)
				res, err := s.Run(ctx, deck)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "cards: %d, inserted: %d, skipped: %d\n", res.Total, res.Inserted, res.Skipped)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "deck YAML file (overrides SEED_DECK_PATH)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "validate the deck without writing")
	cmd.Flags().IntVar(&opts.BatchSize, "batch-size", 0, "cards per insert statement (overrides SEED_BATCH_SIZE)")

	return cmd
}

// apply overrides cfg with flags the user set explicitly.
func (o *seedOptions) apply(cmd *cobra.Command, cfg *seed.Config) {
	if cmd.Flags().Changed("file") {
		cfg.DeckPath = o.File
	}
	if cmd.Flags().Changed("dry-run") {
		cfg.DryRun = o.DryRun
	}
	if cmd.Flags().Changed("batch-size") {
		cfg.BatchSize = o.BatchSize
	}
}
