package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate an empty store with demo data",
		Long: `Creates the schema if needed, then generates the demo dataset: 3 users,
25 jobs, 1000 candidates with timelines and 5 assessments.

Does nothing when the store already contains jobs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			cfg, store, err := bootstrap(ctx, *configPath)
			if err != nil {
				return err
			}
			defer store.Close()

			seeded, err := newSeeder(store).Run(ctx, newRand(cfg.SeedRandom), time.Now())
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			if seeded {
				fmt.Fprintln(cmd.OutOrStdout(), "Seed data generated.")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Store already seeded, nothing to do.")
			}
			return nil
		},
	}
}
