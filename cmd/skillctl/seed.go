package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artem13815/resumematch/pkg/config"
	"github.com/artem13815/resumematch/pkg/repository"
	"github.com/artem13815/resumematch/pkg/skill"
)

func newSeedCmd() *cobra.Command {
	var onlyIfEmpty bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Upsert the catalog file into the store selected by STORE_DRIVER",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			defs, err := skill.NewFileSource(flagCatalog).FetchAll(ctx)
			if err != nil {
				return err
			}
			cfg := config.Load()
			stores, err := repository.Open(ctx, cfg)
			if err != nil {
				return fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
			}
			defer stores.Close()

			var n int
			if onlyIfEmpty {
				n, err = repository.SeedIfEmpty(ctx, stores.Skills, defs)
			} else {
				n, err = repository.Seed(ctx, stores.Skills, defs)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d skills into %s store\n", n, cfg.StoreDriver)
			return nil
		},
	}
	cmd.Flags().BoolVar(&onlyIfEmpty, "if-empty", false, "Skip seeding when the store already has skills")
	return cmd
}
