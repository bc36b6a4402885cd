package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/artem13815/resumematch/pkg/skill"
)

var flagCatalog string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "skillctl",
		Short:        "Operator tool for the resumematch skill catalog",
		SilenceUsage: true,
		Long: `skillctl seeds the configured store with a YAML skill catalog and runs
skill extraction and scoring locally against a catalog file.`,
	}
	root.PersistentFlags().StringVar(&flagCatalog, "catalog", "configs/skills.yaml", "YAML skill catalog used by extract/score and seed")
	root.AddCommand(newSeedCmd(), newExtractCmd(), newScoreCmd())
	return root
}

// Execute is called by main.go.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadExtractor compiles the catalog file into an in-memory extractor.
func loadExtractor(ctx context.Context, path string) (*skill.Extractor, error) {
	cache := skill.NewCache(skill.NewFileSource(path))
	if err := cache.Load(ctx); err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return skill.NewExtractor(cache), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
