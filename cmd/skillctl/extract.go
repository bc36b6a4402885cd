package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/artem13815/resumematch/pkg/resume"
)

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <resume.pdf|resume.docx>",
		Short: "Print name, email, phone and catalog skills found in a resume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			extractor, err := loadExtractor(cmd.Context(), flagCatalog)
			if err != nil {
				return err
			}
			svc := resume.NewParseService(resume.NewFileTextExtractor(os.TempDir()), extractor)
			res, err := svc.Parse(cmd.Context(), filepath.Base(args[0]), data)
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
}
