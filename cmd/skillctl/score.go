package main

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/artem13815/resumematch/pkg/analysis"
)

type scoreOutput struct {
	Score    int      `json:"score"`
	Matched  []string `json:"matched"`
	Missing  []string `json:"missing"`
	JDSkills []string `json:"jdSkills"`
}

func newScoreCmd() *cobra.Command {
	var (
		jd     string
		jdFile string
		skills []string
	)
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score resume skills against a job description without saving history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jdFile != "" {
				b, err := os.ReadFile(jdFile)
				if err != nil {
					return err
				}
				jd = string(b)
			}
			if strings.TrimSpace(jd) == "" {
				return errors.New("job description is required: use --jd or --jd-file")
			}
			extractor, err := loadExtractor(cmd.Context(), flagCatalog)
			if err != nil {
				return err
			}
			jdSkills := extractor.Extract(strings.ToLower(jd))
			matched, missing, score := analysis.ComputeMatch(jdSkills, skills)
			return printJSON(cmd.OutOrStdout(), scoreOutput{
				Score:    score,
				Matched:  matched,
				Missing:  missing,
				JDSkills: jdSkills,
			})
		},
	}
	cmd.Flags().StringVar(&jd, "jd", "", "Job description text")
	cmd.Flags().StringVar(&jdFile, "jd-file", "", "Read the job description from a file")
	cmd.Flags().StringSliceVar(&skills, "skills", nil, "Resume skills, comma separated")
	return cmd
}
