package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/HendryAvila/picots/internal/config"
	"github.com/HendryAvila/picots/internal/framework"
	"github.com/HendryAvila/picots/internal/reference"
	"github.com/HendryAvila/picots/internal/report"
	"github.com/HendryAvila/picots/internal/session"
	"github.com/spf13/cobra"
)

// errBelowThreshold is returned when --fail-under is not met.
var errBelowThreshold = errors.New("framework strength below threshold")

func newAnalyzeCmd() *cobra.Command {
	var (
		file       string
		useExample bool
		jsonOutput bool
		failUnder  int
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a PICOTS worksheet file and print the report",
		Long: `Analyze a worksheet file (YAML or JSON) without starting the server.

Example worksheet:

  framework:
    population: Adults aged 40-75 with diagnosed hypertension
    intervention: Mindfulness-based stress reduction program
    comparison: Wait-list control
    outcomes: Change in systolic blood pressure
    timing: Baseline, 8 weeks and 6 months
    setting: Urban primary care clinics
  quality:
    internal_validity: high
    external_validity: moderate
    bias_risk: low
    evidence_grading: b`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var ws *config.Worksheet
			switch {
			case useExample:
				ws = &config.Worksheet{
					Framework: reference.ExampleState(),
					Quality:   framework.NewQualityAssessment(),
				}
			case file != "":
				loaded, err := config.LoadWorksheet(file)
				if err != nil {
					return err
				}
				ws = loaded
			default:
				return errors.New("a worksheet is required: pass --file or --example")
			}

			w := session.NewWorksheet()
			w.Framework = ws.Framework
			w.Quality = ws.Quality
			w.Analyze()
			sum := report.Summarize(w)

			out := cmd.OutOrStdout()
			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(sum); err != nil {
					return fmt.Errorf("encoding summary: %w", err)
				}
			} else if err := report.Terminal(out, sum); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}

			if failUnder > 0 && *sum.Strength < failUnder {
				return fmt.Errorf("%w: %d < %d", errBelowThreshold, *sum.Strength, failUnder)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Worksheet file (YAML or JSON)")
	cmd.Flags().BoolVar(&useExample, "example", false, "Analyze the built-in worked example")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the summary as JSON")
	cmd.Flags().IntVar(&failUnder, "fail-under", 0, "Exit non-zero if framework strength is below this score")
	cmd.MarkFlagsMutuallyExclusive("file", "example")
	return cmd
}
