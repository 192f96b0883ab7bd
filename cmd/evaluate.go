package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/career-predictor/internal/career"
	"github.com/spigell/career-predictor/internal/survey"
)

const (
	outputText = "text"
	outputJSON = "json"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a comma-separated answer set once",
	Example: `  career-predictor evaluate --answers "5,4,4,3,3,3,4,4,3,2,2,2,5,5,5,3,3,3,4,4,4,4,4,4,4,4,4,4,4,4"
  career-predictor evaluate --answers "5,,,,,,,,,,,,,,,,,,,,,,,,,,,,,1" --output json`,
	Run: func(cmd *cobra.Command, _ []string) {
		evaluate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().StringP("answers", "a", "", "30 comma-separated answers from 1 to 5, empty for unanswered")
	evaluateCmd.Flags().StringP("output", "o", outputText, "output format: text or json")

	evaluateCmd.MarkFlagRequired("answers")
}

func evaluate(cmd *cobra.Command) {
	logger, config := setup()

	raw, _ := cmd.Flags().GetString("answers")
	output, _ := cmd.Flags().GetString("output")
	if output != outputText && output != outputJSON {
		logger.Fatal("unsupported output format", zap.String("output", output))
	}

	answers, err := survey.ParseAnswers(raw)
	if err != nil {
		logger.Fatal("parsing answers", zap.Error(err))
	}

	handle := initialize(context.Background(), logger, config)

	result, err := handle.Evaluate(answers)
	if err != nil {
		logger.Fatal("evaluating answers", zap.Error(err))
	}

	if err := printOutcome(cmd.OutOrStdout(), output, result); err != nil {
		logger.Fatal("printing outcome", zap.Error(err))
	}
}

type outcomeView struct {
	Headline       string `json:"headline"`
	Recommendation string `json:"recommendation"`
	career.Outcome
}

func printOutcome(w io.Writer, output string, o *career.Outcome) error {
	if output == outputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(outcomeView{
			Headline:       o.Headline(),
			Recommendation: o.Recommendation(),
			Outcome:        *o,
		})
	}

	_, err := fmt.Fprintf(w, "%s\nConfidence: %.1f%%\n\n%s\n%s\n\n%s\n",
		o.Title(), o.Confidence, o.Headline(), o.Recommendation(), o.Rationale)
	return err
}
