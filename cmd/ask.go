package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/career-predictor/internal/survey"
)

const PromptSkip = "Skip"

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Answer the questionnaire in the terminal",
	Run: func(cmd *cobra.Command, _ []string) {
		ask(cmd)
	},
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().StringP("output", "o", outputText, "output format: text or json")
}

func ask(cmd *cobra.Command) {
	logger, config := setup()

	output, _ := cmd.Flags().GetString("output")
	if output != outputText && output != outputJSON {
		logger.Fatal("unsupported output format", zap.String("output", output))
	}

	// Train first so the user does not wait after the last answer.
	handle := initialize(context.Background(), logger, config)

	answers, err := askAnswers()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			logger.Info("exiting", zap.String("reason", "questionnaire aborted"))
			return
		}
		logger.Fatal("reading answers", zap.Error(err))
	}

	result, err := handle.Evaluate(answers)
	if err != nil {
		logger.Fatal("evaluating answers", zap.Error(err))
	}

	if err := printOutcome(cmd.OutOrStdout(), output, result); err != nil {
		logger.Fatal("printing outcome", zap.Error(err))
	}
}

// askAnswers walks through every question. Skipped items stay unanswered.
func askAnswers() (survey.AnswerSet, error) {
	scale := survey.Scale()

	items := make([]string, 0, len(scale)+1)
	for _, opt := range scale {
		items = append(items, opt.Label)
	}
	items = append(items, PromptSkip)

	answers := make(survey.AnswerSet, survey.QuestionCount)
	for _, q := range survey.Questions() {
		prompt := promptui.Select{
			Label:     fmt.Sprintf("[%d/%d] %s: %s", q.Index+1, survey.QuestionCount, q.Theme, q.Text),
			Items:     items,
			Size:      len(items),
			CursorPos: int(survey.Neutral) - 1,
		}

		idx, _, err := prompt.Run()
		if err != nil {
			return nil, err
		}

		if idx < len(scale) {
			answers[q.Index] = scale[idx].Value
		}
	}

	return answers, nil
}
