package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spigell/career-predictor/internal/survey"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the numbered questionnaire and the answer scale",
	Run: func(cmd *cobra.Command, _ []string) {
		printQuestions(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(questionsCmd)
}

func printQuestions(w io.Writer) {
	scale := make([]string, 0, survey.MaxAnswer)
	for _, opt := range survey.Scale() {
		scale = append(scale, fmt.Sprintf("%d = %s", opt.Value, opt.Label))
	}
	fmt.Fprintf(w, "Scale: %s\n", strings.Join(scale, ", "))

	theme := ""
	for _, q := range survey.Questions() {
		if q.Theme != theme {
			theme = q.Theme
			fmt.Fprintf(w, "\n%s\n", theme)
		}
		fmt.Fprintf(w, "%3d. %s\n", q.Index+1, q.Text)
	}
}
