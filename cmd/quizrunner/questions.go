package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quiz-runner/internal/quiz"
)

var flagValidate bool

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List or validate the question bank",
	Long: `Shows the question bank the game would use, with the correct option marked.

The bank is read from --questions, then ~/.quizrunner/configs/questions.yaml,
then ./configs/questions.yaml, then the built-in set.

Examples:
  quizrunner questions
  quizrunner questions --validate --questions ./my-questions.yaml`,
	Args: cobra.NoArgs,
	RunE: runQuestions,
}

func init() {
	questionsCmd.Flags().BoolVar(&flagValidate, "validate", false, "Only check the bank and report errors")
}

func runQuestions(_ *cobra.Command, _ []string) error {
	// No fallback here: a broken bank should be reported, not hidden
	bank, err := quiz.LoadBank(flagQuestions)
	if err != nil {
		return fmt.Errorf("invalid question bank: %w", err)
	}

	if flagValidate {
		fmt.Printf("OK: %d questions\n", bank.Len())
		return nil
	}

	for i := range bank.Len() {
		q := bank.Question(i)
		fmt.Printf("%2d. %s\n", i+1, q.Text)
		for j, opt := range q.Options {
			mark := " "
			if j == q.Correct {
				mark = "*"
			}
			fmt.Printf("    %s %d) %s\n", mark, j+1, opt)
		}
		fmt.Println()
	}
	fmt.Printf("%d questions\n", bank.Len())
	return nil
}
