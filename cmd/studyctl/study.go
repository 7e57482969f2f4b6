package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"study-helper/internal/client"
	"study-helper/internal/render"

	"github.com/spf13/cobra"
)

func newStudyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "study <topic...>",
		Short: "Generate study material for a topic",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runStudy,
	}
	cmd.Flags().Bool("math", false, "Generate a quantitative problem instead of multiple choice questions")
	cmd.Flags().Bool("no-quiz", false, "Only print the material, do not ask for answers")
	return cmd
}

func runStudy(cmd *cobra.Command, args []string) error {
	topic := strings.TrimSpace(strings.Join(args, " "))
	mathMode, _ := cmd.Flags().GetBool("math")
	noQuiz, _ := cmd.Flags().GetBool("no-quiz")
	out := cmd.OutOrStdout()

	store, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("resolve state path: %w", err)
	}
	theme := loadTheme(store)

	if topic == "" {
		fmt.Fprintln(cmd.ErrOrStderr(), theme.Failure("Please enter a topic"))
		return errReported
	}

	fmt.Fprintln(out, theme.Hint.Render("Generating your study materials..."))
	material, err := apiClient(cmd).Study(cmd.Context(), topic, mathMode)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), theme.Failure(err.Error()))
		return errReported
	}

	if err := store.Record(topic, mathMode, time.Now()); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), theme.Hint.Render("Could not save history: "+err.Error()))
	}

	fmt.Fprintln(out, theme.Material(material))
	if noQuiz || len(material.Quiz) == 0 {
		return nil
	}

	in := bufio.NewScanner(cmd.InOrStdin())
	if !material.Quiz[0].IsMultipleChoice() {
		fmt.Fprint(out, theme.Hint.Render("Press Enter to reveal the answer"))
		in.Scan()
		fmt.Fprintln(out)
		for _, q := range material.Quiz {
			fmt.Fprintln(out, theme.Solution(q))
		}
		return nil
	}

	selections, complete := askAnswers(in, out, theme, material.Quiz)
	if !complete {
		fmt.Fprintln(out, theme.Hint.Render(client.ErrIncomplete.Error()))
		return nil
	}
	result, err := client.Score(material.Quiz, selections)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, theme.Result(material.Quiz, selections, result))
	return nil
}

// askAnswers prompts for every question until a valid option is given. It
// reports false when input ends before all questions are answered.
func askAnswers(in *bufio.Scanner, out io.Writer, theme render.Theme, quiz []client.QuizQuestion) (map[int]int, bool) {
	selections := make(map[int]int, len(quiz))
	for i, q := range quiz {
		for {
			fmt.Fprintf(out, "Answer %d (%s-%s): ", i+1, render.OptionLetter(0), render.OptionLetter(len(q.Options)-1))
			if !in.Scan() {
				fmt.Fprintln(out)
				return selections, false
			}
			choice, err := render.ParseOption(in.Text(), len(q.Options))
			if err != nil {
				fmt.Fprintln(out, theme.Failure(err.Error()))
				continue
			}
			selections[i] = choice
			break
		}
	}
	return selections, true
}
