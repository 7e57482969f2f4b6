package client

import (
	"errors"
	"fmt"
)

var (
	ErrNotScorable = errors.New("only multiple choice quizzes can be scored")
	ErrIncomplete  = errors.New("answer every question before submitting")
)

// Result is the outcome of a submitted quiz.
type Result struct {
	Correct int
	Total   int
	// PerQuestion[i] reports whether question i was answered correctly.
	PerQuestion []bool
}

func (r Result) String() string {
	return fmt.Sprintf("%d/%d", r.Correct, r.Total)
}

// Score counts selections matching each question's correct answer.
// selections maps question index to the chosen option index.
func Score(quiz []QuizQuestion, selections map[int]int) (Result, error) {
	for _, q := range quiz {
		if !q.IsMultipleChoice() {
			return Result{}, ErrNotScorable
		}
	}
	if len(selections) != len(quiz) {
		return Result{}, ErrIncomplete
	}

	result := Result{Total: len(quiz), PerQuestion: make([]bool, len(quiz))}
	for i, q := range quiz {
		choice, ok := selections[i]
		if !ok {
			return Result{}, ErrIncomplete
		}
		if choice == q.CorrectAnswer {
			result.Correct++
			result.PerQuestion[i] = true
		}
	}
	return result, nil
}
