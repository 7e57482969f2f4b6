package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	quiz := []QuizQuestion{
		{Question: "q1", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 0},
		{Question: "q2", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 1},
		{Question: "q3", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 1},
	}

	t.Run("all correct", func(t *testing.T) {
		result, err := Score(quiz, map[int]int{0: 0, 1: 1, 2: 1})
		require.NoError(t, err)
		assert.Equal(t, "3/3", result.String())
		assert.Equal(t, []bool{true, true, true}, result.PerQuestion)
	})

	t.Run("partially correct", func(t *testing.T) {
		result, err := Score(quiz, map[int]int{0: 3, 1: 1, 2: 0})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Correct)
		assert.Equal(t, 3, result.Total)
		assert.Equal(t, []bool{false, true, false}, result.PerQuestion)
	})

	t.Run("incomplete", func(t *testing.T) {
		_, err := Score(quiz, map[int]int{0: 0, 1: 1})
		assert.ErrorIs(t, err, ErrIncomplete)

		_, err = Score(quiz, map[int]int{0: 0, 1: 1, 5: 2})
		assert.ErrorIs(t, err, ErrIncomplete)
	})

	t.Run("math quiz", func(t *testing.T) {
		_, err := Score([]QuizQuestion{{Question: "q", Answer: "7", Explanation: "e"}}, map[int]int{0: 0})
		assert.ErrorIs(t, err, ErrNotScorable)
	})
}
