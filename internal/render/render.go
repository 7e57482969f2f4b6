package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"study-helper/internal/client"
	"study-helper/internal/domain"
	"study-helper/internal/history"
)

const optionLetters = "ABCD"

// OptionLetter returns the display letter for option index i.
func OptionLetter(i int) string {
	if i < 0 || i >= len(optionLetters) {
		return "?"
	}
	return string(optionLetters[i])
}

// ParseOption reads an answer typed as a letter (A-D) or a number (1-4).
func ParseOption(input string, optionCount int) (int, error) {
	s := strings.TrimSpace(strings.ToUpper(input))
	if len(s) == 1 {
		if idx := strings.IndexByte(optionLetters, s[0]); idx != -1 && idx < optionCount {
			return idx, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= optionCount {
		return n - 1, nil
	}
	return 0, fmt.Errorf("choose %s-%s", OptionLetter(0), OptionLetter(optionCount-1))
}

// Material renders summary, quiz questions and study tip.
func (t Theme) Material(m *client.StudyMaterial) string {
	var b strings.Builder

	title := m.Topic
	if m.Mode == domain.ModeMath {
		title += " (math mode)"
	}
	b.WriteString(t.Title.Render(title))
	b.WriteString("\n")
	if m.Source != nil {
		b.WriteString(t.Hint.Render("Source: " + *m.Source))
		b.WriteString("\n")
	}
	if m.ContentSource == string(domain.SourceMock) {
		b.WriteString(t.Hint.Render("AI provider unavailable, showing template content"))
		b.WriteString("\n")
	}

	var summary strings.Builder
	summary.WriteString(t.Heading.Render("Summary"))
	for _, point := range m.Summary {
		summary.WriteString("\n")
		summary.WriteString(t.Body.Render("• " + point))
	}
	b.WriteString(t.Card.Render(summary.String()))
	b.WriteString("\n")

	var quiz strings.Builder
	quiz.WriteString(t.Heading.Render("Quiz"))
	for i, q := range m.Quiz {
		quiz.WriteString("\n")
		quiz.WriteString(t.Question(i, q))
	}
	b.WriteString(t.Card.Render(quiz.String()))
	b.WriteString("\n")

	b.WriteString(t.Card.Render(t.Heading.Render("Study Tip") + "\n" + t.Tip.Render(m.StudyTip)))
	b.WriteString("\n")
	return b.String()
}

// Question renders one quiz question with lettered options.
func (t Theme) Question(i int, q client.QuizQuestion) string {
	var b strings.Builder
	b.WriteString(t.Body.Render(fmt.Sprintf("%d. %s", i+1, q.Question)))
	for j, opt := range q.Options {
		b.WriteString("\n")
		b.WriteString(t.Body.Render(fmt.Sprintf("   %s) %s", OptionLetter(j), opt)))
	}
	return b.String()
}

// Solution renders the answer and explanation of a math problem.
func (t Theme) Solution(q client.QuizQuestion) string {
	return t.Card.Render(
		t.Correct.Render("Answer: "+q.Answer) + "\n" +
			t.Body.Render("Explanation: "+q.Explanation))
}

// Result renders a scored quiz.
func (t Theme) Result(quiz []client.QuizQuestion, selections map[int]int, result client.Result) string {
	var b strings.Builder
	b.WriteString(t.Title.Render("Score: " + result.String()))
	for i, q := range quiz {
		b.WriteString("\n")
		chosen := OptionLetter(selections[i])
		if result.PerQuestion[i] {
			b.WriteString(t.Correct.Render(fmt.Sprintf("✓ %d. %s", i+1, chosen)))
			continue
		}
		correct := OptionLetter(q.CorrectAnswer)
		if q.CorrectAnswer >= 0 && q.CorrectAnswer < len(q.Options) {
			correct += ") " + q.Options[q.CorrectAnswer]
		}
		b.WriteString(t.Incorrect.Render(fmt.Sprintf("✗ %d. %s (correct: %s)", i+1, chosen, correct)))
	}
	return t.Card.Render(b.String())
}

// History renders recent topics, newest first.
func (t Theme) History(entries []history.Entry, now time.Time) string {
	if len(entries) == 0 {
		return t.Hint.Render("No recent topics")
	}
	var b strings.Builder
	b.WriteString(t.Heading.Render("Recent Topics"))
	for _, e := range entries {
		b.WriteString("\n")
		topic := e.Topic
		if e.MathMode {
			topic = "[math] " + topic
		}
		b.WriteString(t.Body.Render(topic) + "  " + t.Hint.Render(history.RelativeTime(e.Timestamp, now)))
	}
	return t.Card.Render(b.String())
}

// Failure renders an error message.
func (t Theme) Failure(msg string) string {
	return t.Error.Render("Error: " + msg)
}
