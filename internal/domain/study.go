package domain

import (
	"context"
	"strings"
)

// StudyMode selects the quiz format of generated study material.
type StudyMode string

const (
	ModeRegular StudyMode = "regular"
	ModeMath    StudyMode = "math"
)

// ParseStudyMode returns ModeMath only for the exact literal "math".
// Anything else, including the empty string, is ModeRegular.
func ParseStudyMode(raw string) StudyMode {
	if raw == string(ModeMath) {
		return ModeMath
	}
	return ModeRegular
}

// QuizCount is the number of quiz entries required for the mode.
func (m StudyMode) QuizCount() int {
	if m == ModeMath {
		return 1
	}
	return 3
}

const (
	SummaryCount = 3
	OptionCount  = 4
)

// TopicInfo is the normalized encyclopedia record for a topic.
type TopicInfo struct {
	Title   string `json:"title"`
	Extract string `json:"extract"`
	URL     string `json:"url"`
}

// PlaceholderTopic is used when the encyclopedia lookup fails.
func PlaceholderTopic(topic string) TopicInfo {
	return TopicInfo{
		Title:   topic,
		Extract: "Information about " + topic,
		URL:     "",
	}
}

// QuizItem is either a QuizMCQ or a QuizMath.
type QuizItem interface {
	quizItem()
}

// QuizMCQ is a four-option multiple choice question. CorrectAnswer indexes Options.
type QuizMCQ struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// QuizMath is an open-response problem with a worked explanation.
type QuizMath struct {
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	Explanation string `json:"explanation"`
}

func (QuizMCQ) quizItem()  {}
func (QuizMath) quizItem() {}

// StudyContent is the generated study payload.
type StudyContent struct {
	Summary  []string   `json:"summary"`
	Quiz     []QuizItem `json:"quiz"`
	StudyTip string     `json:"studyTip"`
}

// Validate checks the cardinality invariants of content for the given mode.
func (c StudyContent) Validate(mode StudyMode) error {
	if len(c.Summary) != SummaryCount {
		return NewGenerationError("summary must have exactly 3 entries", nil)
	}
	for _, s := range c.Summary {
		if strings.TrimSpace(s) == "" {
			return NewGenerationError("summary entries must not be empty", nil)
		}
	}
	if strings.TrimSpace(c.StudyTip) == "" {
		return NewGenerationError("study tip must not be empty", nil)
	}
	if len(c.Quiz) != mode.QuizCount() {
		return NewGenerationError("unexpected number of quiz entries", nil)
	}
	for _, item := range c.Quiz {
		if strings.TrimSpace(questionOf(item)) == "" {
			return NewGenerationError("quiz question must not be empty", nil)
		}
		switch q := item.(type) {
		case QuizMCQ:
			if mode != ModeRegular {
				return NewGenerationError("multiple choice question in math mode", nil)
			}
			if len(q.Options) != OptionCount {
				return NewGenerationError("multiple choice question must have exactly 4 options", nil)
			}
			if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
				return NewGenerationError("correct answer index out of range", nil)
			}
		case QuizMath:
			if mode != ModeMath {
				return NewGenerationError("math question in regular mode", nil)
			}
			if q.Answer == "" || q.Explanation == "" {
				return NewGenerationError("math question needs an answer and explanation", nil)
			}
		default:
			return NewGenerationError("unknown quiz item", nil)
		}
	}
	return nil
}

func questionOf(item QuizItem) string {
	switch q := item.(type) {
	case QuizMCQ:
		return q.Question
	case QuizMath:
		return q.Question
	}
	return ""
}

// ContentSource records which path produced StudyContent.
type ContentSource string

const (
	SourceAI   ContentSource = "ai"
	SourceMock ContentSource = "mock"
)

// Generation is the outcome of content generation. Fallback holds the reason
// mock content was used and is nil when the provider succeeded.
type Generation struct {
	Content  StudyContent
	Source   ContentSource
	Fallback error
}

// TopicLookup fetches encyclopedia context for a topic.
type TopicLookup interface {
	Fetch(ctx context.Context, topic string) (TopicInfo, error)
}

// TextCompleter is a generative text backend.
type TextCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Name() string
}

// ContentGenerator turns topic context into study content. It never fails:
// any provider problem is reported through Generation.Fallback.
type ContentGenerator interface {
	Generate(ctx context.Context, info TopicInfo, mode StudyMode) Generation
}
