package service

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"study-helper/internal/domain"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const regularSchemaJSON = `{
  "type": "object",
  "required": ["summary", "quiz", "studyTip"],
  "properties": {
    "summary": {"type": "array", "minItems": 3, "maxItems": 3, "items": {"type": "string", "minLength": 1}},
    "quiz": {
      "type": "array", "minItems": 3, "maxItems": 3,
      "items": {
        "type": "object",
        "required": ["question", "options", "correctAnswer"],
        "properties": {
          "question": {"type": "string", "minLength": 1},
          "options": {"type": "array", "minItems": 4, "maxItems": 4, "items": {"type": "string", "minLength": 1}},
          "correctAnswer": {"type": "integer", "minimum": 0, "maximum": 3}
        }
      }
    },
    "studyTip": {"type": "string", "minLength": 1}
  }
}`

const mathSchemaJSON = `{
  "type": "object",
  "required": ["summary", "quiz", "studyTip"],
  "properties": {
    "summary": {"type": "array", "minItems": 3, "maxItems": 3, "items": {"type": "string", "minLength": 1}},
    "quiz": {
      "type": "array", "minItems": 1, "maxItems": 1,
      "items": {
        "type": "object",
        "required": ["question", "answer", "explanation"],
        "properties": {
          "question": {"type": "string", "minLength": 1},
          "answer": {"type": ["string", "number"], "minLength": 1},
          "explanation": {"type": "string", "minLength": 1}
        }
      }
    },
    "studyTip": {"type": "string", "minLength": 1}
  }
}`

var (
	regularSchema = mustCompileSchema("regular", regularSchemaJSON)
	mathSchema    = mustCompileSchema("math", mathSchemaJSON)
)

func mustCompileSchema(name, definition string) *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(definition))
	if err != nil {
		panic(fmt.Sprintf("parse %s schema: %v", name, err))
	}
	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://study-content-%s.json", name)
	if err := c.AddResource(schemaURL, doc); err != nil {
		panic(fmt.Sprintf("add %s schema: %v", name, err))
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		panic(fmt.Sprintf("compile %s schema: %v", name, err))
	}
	return compiled
}

// fenceLanguage matches the info string after an opening fence, such as json,
// JSON, json5 or javascript.
var fenceLanguage = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_+-]*`)

// CleanResponse removes a fenced code block wrapper and any <think> section
// from raw provider output.
func CleanResponse(raw string) string {
	cleaned := strings.TrimSpace(raw)

	if thinkStart := strings.Index(cleaned, "<think>"); thinkStart != -1 {
		if thinkEnd := strings.Index(cleaned, "</think>"); thinkEnd > thinkStart {
			cleaned = strings.TrimSpace(cleaned[:thinkStart] + cleaned[thinkEnd+len("</think>"):])
		}
	}

	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = fenceLanguage.ReplaceAllString(cleaned, "")
		cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
		cleaned = strings.TrimSpace(cleaned)
	}
	return cleaned
}

type rawContent struct {
	Summary  []string          `json:"summary"`
	Quiz     []json.RawMessage `json:"quiz"`
	StudyTip string            `json:"studyTip"`
}

type rawMath struct {
	Question    string `json:"question"`
	Answer      any    `json:"answer"`
	Explanation string `json:"explanation"`
}

// ParseStudyContent turns provider output into StudyContent for mode. Output
// that is not JSON, does not match the schema for mode or breaks the content
// invariants is rejected with a GENERATION_ERROR.
func ParseStudyContent(raw string, mode domain.StudyMode) (domain.StudyContent, error) {
	cleaned := CleanResponse(raw)

	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(cleaned))
	if err != nil {
		return domain.StudyContent{}, domain.NewGenerationError("provider response is not valid JSON", err)
	}

	schema := regularSchema
	if mode == domain.ModeMath {
		schema = mathSchema
	}
	if err := schema.Validate(doc); err != nil {
		return domain.StudyContent{}, domain.NewGenerationError("provider response does not match the expected shape", err)
	}

	var parsed rawContent
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return domain.StudyContent{}, domain.NewGenerationError("failed to decode provider response", err)
	}

	content := domain.StudyContent{
		Summary:  parsed.Summary,
		StudyTip: parsed.StudyTip,
		Quiz:     make([]domain.QuizItem, 0, len(parsed.Quiz)),
	}
	for i, item := range parsed.Quiz {
		quizItem, err := decodeQuizItem(item, mode)
		if err != nil {
			return domain.StudyContent{}, domain.NewGenerationError(fmt.Sprintf("failed to decode quiz item %d", i), err)
		}
		content.Quiz = append(content.Quiz, quizItem)
	}

	if err := content.Validate(mode); err != nil {
		return domain.StudyContent{}, err
	}
	return content, nil
}

func decodeQuizItem(item json.RawMessage, mode domain.StudyMode) (domain.QuizItem, error) {
	if mode != domain.ModeMath {
		var mcq domain.QuizMCQ
		if err := json.Unmarshal(item, &mcq); err != nil {
			return nil, err
		}
		return mcq, nil
	}

	var m rawMath
	if err := json.Unmarshal(item, &m); err != nil {
		return nil, err
	}
	var answer string
	switch v := m.Answer.(type) {
	case string:
		answer = v
	case float64:
		answer = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return nil, fmt.Errorf("unexpected answer type %T", m.Answer)
	}
	return domain.QuizMath{
		Question:    m.Question,
		Answer:      answer,
		Explanation: m.Explanation,
	}, nil
}
