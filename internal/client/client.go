package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"time"

	"study-helper/internal/domain"
	"study-helper/internal/handler"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultBaseURL = "http://localhost:5000"

	studyTimeout  = 30 * time.Second
	healthTimeout = 5 * time.Second
)

// ErrUnreachable is returned when no response was received from the server.
var ErrUnreachable = errors.New("Cannot connect to server. Please check if the backend is running.")

// APIError is a non-success response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// QuizQuestion holds either a multiple choice question (Options set) or a
// math problem (Answer and Explanation set).
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer int      `json:"correctAnswer"`
	Answer        string   `json:"answer,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`
}

// IsMultipleChoice reports whether the question has options to choose from.
func (q QuizQuestion) IsMultipleChoice() bool {
	return len(q.Options) > 0
}

// StudyMaterial is the data of a successful GET /study response.
type StudyMaterial struct {
	Topic    string           `json:"topic"`
	Summary  []string         `json:"summary"`
	Quiz     []QuizQuestion   `json:"quiz"`
	StudyTip string           `json:"studyTip"`
	Mode     domain.StudyMode `json:"mode"`
	Source   *string          `json:"source"`

	// ContentSource is taken from the X-Content-Source response header.
	ContentSource string `json:"-"`
}

type studyEnvelope struct {
	Success bool           `json:"success"`
	Data    *StudyMaterial `json:"data"`
	Error   string         `json:"error"`
}

// Client talks to the study helper API.
type Client struct {
	baseURL       string
	studyTimeout  time.Duration
	healthTimeout time.Duration
}

func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		studyTimeout:  studyTimeout,
		healthTimeout: healthTimeout,
	}
}

// Study requests study material for topic. The mode parameter is only sent
// for math mode.
func (c *Client) Study(ctx context.Context, topic string, math bool) (*StudyMaterial, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("topic", topic)
	if math {
		query.Set("mode", string(domain.ModeMath))
	}

	agent := fiber.Get(c.baseURL + "/study?" + query.Encode())
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	agent.Timeout(c.studyTimeout)

	resp := fiber.AcquireResponse()
	defer fiber.ReleaseResponse(resp)
	agent.SetResponse(resp)

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, ErrUnreachable
	}

	var envelope studyEnvelope
	decodeErr := json.Unmarshal(body, &envelope)

	if code != fiber.StatusOK {
		msg := "Server error occurred"
		if decodeErr == nil && envelope.Error != "" {
			msg = envelope.Error
		}
		return nil, &APIError{Status: code, Message: msg}
	}
	if decodeErr != nil {
		return nil, &APIError{Status: code, Message: "Invalid response from server"}
	}
	if !envelope.Success || envelope.Data == nil {
		msg := envelope.Error
		if msg == "" {
			msg = "Failed to fetch study material"
		}
		return nil, &APIError{Status: code, Message: msg}
	}

	envelope.Data.ContentSource = string(resp.Header.Peek(handler.HeaderContentSource))
	return envelope.Data, nil
}

// Healthy reports whether GET /health answered with status "ok".
func (c *Client) Healthy(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}

	agent := fiber.Get(c.baseURL + "/health")
	agent.Timeout(c.healthTimeout)

	var health struct {
		Status string `json:"status"`
	}
	code, _, errs := agent.Struct(&health)
	return len(errs) == 0 && code == fiber.StatusOK && health.Status == "ok"
}
