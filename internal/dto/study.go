package dto

import "study-helper/internal/domain"

// StudyData is the payload of a successful study request
// @Description Generated study material for a topic
type StudyData struct {
	Topic    string            `json:"topic" example:"Photosynthesis"`
	Summary  []string          `json:"summary"`
	Quiz     []domain.QuizItem `json:"quiz" swaggertype:"array,object"`
	StudyTip string            `json:"studyTip"`
	Mode     domain.StudyMode  `json:"mode" example:"regular" enums:"regular,math"`
	Source   *string           `json:"source" example:"https://en.wikipedia.org/wiki/Photosynthesis"`

	// ContentSource reports whether the provider or the mock template produced the content.
	ContentSource domain.ContentSource `json:"-"`
}

// StudyResponse is the success envelope for GET /study
type StudyResponse struct {
	Success bool       `json:"success" example:"true"`
	Data    *StudyData `json:"data"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Topic parameter is required"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status      string `json:"status" example:"ok"`
	Timestamp   string `json:"timestamp" example:"2024-01-01T00:00:00.000Z"`
	Environment string `json:"environment" example:"development"`
}
