package handler

import (
	"study-helper/internal/dto"
	"study-helper/internal/service"

	"github.com/gofiber/fiber/v2"
)

// HeaderContentSource reports whether content came from the AI provider or the mock template.
const HeaderContentSource = "X-Content-Source"

// StudyHandler handles study material requests
type StudyHandler struct {
	service service.StudyService
}

// NewStudyHandler creates a new StudyHandler instance
func NewStudyHandler(service service.StudyService) *StudyHandler {
	return &StudyHandler{
		service: service,
	}
}

// GetStudyMaterial godoc
// @Summary Generate study material
// @Description Looks the topic up on Wikipedia and generates a summary, quiz and study tip. Falls back to template content when the AI provider is unavailable.
// @Tags study
// @Produce json
// @Param topic query string true "Topic to study"
// @Param mode query string false "Study mode" Enums(regular, math)
// @Success 200 {object} dto.StudyResponse
// @Header 200 {string} X-Content-Source "ai or mock"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /study [get]
func (h *StudyHandler) GetStudyMaterial(c *fiber.Ctx) error {
	data, err := h.service.GetStudyMaterial(c.UserContext(), c.Query("topic"), c.Query("mode"))
	if err != nil {
		return err
	}

	c.Set(HeaderContentSource, string(data.ContentSource))
	return c.JSON(dto.StudyResponse{
		Success: true,
		Data:    data,
	})
}
