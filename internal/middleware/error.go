package middleware

import (
	"errors"
	"net/http"

	"study-helper/internal/domain"
	"study-helper/internal/dto"
	"study-helper/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const internalServerError = "Internal server error"

// ErrorHandler is a centralized error handler rendering the
// {success:false, error, message?} envelope. When exposeDetails is set the
// underlying cause of 5xx errors is returned in message.
func ErrorHandler(exposeDetails bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get().With(
			zap.String("path", c.Path()),
			zap.String("request_id", requestID(c)),
		)

		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			statusCode := mapDomainErrorToHTTPStatus(domainErr)
			response := dto.ErrorResponse{Success: false, Error: domainErr.Message}

			if statusCode >= http.StatusInternalServerError {
				log.Error("Request failed",
					zap.String("code", string(domainErr.Code)),
					zap.Int("status", statusCode),
					zap.Error(domainErr.Err))
				if exposeDetails && domainErr.Err != nil {
					response.Message = domainErr.Err.Error()
				}
			} else {
				log.Warn("Request rejected",
					zap.String("code", string(domainErr.Code)),
					zap.String("message", domainErr.Message),
					zap.Int("status", statusCode))
			}
			return c.Status(statusCode).JSON(response)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			log.Warn("Fiber error occurred",
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message))
			return c.Status(fiberErr.Code).JSON(dto.ErrorResponse{
				Success: false,
				Error:   fiberErr.Message,
			})
		}

		log.Error("Unknown error occurred", zap.Error(err))
		response := dto.ErrorResponse{Success: false, Error: internalServerError}
		if exposeDetails {
			response.Message = err.Error()
		}
		return c.Status(http.StatusInternalServerError).JSON(response)
	}
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.ErrInvalidInput:
		return http.StatusBadRequest
	case domain.ErrTopicNotFound:
		return http.StatusNotFound
	case domain.ErrUpstream, domain.ErrGeneration:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
