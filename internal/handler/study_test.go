package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"study-helper/internal/domain"
	"study-helper/internal/dto"
	"study-helper/internal/handler"
	"study-helper/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockStudyService
type MockStudyService struct {
	GetStudyMaterialFunc func(ctx context.Context, topic, mode string) (*dto.StudyData, error)
}

func (m *MockStudyService) GetStudyMaterial(ctx context.Context, topic, mode string) (*dto.StudyData, error) {
	if m.GetStudyMaterialFunc != nil {
		return m.GetStudyMaterialFunc(ctx, topic, mode)
	}
	panic("MockStudyService.GetStudyMaterialFunc not implemented")
}

func setupStudyApp(svc *MockStudyService, exposeDetails bool) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler(exposeDetails)})
	app.Get("/study", handler.NewStudyHandler(svc).GetStudyMaterial)
	return app
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestGetStudyMaterial_Success(t *testing.T) {
	source := "https://en.wikipedia.org/wiki/Black_hole"
	var gotTopic, gotMode string
	svc := &MockStudyService{
		GetStudyMaterialFunc: func(ctx context.Context, topic, mode string) (*dto.StudyData, error) {
			gotTopic, gotMode = topic, mode
			return &dto.StudyData{
				Topic:   "Black hole",
				Summary: []string{"a", "b", "c"},
				Quiz: []domain.QuizItem{
					domain.QuizMath{Question: "q", Answer: "7", Explanation: "e"},
				},
				StudyTip:      "tip",
				Mode:          domain.ModeMath,
				Source:        &source,
				ContentSource: domain.SourceAI,
			}, nil
		},
	}
	app := setupStudyApp(svc, false)

	req := httptest.NewRequest(http.MethodGet, "/study?topic=Black%20hole&mode=math", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ai", resp.Header.Get(handler.HeaderContentSource))
	assert.Equal(t, "Black hole", gotTopic)
	assert.Equal(t, "math", gotMode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "Black hole", data["topic"])
	assert.Equal(t, "math", data["mode"])
	assert.Equal(t, source, data["source"])
	assert.Equal(t, "tip", data["studyTip"])
	assert.NotContains(t, data, "ContentSource")

	quiz := data["quiz"].([]any)
	require.Len(t, quiz, 1)
	assert.Equal(t, "7", quiz[0].(map[string]any)["answer"])
}

func TestGetStudyMaterial_NullSource(t *testing.T) {
	svc := &MockStudyService{
		GetStudyMaterialFunc: func(ctx context.Context, topic, mode string) (*dto.StudyData, error) {
			return &dto.StudyData{
				Topic:         topic,
				Summary:       []string{"a", "b", "c"},
				Quiz:          []domain.QuizItem{},
				StudyTip:      "tip",
				Mode:          domain.ModeRegular,
				ContentSource: domain.SourceMock,
			}, nil
		},
	}
	app := setupStudyApp(svc, false)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/study?topic=xyzzy123", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "mock", resp.Header.Get(handler.HeaderContentSource))
	data := decodeBody(t, resp)["data"].(map[string]any)
	assert.Contains(t, data, "source")
	assert.Nil(t, data["source"])
	assert.Equal(t, "xyzzy123", data["topic"])
}

func TestGetStudyMaterial_Errors(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		exposeDetails bool
		wantStatus    int
		wantError     string
		wantMessage   string
	}{
		{
			name:       "missing topic",
			err:        domain.NewInvalidInputError("Topic parameter is required"),
			wantStatus: fiber.StatusBadRequest,
			wantError:  "Topic parameter is required",
		},
		{
			name:          "missing topic hides nothing in development",
			err:           domain.NewInvalidInputError("Topic parameter is required"),
			exposeDetails: true,
			wantStatus:    fiber.StatusBadRequest,
			wantError:     "Topic parameter is required",
		},
		{
			name:       "internal error in production",
			err:        domain.NewInternalError("Failed to generate study material", errors.New("panic: boom")),
			wantStatus: fiber.StatusInternalServerError,
			wantError:  "Failed to generate study material",
		},
		{
			name:          "internal error in development",
			err:           domain.NewInternalError("Failed to generate study material", errors.New("panic: boom")),
			exposeDetails: true,
			wantStatus:    fiber.StatusInternalServerError,
			wantError:     "Failed to generate study material",
			wantMessage:   "panic: boom",
		},
		{
			name:       "unexpected error",
			err:        errors.New("connection reset"),
			wantStatus: fiber.StatusInternalServerError,
			wantError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockStudyService{
				GetStudyMaterialFunc: func(ctx context.Context, topic, mode string) (*dto.StudyData, error) {
					return nil, tt.err
				},
			}
			app := setupStudyApp(svc, tt.exposeDetails)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/study?topic=", nil))
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Empty(t, resp.Header.Get(handler.HeaderContentSource))
			body := decodeBody(t, resp)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantError, body["error"])
			if tt.wantMessage == "" {
				assert.NotContains(t, body, "message")
			} else {
				assert.Equal(t, tt.wantMessage, body["message"])
			}
		})
	}
}
