package service

import (
	"context"
	"fmt"
	"strings"

	"study-helper/internal/domain"
	"study-helper/internal/dto"
	"study-helper/internal/logger"

	"go.uber.org/zap"
)

// StudyService defines the study material operation behind GET /study
type StudyService interface {
	GetStudyMaterial(ctx context.Context, topic, mode string) (*dto.StudyData, error)
}

// studyService implements StudyService
type studyService struct {
	lookup    domain.TopicLookup
	generator domain.ContentGenerator
}

// NewStudyService creates a new instance of studyService
func NewStudyService(lookup domain.TopicLookup, generator domain.ContentGenerator) StudyService {
	return &studyService{
		lookup:    lookup,
		generator: generator,
	}
}

// GetStudyMaterial validates the topic, gathers encyclopedia context and
// generates content. Only an empty topic (INVALID_INPUT) or an unexpected
// fault (INTERNAL_ERROR) is returned as an error; lookup and generation
// problems degrade to placeholder context and mock content.
func (s *studyService) GetStudyMaterial(ctx context.Context, topic, mode string) (data *dto.StudyData, err error) {
	l := logger.Get()

	cleanTopic := strings.TrimSpace(topic)
	if cleanTopic == "" {
		return nil, domain.NewInvalidInputError("Topic parameter is required")
	}
	studyMode := domain.ParseStudyMode(mode)

	defer func() {
		if r := recover(); r != nil {
			l.Error("Recovered panic while generating study material",
				zap.String("topic", cleanTopic),
				zap.Any("panic", r))
			data = nil
			err = domain.NewInternalError("Failed to generate study material", fmt.Errorf("panic: %v", r))
		}
	}()

	l.Info("Processing study request", zap.String("topic", cleanTopic), zap.String("mode", string(studyMode)))

	info, lookupErr := s.lookup.Fetch(ctx, cleanTopic)
	if lookupErr != nil {
		l.Warn("Topic lookup failed, continuing with placeholder",
			zap.String("topic", cleanTopic),
			zap.String("code", string(domain.CodeOf(lookupErr))),
			zap.Error(lookupErr))
		info = domain.PlaceholderTopic(cleanTopic)
	}

	gen := s.generator.Generate(ctx, info, studyMode)

	var source *string
	if info.URL != "" {
		url := info.URL
		source = &url
	}

	return &dto.StudyData{
		Topic:         info.Title,
		Summary:       gen.Content.Summary,
		Quiz:          gen.Content.Quiz,
		StudyTip:      gen.Content.StudyTip,
		Mode:          studyMode,
		Source:        source,
		ContentSource: gen.Source,
	}, nil
}
