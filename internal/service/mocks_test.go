package service

import (
	"context"

	"study-helper/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockTopicLookup ---
type MockTopicLookup struct {
	mock.Mock
}

func (m *MockTopicLookup) Fetch(ctx context.Context, topic string) (domain.TopicInfo, error) {
	args := m.Called(ctx, topic)
	return args.Get(0).(domain.TopicInfo), args.Error(1)
}

// --- MockTextCompleter ---
type MockTextCompleter struct {
	mock.Mock
}

func (m *MockTextCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockTextCompleter) Name() string {
	return "mock-provider"
}

// --- MockContentGenerator ---
type MockContentGenerator struct {
	mock.Mock
}

func (m *MockContentGenerator) Generate(ctx context.Context, info domain.TopicInfo, mode domain.StudyMode) domain.Generation {
	args := m.Called(ctx, info, mode)
	return args.Get(0).(domain.Generation)
}
