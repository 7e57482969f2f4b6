package service

import (
	"context"
	"time"

	"study-helper/internal/domain"
	"study-helper/internal/logger"

	"go.uber.org/zap"
)

// rawLogLimit caps how much of a rejected provider response is logged.
const rawLogLimit = 200

var errNoProvider = domain.NewGenerationError("no AI provider configured", nil)

// contentGenerator implements domain.ContentGenerator
type contentGenerator struct {
	completer domain.TextCompleter
	timeout   time.Duration
}

// NewContentGenerator creates a generator backed by completer. A nil completer
// means no provider is configured and every call yields mock content.
func NewContentGenerator(completer domain.TextCompleter, timeout time.Duration) domain.ContentGenerator {
	return &contentGenerator{
		completer: completer,
		timeout:   timeout,
	}
}

// Generate implements domain.ContentGenerator
func (g *contentGenerator) Generate(ctx context.Context, info domain.TopicInfo, mode domain.StudyMode) domain.Generation {
	if g.completer == nil {
		return g.fallback(info, mode, "", errNoProvider)
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	raw, err := g.completer.Complete(ctx, BuildPrompt(info, mode))
	if err != nil {
		return g.fallback(info, mode, raw, domain.NewGenerationError("provider request failed", err))
	}

	content, err := ParseStudyContent(raw, mode)
	if err != nil {
		return g.fallback(info, mode, raw, err)
	}

	logger.Get().Debug("Generated study content",
		zap.String("provider", g.completer.Name()),
		zap.String("topic", info.Title),
		zap.String("mode", string(mode)))
	return domain.Generation{Content: content, Source: domain.SourceAI}
}

func (g *contentGenerator) fallback(info domain.TopicInfo, mode domain.StudyMode, raw string, cause error) domain.Generation {
	fields := []zap.Field{
		zap.String("topic", info.Title),
		zap.String("mode", string(mode)),
		zap.Error(cause),
	}
	if g.completer != nil {
		fields = append(fields, zap.String("provider", g.completer.Name()))
	}
	if raw != "" {
		fields = append(fields, zap.String("raw_response", truncateRunes(raw, rawLogLimit)))
	}
	logger.Get().Warn("Using mock study content", fields...)

	return domain.Generation{
		Content:  MockContent(info.Title, mode),
		Source:   domain.SourceMock,
		Fallback: cause,
	}
}

// truncateRunes shortens s to at most n runes without splitting a character.
func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
