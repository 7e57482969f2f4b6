package wikipedia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"study-helper/internal/config"
	"study-helper/internal/domain"
	"study-helper/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Client implements domain.TopicLookup against the Wikipedia REST summary API.
type Client struct {
	baseURL   string
	userAgent string
	timeout   time.Duration
}

// NewClient creates a lookup client from configuration.
func NewClient(cfg config.WikipediaConfig) *Client {
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		timeout:   cfg.Timeout,
	}
}

type summaryResponse struct {
	Title       string `json:"title"`
	Extract     string `json:"extract"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

// maxRedirects bounds how many redirects (e.g. "USA" to "United_States") a
// lookup follows.
const maxRedirects = 5

// Fetch returns the page summary for topic. It fails with a TOPIC_NOT_FOUND
// DomainError when the page does not exist or has no extract, and with
// UPSTREAM_ERROR for any other failure.
func (c *Client) Fetch(ctx context.Context, topic string) (domain.TopicInfo, error) {
	endpoint := c.baseURL + "/" + url.PathEscape(topic)

	var (
		status int
		body   []byte
	)
	for redirects := 0; ; redirects++ {
		if err := ctx.Err(); err != nil {
			return domain.TopicInfo{}, domain.NewUpstreamError(err)
		}
		logger.Get().Debug("Fetching topic summary", zap.String("topic", topic), zap.String("url", endpoint))

		var (
			location string
			err      error
		)
		status, body, location, err = c.get(endpoint)
		if err != nil {
			return domain.TopicInfo{}, domain.NewUpstreamError(err)
		}
		if !isRedirect(status) {
			break
		}
		if redirects == maxRedirects {
			return domain.TopicInfo{}, domain.NewUpstreamError(fmt.Errorf("stopped after %d redirects", maxRedirects))
		}
		if endpoint, err = resolveRedirect(endpoint, location); err != nil {
			return domain.TopicInfo{}, domain.NewUpstreamError(err)
		}
	}

	switch {
	case status == fiber.StatusNotFound:
		return domain.TopicInfo{}, domain.NewTopicNotFoundError(topic)
	case status != fiber.StatusOK:
		return domain.TopicInfo{}, domain.NewUpstreamError(fmt.Errorf("unexpected status %d", status))
	}

	var summary summaryResponse
	if err := json.Unmarshal(body, &summary); err != nil {
		return domain.TopicInfo{}, domain.NewUpstreamError(fmt.Errorf("decode summary: %w", err))
	}
	if summary.Extract == "" {
		return domain.TopicInfo{}, domain.NewError(domain.ErrTopicNotFound, "No content found", nil)
	}

	title := summary.Title
	if title == "" {
		title = topic
	}
	return domain.TopicInfo{
		Title:   title,
		Extract: summary.Extract,
		URL:     summary.ContentURLs.Desktop.Page,
	}, nil
}

// get performs one GET without following redirects. The escaped path is sent
// as is so a topic like "AC/DC" stays a single segment.
func (c *Client) get(endpoint string) (int, []byte, string, error) {
	agent := fiber.Get(endpoint)
	if agent.HostClient != nil {
		agent.HostClient.DisablePathNormalizing = true
	}
	agent.UserAgent(c.userAgent)
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if c.timeout > 0 {
		agent.Timeout(c.timeout)
	}

	resp := fiber.AcquireResponse()
	defer fiber.ReleaseResponse(resp)
	agent.SetResponse(resp)

	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return 0, nil, "", errors.Join(errs...)
	}
	return status, body, string(resp.Header.Peek(fiber.HeaderLocation)), nil
}

func isRedirect(status int) bool {
	switch status {
	case fiber.StatusMovedPermanently, fiber.StatusFound, fiber.StatusSeeOther,
		fiber.StatusTemporaryRedirect, fiber.StatusPermanentRedirect:
		return true
	}
	return false
}

func resolveRedirect(endpoint, location string) (string, error) {
	if location == "" {
		return "", errors.New("redirect without location")
	}
	base, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint: %w", err)
	}
	ref, err := url.Parse(location)
	if err != nil {
		return "", fmt.Errorf("parse redirect location: %w", err)
	}
	return base.ResolveReference(ref).String(), nil
}

var _ domain.TopicLookup = (*Client)(nil)
