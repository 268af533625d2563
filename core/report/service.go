// ABOUTME: Report service requests a briefing for a topic from the hosted model API
// ABOUTME: Sends one grounded generateContent call and normalizes text and citations

package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"pakgov-intel/core/domain"
	coreerrors "pakgov-intel/core/errors"
	"pakgov-intel/core/interfaces"
)

const (
	// DefaultModel is the model used when none is configured
	DefaultModel = "gemini-2.5-flash"

	// DefaultBaseURL is the public endpoint of the model API
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	apiName          = "gemini"
	apiKeyHeader     = "x-goog-api-key"
	maxResponseBytes = 8 << 20
)

// Config carries the credential and model settings for the service
type Config struct {
	// APIKey is the model API credential. Empty fails every request with
	// a ConfigurationError before anything is sent.
	APIKey string

	// Model is the model name; DefaultModel when empty
	Model string

	// BaseURL is the API root; DefaultBaseURL when empty
	BaseURL string

	// ThinkingBudget caps model thinking tokens; 0 disables thinking
	ThinkingBudget int
}

// ReportService turns topics into search results
type ReportService struct {
	cfg  Config
	deps interfaces.Dependencies
}

// NewReportService creates a new report service instance
func NewReportService(cfg Config, deps interfaces.Dependencies) *ReportService {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &ReportService{
		cfg:  cfg,
		deps: deps,
	}
}

// Configured reports whether a credential is present
func (s *ReportService) Configured() bool {
	return strings.TrimSpace(s.cfg.APIKey) != ""
}

// validateTopic trims topic and rejects it when nothing is left
func (s *ReportService) validateTopic(topic string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", &coreerrors.ValidationError{Field: "topic", Message: "topic cannot be empty"}
	}
	return topic, nil
}

func (s *ReportService) endpoint() string {
	return fmt.Sprintf("%s/models/%s:generateContent",
		strings.TrimRight(s.cfg.BaseURL, "/"), url.PathEscape(s.cfg.Model))
}

// RequestReport sends exactly one request for topic. It fails with a
// ConfigurationError when no credential is set, a ValidationError for a
// blank topic, and an UpstreamError for any transport or response failure.
func (s *ReportService) RequestReport(ctx context.Context, topic string) (*domain.SearchResult, error) {
	if !s.Configured() {
		return nil, &coreerrors.ConfigurationError{Setting: "API_KEY", Message: "API Key is missing."}
	}

	topic, err := s.validateTopic(topic)
	if err != nil {
		return nil, err
	}

	if s.deps.HTTPClient == nil {
		return nil, &coreerrors.ConfigurationError{Setting: "http_client", Message: "HTTP client not configured"}
	}

	start := time.Now()
	s.logInfo("Requesting report", map[string]interface{}{
		"model":        s.cfg.Model,
		"topic_length": len(topic),
	})

	payload, err := json.Marshal(newGenerateContentRequest(topic, s.cfg.ThinkingBudget))
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	decoded, err := s.generate(ctx, payload)
	if err != nil {
		s.logError("Report request failed", map[string]interface{}{
			"model":    s.cfg.Model,
			"duration": time.Since(start).String(),
			"error":    err.Error(),
		})
		return nil, err
	}

	result := s.normalize(decoded)

	s.logInfo("Report generated", map[string]interface{}{
		"model":       s.cfg.Model,
		"sources":     len(result.Sources),
		"report_size": len(result.MarkdownReport),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return result, nil
}

// generate performs the HTTP call and decodes a successful response
func (s *ReportService) generate(ctx context.Context, payload []byte) (*generateContentResponse, error) {
	resp, err := s.deps.HTTPClient.Post(ctx, s.endpoint(), bytes.NewReader(payload), map[string]string{
		apiKeyHeader: s.cfg.APIKey,
	})
	if err != nil {
		return nil, &coreerrors.UpstreamError{Op: "generateContent", Err: err}
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body(), maxResponseBytes))
	if err != nil {
		return nil, &coreerrors.UpstreamError{Op: "generateContent", Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &coreerrors.UpstreamError{Op: "generateContent", Err: &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    apiErrorMessage(resp.StatusCode(), body),
			API:        apiName,
		}}
	}

	var decoded generateContentResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &coreerrors.UpstreamError{Op: "generateContent", Err: fmt.Errorf("failed to parse response: %w", err)}
	}

	return &decoded, nil
}

// normalize builds the result record from a decoded response
func (s *ReportService) normalize(resp *generateContentResponse) *domain.SearchResult {
	text := resp.text()
	if text == "" {
		text = domain.NoReportText
	}

	chunks := resp.groundingChunks()
	sources := make([]domain.SourceItem, 0, len(chunks))
	for _, chunk := range chunks {
		if chunk.Web == nil {
			continue
		}
		item, err := parseCitation(*chunk.Web)
		if err != nil {
			s.logWarn("Skipping malformed citation", map[string]interface{}{
				"title": chunk.Web.Title,
				"error": err.Error(),
			})
			continue
		}
		sources = append(sources, item)
	}

	unique := dedupeSources(sources)
	if dropped := len(sources) - len(unique); dropped > 0 {
		s.logDebug("Dropped duplicate citations", map[string]interface{}{
			"dropped": dropped,
		})
	}

	return &domain.SearchResult{
		MarkdownReport: text,
		Sources:        unique,
	}
}

// apiErrorMessage extracts the message of a JSON error body, falling back
// to the status text
func apiErrorMessage(status int, body []byte) string {
	var apiErr apiErrorBody
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return apiErr.Error.Message
	}
	if trimmed := strings.TrimSpace(string(body)); trimmed != "" && len(trimmed) <= 200 {
		return trimmed
	}
	return fmt.Sprintf("unexpected status %d", status)
}

func (s *ReportService) logDebug(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, fields)
	}
}

func (s *ReportService) logInfo(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Info(msg, fields)
	}
}

func (s *ReportService) logWarn(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}

func (s *ReportService) logError(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Error(msg, fields)
	}
}
