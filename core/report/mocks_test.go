package report

import (
	"context"
	"io"
	"strings"
	"sync"

	"pakgov-intel/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	mu       sync.Mutex
	calls    int
	postFunc func(ctx context.Context, url string, body io.Reader, headers map[string]string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Post(ctx context.Context, url string, body io.Reader, headers map[string]string) (interfaces.Response, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.postFunc != nil {
		return m.postFunc(ctx, url, body, headers)
	}
	return nil, nil
}

func (m *mockHTTPClient) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

// logEntry is one captured log call
type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

// mockLogger records log calls
type mockLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (m *mockLogger) record(level, msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.record("debug", msg, fields) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.record("info", msg, fields) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.record("warn", msg, fields) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.record("error", msg, fields) }

func (m *mockLogger) count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.entries {
		if e.level == level {
			n++
		}
	}
	return n
}
