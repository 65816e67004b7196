package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"htbnotes/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// HasLog reports whether any recorded message format contains substr.
func (m *MockLogger) HasLog(level, substr string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.Logs {
		if e.Level == level && strings.Contains(e.Format, substr) {
			return true
		}
	}
	return false
}

// MockHttp implements providers.HttpProviderInterface with canned
// responses. Responses match by URL substring; errors win over bodies.
type MockHttp struct {
	mu        sync.Mutex
	Responses map[string][]byte
	Errors    map[string]error
	Requests  []MockRequest
}

type MockRequest struct {
	URL     string
	Headers map[string]string
}

func NewMockHttp() *MockHttp {
	return &MockHttp{
		Responses: map[string][]byte{},
		Errors:    map[string]error{},
	}
}

func (m *MockHttp) Respond(urlPart, body string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Responses[urlPart] = []byte(body)
}

func (m *MockHttp) Fail(urlPart string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Errors[urlPart] = err
}

func (m *MockHttp) GetJSON(_ context.Context, url string, headers map[string]string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests = append(m.Requests, MockRequest{URL: url, Headers: headers})

	// Longest matching key wins so "/x/list" never shadows
	// "/x/list/retired". Errors beat bodies on equal length.
	bestLen := -1
	var bestBody []byte
	var bestErr error
	for part, body := range m.Responses {
		if strings.Contains(url, part) && len(part) > bestLen {
			bestLen, bestBody, bestErr = len(part), body, nil
		}
	}
	for part, err := range m.Errors {
		if strings.Contains(url, part) && len(part) >= bestLen {
			bestLen, bestBody, bestErr = len(part), nil, err
		}
	}
	if bestLen >= 0 {
		return bestBody, bestErr
	}
	return nil, fmt.Errorf("%w: no canned response for %s", providers.ErrNotFound, url)
}

// RequestCount returns how many requests hit URLs containing urlPart.
func (m *MockHttp) RequestCount(urlPart string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, r := range m.Requests {
		if strings.Contains(r.URL, urlPart) {
			n++
		}
	}
	return n
}

// MockCache implements providers.CacheProviderInterface over a map.
type MockCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{data: map[string][]byte{}}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
}
