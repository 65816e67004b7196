package providers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"htbnotes/internal/structures"

	json "github.com/goccy/go-json"
)

// Transport-level failure classes. Callers branch on these with
// errors.Is; the wrapped message carries the upstream detail.
var (
	ErrAuthFailed       = errors.New("authentication failed")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("not found")
	ErrRateLimited      = errors.New("rate limited")
	ErrServer           = errors.New("server error")
	ErrNetwork          = errors.New("network error")
)

type HttpProviderInterface interface {
	GetJSON(ctx context.Context, url string, headers map[string]string) ([]byte, error)
}

type HttpProvider struct {
	client  *http.Client
	headers map[string]string
	logger  Logger
}

func NewHttpProvider(conf *structures.Config, logger Logger) HttpProviderInterface {
	return &HttpProvider{
		client: &http.Client{Timeout: conf.API.Timeout},
		headers: map[string]string{
			"Accept":     "application/json",
			"User-Agent": conf.API.UserAgent,
		},
		logger: logger,
	}
}

// GetJSON performs a GET and returns the response body. Default
// headers apply first; per-call headers override on key collision.
func (p *HttpProvider) GetJSON(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range p.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	p.logger.Debugf(TypeHttp, "GET %s", url)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		return body, nil
	}

	p.logger.Warnf(TypeHttp, "GET %s -> %d", url, resp.StatusCode)
	return nil, statusError(resp.StatusCode, body)
}

// statusError maps an HTTP status onto a failure class, preferring the
// upstream "message" field as detail text when the body carries one.
func statusError(status int, body []byte) error {
	detail := ""
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		detail = payload.Message
	}

	var class error
	switch {
	case status == http.StatusUnauthorized:
		class = ErrAuthFailed
	case status == http.StatusForbidden:
		class = ErrPermissionDenied
	case status == http.StatusNotFound:
		class = ErrNotFound
	case status == http.StatusTooManyRequests:
		class = ErrRateLimited
	case status >= 500:
		class = ErrServer
	default:
		class = ErrNetwork
	}

	if detail != "" {
		return fmt.Errorf("[%d] %w: %s", status, class, detail)
	}
	return fmt.Errorf("[%d] %w", status, class)
}
