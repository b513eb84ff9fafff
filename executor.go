package twx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/sethvargo/go-retry"
	"golang.org/x/time/rate"
)

const (
	// DefaultTimeout is the default HTTP timeout used by HTTPExecutor.
	DefaultTimeout = 10 * time.Second

	// Version is sent in the User-Agent header.
	Version = "0.3.0"

	maxResponseSize = 10 * 1024 * 1024
)

// Params are request parameters. Values are already serialized.
type Params map[string]string

// Request describes one call handed to an Executor.
type Request struct {
	Method string
	URL    string
	Params Params
}

func (r *Request) validate() error {
	if r.URL == "" {
		return &ArgumentError{Param: "url"}
	}
	for k := range r.Params {
		if k == "" {
			return &ArgumentError{Param: "params", Reason: "must not contain an empty key"}
		}
	}
	return nil
}

func (r *Request) encodedParams() string {
	v := make(url.Values, len(r.Params))
	for k, val := range r.Params {
		v.Set(k, val)
	}
	return v.Encode()
}

// Executor performs the network call for a Request and returns the raw
// response payload. Parsing is left to the caller.
type Executor interface {
	Execute(ctx context.Context, req *Request) ([]byte, error)
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, req *Request) ([]byte, error)

func (f ExecutorFunc) Execute(ctx context.Context, req *Request) ([]byte, error) {
	return f(ctx, req)
}

// HTTPExecutor is the net/http Executor. It owns authentication, retries
// and client-side rate limiting.
type HTTPExecutor struct {
	httpClient  *http.Client
	bearerToken string
	userAgent   string
	limiter     *rate.Limiter
	maxRetries  uint64
	backoffBase time.Duration
	logger      *slog.Logger
}

// ExecutorOption configures an HTTPExecutor.
type ExecutorOption func(*HTTPExecutor)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) ExecutorOption {
	return func(e *HTTPExecutor) {
		if hc != nil {
			e.httpClient = hc
		}
	}
}

// WithTimeout sets the per-attempt HTTP timeout.
func WithTimeout(d time.Duration) ExecutorOption {
	return func(e *HTTPExecutor) {
		if d > 0 {
			e.httpClient.Timeout = d
		}
	}
}

// WithBearerToken sends an Authorization: Bearer header on every request.
func WithBearerToken(token string) ExecutorOption {
	return func(e *HTTPExecutor) { e.bearerToken = token }
}

// WithRetry retries transport failures, 429 and 5xx responses up to n
// times with exponential backoff starting at base.
func WithRetry(n uint64, base time.Duration) ExecutorOption {
	return func(e *HTTPExecutor) {
		e.maxRetries = n
		if base > 0 {
			e.backoffBase = base
		}
	}
}

// WithRateLimit caps outgoing requests at perMinute. Zero disables the limit.
func WithRateLimit(perMinute int) ExecutorOption {
	return func(e *HTTPExecutor) {
		if perMinute <= 0 {
			e.limiter = nil
			return
		}
		e.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1)
	}
}

// WithLogger sets the logger used for per-request debug records.
func WithLogger(l *slog.Logger) ExecutorOption {
	return func(e *HTTPExecutor) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewHTTPExecutor returns an HTTPExecutor with DefaultTimeout, no retries
// and no rate limit unless opts say otherwise.
func NewHTTPExecutor(opts ...ExecutorOption) *HTTPExecutor {
	e := &HTTPExecutor{
		httpClient:  &http.Client{Timeout: DefaultTimeout},
		userAgent:   "twx/" + Version,
		backoffBase: 200 * time.Millisecond,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute sends req and returns the response body of a 2xx response.
// Non-2xx responses become *APIError.
func (e *HTTPExecutor) Execute(ctx context.Context, req *Request) ([]byte, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	if e.maxRetries == 0 {
		return e.attempt(ctx, req)
	}

	var out []byte
	backoff := retry.WithMaxRetries(e.maxRetries, retry.NewExponential(e.backoffBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		data, err := e.attempt(ctx, req)
		if err != nil {
			if retryable(err) {
				e.logger.DebugContext(ctx, "retrying request", "url", req.URL, "error", err)
				return retry.RetryableError(err)
			}
			return err
		}
		out = data
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (e *HTTPExecutor) attempt(ctx context.Context, req *Request) ([]byte, error) {
	if e.limiter != nil {
		if err := e.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	httpReq, err := e.newHTTPRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := e.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	limited := io.LimitReader(resp.Body, maxResponseSize)
	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, err
	}
	e.logger.DebugContext(ctx, "request",
		"method", httpReq.Method,
		"url", req.URL,
		"status", resp.StatusCode,
		"rate_limit_remaining", resp.Header.Get("X-Rate-Limit-Remaining"),
		"elapsed", time.Since(start),
	)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: string(data)}
		var env errorEnvelope
		if json.Unmarshal(data, &env) == nil {
			apiErr.Errors = env.Errors
		}
		return nil, apiErr
	}
	return data, nil
}

func (e *HTTPExecutor) newHTTPRequest(ctx context.Context, req *Request) (*http.Request, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	target := req.URL
	var body io.Reader
	encoded := req.encodedParams()
	switch method {
	case http.MethodGet, http.MethodDelete:
		if encoded != "" {
			sep := "?"
			if strings.Contains(target, "?") {
				sep = "&"
			}
			target += sep + encoded
		}
	default:
		body = strings.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", e.userAgent)
	if e.bearerToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+e.bearerToken)
	}
	return httpReq, nil
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	code, ok := HTTPStatusCode(err)
	if !ok {
		// Transport failure.
		return true
	}
	return code == http.StatusTooManyRequests || code >= 500
}
