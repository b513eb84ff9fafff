package twx

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// DefaultBaseURL is the REST v1.1 root every resource path is appended to.
const DefaultBaseURL = "https://api.twitter.com/1.1/"

// Client is the long-lived handle shared by every resource operation.
//
// It holds the API base URL and the Executor that performs network calls.
// A Client is safe for concurrent use when its Executor is; HTTPExecutor is.
type Client struct {
	baseURL  string
	executor Executor
}

// New creates a client that talks to baseURL through an HTTPExecutor
// configured with opts. An empty baseURL selects DefaultBaseURL.
func New(baseURL string, opts ...ExecutorOption) (*Client, error) {
	return NewWithExecutor(baseURL, NewHTTPExecutor(opts...))
}

// NewWithBearerToken creates a client that sends token as an OAuth2 app-only
// bearer credential.
func NewWithBearerToken(baseURL, token string, opts ...ExecutorOption) (*Client, error) {
	opts = append([]ExecutorOption{WithBearerToken(token)}, opts...)
	return New(baseURL, opts...)
}

// NewWithExecutor creates a client around an arbitrary Executor.
func NewWithExecutor(baseURL string, exec Executor) (*Client, error) {
	if exec == nil {
		return nil, fmt.Errorf("executor must not be nil")
	}
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{baseURL: normalized, executor: exec}, nil
}

// BaseURL returns the normalized base URL, always ending in "/".
func (c *Client) BaseURL() string { return c.baseURL }

// Executor returns the executor requests are delegated to.
func (c *Client) Executor() Executor { return c.executor }

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultBaseURL, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("base url scheme must be http or https, got %q", raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid base url %q", raw)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return "", fmt.Errorf("base url must not carry a query or fragment, got %q", raw)
	}
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	return raw, nil
}

// execute dispatches one request and parses the raw payload exactly once.
func execute[T ActionResult](ctx context.Context, c *Client, req *Request, action UserAction) (T, error) {
	var zero T
	if err := req.validate(); err != nil {
		return zero, err
	}
	payload, err := c.executor.Execute(ctx, req)
	if err != nil {
		return zero, err
	}
	var proc BlocksProcessor
	res, err := proc.ProcessActionResult(payload, action)
	if err != nil {
		return zero, err
	}
	out, ok := res.(T)
	if !ok {
		return zero, &ParseError{Action: action, Err: fmt.Errorf("processor returned %T", res)}
	}
	return out, nil
}
