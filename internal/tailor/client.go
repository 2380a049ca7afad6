package tailor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"resumetailor/internal/services"
	"resumetailor/internal/submission"
)

const (
	userAgent          = "resumetailor/0.1.0"
	defaultHTTPTimeout = 180 * time.Second

	// errorBodyLimit bounds how much of a failure body is read for the
	// structured error message.
	errorBodyLimit = 8 << 10
)

// FallbackErrorMessage is shown when a failure carries no structured message.
const FallbackErrorMessage = "Failed to generate resume. Please try again."

// Config captures the runtime settings required to talk to the tailoring
// service.
type Config struct {
	BaseURL        string
	TimeoutSeconds int
}

// Client wraps the remote generation endpoint.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient constructs a tailoring client using the supplied configuration.
func NewClient(cfg Config, opts ...Option) *Client {
	timeout := defaultHTTPTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	client := &Client{
		cfg: Config{
			BaseURL:        strings.TrimSpace(cfg.BaseURL),
			TimeoutSeconds: cfg.TimeoutSeconds,
		},
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return client
}

// Result is a successful generation response with its parsed metadata.
type Result struct {
	Data          []byte
	SuggestedName string
	AddedKeywords []string
}

// RemoteError is a non-success response from the tailoring service. Message
// holds the structured error field when the body carried one.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("tailor request: http %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("tailor request: http %d", e.StatusCode)
}

// UserMessage normalizes any submit failure into the single string shown in
// the error state: the remote structured message when present, otherwise a
// generic fallback.
func UserMessage(err error) string {
	var remote *RemoteError
	if errors.As(err, &remote) && strings.TrimSpace(remote.Message) != "" {
		return remote.Message
	}
	return FallbackErrorMessage
}

// Generate issues the long-running generation request and returns the binary
// artifact with its header metadata. Missing or malformed metadata headers
// degrade to defaults rather than failing the operation.
func (c *Client) Generate(ctx context.Context, payload *submission.Payload) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(payload.Body))
	if err != nil {
		return nil, services.Wrap(services.ErrTransport, "tailor", "generate", "build request", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", payload.ContentType)
	if rid, ok := services.RequestIDFromContext(ctx); ok {
		req.Header.Set("X-Request-ID", rid)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, services.Wrap(services.ErrTransport, "tailor", "generate", "send request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.remoteFailure(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, services.Wrap(services.ErrTransport, "tailor", "generate", "read response body", err)
	}

	return &Result{
		Data:          data,
		SuggestedName: parseFilename(resp.Header.Get("Content-Disposition")),
		AddedKeywords: parseKeywords(resp.Header.Get(keywordsHeader)),
	}, nil
}

func (c *Client) remoteFailure(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
	remote := &RemoteError{StatusCode: resp.StatusCode}

	var parsed struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		remote.Message = strings.TrimSpace(parsed.Error)
	}
	return services.Wrap(services.ErrRemote, "tailor", "generate", "", remote)
}
