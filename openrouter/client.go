package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
)

// DefaultBaseURL is the OpenRouter API endpoint used when no base URL
// is configured.
const DefaultBaseURL = "https://openrouter.ai/api/v1"

// defaultTimeout bounds every request; there is no retry on timeout or
// transient failure.
const defaultTimeout = 30 * time.Second

// Client owns the connection configuration for one API endpoint. It is
// safe for concurrent use; the model catalog is fetched at most once
// per client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger

	mu     sync.Mutex
	models *ModelList
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient sets a custom HTTP client. The caller owns its
// timeout configuration.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client for the given API key.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("openrouter: API key is required")
	}

	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// ChatCompletion sends the request to the chat-completions endpoint
// and returns the choices of the response. The call blocks until the
// full response body is received; there is no streaming and no retry.
func (c *Client) ChatCompletion(ctx context.Context, req *ChatRequest) ([]Choice, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	c.logger.Debug("sending chat completion request",
		"model", req.Model(),
		"messages", len(req.Messages()),
		"tools", len(req.Tools()))

	respBody, err := c.post(ctx, "/chat/completions", body)
	if err != nil {
		return nil, err
	}

	var resp ChatCompletionResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, &DecodeError{Cause: err}
	}

	c.logger.Debug("chat completion finished",
		"id", resp.ID,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens)

	return resp.Choices, nil
}

// Models returns the model catalog, fetching it on first use and
// caching it for the client's lifetime. A failed fetch is not cached;
// the next call retries.
func (c *Client) Models(ctx context.Context) (*ModelList, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.models != nil {
		return c.models, nil
	}

	respBody, err := c.get(ctx, "/models")
	if err != nil {
		return nil, err
	}

	var models ModelList
	if err := json.Unmarshal(respBody, &models); err != nil {
		return nil, &DecodeError{Cause: err}
	}

	c.logger.Debug("fetched model catalog", "models", len(models.Models))

	c.models = &models
	return c.models, nil
}

func (c *Client) post(ctx context.Context, path string, body []byte) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	return c.do(httpReq)
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	return c.do(httpReq)
}

func (c *Client) do(httpReq *http.Request) ([]byte, error) {
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, c.statusError(httpResp.StatusCode, respBody)
	}

	return respBody, nil
}

// statusError maps a non-success status to an error. 400 carries the
// body verbatim since the API reports invalid schemas and tool
// definitions there; other statuses only surface the code.
func (c *Client) statusError(statusCode int, body []byte) error {
	if statusCode == http.StatusBadRequest {
		return &BadRequestError{Body: string(body)}
	}

	c.logger.Error("request failed",
		"status", statusCode,
		"body", string(body))

	return &StatusError{StatusCode: statusCode}
}
