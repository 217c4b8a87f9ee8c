// Package openai holds the transcription, chat-completion and speech
// clients for the OpenAI HTTP API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"hearthly-api/internal/apperror"
)

const defaultBaseURL = "https://api.openai.com"

// maxErrorBody caps how much of a failed response is kept for logs.
const maxErrorBody = 4 << 10

// httpDoHook is swapped in tests.
var httpDoHook = func(c *http.Client, req *http.Request) (*http.Response, error) {
	return c.Do(req)
}

type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	// Timeout bounds every call. Zero means no per-call deadline.
	Timeout time.Duration
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		Timeout: timeout,
	}
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.Timeout > 0 {
		return context.WithTimeout(ctx, c.Timeout)
	}
	return context.WithCancel(ctx)
}

// do sends req and returns the body of a 2xx response. Non-2xx responses
// become UpstreamError and network failures TransportError.
func (c *Client) do(service string, req *http.Request) ([]byte, error) {
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpDoHook(httpClient, req)
	if err != nil {
		return nil, apperror.Transport(service, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, apperror.Upstream(service, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.Transport(service, fmt.Errorf("read body: %w", err))
	}
	return body, nil
}

func (c *Client) postJSON(ctx context.Context, service, path string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", service, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", service, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(service, req)
}
