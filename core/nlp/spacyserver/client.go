// Package spacyserver implements the nlp.Parser capability against a spaCy
// sidecar service exposing a single POST /parse endpoint.
package spacyserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/srinithi0406/ISL/core/nlp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type ClientOption func(*Client)

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = httpClient }
}

// NewClient builds a parser client. If baseURL is empty, ISL_PARSER_URL is
// consulted.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	if baseURL == "" {
		var ok bool
		baseURL, ok = os.LookupEnv("ISL_PARSER_URL")
		if !ok {
			return nil, fmt.Errorf("parser url not found")
		}
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

type parseRequest struct {
	Text string `json:"text"`
}

type parseResponse struct {
	Tokens []nlp.ParsedToken `json:"tokens"`
}

// Parse sends the sentence to the sidecar and returns its dependency parse.
func (c *Client) Parse(ctx context.Context, sentence string) ([]nlp.ParsedToken, error) {
	body, err := json.Marshal(parseRequest{Text: sentence})
	if err != nil {
		return nil, fmt.Errorf("failed to encode parse request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/parse", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build parse request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach parser service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("parser service returned %d: %s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	var parsed parseResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode parser response: %w", err)
	}

	return parsed.Tokens, nil
}
