package rickmorty

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/turkosaurus/multiverse/internal/types"
)

// DefaultBaseURL is the public Rick and Morty API root.
const DefaultBaseURL = "https://rickandmortyapi.com/api"

// maxErrorBody caps how much of a failed response body is kept.
const maxErrorBody = 4 << 10

// Fetcher is the read-only character API used by the UI.
type Fetcher interface {
	FetchPage(ctx context.Context, page int) (*types.CharacterPage, error)
	FetchByID(ctx context.Context, id int) (*types.Character, error)
}

// Client calls the character endpoints over HTTP. It holds no mutable
// state and is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets a per-request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.http
		hc.Timeout = d
		c.http = &hc
	}
}

// NewClient creates a client rooted at baseURL (DefaultBaseURL if empty).
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchPage fetches one page of characters. page is sent verbatim.
func (c *Client) FetchPage(ctx context.Context, page int) (*types.CharacterPage, error) {
	endpoint := fmt.Sprintf("%s/character?page=%d", c.baseURL, page)
	var response types.CharacterPage
	if err := c.get(ctx, endpoint, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// FetchByID fetches a single character.
func (c *Client) FetchByID(ctx context.Context, id int) (*types.Character, error) {
	endpoint := fmt.Sprintf("%s/character/%d", c.baseURL, id)
	var character types.Character
	if err := c.get(ctx, endpoint, &character); err != nil {
		return nil, err
	}
	return &character, nil
}

// get issues a single GET and decodes a 2xx JSON body into v.
func (c *Client) get(ctx context.Context, endpoint string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		slog.Debug("api request failed",
			"url", endpoint,
			"duration", time.Since(start),
			"error", err,
		)
		return &HTTPError{
			StatusText: "Unknown Error",
			URL:        endpoint,
			Err:        err,
		}
	}
	defer resp.Body.Close()

	slog.Debug("api request",
		"method", req.Method,
		"url", endpoint,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &HTTPError{
			StatusCode: resp.StatusCode,
			StatusText: statusText(resp),
			URL:        endpoint,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response from %s: %w", endpoint, err)
	}
	return nil
}

// statusText returns the reason phrase sent by the server, falling back to
// the standard text for the code.
func statusText(resp *http.Response) string {
	text := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))
	text = strings.TrimSpace(text)
	if text == "" {
		return http.StatusText(resp.StatusCode)
	}
	return text
}
