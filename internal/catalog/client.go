package catalog

//go:generate mockgen -source=client.go -destination=mocks/fetcher.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
)

const defaultBaseURL = "https://www.hotstar.com"
const defaultTimeout = 30 * time.Second

// Fetcher performs one catalog lookup.
type Fetcher interface {
	Fetch(ctx context.Context) (*Summary, error)
}

// Client is a catalog space API client.
type Client struct {
	baseURL    string
	page       string
	space      string
	query      url.Values
	headers    map[string]string
	strategy   Strategy
	timeout    time.Duration
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client. Its timeout is left as is.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHeaders sets request headers. Values are sent verbatim.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		for k, v := range headers {
			c.headers[k] = v
		}
	}
}

// WithQuery sets query parameters.
func WithQuery(params map[string]string) Option {
	return func(c *Client) {
		for k, v := range params {
			c.query.Set(k, v)
		}
	}
}

// WithStrategy sets how the summary is picked from the tray items.
func WithStrategy(s Strategy) Option {
	return func(c *Client) {
		c.strategy = s
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "catalog")
	}
}

// NewClient creates a client for the given page and space.
func NewClient(page, space string, opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		page:    page,
		space:   space,
		query:   url.Values{},
		headers: make(map[string]string),
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}
	return c
}

func (c *Client) endpoint() string {
	u := fmt.Sprintf("%s/api/internal/bff/v2/pages/%s/spaces/%s",
		c.baseURL, url.PathEscape(c.page), url.PathEscape(c.space))
	if len(c.query) > 0 {
		u += "?" + c.query.Encode()
	}
	return u
}

// Fetch performs the lookup. Every failure is returned as *Error.
func (c *Client) Fetch(ctx context.Context) (*Summary, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(), nil)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("Network error: %v", err), Err: err}
	}
	for name, value := range c.headers {
		req.Header.Set(name, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.log != nil {
			c.log.Error("catalog request failed", "error", err)
		}
		return nil, &Error{Message: fmt.Sprintf("Network error: %v", err), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if c.log != nil {
			c.log.Debug("catalog request rejected", "status", resp.StatusCode)
		}
		return nil, &Error{Message: MsgRequestFailed, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("Network error: %v", err), Err: err}
	}
	if len(body) == 0 {
		if c.log != nil {
			c.log.Debug("catalog response body is empty")
		}
		return nil, &Error{Message: MsgEmptyBody}
	}

	var r Response
	if err := json.Unmarshal(body, &r); err != nil {
		if c.log != nil {
			c.log.Error("catalog response parsing failed", "error", err)
		}
		return nil, &Error{Message: fmt.Sprintf("Error parsing response: %v", err), Err: err}
	}

	summary := Summarize(&r, c.strategy)

	if c.log != nil {
		c.log.Debug("fetched catalog", "title", summary.Title, "items", len(r.Items()), "duration_ms", time.Since(start).Milliseconds())
	}

	return &summary, nil
}
