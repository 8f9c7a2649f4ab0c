package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/biothings/mygene-mcp/log"
	"github.com/morikuni/failure/v2"
)

const (
	// DefaultBaseURL is the public MyGene.info v3 endpoint
	DefaultBaseURL = "https://mygene.info/v3"

	// DefaultTimeout bounds a single upstream request
	DefaultTimeout = 30 * time.Second

	// maxErrorBodyLen limits upstream error bodies carried in error context
	maxErrorBodyLen = 512
)

// Client is an HTTP client for the MyGene.info API
type Client struct {
	baseURL string
	httpc   *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL overrides the MyGene.info endpoint, e.g. for a mirror or a test server
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithTimeout overrides the request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpc.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client entirely
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpc = h
	}
}

// NewClient creates a MyGene.info client with request/response debug logging
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpc: &http.Client{
			Timeout:   DefaultTimeout,
			Transport: log.Transport(),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured endpoint
func (c *Client) BaseURL() string {
	return c.baseURL
}

// AnnotationURL returns the browser-viewable annotation URL for a gene id
func (c *Client) AnnotationURL(geneID string) string {
	return fmt.Sprintf("%s/gene/%s", c.baseURL, url.PathEscape(geneID))
}

// Get issues a GET request against an endpoint (e.g. "query", "gene/1017")
// and decodes the JSON response into out
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values, out any) error {
	u := fmt.Sprintf("%s/%s", c.baseURL, endpoint)
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return failure.Wrap(err)
	}

	return c.do(req, endpoint, out)
}

// Post issues a POST request with a JSON body and decodes the JSON response into out
func (c *Client) Post(ctx context.Context, endpoint string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return failure.Wrap(err)
	}

	u := fmt.Sprintf("%s/%s", c.baseURL, endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(data))
	if err != nil {
		return failure.Wrap(err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, endpoint, out)
}

func (c *Client) do(req *http.Request, endpoint string, out any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return failure.New(ErrRequestFailed,
			failure.Message("Request to MyGene.info failed"),
			failure.Context{
				"endpoint": endpoint,
				"cause":    err.Error(),
			},
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
		return failure.New(ErrUpstreamStatus,
			failure.Message(fmt.Sprintf("MyGene.info returned HTTP %d", resp.StatusCode)),
			failure.Context{
				"endpoint": endpoint,
				"status":   resp.Status,
				"body":     string(body),
			},
		)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return failure.New(ErrDecodeResponse,
			failure.Message("Failed to decode MyGene.info response"),
			failure.Context{
				"endpoint": endpoint,
				"cause":    err.Error(),
			},
		)
	}

	return nil
}
