// Package client is a typed Go client for the catalog REST API.
//
//	c := client.New("http://localhost:3000")
//	authors, err := c.Authors().List(ctx)
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultAPIPrefix = "/api"
	maxErrorBody     = 64 << 10
)

// Client talks to a running catalog server.
type Client struct {
	baseURL    string
	apiPrefix  string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the timeout of the default http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithAPIPrefix overrides the "/api" path prefix the server mounts the API under.
func WithAPIPrefix(prefix string) Option {
	return func(c *Client) {
		c.apiPrefix = "/" + strings.Trim(prefix, "/")
		if c.apiPrefix == "/" {
			c.apiPrefix = ""
		}
	}
}

// New creates a client for the server at baseURL, e.g. "http://localhost:3000".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiPrefix:  defaultAPIPrefix,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Authors() *AuthorsService {
	return &AuthorsService{client: c}
}

func (c *Client) Books() *BooksService {
	return &BooksService{client: c}
}

// do sends body as JSON and decodes a 2xx response into out. Non-2xx
// responses are returned as *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+c.apiPrefix+path, reader)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s failed", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}
	return nil
}

func idPath(resource string, id uint) string {
	return fmt.Sprintf("/%s/%d", resource, id)
}
