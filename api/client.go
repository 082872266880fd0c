package api

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	userAgent = "go:modelfetch"

	// Model files are hundreds of megabytes, so only the wait for response headers is bounded.
	DefaultHeaderTimeout = time.Minute
)

// Client requests files relative to a single model repository.
type Client struct {
	client *http.Client
	base   *url.URL
}

func (c *Client) WithBaseURL(u *url.URL) *Client {
	c.base = u
	return c
}

// WithTimeout sets how long to wait for response headers. Zero disables the limit.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	if t, ok := c.client.Transport.(*http.Transport); ok {
		t.ResponseHeaderTimeout = timeout
	}
	return c
}

func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.client = hc
	return c
}

func (c *Client) BaseURL() *url.URL {
	return c.base
}

// FileURL returns base_url + "/" + filename.
func (c *Client) FileURL(filename string) string {
	return c.base.JoinPath(filename).String()
}

func (c *Client) GetURL(ctx context.Context, surl string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, surl, http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Add("User-Agent", userAgent)

	return c.client.Do(req)
}

// GetFile issues a GET for the file. The caller owns the body of a successful response,
// any non-2xx response is drained, closed and reported as *StatusError.
func (c *Client) GetFile(ctx context.Context, filename string) (*http.Response, error) {
	surl := c.FileURL(filename)
	log.Debug().Str("url", surl).Msg("requesting file")

	res, err := c.GetURL(ctx, surl)
	if err != nil {
		return nil, err
	}

	if !IsSuccess(res.StatusCode) {
		_, _ = io.Copy(io.Discard, res.Body)
		res.Body.Close()
		return nil, &StatusError{URL: surl, StatusCode: res.StatusCode}
	}

	return res, nil
}

// DefaultClient returns a client for the default model on huggingface.co.
func DefaultClient() *Client {
	base, _ := NewRepoURL(DefaultHost, DefaultModelID, DefaultRevision)
	return &Client{
		client: &http.Client{
			Transport: &http.Transport{
				Proxy:                 http.ProxyFromEnvironment,
				TLSNextProto:          map[string]func(authority string, c *tls.Conn) http.RoundTripper{},
				ResponseHeaderTimeout: DefaultHeaderTimeout,
			},
		},
		base: base,
	}
}
