// Package http provides the HTTP implementations of docubot.Fetcher and
// docubot.SitemapService.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/docubot/docubot"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// UserAgent identifies the crawler to the sites it fetches.
const UserAgent = "DocuBot-Crawler/1.0 (+https://github.com/docubot/docubot)"

// Ensure Fetcher implements docubot.Fetcher at compile time.
var _ docubot.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs over plain HTTP.
// It does not execute JavaScript, so it is suitable for static sites only.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithClient replaces the underlying HTTP client. The client's own timeout
// takes precedence over WithTimeout.
func WithClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Fetch retrieves the HTML content from the given URL. Transport failures
// and non-2xx responses are reported as *docubot.FetchError so callers can
// distinguish network faults from HTTP status rejections.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &docubot.FetchError{URL: url, Kind: docubot.FetchErrNetwork, Err: err}
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &docubot.FetchError{URL: url, Kind: docubot.FetchErrNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &docubot.FetchError{URL: url, Kind: docubot.FetchErrStatus, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &docubot.FetchError{URL: url, Kind: docubot.FetchErrNetwork, Err: err}
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
