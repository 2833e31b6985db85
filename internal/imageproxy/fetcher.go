// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package imageproxy

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// BrowserUserAgent is sent with every upstream request.
const BrowserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

const (
	// DefaultMaxBytes caps an image body when no limit is configured.
	DefaultMaxBytes int64 = 10 << 20

	defaultTimeout = 30 * time.Second
	defaultRate    = 20
	defaultBurst   = 40
)

// UpstreamError is a non-2xx reply from the image host.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("image host returned %d", e.StatusCode)
}

// ErrTooLarge reports an image body larger than the fetcher's cap.
var ErrTooLarge = errors.New("image exceeds size limit")

// Image is a fetched image. The caller must close Body.
type Image struct {
	ContentType string
	Body        io.ReadCloser
	Size        int64
}

// Fetcher downloads images.
type Fetcher struct {
	client   *http.Client
	limiter  *rate.Limiter
	maxBytes int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(f *Fetcher) {
		f.client = hc
	}
}

// WithRateLimit throttles outbound requests. A nil limiter disables throttling.
func WithRateLimit(l *rate.Limiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// New creates a Fetcher that reads at most maxBytes per image.
// A non-positive maxBytes selects DefaultMaxBytes.
func New(maxBytes int64, opts ...Option) *Fetcher {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	f := &Fetcher{
		client:   &http.Client{Timeout: defaultTimeout},
		limiter:  rate.NewLimiter(rate.Limit(defaultRate), defaultBurst),
		maxBytes: maxBytes,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// MaxBytes returns the per-image size cap.
func (f *Fetcher) MaxBytes() int64 {
	return f.maxBytes
}

// Fetch downloads rawURL. A non-2xx reply is returned as *UpstreamError and
// a body over the size cap as ErrTooLarge; anything else that goes wrong is
// a transport error. The body is read in full before Fetch returns.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Image, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("image proxy rate limiter: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create image request: %w", err)
	}
	req.Header.Set("User-Agent", BrowserUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode}
	}

	if resp.ContentLength > f.maxBytes {
		return nil, fmt.Errorf("%w: declared %d bytes, limit %d", ErrTooLarge, resp.ContentLength, f.maxBytes)
	}

	// One byte past the cap is enough to tell a full image from an overflow.
	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image body: %w", err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("%w: limit %d", ErrTooLarge, f.maxBytes)
	}

	return &Image{
		ContentType: resp.Header.Get("Content-Type"),
		Body:        io.NopCloser(bytes.NewReader(data)),
		Size:        int64(len(data)),
	}, nil
}
