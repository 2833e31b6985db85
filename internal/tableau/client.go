// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package tableau

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/marinestats/internal/config"
	"github.com/tomtom215/marinestats/internal/metrics"
	models "github.com/tomtom215/marinestats/internal/models/tableau"
)

// maxErrorBodySize limits how much of an error response is kept.
const maxErrorBodySize = 64 * 1024

// defaultAPIVersion is the REST API version used when none is configured.
const defaultAPIVersion = "3.19"

// API is the subset of the Tableau REST API the service uses. It is
// implemented by Client and CircuitBreakerClient.
type API interface {
	SignIn(ctx context.Context, creds models.Credentials) (*models.Session, error)
	TrustedTicket(ctx context.Context, username string) (string, error)
	SignOut(ctx context.Context, token string) error
	ListWorkbooks(ctx context.Context, session *models.Session) ([]models.Workbook, error)
	ServerInfo(ctx context.Context) (*models.ServerInfo, error)
}

// Client talks to a Tableau Server or Tableau Cloud REST endpoint.
type Client struct {
	baseURL    string
	siteID     string
	apiVersion string
	http       *http.Client
	limiter    *rate.Limiter
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.http = hc
	}
}

// NewClient creates a client for cfg. Outbound calls are throttled to
// cfg.RequestsPerSecond when it is positive.
func NewClient(cfg *config.TableauConfig, opts ...ClientOption) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	version := cfg.APIVersion
	if version == "" {
		version = defaultAPIVersion
	}

	c := &Client{
		baseURL:    cfg.BaseURL(),
		siteID:     cfg.SiteID,
		apiVersion: version,
		http:       &http.Client{Timeout: timeout},
	}
	if cfg.RequestsPerSecond > 0 {
		burst := int(cfg.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// apiURL joins a REST path onto the versioned API root.
func (c *Client) apiURL(path string) string {
	return fmt.Sprintf("%s/api/%s/%s", c.baseURL, c.apiVersion, strings.TrimPrefix(path, "/"))
}

// do sends req after waiting for the rate limiter and records the call.
func (c *Client) do(ctx context.Context, operation string, req *http.Request) (resp *http.Response, err error) {
	if c.baseURL == "" {
		return nil, ErrNotConfigured
	}

	start := time.Now()
	defer func() {
		metrics.RecordTableauRequest(operation, time.Since(start), err)
	}()

	if c.limiter != nil {
		if err = c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("tableau %s: rate limiter: %w", operation, err)
		}
	}

	resp, err = c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tableau %s: %w", operation, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		err = &StatusError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Body:       string(readBodyForError(resp.Body)),
		}
		return nil, err
	}
	return resp, nil
}

// readBodyForError reads at most maxErrorBodySize bytes of an error body.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	return body
}

// SignIn exchanges creds for a REST session. Tableau answers in JSON or
// XML depending on server version and configuration; both are accepted.
func (c *Client) SignIn(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	payload, err := json.Marshal(models.SignInRequest{Credentials: creds})
	if err != nil {
		return nil, fmt.Errorf("failed to encode sign-in request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL("auth/signin"), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create sign-in request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(ctx, "signin", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read sign-in response: %w", err)
	}

	signed, err := decodeSignIn(resp.Header.Get("Content-Type"), body)
	if err != nil {
		return nil, err
	}
	if signed.Token == "" {
		return nil, ErrNoToken
	}

	return &models.Session{
		Token:  signed.Token,
		SiteID: signed.Site.ID,
		Site:   signed.Site,
		User:   signed.User,
	}, nil
}

// decodeSignIn parses a sign-in body according to its content type.
func decodeSignIn(contentType string, body []byte) (*models.SignInCredentials, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(contentType))
	}

	switch {
	case strings.HasSuffix(mediaType, "json"):
		var out models.SignInResponse
		if err := json.Unmarshal(body, &out); err != nil {
			return nil, fmt.Errorf("failed to decode sign-in response: %w", err)
		}
		return &out.Credentials, nil
	case strings.HasSuffix(mediaType, "xml"):
		var out models.XMLSignInResponse
		if err := xml.Unmarshal(body, &out); err != nil {
			return nil, fmt.Errorf("XML response but no token found: %w", err)
		}
		return &out.Credentials, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedContentType, body)
	}
}

// TrustedTicket requests a trusted authentication ticket for username.
func (c *Client) TrustedTicket(ctx context.Context, username string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("target_site", c.siteID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/trusted", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create trusted ticket request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.do(ctx, "trusted_ticket", req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read trusted ticket: %w", err)
	}

	ticket := strings.TrimSpace(string(body))
	if ticket == "-1" {
		return "", ErrTrustedTicketRejected
	}
	return ticket, nil
}

// SignOut invalidates token.
func (c *Client) SignOut(ctx context.Context, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL("auth/signout"), http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create sign-out request: %w", err)
	}
	req.Header.Set("X-Tableau-Auth", token)

	resp, err := c.do(ctx, "signout", req)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

// ListWorkbooks lists the workbooks of the session's site.
func (c *Client) ListWorkbooks(ctx context.Context, session *models.Session) ([]models.Workbook, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL("sites/"+url.PathEscape(session.SiteID)+"/workbooks"), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create workbooks request: %w", err)
	}
	req.Header.Set("X-Tableau-Auth", session.Token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(ctx, "list_workbooks", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out models.WorkbooksResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode workbooks: %w", err)
	}
	if out.Workbooks.Workbook == nil {
		return []models.Workbook{}, nil
	}
	return out.Workbooks.Workbook, nil
}

// ServerInfo probes the unauthenticated serverinfo endpoint.
func (c *Client) ServerInfo(ctx context.Context) (*models.ServerInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL("serverinfo"), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create serverinfo request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(ctx, "serverinfo", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var info models.ServerInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode serverinfo: %w", err)
	}
	return &info, nil
}
