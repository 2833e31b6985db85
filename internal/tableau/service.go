// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package tableau

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/marinestats/internal/config"
	"github.com/tomtom215/marinestats/internal/logging"
	"github.com/tomtom215/marinestats/internal/metrics"
	models "github.com/tomtom215/marinestats/internal/models/tableau"
)

// Authentication methods, in the order they are tried.
const (
	AuthTypePAT         = "pat"
	AuthTypeCredentials = "credentials"
	AuthTypeTrusted     = "trusted"
)

const (
	// defaultTrustedUser is used when neither the caller nor the config
	// names a user for trusted authentication.
	defaultTrustedUser = "guest"

	// connectionTestWorkbooks caps the workbooks echoed by TestConnection.
	connectionTestWorkbooks = 5

	// signOutTimeout bounds the best-effort sign-out after a listing.
	signOutTimeout = 5 * time.Second
)

// Service implements the dashboard's Tableau operations on top of an API.
type Service struct {
	api API
	cfg *config.TableauConfig
}

// NewService creates a Service. api is usually a CircuitBreakerClient.
func NewService(api API, cfg *config.TableauConfig) *Service {
	return &Service{api: api, cfg: cfg}
}

// Config returns the Tableau configuration the service was built with.
func (s *Service) Config() *config.TableauConfig {
	return s.cfg
}

// configuredSite is the site block sent with PAT and credential sign-in.
// An empty content URL selects the default site.
func (s *Service) configuredSite() *models.Site {
	return &models.Site{ContentURL: s.cfg.SiteID}
}

// optionalSite is configuredSite, or nil when no site is configured.
func (s *Service) optionalSite() *models.Site {
	if s.cfg.SiteID == "" {
		return nil
	}
	return s.configuredSite()
}

func (s *Service) patCredentials() models.Credentials {
	return models.Credentials{
		PersonalAccessTokenName:   s.cfg.TokenName,
		PersonalAccessTokenSecret: s.cfg.PersonalToken,
		Site:                      s.configuredSite(),
	}
}

func (s *Service) passwordCredentials(site *models.Site) models.Credentials {
	return models.Credentials{
		Name:     s.cfg.Username,
		Password: s.cfg.Password,
		Site:     site,
	}
}

// Authentication is the outcome of Authenticate.
type Authentication struct {
	Method  string
	Session *models.Session
	Ticket  string
}

// Response shapes the authentication for the dashboard.
func (a *Authentication) Response(serverURL string) *models.AuthResponse {
	resp := &models.AuthResponse{
		ServerURL: serverURL,
		AuthType:  a.Method,
		Ticket:    a.Ticket,
	}
	if a.Session != nil {
		resp.Token = a.Session.Token
	}
	return resp
}

// Authenticate signs in with the first configured method: personal access
// token, then username and password, then a trusted ticket for username
// (falling back to the configured trusted user, then "guest").
//
// The returned session is handed to the dashboard and not signed out.
func (s *Service) Authenticate(ctx context.Context, username string) (*Authentication, error) {
	switch {
	case s.cfg.HasPAT():
		session, err := s.api.SignIn(ctx, s.patCredentials())
		metrics.RecordTableauAuth(AuthTypePAT, err)
		if err != nil {
			return nil, err
		}
		return &Authentication{Method: AuthTypePAT, Session: session}, nil

	case s.cfg.HasCredentials():
		session, err := s.api.SignIn(ctx, s.passwordCredentials(s.configuredSite()))
		metrics.RecordTableauAuth(AuthTypeCredentials, err)
		if err != nil {
			return nil, err
		}
		return &Authentication{Method: AuthTypeCredentials, Session: session}, nil

	default:
		user := username
		if user == "" {
			user = s.cfg.TrustedUser
		}
		if user == "" {
			user = defaultTrustedUser
		}
		ticket, err := s.api.TrustedTicket(ctx, user)
		metrics.RecordTableauAuth(AuthTypeTrusted, err)
		if err != nil {
			return nil, err
		}
		return &Authentication{Method: AuthTypeTrusted, Ticket: ticket}, nil
	}
}

// Workbooks signs in with username and password, lists the site's
// workbooks and signs out again. Sign-in failures are returned as
// *AuthError.
func (s *Service) Workbooks(ctx context.Context) ([]models.Workbook, error) {
	session, err := s.api.SignIn(ctx, s.passwordCredentials(s.optionalSite()))
	metrics.RecordTableauAuth(AuthTypeCredentials, err)
	if err != nil {
		return nil, &AuthError{Err: err}
	}
	defer s.signOut(ctx, session.Token)

	workbooks, err := s.api.ListWorkbooks(ctx, session)
	if err != nil {
		return nil, err
	}
	return workbooks, nil
}

// signOut ends a session, logging rather than returning failures.
func (s *Service) signOut(ctx context.Context, token string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), signOutTimeout)
	defer cancel()

	if err := s.api.SignOut(ctx, token); err != nil {
		logging.Warn().Err(err).Msg("Tableau sign-out failed")
	}
}

// Probe checks that the server answers serverinfo and returns its version.
func (s *Service) Probe(ctx context.Context) (string, error) {
	info, err := s.api.ServerInfo(ctx)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			return "", &ProbeError{
				Message: fmt.Sprintf("Server not reachable: %d %s", statusErr.StatusCode, http.StatusText(statusErr.StatusCode)),
				Err:     err,
			}
		}
		return "", &ProbeError{Message: "Connection failed: " + err.Error(), Err: err}
	}
	return info.Version(), nil
}

// TestConnection probes the server and, when it answers, authenticates and
// lists up to five workbooks. Authentication or listing problems only
// produce an empty workbook list; a failed probe is returned as *ProbeError.
func (s *Service) TestConnection(ctx context.Context) (*models.ConnectionTestSuccess, error) {
	version, err := s.Probe(ctx)
	if err != nil {
		return nil, err
	}

	workbooks := s.connectionTestWorkbooks(ctx)
	summaries := make([]models.WorkbookSummary, 0, min(len(workbooks), connectionTestWorkbooks))
	for i := range workbooks {
		if i == connectionTestWorkbooks {
			break
		}
		summaries = append(summaries, models.WorkbookSummary{
			ID:         workbooks[i].ID,
			Name:       workbooks[i].Name,
			ContentURL: workbooks[i].ContentURL,
		})
	}

	return &models.ConnectionTestSuccess{
		Success:        true,
		Message:        "Connected to Tableau Server " + version,
		WorkbooksCount: len(workbooks),
		Workbooks:      summaries,
	}, nil
}

// connectionTestWorkbooks lists workbooks using the authentication chain.
// Trusted tickets cannot call the REST API, so they yield no workbooks.
func (s *Service) connectionTestWorkbooks(ctx context.Context) []models.Workbook {
	auth, err := s.Authenticate(ctx, "")
	if err != nil {
		logging.Warn().Err(err).Msg("Tableau connection test could not authenticate")
		return nil
	}
	if auth.Session == nil {
		return nil
	}
	defer s.signOut(ctx, auth.Session.Token)

	workbooks, err := s.api.ListWorkbooks(ctx, auth.Session)
	if err != nil {
		logging.Warn().Err(err).Msg("Tableau connection test could not list workbooks")
		return nil
	}
	return workbooks
}
