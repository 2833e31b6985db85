// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package tableau

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/marinestats/internal/config"
	models "github.com/tomtom215/marinestats/internal/models/tableau"
)

// fakeTableau is a scripted Tableau REST endpoint.
type fakeTableau struct {
	t      *testing.T
	server *httptest.Server

	mu sync.Mutex

	// sign-in
	signInStatus      int
	signInContentType string
	token             string
	signIns           []models.Credentials

	// trusted tickets
	ticket      string
	trustedForm url.Values

	// workbooks
	workbooksStatus int
	workbooks       []models.Workbook
	workbookSites   []string
	authHeaders     []string

	// serverinfo
	serverInfoStatus int
	serverInfoBody   string

	signOuts int
}

func newFakeTableau(t *testing.T) *fakeTableau {
	t.Helper()

	f := &fakeTableau{
		t:                 t,
		signInStatus:      http.StatusOK,
		signInContentType: "application/json",
		token:             "tok-123",
		ticket:            "ticket-abc",
		workbooksStatus:   http.StatusOK,
		serverInfoStatus:  http.StatusOK,
		serverInfoBody:    `{"serverInfo":{"productVersion":{"value":"2023.3.0","build":"20233.23"},"restApiVersion":"3.21"}}`,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/3.19/auth/signin", f.handleSignIn)
	mux.HandleFunc("POST /api/3.19/auth/signout", f.handleSignOut)
	mux.HandleFunc("GET /api/3.19/sites/{site}/workbooks", f.handleWorkbooks)
	mux.HandleFunc("GET /api/3.19/serverinfo", f.handleServerInfo)
	mux.HandleFunc("POST /trusted", f.handleTrusted)

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeTableau) config() *config.TableauConfig {
	return &config.TableauConfig{
		ServerURL:       f.server.URL + "/",
		PublicServerURL: f.server.URL,
		APIVersion:      "3.19",
	}
}

func (f *fakeTableau) handleSignIn(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		f.t.Errorf("sign-in body: %v", err)
	}
	f.signIns = append(f.signIns, req.Credentials)

	if f.signInStatus != http.StatusOK {
		w.WriteHeader(f.signInStatus)
		_, _ = io.WriteString(w, "bad credentials")
		return
	}

	w.Header().Set("Content-Type", f.signInContentType)
	switch f.signInContentType {
	case "application/json":
		_, _ = fmt.Fprintf(w, `{"credentials":{"token":%q,"site":{"id":"site-luid","contentUrl":"marine"},"user":{"id":"user-luid","name":"analyst"}}}`, f.token)
	case "application/xml;charset=UTF-8":
		_, _ = fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?><tsResponse xmlns="http://tableau.com/api"><credentials token=%q><site id="site-luid" contentUrl="marine"/><user id="user-luid"/></credentials></tsResponse>`, f.token)
	default:
		_, _ = io.WriteString(w, "plain text")
	}
}

func (f *fakeTableau) handleSignOut(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.signOuts++
	f.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (f *fakeTableau) handleWorkbooks(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.workbookSites = append(f.workbookSites, r.PathValue("site"))
	f.authHeaders = append(f.authHeaders, r.Header.Get("X-Tableau-Auth"))

	if f.workbooksStatus != http.StatusOK {
		w.WriteHeader(f.workbooksStatus)
		_, _ = io.WriteString(w, "forbidden")
		return
	}

	var resp models.WorkbooksResponse
	resp.Workbooks.Workbook = f.workbooks
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (f *fakeTableau) handleServerInfo(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.serverInfoStatus != http.StatusOK {
		w.WriteHeader(f.serverInfoStatus)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, f.serverInfoBody)
}

func (f *fakeTableau) handleTrusted(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := r.ParseForm(); err != nil {
		f.t.Errorf("trusted form: %v", err)
	}
	f.trustedForm = r.PostForm
	_, _ = io.WriteString(w, f.ticket)
}

func (f *fakeTableau) lastSignIn() models.Credentials {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.signIns) == 0 {
		f.t.Fatal("no sign-in recorded")
	}
	return f.signIns[len(f.signIns)-1]
}

func (f *fakeTableau) signOutCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.signOuts
}

func sampleWorkbooks(n int) []models.Workbook {
	out := make([]models.Workbook, n)
	for i := range out {
		out[i] = models.Workbook{
			ID:         fmt.Sprintf("wb-%d", i),
			Name:       fmt.Sprintf("Workbook %d", i),
			ContentURL: fmt.Sprintf("workbook%d", i),
			Size:       json.RawMessage(`"12"`),
			ShowTabs:   json.RawMessage(`"true"`),
		}
	}
	return out
}
