// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package services

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

// fakeServer blocks in ListenAndServe until Shutdown is called.
type fakeServer struct {
	listenErr   error
	shutdownErr error

	started   chan struct{}
	stop      chan struct{}
	stopOnce  sync.Once
	listens   atomic.Int32
	shutdowns atomic.Int32
}

func newFakeServer() *fakeServer {
	return &fakeServer{started: make(chan struct{}, 1), stop: make(chan struct{})}
}

func (f *fakeServer) ListenAndServe() error {
	f.listens.Add(1)
	select {
	case f.started <- struct{}{}:
	default:
	}
	if f.listenErr != nil {
		return f.listenErr
	}
	<-f.stop
	return http.ErrServerClosed
}

func (f *fakeServer) Shutdown(context.Context) error {
	f.shutdowns.Add(1)
	f.stopOnce.Do(func() { close(f.stop) })
	return f.shutdownErr
}

var _ suture.Service = (*HTTPServerService)(nil)

func TestNewHTTPServerServiceTimeouts(t *testing.T) {
	for _, timeout := range []time.Duration{0, -time.Second} {
		if got := NewHTTPServerService(newFakeServer(), timeout).shutdownTimeout; got != defaultShutdownTimeout {
			t.Errorf("timeout %v: got %v", timeout, got)
		}
	}
	if got := NewHTTPServerService(newFakeServer(), 3*time.Second).shutdownTimeout; got != 3*time.Second {
		t.Errorf("got %v", got)
	}
	if got := NewHTTPServerService(newFakeServer(), 0).String(); got != "http-server" {
		t.Errorf("String() = %q", got)
	}
}

func TestHTTPServerServiceGracefulShutdown(t *testing.T) {
	server := newFakeServer()
	svc := NewHTTPServerService(server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	<-server.started
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return")
	}
	if server.shutdowns.Load() != 1 {
		t.Errorf("Shutdown called %d times", server.shutdowns.Load())
	}
}

func TestHTTPServerServiceListenFailure(t *testing.T) {
	bindErr := errors.New("bind: address already in use")
	server := newFakeServer()
	server.listenErr = bindErr

	err := NewHTTPServerService(server, time.Second).Serve(context.Background())
	if !errors.Is(err, bindErr) {
		t.Errorf("Serve = %v, want %v", err, bindErr)
	}
}

func TestHTTPServerServiceShutdownFailure(t *testing.T) {
	shutdownErr := errors.New("connections still open")
	server := newFakeServer()
	server.shutdownErr = shutdownErr
	svc := NewHTTPServerService(server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	<-server.started
	cancel()

	if err := <-errCh; !errors.Is(err, shutdownErr) {
		t.Errorf("Serve = %v, want %v", err, shutdownErr)
	}
}
