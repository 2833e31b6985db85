// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/marinestats/internal/middleware"
)

// Router mounts the handler's routes.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router. A nil mw uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw}
}

// Setup builds the HTTP handler with every route.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered

	// Health endpoints are not rate limited; probes hit them constantly.
	r.Route("/api/health", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/fish/stats", router.handler.FishStats)

		r.Route("/tableau", func(r chi.Router) {
			r.Post("/auth", router.handler.TableauAuth)
			r.Get("/workbooks", router.handler.TableauWorkbooks)
			r.Get("/test-connection", router.handler.TableauTestConnection)
			r.Get("/debug", router.handler.TableauDebug)
			r.Get("/data-export", router.handler.DataExport)
		})

		r.Get("/abnormalities", router.handler.Abnormalities)
		r.Get("/copernicus", router.handler.Copernicus)
		r.Get("/image-proxy", router.handler.ImageProxy)
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
