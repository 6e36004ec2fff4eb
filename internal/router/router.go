// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// DraftDeck JSON API. Routes are organized into a public auth group and
// an authenticated /api group; generation and calendar routes also
// require completed onboarding.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"draftdeck/internal/handlers"
	"draftdeck/internal/middleware"
	"draftdeck/internal/session"
)

// Handlers bundles the handler groups the router wires up.
type Handlers struct {
	Auth       *handlers.Auth
	Onboarding *handlers.Onboarding
	Uploads    *handlers.Uploads
	Style      *handlers.Style
	Credits    *handlers.Credits
	Content    *handlers.Content
	Calendar   *handlers.Calendar
	Pillars    *handlers.Pillars
	Images     *handlers.Images
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sessionStore *session.Store, limiter *middleware.RateLimiter, h Handlers) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.Logger)
	r.Use(limiter.Middleware)
	r.Use(middleware.LoadSession(sessionStore))
	r.Use(middleware.CSRF)

	// Health check, no auth.
	r.Get("/health", healthHandler)

	// Auth routes, accessible without a session.
	r.Post("/signup", h.Auth.Signup)
	r.Post("/login", h.Auth.Login)
	r.Post("/logout", h.Auth.Logout)

	// Authenticated API.
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Get("/me", h.Auth.Me)

		r.Route("/onboarding", func(r chi.Router) {
			r.Get("/", h.Onboarding.Get)
			r.Put("/", h.Onboarding.Save)
		})

		r.Route("/uploads", func(r chi.Router) {
			r.Get("/", h.Uploads.List)
			r.Post("/", h.Uploads.Create)
			r.Post("/typed", h.Uploads.CreateTyped)
			r.Delete("/{id}", h.Uploads.Delete)
			r.Get("/{id}/download", h.Uploads.Download)
		})

		r.Route("/style", func(r chi.Router) {
			r.Get("/", h.Style.Get)
			r.Get("/history", h.Style.History)
			r.Post("/regenerate", h.Style.Regenerate)
		})

		r.Route("/credits", func(r chi.Router) {
			r.Get("/", h.Credits.Get)
			r.Post("/topup", h.Credits.TopUp)
		})

		r.Route("/pillars", func(r chi.Router) {
			r.Get("/", h.Pillars.List)
			r.Post("/", h.Pillars.Create)
			r.Put("/{id}", h.Pillars.Update)
			r.Delete("/{id}", h.Pillars.Delete)
		})

		r.Route("/schedule", func(r chi.Router) {
			r.Get("/", h.Pillars.GetSchedule)
			r.Put("/", h.Pillars.PutSchedule)
		})

		r.Get("/images/search", h.Images.Search)

		// Generation and the calendar need a style profile, which only
		// exists after onboarding.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireOnboarding)

			r.Route("/content", func(r chi.Router) {
				r.Get("/", h.Content.List)
				r.Post("/generate", h.Content.Generate)
				r.Get("/{id}", h.Content.Detail)
				r.Post("/{id}/approve", h.Content.Approve)
				r.Post("/{id}/improve", h.Content.Improve)
				r.Post("/{id}/change-topic", h.Content.ChangeTopic)
				r.Get("/{id}/preview", h.Content.Preview)
			})

			r.Route("/calendar", func(r chi.Router) {
				r.Get("/", h.Calendar.Month)
				r.Post("/auto-populate", h.Calendar.AutoPopulate)
			})
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
