// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package images searches stock photo providers for draft
// illustrations. Pexels is the primary provider with Unsplash as the
// fallback; results are normalized to one shape and cached in Valkey.
// Image search is decoration for the editor, so every failure path
// degrades to an empty result list instead of an error.
package images

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// Result is one stock photo in provider-neutral form.
type Result struct {
	Thumb      string `json:"thumb"`
	URL        string `json:"url"`
	Page       string `json:"page"`
	Title      string `json:"title"`
	Source     string `json:"source"` // "pexels" or "unsplash"
	CreditHTML string `json:"credit_html"`
}

// ResultCache is the slice of the Valkey cache the service needs.
type ResultCache interface {
	Get(ctx context.Context, query string) ([]byte, bool)
	Set(ctx context.Context, query string, payload []byte)
}

const (
	perPage        = 12
	requestTimeout = 12 * time.Second
)

// Service queries stock photo providers.
type Service struct {
	pexelsKey   string
	unsplashKey string
	client      *http.Client
	cache       ResultCache

	// Overridable for tests.
	pexelsBaseURL   string
	unsplashBaseURL string
}

// NewService creates an image search service. Either key may be empty;
// a provider without a key is skipped. cache may be nil.
func NewService(pexelsKey, unsplashKey string, cache ResultCache) *Service {
	return &Service{
		pexelsKey:       pexelsKey,
		unsplashKey:     unsplashKey,
		client:          &http.Client{Timeout: requestTimeout},
		cache:           cache,
		pexelsBaseURL:   "https://api.pexels.com",
		unsplashBaseURL: "https://api.unsplash.com",
	}
}

// Search returns stock photos for a query, Pexels first and Unsplash
// when Pexels is unavailable or empty. Failures degrade to an empty
// list. Results are cached per query.
func (s *Service) Search(ctx context.Context, query string) []Result {
	if query == "" {
		return []Result{}
	}

	if s.cache != nil {
		if payload, ok := s.cache.Get(ctx, query); ok {
			var cached []Result
			if err := json.Unmarshal(payload, &cached); err == nil {
				return cached
			}
		}
	}

	results := s.searchPexels(ctx, query)
	if len(results) == 0 {
		results = s.searchUnsplash(ctx, query)
	}
	if results == nil {
		results = []Result{}
	}

	if s.cache != nil && len(results) > 0 {
		if payload, err := json.Marshal(results); err == nil {
			s.cache.Set(ctx, query, payload)
		}
	}

	return results
}

// doJSON performs a GET and decodes the body into out. Non-200 and
// decode failures are logged and reported as false.
func (s *Service) doJSON(ctx context.Context, url string, header http.Header, out any) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		slog.Warn("image search request", "error", err)
		return false
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Warn("image search http", "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("image search status", "url", url, "status", resp.StatusCode)
		return false
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		slog.Warn("image search decode", "error", err)
		return false
	}
	return true
}
