// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Summary is the semi-structured style document produced by the analyzer.
// The producer is an LLM, so no key is contractually guaranteed to exist;
// every consumer reads through the typed accessors, which supply defaults.
type Summary map[string]any

// Str returns a string field, or def when the key is missing or not a string.
func (s Summary) Str(key, def string) string {
	if v, ok := s[key].(string); ok && v != "" {
		return v
	}
	return def
}

// Num returns a numeric field, or def when the key is missing or not a
// number. JSON decoding yields float64; ints stored programmatically are
// handled too.
func (s Summary) Num(key string, def float64) float64 {
	switch v := s[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
	}
	return def
}

// Strings returns a string-list field. Missing keys, wrong types, and
// non-string elements all degrade to an empty (or shorter) slice.
func (s Summary) Strings(key string) []string {
	raw, ok := s[key].([]any)
	if !ok {
		// Lists written by Go code (not round-tripped through JSON) keep
		// their concrete type.
		if direct, ok := s[key].([]string); ok {
			return direct
		}
		return nil
	}
	var out []string
	for _, item := range raw {
		if str, ok := item.(string); ok {
			out = append(out, str)
		}
	}
	return out
}

// Clone returns a shallow copy so overlays never mutate the stored document.
func (s Summary) Clone() Summary {
	out := make(Summary, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// StyleProfile is one versioned snapshot of a user's analyzed writing style.
// Invariant: at most one profile per user has Active set.
type StyleProfile struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Version   int       `json:"version"`
	Summary   Summary   `json:"summary"`
	FunFacts  []string  `json:"fun_facts"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
