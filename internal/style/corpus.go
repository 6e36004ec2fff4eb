// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package style turns a user's writing samples into a reusable style
// profile: corpus aggregation, LLM analysis with a defensive parse,
// onboarding overlays, derived scores, and fun facts.
package style

import (
	"strings"

	"draftdeck/internal/models"
)

const (
	// Corpus caps keep token usage under control on the different paths.
	AnalysisCorpusCap = 15000
	FunFactsCorpusCap = 12000
	SeedCorpusCap     = 8000

	// minCorpusLen is the threshold below which onboarding free-text is
	// folded in to give the analyzer enough signal.
	minCorpusLen = 500
)

// BuildCorpus concatenates the text extracts of all uploads, newline-joined.
// When the result is shorter than the minimum threshold it is padded with
// onboarding free-text (bio, style self-description, topical keywords,
// space-joined), then truncated to cap. An empty return means there is
// nothing to analyze and the caller must short-circuit; the analyzer is
// never invoked on an empty corpus.
func BuildCorpus(uploads []*models.Upload, onboarding *models.Onboarding, cap int) string {
	var parts []string
	for _, up := range uploads {
		if t := strings.TrimSpace(up.TextExtract); t != "" {
			parts = append(parts, up.TextExtract)
		}
	}
	corpus := strings.TrimSpace(strings.Join(parts, "\n"))

	if len(corpus) < minCorpusLen && onboarding != nil {
		pad := joinNonEmpty(" ", onboarding.Bio, onboarding.StyleSelfDesc, onboarding.TopicalKeywords)
		corpus = strings.TrimSpace(corpus + "\n" + pad)
	}

	return Truncate(corpus, cap)
}

// SeedCorpus builds an analyzer input purely from onboarding answers, used
// right after onboarding when the user has no uploads yet.
func SeedCorpus(onboarding *models.Onboarding) string {
	if onboarding == nil {
		return ""
	}
	var parts []string
	if strings.TrimSpace(onboarding.Bio) != "" {
		parts = append(parts, onboarding.Bio)
	}
	if strings.TrimSpace(onboarding.StyleSelfDesc) != "" {
		parts = append(parts, onboarding.StyleSelfDesc)
	}
	if strings.TrimSpace(onboarding.TopicalKeywords) != "" {
		parts = append(parts, "Topical keywords: "+onboarding.TopicalKeywords)
	}
	return Truncate(strings.TrimSpace(strings.Join(parts, "\n")), SeedCorpusCap)
}

// Truncate cuts s to at most max bytes. The corpus is plain text headed
// into a prompt, so a mid-rune cut is acceptable.
func Truncate(s string, max int) string {
	if max > 0 && len(s) > max {
		return s[:max]
	}
	return s
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
