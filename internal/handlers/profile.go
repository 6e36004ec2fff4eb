// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"draftdeck/internal/models"
	"draftdeck/internal/store"
	"draftdeck/internal/style"
)

// profileRebuilder runs the full analyze-merge-store pipeline that turns
// the user's current corpus into the next active style profile. It is
// embedded by every handler group that triggers a rebuild (uploads,
// onboarding, explicit regeneration). Rebuilds are always free.
type profileRebuilder struct {
	uploads     *store.UploadStore
	onboardings *store.OnboardingStore
	profiles    *store.ProfileStore
	backend     style.TextGenerator
}

// rebuild analyzes the user's full corpus and stores the next profile
// version. Returns errNoCorpus when there is nothing to analyze.
// degraded reports that the analyzer reply could not be parsed and a
// placeholder summary was stored.
func (pr profileRebuilder) rebuild(ctx context.Context, userID uuid.UUID) (*models.StyleProfile, bool, error) {
	uploads, err := pr.uploads.ListByUser(userID)
	if err != nil {
		return nil, false, err
	}
	onboarding, err := pr.onboardings.FindByUser(userID)
	if err != nil {
		return nil, false, err
	}

	corpus := style.BuildCorpus(uploads, onboarding, style.AnalysisCorpusCap)
	if corpus == "" {
		return nil, false, errNoCorpus
	}

	return pr.analyzeAndStore(ctx, userID, corpus, onboarding)
}

// seed builds an initial profile purely from onboarding answers, for
// users who finished the intake form before uploading anything.
// Returns errNoCorpus when the answers hold no usable text.
func (pr profileRebuilder) seed(ctx context.Context, userID uuid.UUID, onboarding *models.Onboarding) (*models.StyleProfile, bool, error) {
	corpus := style.SeedCorpus(onboarding)
	if corpus == "" {
		return nil, false, errNoCorpus
	}
	return pr.analyzeAndStore(ctx, userID, corpus, onboarding)
}

func (pr profileRebuilder) analyzeAndStore(ctx context.Context, userID uuid.UUID, corpus string, onboarding *models.Onboarding) (*models.StyleProfile, bool, error) {
	summary, degraded, err := style.Analyze(ctx, pr.backend, corpus)
	if err != nil {
		return nil, false, err
	}
	summary = style.MergeOnboarding(summary, onboarding)

	facts, err := style.FunFacts(ctx, pr.backend, corpus)
	if err != nil {
		// Fun facts are garnish; the profile stands without them.
		slog.Warn("fun facts", "user", userID, "error", err)
		facts = []string{}
	}

	profile, err := pr.profiles.CreateVersion(userID, summary, facts)
	if err != nil {
		return nil, false, err
	}
	return profile, degraded, nil
}
