// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package style

import (
	"context"
	"fmt"
	"strings"
)

const (
	maxFunFacts   = 10
	maxFactLength = 120
)

const funFactsSystemPrompt = `You are a witty observer of writing habits. Given a writing corpus, list short, playful, specific observations about the author's quirks. One observation per line, plain text, no numbering and no markdown.`

// FunFacts asks the backend for playful observations about the corpus.
// An empty corpus returns an empty list without calling the backend.
// Each returned line is stripped of bullet decoration and truncated to
// the length cap, and at most ten facts are kept.
func FunFacts(ctx context.Context, gen TextGenerator, corpus string) ([]string, error) {
	corpus = strings.TrimSpace(corpus)
	if corpus == "" {
		return []string{}, nil
	}

	userPrompt := fmt.Sprintf("Give me up to %d fun observations about this author's writing habits.\n\nCORPUS:\n%s",
		maxFunFacts, Truncate(corpus, FunFactsCorpusCap))

	raw, err := gen.GenerateWithRetry(ctx, funFactsSystemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("fun facts: %w", err)
	}

	return ParseFunFacts(raw), nil
}

// ParseFunFacts turns backend output into a clean list of facts.
func ParseFunFacts(raw string) []string {
	facts := []string{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.Trim(line, " -•\t")
		if line == "" {
			continue
		}
		facts = append(facts, Truncate(line, maxFactLength))
		if len(facts) == maxFunFacts {
			break
		}
	}
	return facts
}
