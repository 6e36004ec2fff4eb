// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package style

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"draftdeck/internal/models"
)

// TextGenerator is the slice of the AI registry the analyzer needs.
type TextGenerator interface {
	GenerateWithRetry(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

const analyzeSystemPrompt = `You are an expert writing-style analyst. You read a writing corpus and return a JSON object describing the author's style. Respond with JSON only, no prose and no code fences.`

// rawCap bounds how much unparseable backend output is kept on a
// degraded profile.
const rawCap = 2000

// summaryKeys is the schema the analyzer asks the backend to fill.
// Keys missing from the response are tolerated downstream; readers go
// through the typed accessors on models.Summary with defaults.
var summaryKeys = []string{
	"voice_summary",
	"tone_adjectives",
	"formality",
	"cadence",
	"vocabulary_level",
	"avg_sentence_length",
	"avg_paragraph_length",
	"emoji_usage",
	"link_usage",
	"punctuation_habits",
	"structural_patterns",
	"common_phrases",
	"jargon_domains",
	"content_pillars",
	"audience",
	"cta_styles",
	"humor_style",
	"storytelling",
	"hashtag_habits",
	"formatting_quirks",
	"style_do",
	"do_not_do",
}

// Analyze sends the corpus to the text backend and parses the returned
// style summary. The caller is responsible for never passing an empty
// corpus. degraded reports that the backend reply was not valid JSON and
// a minimal placeholder summary was stored instead.
func Analyze(ctx context.Context, gen TextGenerator, corpus string) (summary models.Summary, degraded bool, err error) {
	userPrompt := fmt.Sprintf(`Analyze the writing style of the corpus below. Return a single JSON object with exactly these keys: %s.

"tone_adjectives", "structural_patterns", "common_phrases", "jargon_domains", "content_pillars", "cta_styles", "formatting_quirks", "style_do" and "do_not_do" are arrays of strings. "style_do" are rules for imitating the style, "do_not_do" are rules to avoid. "cadence" describes the rhythm and flow of the sentences. "avg_sentence_length" is the average number of words per sentence. "avg_paragraph_length" is the average number of sentences per paragraph. "formality" is one of "casual", "neutral", "formal". "vocabulary_level" is one of "simple", "moderate", "advanced". "emoji_usage" is one of "none", "light", "moderate", "heavy". "link_usage" is one of "rare", "sometimes", "frequent". Everything else is a short string.

CORPUS:
%s`, strings.Join(summaryKeys, ", "), corpus)

	raw, err := gen.GenerateWithRetry(ctx, analyzeSystemPrompt, userPrompt)
	if err != nil {
		return nil, false, fmt.Errorf("style analyze: %w", err)
	}

	summary, degraded = ParseSummary(raw)
	return summary, degraded, nil
}

// ParseSummary decodes a backend reply into a Summary. Code fences are
// stripped first. When the reply is not a JSON object the profile is
// still created, with a placeholder voice summary and the raw reply kept
// for inspection, and degraded=true so the caller can flag it.
func ParseSummary(raw string) (models.Summary, bool) {
	cleaned := StripCodeFences(raw)

	var summary models.Summary
	if err := json.Unmarshal([]byte(cleaned), &summary); err == nil && summary != nil {
		return summary, false
	}

	return models.Summary{
		"voice_summary": "Style analysis unavailable",
		"raw":           Truncate(raw, rawCap),
	}, true
}

// StripCodeFences removes a surrounding markdown code fence from an LLM
// reply. Backends fence JSON output despite instructions not to.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// Drop a language tag like "json" on the opening fence line.
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		first := strings.TrimSpace(s[:idx])
		if len(first) <= 10 && !strings.ContainsAny(first, "{}[]") {
			s = s[idx+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
