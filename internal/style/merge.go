// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package style

import (
	"strings"

	"draftdeck/internal/models"
)

// maxKeywords caps user-entered keyword lists before they enter prompts.
const maxKeywords = 20

// MergeOnboarding overlays onboarding answers on top of an analyzed
// summary. Onboarding wins for the keys it sets: what the user told us
// about themselves beats what the analyzer inferred. The input summary
// is not mutated.
func MergeOnboarding(summary models.Summary, onboarding *models.Onboarding) models.Summary {
	merged := summary.Clone()
	if merged == nil {
		merged = models.Summary{}
	}
	if onboarding == nil {
		return merged
	}

	if v := strings.TrimSpace(onboarding.Industry); v != "" {
		merged["industry"] = v
	}
	if v := strings.TrimSpace(onboarding.Goals); v != "" {
		merged["goals"] = v
	}
	if v := strings.TrimSpace(onboarding.Bio); v != "" {
		merged["author_bio"] = v
	}
	if v := strings.TrimSpace(onboarding.StyleSelfDesc); v != "" {
		merged["user_style_self_desc"] = v
	}
	if kw := ParseKeywords(onboarding.TopicalKeywords); len(kw) > 0 {
		merged["user_topical_keywords"] = kw
	}
	if kw := ParseKeywords(onboarding.StyleKeywords); len(kw) > 0 {
		merged["style_keywords"] = kw
	}

	return merged
}

// ParseKeywords splits a keyword string on commas, semicolons and
// newlines, trims each entry, drops repeats keeping first occurrence,
// and caps the list.
func ParseKeywords(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})
	seen := make(map[string]bool)
	var out []string
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
		if len(out) == maxKeywords {
			break
		}
	}
	return out
}
