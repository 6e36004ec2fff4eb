// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generate

import (
	"context"
	"fmt"
	"strings"

	"draftdeck/internal/models"
	"draftdeck/internal/style"
)

// Adjustments are the guided-improvement knobs. All fields are
// optional; at least one must be set for an improve call to make sense
// (the handler enforces that).
type Adjustments struct {
	Tone    string `json:"tone"`
	Length  string `json:"length"` // "short", "medium" or "long"; medium keeps the current length
	Example bool   `json:"example"`
	Data    bool   `json:"data"`
	Note    string `json:"note"` // free-text instruction
}

// Empty reports whether no knob is set.
func (a Adjustments) Empty() bool {
	return a.Tone == "" && a.Length == "" && !a.Example && !a.Data && a.Note == ""
}

// Instructions renders the knobs as prompt lines in a fixed order so
// repeated calls with the same knobs produce the same prompt.
func (a Adjustments) Instructions() string {
	var lines []string
	if a.Tone != "" {
		lines = append(lines, "Adjust the tone to be more "+a.Tone+".")
	}
	switch a.Length {
	case "short":
		lines = append(lines, "Make it noticeably shorter.")
	case "long":
		lines = append(lines, "Make it noticeably longer.")
	}
	if a.Example {
		lines = append(lines, "Add a concrete example.")
	}
	if a.Data {
		lines = append(lines, "Add a supporting statistic or data point.")
	}
	if a.Note != "" {
		lines = append(lines, "Additional instruction: "+a.Note)
	}
	return strings.Join(lines, "\n")
}

// Improve rewrites an existing draft per the adjustment knobs, keeping
// the author's voice. The result is a full replacement body; the caller
// stores it as the next version.
func (s *Service) Improve(ctx context.Context, summary models.Summary, body string, adj Adjustments) (string, error) {
	userPrompt := fmt.Sprintf(`Rewrite the draft below, keeping the author's voice and the same topic.

%s

Output only the rewritten draft in Markdown, no commentary.

DRAFT:
%s`, adj.Instructions(), body)

	improved, err := s.backend.GenerateWithRetry(ctx, StylePrompt(summary), userPrompt)
	if err != nil {
		return "", fmt.Errorf("improve: %w", err)
	}
	return style.StripCodeFences(improved), nil
}

// ChangeTopic regenerates an item from scratch on a new topic. Same
// output shape as Generate; the caller also updates the item's topic.
func (s *Service) ChangeTopic(ctx context.Context, summary models.Summary, ct models.ContentType, newTopic string) (*Draft, error) {
	return s.Generate(ctx, summary, ct, newTopic)
}
