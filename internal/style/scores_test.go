// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package style

import (
	"testing"

	"draftdeck/internal/models"
)

func scoreByLabel(t *testing.T, scores []Score, label string) float64 {
	t.Helper()
	for _, s := range scores {
		if s.Label == label {
			return s.Value
		}
	}
	t.Fatalf("no score labeled %q", label)
	return 0
}

func TestScoresFullSummary(t *testing.T) {
	summary := models.Summary{
		"tone_adjectives":     []any{"warm", "excited", "analytical"},
		"content_pillars":     []any{"a", "b", "c"},
		"cta_styles":          []any{"subscribe"},
		"formality":           "formal",
		"vocabulary_level":    "advanced",
		"emoji_usage":         "light",
		"avg_sentence_length": float64(15),
	}

	scores := Scores(summary)
	if len(scores) != 7 {
		t.Fatalf("got %d axes, want 7", len(scores))
	}

	tests := []struct {
		label string
		want  float64
	}{
		{"Emotion", 5},         // base 3 + warm + excited
		{"Informational", 7},   // base 4 + 3 pillars
		{"Persuasiveness", 4},  // base 3 + 1 cta
		{"Formality", 8},
		{"Vocabulary", 9},
		{"Emoji usage", 4},
		{"Sentence length", 10}, // avg exactly 15
	}
	for _, tt := range tests {
		if got := scoreByLabel(t, scores, tt.label); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.label, got, tt.want)
		}
	}
}

func TestScoresEmptySummaryUsesDefaults(t *testing.T) {
	scores := Scores(models.Summary{})

	tests := []struct {
		label string
		want  float64
	}{
		{"Emotion", 3},
		{"Informational", 4},
		{"Persuasiveness", 3},
		{"Formality", 5},
		{"Vocabulary", 6},
		{"Emoji usage", 1},     // missing reads as "none"
		{"Sentence length", 9}, // default avg 14, one off the sweet spot
	}
	for _, tt := range tests {
		if got := scoreByLabel(t, scores, tt.label); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.label, got, tt.want)
		}
	}
}

func TestScoresClampAtTen(t *testing.T) {
	summary := models.Summary{
		"content_pillars": []any{"a", "b", "c", "d", "e", "f", "g", "h"},
		"tone_adjectives": []any{"warm", "excited", "bold", "empathetic", "fun", "warm tone", "very bold", "fun again", "warmhearted"},
	}
	scores := Scores(summary)
	if got := scoreByLabel(t, scores, "Informational"); got != 10 {
		t.Errorf("Informational = %v, want clamp at 10", got)
	}
	if got := scoreByLabel(t, scores, "Emotion"); got != 10 {
		t.Errorf("Emotion = %v, want clamp at 10", got)
	}
}

func TestScoresExtremeSentenceLength(t *testing.T) {
	summary := models.Summary{"avg_sentence_length": float64(60)}
	if got := scoreByLabel(t, Scores(summary), "Sentence length"); got != 1 {
		t.Errorf("Sentence length = %v, want floor of 1 for far-off average", got)
	}
}
