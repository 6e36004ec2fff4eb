// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package style

import (
	"math"
	"strings"

	"draftdeck/internal/models"
)

// Score is one axis of the radar chart shown on the style page.
type Score struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

var formalityScores = map[string]float64{
	"casual":  3,
	"neutral": 5,
	"formal":  8,
}

var vocabularyScores = map[string]float64{
	"simple":   3,
	"moderate": 6,
	"advanced": 9,
}

var emojiScores = map[string]float64{
	"none":     1,
	"light":    4,
	"moderate": 7,
	"heavy":    9,
}

// warmWords are the tone adjectives that count toward the emotion axis.
var warmWords = []string{"warm", "excited", "bold", "empathetic", "fun"}

// Scores derives the seven radar-chart axes from a summary. It is pure
// arithmetic over the summary fields; missing fields fall back to fixed
// per-key defaults so a degraded profile still renders a chart.
func Scores(summary models.Summary) []Score {
	emotion := 3.0
	for _, adj := range summary.Strings("tone_adjectives") {
		lower := strings.ToLower(adj)
		for _, w := range warmWords {
			if strings.Contains(lower, w) {
				emotion++
				break
			}
		}
	}

	informational := 4 + float64(len(summary.Strings("content_pillars")))
	persuasive := 3 + float64(len(summary.Strings("cta_styles")))

	// Peaks at a 15-word average and falls off linearly both ways,
	// never below 1.
	avgSentence := summary.Num("avg_sentence_length", 14)
	sentenceScore := math.Max(1, 10-math.Min(10, math.Abs(avgSentence-15)))

	return []Score{
		{Label: "Emotion", Value: math.Min(10, emotion)},
		{Label: "Informational", Value: math.Min(10, informational)},
		{Label: "Persuasiveness", Value: math.Min(10, persuasive)},
		{Label: "Formality", Value: lookup(formalityScores, summary.Str("formality", ""), 5)},
		{Label: "Vocabulary", Value: lookup(vocabularyScores, summary.Str("vocabulary_level", ""), 6)},
		{Label: "Emoji usage", Value: lookup(emojiScores, summary.Str("emoji_usage", "none"), 1)},
		{Label: "Sentence length", Value: sentenceScore},
	}
}

func lookup(table map[string]float64, key string, def float64) float64 {
	if v, ok := table[strings.ToLower(strings.TrimSpace(key))]; ok {
		return v
	}
	return def
}
