// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generate

import (
	"fmt"
	"strings"

	"draftdeck/internal/models"
)

// StylePrompt renders a style profile summary into the system prompt
// that makes the backend write as the author. Missing summary keys are
// simply omitted; a degraded profile yields a short but valid prompt.
func StylePrompt(summary models.Summary) string {
	var b strings.Builder
	b.WriteString("You are a ghostwriter who writes exactly like the author described below. Match their voice so closely that regular readers cannot tell the difference.\n")

	writeLine := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%s: %s\n", label, value)
		}
	}
	writeList := func(label string, values []string) {
		if len(values) > 0 {
			fmt.Fprintf(&b, "%s: %s\n", label, strings.Join(values, ", "))
		}
	}

	writeLine("Voice", summary.Str("voice_summary", ""))
	writeList("Tone", summary.Strings("tone_adjectives"))
	writeLine("Formality", summary.Str("formality", ""))
	writeLine("Cadence", summary.Str("cadence", ""))
	writeLine("Vocabulary level", summary.Str("vocabulary_level", ""))
	if n := summary.Num("avg_sentence_length", 0); n > 0 {
		fmt.Fprintf(&b, "Average sentence length: %.0f words\n", n)
	}
	writeLine("Emoji usage", summary.Str("emoji_usage", ""))
	writeLine("Link usage", summary.Str("link_usage", ""))
	writeLine("Punctuation habits", summary.Str("punctuation_habits", ""))
	writeList("Structural patterns", summary.Strings("structural_patterns"))
	writeList("Common phrases", summary.Strings("common_phrases"))
	writeList("Jargon domains", summary.Strings("jargon_domains"))
	writeLine("Audience", summary.Str("audience", ""))
	writeLine("Humor", summary.Str("humor_style", ""))
	writeLine("Storytelling", summary.Str("storytelling", ""))
	writeLine("Hashtag habits", summary.Str("hashtag_habits", ""))
	writeList("Formatting quirks", summary.Strings("formatting_quirks"))
	writeLine("Industry", summary.Str("industry", ""))
	writeLine("About the author", summary.Str("author_bio", ""))
	writeLine("How they describe their own style", summary.Str("user_style_self_desc", ""))
	writeList("Topics they care about", summary.Strings("user_topical_keywords"))
	writeList("Always do", summary.Strings("style_do"))
	writeList("Never do", summary.Strings("do_not_do"))

	return strings.TrimRight(b.String(), "\n")
}
