// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"draftdeck/internal/models"
	"draftdeck/internal/style"
)

// TextGenerator is the slice of the AI registry the generator needs.
type TextGenerator interface {
	GenerateWithRetry(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Service produces drafts through the configured AI backend.
type Service struct {
	backend TextGenerator
}

// NewService creates a generation service on top of a text backend.
func NewService(backend TextGenerator) *Service {
	return &Service{backend: backend}
}

// Draft is the output of one generation call, ready to be stored as a
// content version.
type Draft struct {
	BodyMD          string
	Meta            models.Summary
	ImageSearchTerm string
}

// Generate produces a fresh draft of the given type and topic in the
// author's voice. Blog drafts get a second backend call for SEO
// metadata and an image search suggestion; social drafts get hashtags
// lifted from the body.
func (s *Service) Generate(ctx context.Context, summary models.Summary, ct models.ContentType, topic string) (*Draft, error) {
	if ct == models.ContentTypeSocial {
		return s.generateSocial(ctx, summary, topic)
	}
	return s.generateBlog(ctx, summary, topic)
}

func (s *Service) generateBlog(ctx context.Context, summary models.Summary, topic string) (*Draft, error) {
	userPrompt := fmt.Sprintf(`Write a complete blog post about: %s

Output the post in Markdown, starting with a single H1 title. Aim for 800-1200 words. Do not add commentary before or after the post.`, topic)

	body, err := s.backend.GenerateWithRetry(ctx, StylePrompt(summary), userPrompt)
	if err != nil {
		return nil, fmt.Errorf("generate blog: %w", err)
	}
	body = style.StripCodeFences(body)

	meta, err := s.MetaFromBody(ctx, topic, body)
	if err != nil {
		return nil, err
	}

	term, err := s.SuggestImageQuery(ctx, topic, body)
	if err != nil {
		// Image suggestions are decoration. The draft stands without one.
		term = ""
	}

	return &Draft{BodyMD: body, Meta: meta, ImageSearchTerm: term}, nil
}

func (s *Service) generateSocial(ctx context.Context, summary models.Summary, topic string) (*Draft, error) {
	userPrompt := fmt.Sprintf(`Write a single social media post about: %s

Keep it under 280 words. Include hashtags only if this author uses them. Output the post text only, no commentary.`, topic)

	body, err := s.backend.GenerateWithRetry(ctx, StylePrompt(summary), userPrompt)
	if err != nil {
		return nil, fmt.Errorf("generate social: %w", err)
	}
	body = style.StripCodeFences(body)

	return &Draft{
		BodyMD: body,
		Meta:   models.Summary{"hashtags": ExtractHashtags(body)},
	}, nil
}

const metaSystemPrompt = `You write SEO metadata. Respond with JSON only, no prose and no code fences.`

// MetaFromBody asks the backend for SEO metadata for a finished blog
// body. An unparseable reply degrades to metadata derived from the
// topic rather than failing the whole generation.
func (s *Service) MetaFromBody(ctx context.Context, topic, body string) (models.Summary, error) {
	userPrompt := fmt.Sprintf(`Produce SEO metadata for the blog post below. Return a JSON object with keys "meta_title" (max 60 chars), "meta_description" (max 155 chars) and "keywords" (array of 3-8 strings).

POST:
%s`, style.Truncate(body, 6000))

	raw, err := s.backend.GenerateWithRetry(ctx, metaSystemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("generate meta: %w", err)
	}

	var meta models.Summary
	if err := json.Unmarshal([]byte(style.StripCodeFences(raw)), &meta); err != nil || meta == nil {
		return models.Summary{
			"meta_title":       topic,
			"meta_description": "",
			"keywords":         []string{},
		}, nil
	}

	// Some backends return keywords as one comma-separated string.
	if kw, ok := meta["keywords"].(string); ok {
		meta["keywords"] = style.ParseKeywords(kw)
	}

	return meta, nil
}

const imageQuerySystemPrompt = `You suggest stock photo search queries. Respond with the query only: at most three words, no quotes, no hashtags, no punctuation.`

// SuggestImageQuery asks the backend for a short stock-photo search
// phrase matching the draft. The reply is clamped to three words and
// stripped of quoting the backend tends to add.
func (s *Service) SuggestImageQuery(ctx context.Context, topic, body string) (string, error) {
	userPrompt := fmt.Sprintf("Suggest one stock photo search query for a post titled %q.\n\nOpening of the post:\n%s",
		topic, style.Truncate(body, 1000))

	raw, err := s.backend.GenerateWithRetry(ctx, imageQuerySystemPrompt, userPrompt)
	if err != nil {
		return "", fmt.Errorf("image query: %w", err)
	}
	return CleanImageQuery(raw), nil
}

// CleanImageQuery normalizes a backend-suggested search phrase.
func CleanImageQuery(raw string) string {
	raw = strings.NewReplacer("\"", "", "'", "", "#", "", "`", "").Replace(raw)
	words := strings.Fields(raw)
	if len(words) > 3 {
		words = words[:3]
	}
	return strings.Join(words, " ")
}

var hashtagRe = regexp.MustCompile(`#\w+`)

// maxHashtags caps how many hashtags are lifted from a social draft.
const maxHashtags = 6

// ExtractHashtags pulls hashtags out of a social post body, first
// occurrence order, capped.
func ExtractHashtags(body string) []string {
	seen := make(map[string]bool)
	tags := []string{}
	for _, tag := range hashtagRe.FindAllString(body, -1) {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
		if len(tags) == maxHashtags {
			break
		}
	}
	return tags
}
