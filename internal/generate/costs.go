// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package generate produces styled drafts through the AI backend:
// blog posts with metadata, social posts with hashtags, guided
// improvements and topic changes.
package generate

import "draftdeck/internal/models"

// Credit costs per operation. Checked against the balance before the
// backend is called and debited together with the version insert.
const (
	CostBlog        = 6
	CostSocial      = 2
	CostImprove     = 1
	CostChangeTopic = 2
)

// CostFor returns the generation cost for a content type.
func CostFor(ct models.ContentType) int {
	if ct == models.ContentTypeSocial {
		return CostSocial
	}
	return CostBlog
}
