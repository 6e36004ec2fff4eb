// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package images

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type unsplashPhoto struct {
	Description    string `json:"description"`
	AltDescription string `json:"alt_description"`
	URLs           struct {
		Thumb   string `json:"thumb"`
		Regular string `json:"regular"`
	} `json:"urls"`
	Links struct {
		HTML string `json:"html"`
	} `json:"links"`
	User struct {
		Name  string `json:"name"`
		Links struct {
			HTML string `json:"html"`
		} `json:"links"`
	} `json:"user"`
}

type unsplashResponse struct {
	Results []unsplashPhoto `json:"results"`
}

func (s *Service) searchUnsplash(ctx context.Context, query string) []Result {
	if s.unsplashKey == "" {
		return nil
	}

	endpoint := fmt.Sprintf("%s/search/photos?query=%s&per_page=%d",
		s.unsplashBaseURL, url.QueryEscape(query), perPage)

	var body unsplashResponse
	header := http.Header{"Authorization": {"Client-ID " + s.unsplashKey}}
	if !s.doJSON(ctx, endpoint, header, &body) {
		return nil
	}

	results := make([]Result, 0, len(body.Results))
	for _, p := range body.Results {
		title := p.Description
		if title == "" {
			title = p.AltDescription
		}
		results = append(results, Result{
			Thumb:  p.URLs.Thumb,
			URL:    p.URLs.Regular,
			Page:   p.Links.HTML,
			Title:  title,
			Source: "unsplash",
			CreditHTML: fmt.Sprintf(`Photo by <a href=%q>%s</a> on <a href="https://unsplash.com">Unsplash</a>`,
				p.User.Links.HTML, p.User.Name),
		})
	}
	return results
}
