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

type pexelsPhoto struct {
	URL             string `json:"url"`
	Photographer    string `json:"photographer"`
	PhotographerURL string `json:"photographer_url"`
	Alt             string `json:"alt"`
	Src             struct {
		Medium string `json:"medium"`
		Large  string `json:"large"`
	} `json:"src"`
}

type pexelsResponse struct {
	Photos []pexelsPhoto `json:"photos"`
}

func (s *Service) searchPexels(ctx context.Context, query string) []Result {
	if s.pexelsKey == "" {
		return nil
	}

	endpoint := fmt.Sprintf("%s/v1/search?query=%s&per_page=%d",
		s.pexelsBaseURL, url.QueryEscape(query), perPage)

	var body pexelsResponse
	header := http.Header{"Authorization": {s.pexelsKey}}
	if !s.doJSON(ctx, endpoint, header, &body) {
		return nil
	}

	results := make([]Result, 0, len(body.Photos))
	for _, p := range body.Photos {
		results = append(results, Result{
			Thumb:  p.Src.Medium,
			URL:    p.Src.Large,
			Page:   p.URL,
			Title:  p.Alt,
			Source: "pexels",
			CreditHTML: fmt.Sprintf(`Photo by <a href=%q>%s</a> on <a href="https://www.pexels.com">Pexels</a>`,
				p.PhotographerURL, p.Photographer),
		})
	}
	return results
}
