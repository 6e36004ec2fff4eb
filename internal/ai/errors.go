// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// APIError is returned when a provider responds with a non-200 status.
// Status is preserved so callers can distinguish rate limits and server
// faults (worth retrying) from bad requests and auth failures (not).
type APIError struct {
	Provider string
	Status   int
	Body     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API error (status %d): %s", e.Provider, e.Status, e.Body)
}

// IsTransient reports whether an error from a Provider call is worth
// retrying: rate limits, provider-side 5xx faults, and network-level
// failures. Everything else (4xx, parse errors, cancelled contexts) is
// permanent from the caller's point of view.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusTooManyRequests || apiErr.Status >= 500
	}

	// Connection-level failures surface as *url.Error wrapping a net.Error.
	var netErr net.Error
	return errors.As(err, &netErr)
}
