// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	// maxAttempts is the total number of tries for one generation call.
	maxAttempts = 3

	// initialBackoff is the delay before the first retry; it doubles on
	// each subsequent retry (1.5s, 3s).
	initialBackoff = 1500 * time.Millisecond
)

// GenerateWithRetry calls the registry's active provider, retrying transient
// failures (rate limits, 5xx, connection errors) with exponential backoff.
// Permanent failures and exhausted retries return the original error.
func (r *Registry) GenerateWithRetry(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	backoff := retry.WithMaxRetries(maxAttempts-1, retry.NewExponential(initialBackoff))

	var result string
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		out, err := r.Generate(ctx, systemPrompt, userPrompt)
		if err != nil {
			if IsTransient(err) {
				slog.Warn("transient ai failure, will retry", "provider", r.ActiveName(), "error", err)
				return retry.RetryableError(err)
			}
			return err
		}
		result = out
		return nil
	})
	if err != nil {
		return "", err
	}
	return result, nil
}
