// Copyright (c) 2026 Fotomoment. All rights reserved.
// Author: m.hartmann@fotomoment.app

package gallery

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/fotomoment/gallery-api/internal/media"
	"github.com/fotomoment/gallery-api/internal/platform/apperr"
)

// ErrInvalidBatch rejects an empty batch or one containing blank ids,
// before any store call is issued.
var ErrInvalidBatch = apperr.ValidationError("Missing or invalid publicIds array")

// ValidateBatch checks the shape of a bulk-mutation id list.
func ValidateBatch(publicIDs []string) error {
	if len(publicIDs) == 0 {
		return ErrInvalidBatch
	}
	for _, id := range publicIDs {
		if strings.TrimSpace(id) == "" {
			return ErrInvalidBatch
		}
	}
	return nil
}

// mutateFunc applies one store mutation to one asset.
type mutateFunc func(ctx context.Context, publicID string) (media.MutationResult, error)

// applyBulk fans the mutation out to every id concurrently and joins the
// outcomes.
//
// # Failure policy (deliberate, non-atomic)
//
// One goroutine per id, no concurrency cap, no ordering between calls. If
// any per-id call fails the aggregate fails — but mutations that already
// landed on other ids are NOT rolled back and remain in effect. There is no
// compensation; callers must treat a reported failure as "state may be
// partially mutated" and re-query to reconcile. The per-id outcome slice is
// returned even on failure for exactly that purpose.
func applyBulk(ctx context.Context, publicIDs []string, mutate mutateFunc) ([]media.MutationResult, error) {
	if err := ValidateBatch(publicIDs); err != nil {
		return nil, err
	}

	results := make([]media.MutationResult, len(publicIDs))
	failures := make([]error, len(publicIDs))

	var wg sync.WaitGroup
	for index, publicID := range publicIDs {
		wg.Add(1)
		go func(index int, publicID string) {
			defer wg.Done()
			result, err := mutate(ctx, publicID)
			if err != nil {
				failures[index] = err
				results[index] = media.MutationResult{PublicID: publicID, Result: "error"}
				return
			}
			results[index] = result
		}(index, publicID)
	}
	wg.Wait()

	if joined := errors.Join(failures...); joined != nil {
		return results, apperr.Upstream(joined)
	}
	return results, nil
}
