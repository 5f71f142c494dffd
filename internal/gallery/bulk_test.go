// Copyright (c) 2026 Fotomoment. All rights reserved.
// Author: m.hartmann@fotomoment.app

package gallery_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fotomoment/gallery-api/internal/gallery"
	"github.com/fotomoment/gallery-api/internal/media"
	"github.com/fotomoment/gallery-api/internal/platform/apperr"
)

func newBulkFixture(assets ...media.Asset) (*gallery.Service, *fakeStore) {
	store := newFakeStore(assets...)
	service := gallery.NewService(media.NewStaticProvider(store))
	return service, store
}

/*
TestBulk_RejectsEmptyBatch verifies that an empty or blank-ridden batch
fails with a validation error before any store call is issued.
*/
func TestBulk_RejectsEmptyBatch(t *testing.T) {
	service, store := newBulkFixture()

	cases := map[string][]string{
		"empty":    {},
		"nil":      nil,
		"blank_id": {"events/x/1", "  "},
	}

	for name, publicIDs := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := service.Approve(context.Background(), publicIDs)

			var appError *apperr.AppError
			require.ErrorAs(t, err, &appError)
			assert.Equal(t, 400, appError.HTTPStatus)
			assert.Equal(t, "VALIDATION_ERROR", appError.Code)
			assert.Zero(t, store.mutationCount())
		})
	}
}

/*
TestBulk_ApproveAllSucceeds verifies the fan-out applies the approval tag to
every id and returns one outcome per id, in input order.
*/
func TestBulk_ApproveAllSucceeds(t *testing.T) {
	service, store := newBulkFixture(
		media.Asset{PublicID: "events/e/1"},
		media.Asset{PublicID: "events/e/2"},
		media.Asset{PublicID: "events/e/3"},
	)

	results, err := service.Approve(context.Background(), []string{"events/e/1", "events/e/2", "events/e/3"})

	require.NoError(t, err)
	require.Len(t, results, 3)
	for index, publicID := range []string{"events/e/1", "events/e/2", "events/e/3"} {
		assert.Equal(t, media.MutationResult{PublicID: publicID, Result: "ok"}, results[index])
		assert.Contains(t, store.tags(publicID), "approved")
	}
}

/*
TestBulk_ApproveIsIdempotent verifies tag-add is a set union: approving an
already-approved asset leaves its tag set unchanged.
*/
func TestBulk_ApproveIsIdempotent(t *testing.T) {
	service, store := newBulkFixture(
		media.Asset{PublicID: "events/e/1", Tags: []string{"event_e", "approved"}},
	)

	_, err := service.Approve(context.Background(), []string{"events/e/1"})

	require.NoError(t, err)
	assert.Equal(t, []string{"event_e", "approved"}, store.tags("events/e/1"))
}

/*
TestBulk_ApproveUnapproveRoundTrip verifies that approve followed by
unapprove restores the pre-approve tag set exactly, and that unapproving a
non-approved asset is a no-op.
*/
func TestBulk_ApproveUnapproveRoundTrip(t *testing.T) {
	service, store := newBulkFixture(
		media.Asset{PublicID: "events/e/1", Tags: []string{"event_e"}},
	)

	// 1. Round trip restores the original tag set
	_, err := service.Approve(context.Background(), []string{"events/e/1"})
	require.NoError(t, err)
	_, err = service.Unapprove(context.Background(), []string{"events/e/1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"event_e"}, store.tags("events/e/1"))

	// 2. Unapproving again changes nothing
	_, err = service.Unapprove(context.Background(), []string{"events/e/1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"event_e"}, store.tags("events/e/1"))
}

/*
TestBulk_PartialFailureIsNotRolledBack verifies the deliberate non-atomic
policy: one failing id fails the aggregate with an upstream error, but
mutations already applied to the other ids remain in effect and the per-id
outcomes are still returned.
*/
func TestBulk_PartialFailureIsNotRolledBack(t *testing.T) {
	service, store := newBulkFixture(
		media.Asset{PublicID: "events/e/1"},
		media.Asset{PublicID: "events/e/2"},
		media.Asset{PublicID: "events/e/3"},
	)
	store.failOn["events/e/2"] = errors.New("store rejected the call")

	results, err := service.Delete(context.Background(), []string{"events/e/1", "events/e/2", "events/e/3"})

	// 1. Aggregate fails as a generic upstream error
	var appError *apperr.AppError
	require.ErrorAs(t, err, &appError)
	assert.Equal(t, 500, appError.HTTPStatus)
	assert.Equal(t, "UPSTREAM_ERROR", appError.Code)

	// 2. The siblings were destroyed anyway — no compensation
	assert.ElementsMatch(t, []string{"events/e/1", "events/e/3"}, store.destroyed)

	// 3. Per-id outcomes are preserved for reconciliation
	require.Len(t, results, 3)
	assert.Equal(t, "ok", results[0].Result)
	assert.Equal(t, "error", results[1].Result)
	assert.Equal(t, "ok", results[2].Result)
}

/*
TestBulk_LargeBatchFanOut verifies the executor joins an arbitrary-size
batch and keeps outcomes aligned with input order despite concurrency.
*/
func TestBulk_LargeBatchFanOut(t *testing.T) {
	assets := make([]media.Asset, 0, 64)
	publicIDs := make([]string, 0, 64)
	for i := 0; i < 64; i++ {
		publicID := "events/load/" + string(rune('a'+i%26)) + "-" + string(rune('0'+i/26))
		assets = append(assets, media.Asset{PublicID: publicID})
		publicIDs = append(publicIDs, publicID)
	}
	service, store := newBulkFixture(assets...)

	results, err := service.Approve(context.Background(), publicIDs)

	require.NoError(t, err)
	require.Len(t, results, 64)
	for index, publicID := range publicIDs {
		assert.Equal(t, publicID, results[index].PublicID)
	}
	assert.Equal(t, 64, store.mutationCount())
}
