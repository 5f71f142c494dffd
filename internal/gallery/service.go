// Copyright (c) 2026 Fotomoment. All rights reserved.
// Author: m.hartmann@fotomoment.app

package gallery

import (
	"context"
	"fmt"

	"github.com/fotomoment/gallery-api/internal/media"
	"github.com/fotomoment/gallery-api/internal/platform/apperr"
	"github.com/fotomoment/gallery-api/internal/platform/constants"
)

// Service orchestrates the moderation workflow against the media store.
//
// It holds no per-request state: the store owns the single authoritative
// copy of every tag set, and every operation queries it fresh. The only
// process-wide state is the lazily-resolved store handle inside the
// provider.
type Service struct {
	stores *media.Provider
}

// NewService creates the gallery service.
func NewService(stores *media.Provider) *Service {
	return &Service{stores: stores}
}

// # Listings

// ListEventImages returns every asset of an event (pending and approved),
// newest first, with the derived approval flag.
//
// The listing is a single page capped at [constants.SearchPageCap]; larger
// populations are silently truncated.
func (s *Service) ListEventImages(ctx context.Context, eventID string) ([]AdminImage, error) {
	store, err := s.stores.Get()
	if err != nil {
		return nil, err
	}

	assets, err := store.Search(ctx, media.SearchQuery{
		Expression:  BuildFilter(eventID, false),
		MaxResults:  constants.SearchPageCap,
		WithTags:    true,
		NewestFirst: true,
	})
	if err != nil {
		return nil, apperr.Upstream(fmt.Errorf("list event %q: %w", eventID, err))
	}

	images := make([]AdminImage, 0, len(assets))
	for _, asset := range assets {
		images = append(images, adminImageFromAsset(asset))
	}
	return images, nil
}

// ListApprovedImages returns only the approved assets of an event, newest
// first, in the stripped public shape.
func (s *Service) ListApprovedImages(ctx context.Context, eventID string) ([]PublicImage, error) {
	store, err := s.stores.Get()
	if err != nil {
		return nil, err
	}

	assets, err := store.Search(ctx, media.SearchQuery{
		Expression:  BuildFilter(eventID, true),
		MaxResults:  constants.SearchPageCap,
		NewestFirst: true,
	})
	if err != nil {
		return nil, apperr.Upstream(fmt.Errorf("list approved for event %q: %w", eventID, err))
	}

	images := make([]PublicImage, 0, len(assets))
	for _, asset := range assets {
		images = append(images, publicImageFromAsset(asset))
	}
	return images, nil
}

// ListEventFolders scans one unfiltered image listing and derives the set of
// known events from the identifiers. Subject to the same page cap (and thus
// the same silent truncation) as every other listing.
func (s *Service) ListEventFolders(ctx context.Context) ([]EventFolder, error) {
	store, err := s.stores.Get()
	if err != nil {
		return nil, err
	}

	assets, err := store.Search(ctx, media.SearchQuery{
		Expression: "resource_type:image",
		MaxResults: constants.SearchPageCap,
	})
	if err != nil {
		return nil, apperr.Upstream(fmt.Errorf("list event folders: %w", err))
	}

	publicIDs := make([]string, 0, len(assets))
	for _, asset := range assets {
		publicIDs = append(publicIDs, asset.PublicID)
	}
	return GroupEventFolders(publicIDs), nil
}

// # Bulk Mutations

// Approve adds the approval tag to every id in the batch. Tag-add is a set
// union on the store side, so re-approving an approved asset is a no-op.
func (s *Service) Approve(ctx context.Context, publicIDs []string) ([]media.MutationResult, error) {
	store, err := s.storeForBatch(publicIDs)
	if err != nil {
		return nil, err
	}
	return applyBulk(ctx, publicIDs, func(ctx context.Context, publicID string) (media.MutationResult, error) {
		return store.AddTag(ctx, constants.ApprovedTag, publicID)
	})
}

// Unapprove removes the approval tag from every id in the batch.
func (s *Service) Unapprove(ctx context.Context, publicIDs []string) ([]media.MutationResult, error) {
	store, err := s.storeForBatch(publicIDs)
	if err != nil {
		return nil, err
	}
	return applyBulk(ctx, publicIDs, func(ctx context.Context, publicID string) (media.MutationResult, error) {
		return store.RemoveTag(ctx, constants.ApprovedTag, publicID)
	})
}

// Delete permanently destroys every id in the batch. Irreversible.
func (s *Service) Delete(ctx context.Context, publicIDs []string) ([]media.MutationResult, error) {
	store, err := s.storeForBatch(publicIDs)
	if err != nil {
		return nil, err
	}
	return applyBulk(ctx, publicIDs, func(ctx context.Context, publicID string) (media.MutationResult, error) {
		return store.Destroy(ctx, publicID)
	})
}

// storeForBatch validates the batch shape before touching store
// configuration, so an empty batch is a 400 even when credentials are
// missing.
func (s *Service) storeForBatch(publicIDs []string) (media.Store, error) {
	if err := ValidateBatch(publicIDs); err != nil {
		return nil, err
	}
	return s.stores.Get()
}
