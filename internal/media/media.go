// Copyright (c) 2026 Fotomoment. All rights reserved.
// Author: m.hartmann@fotomoment.app

/*
Package media abstracts the remote media asset store.

The store is the single authoritative owner of every asset and its tag set;
this service never caches either across requests. The store is reached
through exactly four operations — query-by-expression, tag-add, tag-remove,
and destroy — captured by the [Store] interface. cloudinary.go adapts the
interface to the vendor SDK; tests substitute fakes.
*/
package media

import (
	"context"
	"slices"
	"time"

	"github.com/fotomoment/gallery-api/internal/platform/constants"
)

// Asset is one stored photo as reported by the store.
type Asset struct {
	// PublicID is the store-assigned identifier. It encodes a path-like
	// hierarchy with '/' separators (e.g. "events/Fasching 2026/abc123").
	PublicID string `json:"public_id"`
	// SecureURL is the HTTPS delivery URL.
	SecureURL string `json:"secure_url"`
	// CreatedAt is the store-side creation timestamp.
	CreatedAt time.Time `json:"created_at"`
	// Tags is the asset's free-text label set (unordered, store-deduplicated).
	Tags []string `json:"tags"`

	Width  int `json:"width"`
	Height int `json:"height"`
}

// Approved reports whether the asset carries the approval tag.
//
// Approval has no representation other than tag membership; this projection
// is computed fresh from the store's answer on every request.
func (a Asset) Approved() bool {
	return slices.Contains(a.Tags, constants.ApprovedTag)
}

// SearchQuery describes a single-page query-by-expression listing.
type SearchQuery struct {
	// Expression is the store's query predicate syntax.
	Expression string
	// MaxResults caps the page size. There is no pagination loop; results
	// beyond the cap are silently truncated.
	MaxResults int
	// WithTags requests the tag set of each returned asset.
	WithTags bool
	// NewestFirst sorts by creation time, descending.
	NewestFirst bool
}

// MutationResult is the normalized outcome of one per-asset mutation.
type MutationResult struct {
	PublicID string `json:"public_id"`
	Result   string `json:"result"`
}

// Store is the minimal surface of the remote media store.
//
// All methods hit the remote store directly; none retry.
type Store interface {
	// Search runs one query-by-expression listing and returns at most
	// query.MaxResults assets.
	Search(ctx context.Context, query SearchQuery) ([]Asset, error)

	// AddTag adds a tag to one asset. Adding an already-present tag is a
	// no-op on the store side (the tag set is a set).
	AddTag(ctx context.Context, tag, publicID string) (MutationResult, error)

	// RemoveTag removes a tag from one asset. Removing an absent tag is a
	// no-op on the store side.
	RemoveTag(ctx context.Context, tag, publicID string) (MutationResult, error)

	// Destroy permanently deletes one asset. Irreversible; there is no
	// soft-delete or undo.
	Destroy(ctx context.Context, publicID string) (MutationResult, error)
}
