// Copyright (c) 2026 Fotomoment. All rights reserved.
// Author: m.hartmann@fotomoment.app

/*
Package gallery implements the event photo moderation workflow.

Visitors see only approved photos for a named event; admins see everything
and move photos between pending/approved/deleted in bulk. An "event" is a
purely logical grouping with no registry of its own: it exists in two
historical addressing conventions on the store (the canonical folder path
"events/<name>" and the legacy flat tag "event_<name>"), and the set of
known events is derived by scanning asset identifiers.

Layout follows the usual domain split:

  - filter.go: event address resolution (one normalized predicate).
  - discovery.go: event grouping from identifier path segments.
  - bulk.go: concurrent per-asset mutation fan-out.
  - service.go: orchestration against the media store.
  - http.go: the six endpoint handlers.
*/
package gallery

import (
	"time"

	"github.com/fotomoment/gallery-api/internal/media"
)

// AdminImage is the admin-facing view of one asset, including moderation
// state.
type AdminImage struct {
	PublicID  string    `json:"public_id"`
	SecureURL string    `json:"secure_url"`
	CreatedAt time.Time `json:"created_at"`
	Tags      []string  `json:"tags"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	// Approved is derived from tag membership, never stored.
	Approved bool `json:"approved"`
}

// PublicImage is the visitor-facing view of one approved asset. Tags and the
// approval flag are deliberately stripped.
type PublicImage struct {
	PublicID  string    `json:"public_id"`
	SecureURL string    `json:"secure_url"`
	CreatedAt time.Time `json:"created_at"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
}

// EventFolder is one discovered event grouping.
type EventFolder struct {
	// Name is the logical event name.
	Name string `json:"name"`
	// Path is the canonical folder path, "events/<name>", regardless of
	// which convention the underlying assets actually use.
	Path string `json:"path"`
}

func adminImageFromAsset(asset media.Asset) AdminImage {
	return AdminImage{
		PublicID:  asset.PublicID,
		SecureURL: asset.SecureURL,
		CreatedAt: asset.CreatedAt,
		Tags:      asset.Tags,
		Width:     asset.Width,
		Height:    asset.Height,
		Approved:  asset.Approved(),
	}
}

func publicImageFromAsset(asset media.Asset) PublicImage {
	return PublicImage{
		PublicID:  asset.PublicID,
		SecureURL: asset.SecureURL,
		CreatedAt: asset.CreatedAt,
		Width:     asset.Width,
		Height:    asset.Height,
	}
}
