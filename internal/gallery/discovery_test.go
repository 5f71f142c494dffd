// Copyright (c) 2026 Fotomoment. All rights reserved.
// Author: m.hartmann@fotomoment.app

package gallery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fotomoment/gallery-api/internal/gallery"
)

/*
TestGroupEventFolders_SegmentRules verifies the three segment rules: the
canonical "events/<name>/..." form, the root-level "<name>/..." form, and
identifiers without '/' contributing nothing.
*/
func TestGroupEventFolders_SegmentRules(t *testing.T) {
	folders := gallery.GroupEventFolders([]string{
		"events/Fasching 2026/a.jpg",
		"Fasching 2026/b.jpg",
		"loose.jpg",
	})

	assert.Equal(t, []gallery.EventFolder{
		{Name: "Fasching 2026", Path: "events/Fasching 2026"},
	}, folders)
}

/*
TestGroupEventFolders_DedupAndOrder verifies set semantics with
first-occurrence ordering (output is deliberately not sorted).
*/
func TestGroupEventFolders_DedupAndOrder(t *testing.T) {
	folders := gallery.GroupEventFolders([]string{
		"zommerfest/1.jpg",
		"events/abschluss/2.jpg",
		"zommerfest/3.jpg",
		"events/abschluss/deep/4.jpg",
	})

	assert.Equal(t, []gallery.EventFolder{
		{Name: "zommerfest", Path: "events/zommerfest"},
		{Name: "abschluss", Path: "events/abschluss"},
	}, folders)
}

/*
TestGroupEventFolders_Deterministic verifies that the same input sequence
always yields the same output.
*/
func TestGroupEventFolders_Deterministic(t *testing.T) {
	input := []string{"events/a/1.jpg", "b/2.jpg", "events/c/3.jpg"}

	first := gallery.GroupEventFolders(input)
	second := gallery.GroupEventFolders(input)

	assert.Equal(t, first, second)
	assert.Len(t, first, 3)
}

/*
TestGroupEventFolders_TwoSegmentEventsPath verifies the corner where an
asset sits directly under "events/": the root-level rule applies and the
name becomes "events" itself.
*/
func TestGroupEventFolders_TwoSegmentEventsPath(t *testing.T) {
	folders := gallery.GroupEventFolders([]string{"events/stray.jpg"})

	assert.Equal(t, []gallery.EventFolder{
		{Name: "events", Path: "events/events"},
	}, folders)
}

/*
TestGroupEventFolders_Empty verifies an empty input yields an empty (non-nil)
slice so the JSON encodes as [] rather than null.
*/
func TestGroupEventFolders_Empty(t *testing.T) {
	folders := gallery.GroupEventFolders(nil)

	assert.NotNil(t, folders)
	assert.Empty(t, folders)
}
