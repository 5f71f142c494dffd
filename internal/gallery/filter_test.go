// Copyright (c) 2026 Fotomoment. All rights reserved.
// Author: m.hartmann@fotomoment.app

package gallery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fotomoment/gallery-api/internal/gallery"
)

/*
TestBuildFilter_BothConventions verifies that the predicate ORs the folder
path and the legacy event tag, restricted to images.
*/
func TestBuildFilter_BothConventions(t *testing.T) {
	expression := gallery.BuildFilter("fasching-2026", false)

	assert.Equal(t,
		`(folder:"events/fasching-2026" OR tags:"event_fasching-2026") AND resource_type:image`,
		expression,
	)
}

/*
TestBuildFilter_ApprovedOnly verifies that approved-only is strictly narrower:
the same predicate plus the approval tag conjunct.
*/
func TestBuildFilter_ApprovedOnly(t *testing.T) {
	base := gallery.BuildFilter("fasching-2026", false)
	narrowed := gallery.BuildFilter("fasching-2026", true)

	assert.Equal(t, base+" AND tags:approved", narrowed)
}

/*
TestBuildFilter_QuotedExactPath verifies the quoted exact-path form: event
names with spaces stay intact, and names that are prefixes of each other
produce distinct predicates.
*/
func TestBuildFilter_QuotedExactPath(t *testing.T) {
	withSpace := gallery.BuildFilter("Fasching 2026", false)
	assert.Contains(t, withSpace, `folder:"events/Fasching 2026"`)

	long := gallery.BuildFilter("sommerfest-2026", false)
	assert.NotContains(t, long, `folder:"events/sommerfest"`)
}

/*
TestBuildFilter_EscapesQuotes verifies that quotes and backslashes in the
event id cannot break the quoted literal.
*/
func TestBuildFilter_EscapesQuotes(t *testing.T) {
	expression := gallery.BuildFilter(`a"b`, false)

	assert.Contains(t, expression, `folder:"events/a\"b"`)
	assert.Contains(t, expression, `tags:"event_a\"b"`)

	backslashed := gallery.BuildFilter(`a\b`, false)
	assert.Contains(t, backslashed, `folder:"events/a\\b"`)
}
