// Copyright (c) 2026 Fotomoment. All rights reserved.
// Author: m.hartmann@fotomoment.app

package gallery

import (
	"strings"

	"github.com/fotomoment/gallery-api/internal/platform/constants"
)

// GroupEventFolders derives the distinct event groupings from raw asset
// identifiers. There is no authoritative event registry; path segments are
// all there is.
//
// Segment rules, per identifier split on '/':
//   - "events/<name>/..." (three or more segments): the event is <name>.
//   - "<name>/..." (two or more segments): the event is <name>.
//   - No '/' at all: the asset belongs to no grouping and is skipped.
//
// Names are deduplicated with set semantics; output order is first-occurrence
// order of the input, NOT sorted. Callers must not rely on any ordering
// beyond "stable for a given input sequence".
func GroupEventFolders(publicIDs []string) []EventFolder {
	seen := make(map[string]struct{})
	folders := make([]EventFolder, 0)

	for _, publicID := range publicIDs {
		if !strings.Contains(publicID, "/") {
			continue
		}

		parts := strings.Split(publicID, "/")

		var name string
		if parts[0] == "events" && len(parts) >= 3 {
			name = parts[1]
		} else {
			// Root-level convention, including the two-segment
			// "events/<file>" corner where "events" itself is the name.
			name = parts[0]
		}

		if _, duplicate := seen[name]; duplicate {
			continue
		}
		seen[name] = struct{}{}

		folders = append(folders, EventFolder{
			Name: name,
			Path: constants.EventFolderPrefix + name,
		})
	}

	return folders
}
