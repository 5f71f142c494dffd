// Copyright (c) 2026 Fotomoment. All rights reserved.
// Author: m.hartmann@fotomoment.app

package gallery

import (
	"strings"

	"github.com/fotomoment/gallery-api/internal/platform/constants"
)

// BuildFilter produces the store query predicate matching all assets of one
// event, across both addressing conventions.
//
// One event, two historical addressing schemes: operators uploaded into the
// "events/<name>" folder AND tagged flat "event_<name>" at different times,
// so the predicate is a logical OR of both — not a preference order. The
// folder side uses the quoted exact-path form: the unquoted prefix form
// breaks on names containing spaces and matches events whose names are
// prefixes of each other. Results are restricted to image resources, plus
// the approval tag when approvedOnly is set.
//
// Pure function over strings; every endpoint resolves addresses through it.
func BuildFilter(eventID string, approvedOnly bool) string {
	folderPath := constants.EventFolderPrefix + eventID
	eventTag := constants.EventTagPrefix + eventID

	var expr strings.Builder
	expr.WriteString(`(folder:"` + escapeExpressionValue(folderPath) + `"`)
	expr.WriteString(` OR tags:"` + escapeExpressionValue(eventTag) + `")`)
	expr.WriteString(" AND resource_type:image")
	if approvedOnly {
		expr.WriteString(" AND tags:" + constants.ApprovedTag)
	}
	return expr.String()
}

// escapeExpressionValue keeps a quoted expression literal well-formed when
// the event id itself contains quotes or backslashes.
func escapeExpressionValue(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	return strings.ReplaceAll(value, `"`, `\"`)
}
