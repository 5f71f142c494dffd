// Copyright (c) 2026 Fotomoment. All rights reserved.
// Author: m.hartmann@fotomoment.app

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts common body decoding and query parameter patterns, ensuring
consistent error handling across all handlers.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/fotomoment/gallery-api/internal/platform/apperr"
)

// ErrInvalidJSON is returned when the request body cannot be decoded.
var ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return ErrInvalidJSON
	}
	return nil
}

/*
Query retrieves a named query string parameter, trimmed of whitespace.
*/
func Query(request *http.Request, name string) string {
	return strings.TrimSpace(request.URL.Query().Get(name))
}

/*
RequiredQuery retrieves a named query string parameter and fails with a 400
validation error if it is absent or blank.
*/
func RequiredQuery(request *http.Request, name string) (string, error) {
	value := Query(request, name)
	if value == "" {
		return "", apperr.ValidationError("Missing " + name + " parameter")
	}
	return value, nil
}
