// Copyright (c) 2026 Fotomoment. All rights reserved.
// Author: m.hartmann@fotomoment.app

package identity

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/fotomoment/gallery-api/internal/platform/apperr"
	"github.com/fotomoment/gallery-api/internal/platform/constants"
	"github.com/fotomoment/gallery-api/internal/platform/ctxutil"
)

// Gate asserts that a request carries a verified admin bearer token.
//
// Handlers call it directly (after parameter validation) rather than
// mounting it as middleware, so request-shape errors keep their 400 status
// regardless of the caller's credentials.
type Gate struct {
	verifier TokenVerifier
}

// NewGate creates a Gate backed by the given verifier.
func NewGate(verifier TokenVerifier) *Gate {
	return &Gate{verifier: verifier}
}

// Authorize validates the Authorization header and the admin claim.
//
// # Flow
//  1. Header must be of the form 'Authorization: Bearer <token>'.
//  2. Token must verify against the identity provider. Every verification
//     failure (expired, malformed, wrong signature, provider unreachable)
//     collapses into one opaque Unauthenticated error; the real cause is
//     only logged.
//  3. The verified claims must carry admin=true, otherwise Forbidden.
//
// On success it returns the token's subject identifier.
func (g *Gate) Authorize(request *http.Request) (string, error) {
	authHeader := request.Header.Get(constants.HeaderAuthorization)
	if authHeader == "" {
		return "", apperr.Unauthenticated("Missing or invalid authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", apperr.Unauthenticated("Missing or invalid authorization header")
	}

	claims, err := g.verifier.Verify(request.Context(), parts[1])
	if err != nil {
		ctxutil.GetLogger(request.Context()).Debug("token_verification_failed",
			slog.String("error", err.Error()),
		)
		return "", apperr.Unauthenticated("Invalid authentication token")
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", apperr.Unauthenticated("Invalid authentication token")
	}

	if !claims.Admin {
		return "", apperr.Forbidden("User is not an admin")
	}

	return subject, nil
}
