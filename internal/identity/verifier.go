// Copyright (c) 2026 Fotomoment. All rights reserved.
// Author: m.hartmann@fotomoment.app

/*
Package identity integrates with the external identity provider.

The provider owns all account state: it issues RS256-signed bearer tokens
carrying an "admin" custom claim, and publishes its signing keys as a JWKS
document. This package verifies those tokens (verifier.go), gates admin
operations on the claim (gate.go), and grants the claim out-of-band
(granter.go). Nothing is persisted locally — every admin request re-verifies
its token.
*/
package identity

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/MicahParks/jwkset"
	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload embedded inside a provider-issued bearer token.
//
// The admin capability travels inside the token rather than in a separate
// lookup, so an admin check costs a single verification and no provider
// round trip beyond the cached JWKS.
type Claims struct {
	jwt.RegisteredClaims

	// Admin is the custom capability claim set by the grantadmin tool.
	Admin bool `json:"admin"`
}

// TokenVerifier verifies a raw bearer token and returns its claims.
//
// # Why an interface?
//
// Decoupling the gate from the JWKS implementation lets tests inject a stub
// verifier without network access.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}

// VerifierOptions configures a [JWKSVerifier].
type VerifierOptions struct {
	// JWKSURL is the provider's JWKS endpoint.
	JWKSURL string
	// Issuer, when non-empty, is enforced against the token's iss claim.
	Issuer string
	// Audience, when non-empty, is enforced against the token's aud claim.
	Audience string
	// RefreshInterval is how often signing keys are re-fetched in the background.
	RefreshInterval time.Duration
	// ClientTimeout bounds each JWKS fetch.
	ClientTimeout time.Duration
}

// JWKSVerifier validates RS256 tokens against the provider's published key set.
//
// Keys are fetched once and refreshed in the background; verification itself
// never blocks on the network.
type JWKSVerifier struct {
	jwks     keyfunc.Keyfunc
	issuer   string
	audience string
}

// NewJWKSVerifier creates a verifier backed by the JWKS endpoint in opts.
//
// The key storage starts even if the provider is briefly unreachable
// (NoErrorReturnFirstHTTPReq); verification fails closed until keys arrive.
func NewJWKSVerifier(opts VerifierOptions, logger *slog.Logger) (*JWKSVerifier, error) {
	refreshInterval := opts.RefreshInterval
	if refreshInterval == 0 {
		refreshInterval = time.Hour
	}
	clientTimeout := opts.ClientTimeout
	if clientTimeout == 0 {
		clientTimeout = 10 * time.Second
	}

	storage, err := jwkset.NewStorageFromHTTP(opts.JWKSURL, jwkset.HTTPClientStorageOptions{
		Client:                    &http.Client{Timeout: clientTimeout},
		NoErrorReturnFirstHTTPReq: true,
		RefreshInterval:           refreshInterval,
		RefreshErrorHandler: func(_ context.Context, refreshErr error) {
			logger.Error("jwks_refresh_failed",
				slog.String("error", refreshErr.Error()),
				slog.String("url", opts.JWKSURL),
			)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("identity: failed to create JWKS storage: %w", err)
	}

	k, err := keyfunc.New(keyfunc.Options{Storage: storage})
	if err != nil {
		return nil, fmt.Errorf("identity: failed to create keyfunc: %w", err)
	}

	return &JWKSVerifier{
		jwks:     k,
		issuer:   opts.Issuer,
		audience: opts.Audience,
	}, nil
}

// Verify checks the signature and validity of a raw token string.
func (v *JWKSVerifier) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(30 * time.Second),
	}
	if v.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(v.audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, v.jwks.KeyfuncCtx(ctx), parserOpts...)
	if err != nil {
		return nil, fmt.Errorf("identity: invalid token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("identity: invalid token")
	}

	return claims, nil
}
