// Copyright (c) 2026 Fotomoment. All rights reserved.
// Author: m.hartmann@fotomoment.app

package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ClaimGranter sets the admin custom claim on a provider account.
//
// It talks to the provider's account-management REST surface directly and is
// only ever invoked from the out-of-band grantadmin tool, never from request
// serving. The claim takes effect when the subject next refreshes their
// token.
type ClaimGranter struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClaimGranter creates a granter for the provider at baseURL
// (e.g. "https://identitytoolkit.googleapis.com").
func NewClaimGranter(baseURL, apiKey string) *ClaimGranter {
	return &ClaimGranter{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// GrantResult echoes the account state after the claim update.
type GrantResult struct {
	SubjectID    string `json:"uid"`
	Email        string `json:"email,omitempty"`
	CustomClaims string `json:"customClaims"`
}

// GrantAdmin sets {"admin": true} as the custom claims of the given subject
// and returns the account's post-update state.
func (g *ClaimGranter) GrantAdmin(ctx context.Context, subjectID string) (*GrantResult, error) {
	if subjectID == "" {
		return nil, fmt.Errorf("identity: subject id is required")
	}

	update := map[string]string{
		"localId":          subjectID,
		"customAttributes": `{"admin":true}`,
	}
	if err := g.post(ctx, "/v1/accounts:update", update, nil); err != nil {
		return nil, fmt.Errorf("identity: failed to set admin claim: %w", err)
	}

	// Read the account back so the operator sees the claims that were stored.
	var lookup struct {
		Users []struct {
			LocalID          string `json:"localId"`
			Email            string `json:"email"`
			CustomAttributes string `json:"customAttributes"`
		} `json:"users"`
	}
	if err := g.post(ctx, "/v1/accounts:lookup", map[string][]string{"localId": {subjectID}}, &lookup); err != nil {
		return nil, fmt.Errorf("identity: failed to read account back: %w", err)
	}
	if len(lookup.Users) == 0 {
		return nil, fmt.Errorf("identity: account %s not found after update", subjectID)
	}

	return &GrantResult{
		SubjectID:    lookup.Users[0].LocalID,
		Email:        lookup.Users[0].Email,
		CustomClaims: lookup.Users[0].CustomAttributes,
	}, nil
}

// post sends a JSON body to a provider endpoint and decodes the response
// into out (when non-nil).
func (g *ClaimGranter) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	url := g.baseURL + path + "?key=" + g.apiKey
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := g.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("provider returned status %d", response.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(response.Body).Decode(out)
}
