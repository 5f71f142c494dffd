// Copyright (c) 2026 Fotomoment. All rights reserved.
// Author: m.hartmann@fotomoment.app

package gallery_test

import (
	"context"
	"slices"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fotomoment/gallery-api/internal/identity"
	"github.com/fotomoment/gallery-api/internal/media"
)

// fakeStore is an in-memory [media.Store] that records every call and
// emulates the store's set semantics for tags.
type fakeStore struct {
	mu sync.Mutex

	// assets returned by Search; tagSets is the authoritative tag state
	// mutated by AddTag/RemoveTag.
	assets  []media.Asset
	tagSets map[string][]string

	// failOn maps a public id to the error its mutation should return.
	failOn map[string]error

	searches  []media.SearchQuery
	destroyed []string
	mutations int
}

func newFakeStore(assets ...media.Asset) *fakeStore {
	tagSets := make(map[string][]string)
	for _, asset := range assets {
		tagSets[asset.PublicID] = slices.Clone(asset.Tags)
	}
	return &fakeStore{
		assets:  assets,
		tagSets: tagSets,
		failOn:  make(map[string]error),
	}
}

func (f *fakeStore) Search(ctx context.Context, query media.SearchQuery) ([]media.Asset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searches = append(f.searches, query)
	return f.assets, nil
}

func (f *fakeStore) AddTag(ctx context.Context, tag, publicID string) (media.MutationResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mutations++
	if err := f.failOn[publicID]; err != nil {
		return media.MutationResult{}, err
	}
	if !slices.Contains(f.tagSets[publicID], tag) {
		f.tagSets[publicID] = append(f.tagSets[publicID], tag)
	}
	return media.MutationResult{PublicID: publicID, Result: "ok"}, nil
}

func (f *fakeStore) RemoveTag(ctx context.Context, tag, publicID string) (media.MutationResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mutations++
	if err := f.failOn[publicID]; err != nil {
		return media.MutationResult{}, err
	}
	f.tagSets[publicID] = slices.DeleteFunc(f.tagSets[publicID], func(existing string) bool {
		return existing == tag
	})
	return media.MutationResult{PublicID: publicID, Result: "ok"}, nil
}

func (f *fakeStore) Destroy(ctx context.Context, publicID string) (media.MutationResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mutations++
	if err := f.failOn[publicID]; err != nil {
		return media.MutationResult{}, err
	}
	f.destroyed = append(f.destroyed, publicID)
	return media.MutationResult{PublicID: publicID, Result: "ok"}, nil
}

func (f *fakeStore) mutationCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mutations
}

func (f *fakeStore) tags(publicID string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.tagSets[publicID])
}

// stubVerifier is a canned [identity.TokenVerifier].
type stubVerifier struct {
	claims *identity.Claims
	err    error
}

func (s stubVerifier) Verify(ctx context.Context, token string) (*identity.Claims, error) {
	return s.claims, s.err
}

func adminClaims(subject string) *identity.Claims {
	return &identity.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: subject},
		Admin:            true,
	}
}

func memberClaims(subject string) *identity.Claims {
	return &identity.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: subject},
	}
}
