// Copyright (c) 2026 Fotomoment. All rights reserved.
// Author: m.hartmann@fotomoment.app

package media

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fotomoment/gallery-api/internal/platform/apperr"
)

type nopStore struct{}

func (nopStore) Search(ctx context.Context, query SearchQuery) ([]Asset, error) {
	return nil, nil
}

func (nopStore) AddTag(ctx context.Context, tag, publicID string) (MutationResult, error) {
	return MutationResult{}, nil
}

func (nopStore) RemoveTag(ctx context.Context, tag, publicID string) (MutationResult, error) {
	return MutationResult{}, nil
}

func (nopStore) Destroy(ctx context.Context, publicID string) (MutationResult, error) {
	return MutationResult{}, nil
}

/*
TestProvider_FailureIsRetried verifies that a failed resolution is not
cached: every Get reattempts until one succeeds.
*/
func TestProvider_FailureIsRetried(t *testing.T) {
	attempts := 0
	provider := &Provider{open: func() (Store, error) {
		attempts++
		if attempts < 3 {
			return nil, errors.New("credentials not yet provisioned")
		}
		return nopStore{}, nil
	}}

	// 1. Two failing attempts, neither cached
	for i := 0; i < 2; i++ {
		store, err := provider.Get()
		require.Error(t, err)
		assert.Nil(t, store)
	}

	// 2. Third attempt succeeds
	store, err := provider.Get()
	require.NoError(t, err)
	assert.NotNil(t, store)
	assert.Equal(t, 3, attempts)
}

/*
TestProvider_SuccessIsCached verifies that after one successful resolution
the open function is never called again.
*/
func TestProvider_SuccessIsCached(t *testing.T) {
	attempts := 0
	provider := &Provider{open: func() (Store, error) {
		attempts++
		return nopStore{}, nil
	}}

	first, err := provider.Get()
	require.NoError(t, err)
	second, err := provider.Get()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, attempts)
}

/*
TestProvider_StaticAlwaysReturns verifies the static constructor hands back
the injected store.
*/
func TestProvider_StaticAlwaysReturns(t *testing.T) {
	injected := nopStore{}
	provider := NewStaticProvider(injected)

	store, err := provider.Get()

	require.NoError(t, err)
	assert.Equal(t, injected, store)
}

/*
TestOpenCloudinary_BlankCredentials verifies that blank or whitespace-only
credentials resolve to the configuration error kind, re-read from the
environment on each attempt.
*/
func TestOpenCloudinary_BlankCredentials(t *testing.T) {
	t.Setenv("CLOUDINARY_CLOUD_NAME", "   ")
	t.Setenv("CLOUDINARY_API_KEY", "key")
	t.Setenv("CLOUDINARY_API_SECRET", "secret")

	store, err := openCloudinary()

	assert.Nil(t, store)
	var appError *apperr.AppError
	require.ErrorAs(t, err, &appError)
	assert.Equal(t, "CONFIGURATION_ERROR", appError.Code)
	assert.Equal(t, 500, appError.HTTPStatus)
}

/*
TestOpenCloudinary_LateProvisioning verifies the full retry story through
the provider: a process that starts without credentials succeeds once they
appear in the environment.
*/
func TestOpenCloudinary_LateProvisioning(t *testing.T) {
	t.Setenv("CLOUDINARY_CLOUD_NAME", "")
	t.Setenv("CLOUDINARY_API_KEY", "")
	t.Setenv("CLOUDINARY_API_SECRET", "")

	provider := NewProvider()

	_, err := provider.Get()
	require.Error(t, err)

	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo")
	t.Setenv("CLOUDINARY_API_KEY", "key")
	t.Setenv("CLOUDINARY_API_SECRET", "secret")

	store, err := provider.Get()
	require.NoError(t, err)
	assert.NotNil(t, store)
}
