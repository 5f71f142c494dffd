// Copyright (c) 2026 Fotomoment. All rights reserved.
// Author: m.hartmann@fotomoment.app

package media

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin/search"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/fotomoment/gallery-api/internal/platform/apperr"
)

// Credentials are the store secrets, read from the environment on every
// resolution attempt (not at startup) so late provisioning is picked up.
type Credentials struct {
	CloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	APIKey    string `env:"CLOUDINARY_API_KEY"`
	APISecret string `env:"CLOUDINARY_API_SECRET"`
}

// openCloudinary reads credentials and builds the SDK-backed store.
// Absent or blank credentials yield a configuration error; the provider
// will retry on the next request.
func openCloudinary() (Store, error) {
	creds, err := env.ParseAs[Credentials]()
	if err != nil {
		return nil, apperr.Misconfigured(err)
	}

	cloudName := strings.TrimSpace(creds.CloudName)
	apiKey := strings.TrimSpace(creds.APIKey)
	apiSecret := strings.TrimSpace(creds.APISecret)
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, apperr.Misconfigured(errors.New("media: cloudinary credentials not configured"))
	}

	client, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, apperr.Misconfigured(err)
	}

	return &cloudinaryStore{client: client}, nil
}

// cloudinaryStore adapts the vendor SDK to the [Store] interface.
type cloudinaryStore struct {
	client *cloudinary.Cloudinary
}

func (s *cloudinaryStore) Search(ctx context.Context, query SearchQuery) ([]Asset, error) {
	searchQuery := search.Query{
		Expression: query.Expression,
		MaxResults: query.MaxResults,
	}
	if query.NewestFirst {
		searchQuery.SortBy = []search.SortByField{{"created_at": search.Descending}}
	}
	if query.WithTags {
		searchQuery.WithField = []search.WithField{search.TagsField}
	}

	result, err := s.client.Admin.Search(ctx, searchQuery)
	if err != nil {
		return nil, fmt.Errorf("media: search failed: %w", err)
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("media: search rejected: %s", result.Error.Message)
	}

	assets := make([]Asset, 0, len(result.Assets))
	for _, found := range result.Assets {
		tags := found.Tags
		if tags == nil {
			tags = []string{}
		}
		assets = append(assets, Asset{
			PublicID:  found.PublicID,
			SecureURL: found.SecureURL,
			CreatedAt: found.CreatedAt,
			Tags:      tags,
			Width:     found.Width,
			Height:    found.Height,
		})
	}
	return assets, nil
}

func (s *cloudinaryStore) AddTag(ctx context.Context, tag, publicID string) (MutationResult, error) {
	result, err := s.client.Upload.AddTag(ctx, uploader.AddTagParams{
		Tag:       tag,
		PublicIDs: api.CldAPIArray{publicID},
	})
	if err != nil {
		return MutationResult{}, fmt.Errorf("media: add tag %q to %q failed: %w", tag, publicID, err)
	}
	if result.Error.Message != "" {
		return MutationResult{}, fmt.Errorf("media: add tag %q to %q rejected: %s", tag, publicID, result.Error.Message)
	}
	return MutationResult{PublicID: publicID, Result: "ok"}, nil
}

func (s *cloudinaryStore) RemoveTag(ctx context.Context, tag, publicID string) (MutationResult, error) {
	result, err := s.client.Upload.RemoveTag(ctx, uploader.RemoveTagParams{
		Tag:       tag,
		PublicIDs: api.CldAPIArray{publicID},
	})
	if err != nil {
		return MutationResult{}, fmt.Errorf("media: remove tag %q from %q failed: %w", tag, publicID, err)
	}
	if result.Error.Message != "" {
		return MutationResult{}, fmt.Errorf("media: remove tag %q from %q rejected: %s", tag, publicID, result.Error.Message)
	}
	return MutationResult{PublicID: publicID, Result: "ok"}, nil
}

func (s *cloudinaryStore) Destroy(ctx context.Context, publicID string) (MutationResult, error) {
	result, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return MutationResult{}, fmt.Errorf("media: destroy %q failed: %w", publicID, err)
	}
	if result.Error.Message != "" {
		return MutationResult{}, fmt.Errorf("media: destroy %q rejected: %s", publicID, result.Error.Message)
	}
	return MutationResult{PublicID: publicID, Result: result.Result}, nil
}
