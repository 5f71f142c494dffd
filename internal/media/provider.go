// Copyright (c) 2026 Fotomoment. All rights reserved.
// Author: m.hartmann@fotomoment.app

package media

import "sync"

// Provider hands out the process-wide [Store], resolving it lazily on first
// use.
//
// # Initialize-once-on-success
//
// Store credentials may be provisioned after the server starts, so they are
// not read at startup. The first request that needs the store triggers
// resolution; a successful resolution is cached for the process lifetime and
// never invalidated, while a failed one is NOT cached — the next request
// re-reads the environment and tries again.
type Provider struct {
	mu    sync.Mutex
	store Store
	open  func() (Store, error)
}

// NewProvider creates a Provider that opens the Cloudinary-backed store from
// environment credentials.
func NewProvider() *Provider {
	return &Provider{open: openCloudinary}
}

// NewStaticProvider creates a Provider that always returns the given store.
// Used by tests and by wiring that resolves the store eagerly.
func NewStaticProvider(store Store) *Provider {
	return &Provider{open: func() (Store, error) { return store, nil }}
}

// Get returns the resolved store, opening it on first success.
func (p *Provider) Get() (Store, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.store != nil {
		return p.store, nil
	}

	store, err := p.open()
	if err != nil {
		return nil, err
	}

	p.store = store
	return p.store, nil
}
