// Copyright 2026 The Cardwall Authors
// SPDX-License-Identifier: Apache-2.0

package trello

import "sync"

// etagCache remembers the ETag and body of successful GET responses so
// later GETs to the same URL can send If-None-Match. When the service
// answers 304 Not Modified, the remembered body is replayed without
// consuming rate limit quota.
//
// There is no eviction: the cache lives as long as its transport and
// is bounded by the number of distinct URLs requested.
type etagCache struct {
	mu      sync.Mutex
	entries map[string]etagEntry
}

type etagEntry struct {
	etag string
	body []byte
}

func newETagCache() *etagCache {
	return &etagCache{entries: make(map[string]etagEntry)}
}

// lookup returns the remembered validator and body for a URL. ok is
// false when the URL has never been cached.
func (cache *etagCache) lookup(url string) (etag string, body []byte, ok bool) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	entry, ok := cache.entries[url]
	return entry.etag, entry.body, ok
}

// store remembers a response for a URL. Responses without a validator
// are not cacheable and are ignored.
func (cache *etagCache) store(url, etag string, body []byte) {
	if etag == "" {
		return
	}
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.entries[url] = etagEntry{etag: etag, body: body}
}
