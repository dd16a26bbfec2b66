// Copyright 2026 The Cardwall Authors
// SPDX-License-Identifier: Apache-2.0

// Package trello provides a lazily resolving Go client for the Trello
// REST API.
//
// The central type is the Handle: a reference to one remote object
// built from nothing but its kind and id. Creating a handle performs
// no request. The object's document is fetched at most once, on the
// first field access that needs it, and reused for every access after
// that. Fields that reference other objects resolve to new unfetched
// handles, so walking from a card to its board to the board's lists
// costs exactly as many requests as documents actually read. Handles
// produced by listing fields arrive pre-seeded with their documents
// and never fetch at all.
//
// Entity types (Board, Card, Member, ...) wrap handles with typed
// accessors and mutations. Per-kind schemas drive the dynamic side:
// Handle.Get resolves any field name the schema or the raw document
// knows.
//
// The transport handles rate limiting (per-key and per-token window
// headers with automatic backoff), conditional requests (ETags), and
// structured error mapping. All requests are made over HTTPS; the
// transport refuses non-HTTPS base URLs.
package trello
