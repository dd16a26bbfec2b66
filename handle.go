// Copyright 2026 The Cardwall Authors
// SPDX-License-Identifier: Apache-2.0

package trello

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Handle is a lazy reference to one remote object. A handle is created
// from nothing but a kind and an id; the object's document is fetched
// at most once, on the first field access that needs it, and reused
// for every access after that. Handles built from listing responses
// arrive pre-seeded with their document and never fetch at all.
//
// Handles are safe for concurrent use. Concurrent first accesses share
// a single fetch. A failed fetch caches nothing, so the next access
// retries.
//
// There is no identity map: two handles for the same id are
// independent, each with its own document and collection caches. A
// fresh handle is the way to see fresh data.
type Handle struct {
	client *Client
	kind   Kind
	id     string
	path   string

	flight singleflight.Group

	mu          sync.Mutex
	doc         Document
	deleted     bool
	collections map[Kind][]*Handle
}

func newHandle(client *Client, kind Kind, id string) *Handle {
	return &Handle{
		client: client,
		kind:   kind,
		id:     id,
		path:   mustPathPrefix(kind) + "/" + id,
	}
}

func newSeededHandle(client *Client, kind Kind, id string, document Document) *Handle {
	handle := newHandle(client, kind, id)
	if document == nil {
		document = Document{}
	}
	handle.doc = document
	return handle
}

// ID returns the object's identifier. Available without any request.
func (h *Handle) ID() string {
	return h.id
}

// Kind returns the kind of object the handle refers to.
func (h *Handle) Kind() Kind {
	return h.kind
}

// Path returns the object's service path, such as "/boards/b1".
func (h *Handle) Path() string {
	return h.path
}

// Get resolves one named field. Names registered in the kind's schema
// go through their resolver; any other name falls back to a direct
// document lookup, so fields the schema does not model remain
// reachable. A name found in neither place returns an
// *UnknownFieldError.
func (h *Handle) Get(ctx context.Context, field string) (any, error) {
	if registered, ok := schemaFor(h.kind); ok {
		if fieldResolver, ok := registered.fields[field]; ok {
			return fieldResolver.resolve(ctx, h, field)
		}
	}
	return rawValue(ctx, h, field, field)
}

// RawData returns the handle's full document, fetching it if no access
// has yet. The returned map is the handle's cache; callers must not
// modify it.
func (h *Handle) RawData(ctx context.Context) (Document, error) {
	return h.document(ctx)
}

// document returns the cached document, fetching it first if this
// handle has never fetched. Concurrent callers share one fetch through
// the flight group; a failed fetch leaves the handle unfetched.
func (h *Handle) document(ctx context.Context) (Document, error) {
	h.mu.Lock()
	deleted, cached := h.deleted, h.doc
	h.mu.Unlock()
	if deleted {
		return nil, ErrHandleDeleted
	}
	if cached != nil {
		return cached, nil
	}

	value, err, _ := h.flight.Do("document", func() (any, error) {
		h.mu.Lock()
		cached := h.doc
		h.mu.Unlock()
		if cached != nil {
			return cached, nil
		}
		body, err := h.client.Get(ctx, h.path, nil)
		if err != nil {
			return nil, err
		}
		document, err := documentFromJSON(body)
		if err != nil {
			return nil, err
		}
		h.mu.Lock()
		h.doc = document
		h.mu.Unlock()
		return document, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(Document), nil
}

// collection lists the subresource of the given kind under this
// handle's path and caches the result on this handle instance. The
// cache must live on the instance: collections of the same kind under
// different owners are different listings, and a shared cache would
// leak one owner's children to another.
func (h *Handle) collection(ctx context.Context, target Kind) ([]*Handle, error) {
	h.mu.Lock()
	if h.deleted {
		h.mu.Unlock()
		return nil, ErrHandleDeleted
	}
	cached, ok := h.collections[target]
	h.mu.Unlock()
	if ok {
		return cached, nil
	}

	value, err, _ := h.flight.Do("collection/"+string(target), func() (any, error) {
		h.mu.Lock()
		cached, ok := h.collections[target]
		h.mu.Unlock()
		if ok {
			return cached, nil
		}
		body, err := h.client.Get(ctx, h.path+mustPathPrefix(target), nil)
		if err != nil {
			return nil, err
		}
		documents, err := documentsFromJSON(body)
		if err != nil {
			return nil, err
		}
		handles := make([]*Handle, 0, len(documents))
		for _, document := range documents {
			id, ok := document.stringID()
			if !ok {
				return nil, fmt.Errorf("trello: %s listing under %s: element missing id", target, h.path)
			}
			handles = append(handles, newSeededHandle(h.client, target, id, document))
		}
		h.mu.Lock()
		if h.collections == nil {
			h.collections = make(map[Kind][]*Handle)
		}
		h.collections[target] = handles
		h.mu.Unlock()
		return handles, nil
	})
	if err != nil {
		return nil, err
	}
	return value.([]*Handle), nil
}

// invalidate marks the handle's object as deleted. Every later access
// fails with ErrHandleDeleted instead of refetching or serving stale
// data.
func (h *Handle) invalidate() {
	h.mu.Lock()
	h.deleted = true
	h.mu.Unlock()
}

// Typed accessors over Get. The entity types use these to expose their
// schema fields with concrete Go types.

func getString(ctx context.Context, h *Handle, field string) (string, error) {
	value, err := h.Get(ctx, field)
	if err != nil {
		return "", err
	}
	text, ok := value.(string)
	if !ok {
		return "", &TypeCoercionError{Kind: h.kind, Field: field, Want: "string", Value: value}
	}
	return text, nil
}

func getInt(ctx context.Context, h *Handle, field string) (int, error) {
	value, err := h.Get(ctx, field)
	if err != nil {
		return 0, err
	}
	converted, ok := asInt(value)
	if !ok {
		return 0, &TypeCoercionError{Kind: h.kind, Field: field, Want: "int", Value: value}
	}
	return converted, nil
}

func getFloat(ctx context.Context, h *Handle, field string) (float64, error) {
	value, err := h.Get(ctx, field)
	if err != nil {
		return 0, err
	}
	number, ok := value.(float64)
	if !ok {
		return 0, &TypeCoercionError{Kind: h.kind, Field: field, Want: "float64", Value: value}
	}
	return number, nil
}

func getBool(ctx context.Context, h *Handle, field string) (bool, error) {
	value, err := h.Get(ctx, field)
	if err != nil {
		return false, err
	}
	converted, ok := asBool(value)
	if !ok {
		return false, &TypeCoercionError{Kind: h.kind, Field: field, Want: "bool", Value: value}
	}
	return converted, nil
}

func getTime(ctx context.Context, h *Handle, field string) (time.Time, error) {
	value, err := h.Get(ctx, field)
	if err != nil {
		return time.Time{}, err
	}
	parsed, ok := value.(time.Time)
	if !ok {
		return time.Time{}, &TypeCoercionError{Kind: h.kind, Field: field, Want: "time.Time", Value: value}
	}
	return parsed, nil
}

func getDocument(ctx context.Context, h *Handle, field string) (Document, error) {
	value, err := h.Get(ctx, field)
	if err != nil {
		return nil, err
	}
	switch typed := value.(type) {
	case Document:
		return typed, nil
	case map[string]any:
		return Document(typed), nil
	}
	return nil, &TypeCoercionError{Kind: h.kind, Field: field, Want: "object", Value: value}
}

func getDocumentList(ctx context.Context, h *Handle, field string) ([]Document, error) {
	value, err := h.Get(ctx, field)
	if err != nil {
		return nil, err
	}
	elements, ok := value.([]any)
	if !ok {
		return nil, &TypeCoercionError{Kind: h.kind, Field: field, Want: "list of objects", Value: value}
	}
	documents := make([]Document, 0, len(elements))
	for _, element := range elements {
		object, ok := element.(map[string]any)
		if !ok {
			return nil, &TypeCoercionError{Kind: h.kind, Field: field, Want: "object", Value: element}
		}
		documents = append(documents, Document(object))
	}
	return documents, nil
}

func getStringList(ctx context.Context, h *Handle, field string) ([]string, error) {
	value, err := h.Get(ctx, field)
	if err != nil {
		return nil, err
	}
	elements, ok := value.([]any)
	if !ok {
		return nil, &TypeCoercionError{Kind: h.kind, Field: field, Want: "list of strings", Value: value}
	}
	texts := make([]string, 0, len(elements))
	for _, element := range elements {
		text, ok := element.(string)
		if !ok {
			return nil, &TypeCoercionError{Kind: h.kind, Field: field, Want: "string", Value: element}
		}
		texts = append(texts, text)
	}
	return texts, nil
}

func getHandle(ctx context.Context, h *Handle, field string) (*Handle, error) {
	value, err := h.Get(ctx, field)
	if err != nil {
		return nil, err
	}
	related, ok := value.(*Handle)
	if !ok {
		return nil, &TypeCoercionError{Kind: h.kind, Field: field, Want: "related object", Value: value}
	}
	return related, nil
}

func getHandleList(ctx context.Context, h *Handle, field string) ([]*Handle, error) {
	value, err := h.Get(ctx, field)
	if err != nil {
		return nil, err
	}
	related, ok := value.([]*Handle)
	if !ok {
		return nil, &TypeCoercionError{Kind: h.kind, Field: field, Want: "related objects", Value: value}
	}
	return related, nil
}
