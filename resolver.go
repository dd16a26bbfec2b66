// Copyright 2026 The Cardwall Authors
// SPDX-License-Identifier: Apache-2.0

package trello

import (
	"context"
	"fmt"
	"time"
)

// resolver computes one named field of a handle. Implementations pull
// the owner's document on demand, so resolving the first field of an
// unfetched handle triggers its single fetch.
//
// The field argument is the name the caller asked for, which can
// differ from the document key the resolver reads ("fullname" reads
// the key "fullName"); errors report the caller's name.
type resolver interface {
	resolve(ctx context.Context, owner *Handle, field string) (any, error)
}

// rawValue reads one key from the owner's document, fetching the
// document first if this handle never has.
func rawValue(ctx context.Context, owner *Handle, key, field string) (any, error) {
	document, err := owner.document(ctx)
	if err != nil {
		return nil, err
	}
	value, ok := document[key]
	if !ok {
		return nil, &UnknownFieldError{Kind: owner.kind, Field: field}
	}
	return value, nil
}

// rawField exposes a document key as-is.
type rawField struct {
	key string
}

func (f rawField) resolve(ctx context.Context, owner *Handle, field string) (any, error) {
	return rawValue(ctx, owner, f.key, field)
}

// dateField parses an RFC 3339 timestamp field into a time.Time. The
// service writes timestamps like "2013-05-01T12:00:00.000Z".
type dateField struct {
	key string
}

func (f dateField) resolve(ctx context.Context, owner *Handle, field string) (any, error) {
	value, err := rawValue(ctx, owner, f.key, field)
	if err != nil {
		return nil, err
	}
	text, ok := value.(string)
	if !ok {
		return nil, &MalformedDateError{Kind: owner.kind, Field: field, Value: fmt.Sprint(value)}
	}
	parsed, err := time.Parse(time.RFC3339, text)
	if err != nil {
		return nil, &MalformedDateError{Kind: owner.kind, Field: field, Value: text, cause: err}
	}
	return parsed, nil
}

// intField converts a numeric field to an int, accepting integral JSON
// numbers and numeric strings.
type intField struct {
	key string
}

func (f intField) resolve(ctx context.Context, owner *Handle, field string) (any, error) {
	value, err := rawValue(ctx, owner, f.key, field)
	if err != nil {
		return nil, err
	}
	converted, ok := asInt(value)
	if !ok {
		return nil, &TypeCoercionError{Kind: owner.kind, Field: field, Want: "int", Value: value}
	}
	return converted, nil
}

// boolField converts a boolean field to a bool, accepting JSON booleans
// and the strings "true" and "false".
type boolField struct {
	key string
}

func (f boolField) resolve(ctx context.Context, owner *Handle, field string) (any, error) {
	value, err := rawValue(ctx, owner, f.key, field)
	if err != nil {
		return nil, err
	}
	converted, ok := asBool(value)
	if !ok {
		return nil, &TypeCoercionError{Kind: owner.kind, Field: field, Want: "bool", Value: value}
	}
	return converted, nil
}

// relatedField turns an identifier field into an unfetched handle of
// the target kind. Constructing the handle performs no request; the
// target's document loads when one of its own fields is first read.
type relatedField struct {
	key    string
	target Kind
}

func (f relatedField) resolve(ctx context.Context, owner *Handle, field string) (any, error) {
	value, err := rawValue(ctx, owner, f.key, field)
	if err != nil {
		return nil, err
	}
	id, ok := value.(string)
	if !ok || id == "" {
		return nil, &TypeCoercionError{Kind: owner.kind, Field: field, Want: "object id", Value: value}
	}
	return newHandle(owner.client, f.target, id), nil
}

// relatedListField turns a field holding a list of identifiers into a
// slice of unfetched handles, preserving the document's order. An
// empty list resolves to an empty slice.
type relatedListField struct {
	key    string
	target Kind
}

func (f relatedListField) resolve(ctx context.Context, owner *Handle, field string) (any, error) {
	value, err := rawValue(ctx, owner, f.key, field)
	if err != nil {
		return nil, err
	}
	elements, ok := value.([]any)
	if !ok {
		return nil, &TypeCoercionError{Kind: owner.kind, Field: field, Want: "list of object ids", Value: value}
	}
	handles := make([]*Handle, 0, len(elements))
	for _, element := range elements {
		id, ok := element.(string)
		if !ok || id == "" {
			return nil, &TypeCoercionError{Kind: owner.kind, Field: field, Want: "object id", Value: element}
		}
		handles = append(handles, newHandle(owner.client, f.target, id))
	}
	return handles, nil
}

// collectionField lists a subresource of the owner: GET on the owner's
// path followed by the target kind's prefix. Elements come back as
// full documents, so every handle in the result is pre-seeded and
// needs no fetch of its own. The result is cached on the owning handle
// instance; see Handle.collection.
type collectionField struct {
	target Kind
}

func (f collectionField) resolve(ctx context.Context, owner *Handle, field string) (any, error) {
	return owner.collection(ctx, f.target)
}
