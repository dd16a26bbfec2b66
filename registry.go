// Copyright 2026 The Cardwall Authors
// SPDX-License-Identifier: Apache-2.0

package trello

import "fmt"

// Kind identifies one kind of remote object. Kinds are plain strings
// so that schemas can name each other before both are registered;
// resolver targets are looked up in the registry only when a field is
// actually resolved.
type Kind string

// The kinds the service exposes.
const (
	KindAction       Kind = "action"
	KindAttachment   Kind = "attachment"
	KindBoard        Kind = "board"
	KindCard         Kind = "card"
	KindCheckItem    Kind = "checkItem"
	KindChecklist    Kind = "checklist"
	KindLabel        Kind = "label"
	KindList         Kind = "list"
	KindMember       Kind = "member"
	KindNotification Kind = "notification"
	KindOrganization Kind = "organization"
	KindSticker      Kind = "sticker"
)

// schema describes how one kind maps onto the service: the path prefix
// its objects live under and the named fields a handle of that kind
// resolves. The field tables live in schema.go.
type schema struct {
	// pathPrefix is the service path prefix for the kind, without a
	// trailing slash: "/boards", "/cards".
	pathPrefix string

	// fields maps exposed field names to their resolvers. Field names
	// follow the service's own vocabulary, including its camelCase
	// identifiers.
	fields map[string]resolver
}

// schemaFor looks up the registered schema for a kind.
func schemaFor(kind Kind) (schema, bool) {
	registered, ok := kindSchemas[kind]
	return registered, ok
}

// mustPathPrefix returns the path prefix for a kind that is known to be
// registered. Handles are only ever constructed for registered kinds,
// by the client factories and by resolvers whose targets appear in the
// schema tables, so a miss is a bug in those tables.
func mustPathPrefix(kind Kind) string {
	registered, ok := kindSchemas[kind]
	if !ok {
		panic(fmt.Sprintf("trello: no schema registered for kind %q", kind))
	}
	return registered.pathPrefix
}
