// Copyright 2026 The Cardwall Authors
// SPDX-License-Identifier: Apache-2.0

package trello

import "testing"

func TestEveryKindHasSchema(t *testing.T) {
	kinds := []Kind{
		KindAction, KindAttachment, KindBoard, KindCard, KindCheckItem,
		KindChecklist, KindLabel, KindList, KindMember, KindNotification,
		KindOrganization, KindSticker,
	}
	for _, kind := range kinds {
		registered, ok := schemaFor(kind)
		if !ok {
			t.Errorf("kind %q has no schema", kind)
			continue
		}
		if registered.pathPrefix == "" || registered.pathPrefix[0] != '/' {
			t.Errorf("kind %q path prefix = %q, want leading slash", kind, registered.pathPrefix)
		}
		if registered.pathPrefix[len(registered.pathPrefix)-1] == '/' {
			t.Errorf("kind %q path prefix = %q, want no trailing slash", kind, registered.pathPrefix)
		}
	}
}

func TestPathPrefixes(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindAction, "/actions"},
		{KindAttachment, "/attachments"},
		{KindBoard, "/boards"},
		{KindCard, "/cards"},
		{KindCheckItem, "/checkItems"},
		{KindChecklist, "/checklists"},
		{KindLabel, "/labels"},
		{KindList, "/lists"},
		{KindMember, "/members"},
		{KindNotification, "/notifications"},
		{KindOrganization, "/organizations"},
		{KindSticker, "/stickers"},
	}
	for _, test := range tests {
		if got := mustPathPrefix(test.kind); got != test.want {
			t.Errorf("prefix(%q) = %q, want %q", test.kind, got, test.want)
		}
	}
}

// TestResolverTargetsAreRegistered walks every schema and checks that
// each cross-kind reference points at a registered kind. Tags are
// plain strings, so a typo would otherwise surface only when the field
// is first resolved.
func TestResolverTargetsAreRegistered(t *testing.T) {
	for kind, registered := range kindSchemas {
		for field, fieldResolver := range registered.fields {
			var target Kind
			switch typed := fieldResolver.(type) {
			case relatedField:
				target = typed.target
			case relatedListField:
				target = typed.target
			case collectionField:
				target = typed.target
			default:
				continue
			}
			if _, ok := kindSchemas[target]; !ok {
				t.Errorf("%s field %q references unregistered kind %q", kind, field, target)
			}
		}
	}
}
