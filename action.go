// Copyright 2026 The Cardwall Authors
// SPDX-License-Identifier: Apache-2.0

package trello

import (
	"context"
	"time"
)

// Action is one entry in the activity feed of a board, card, member,
// or organization: a comment, a move, a creation, and so on.
type Action struct {
	*Handle
}

func newAction(handle *Handle) *Action {
	return &Action{Handle: handle}
}

// Data returns the action's type-specific payload. For a comment the
// payload carries the text; for a move, the lists involved.
func (action *Action) Data(ctx context.Context) (Document, error) {
	return getDocument(ctx, action.Handle, "data")
}

// Type returns the action's type tag, such as "commentCard".
func (action *Action) Type(ctx context.Context) (string, error) {
	return getString(ctx, action.Handle, "type")
}

// Date returns when the action happened.
func (action *Action) Date(ctx context.Context) (time.Time, error) {
	return getTime(ctx, action.Handle, "date")
}

// Creator returns the member who performed the action, as a lazy
// handle.
func (action *Action) Creator(ctx context.Context) (*Member, error) {
	handle, err := getHandle(ctx, action.Handle, "creator")
	if err != nil {
		return nil, err
	}
	return newMember(handle), nil
}
