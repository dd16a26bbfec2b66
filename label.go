// Copyright 2026 The Cardwall Authors
// SPDX-License-Identifier: Apache-2.0

package trello

import "context"

// Label is a colored tag defined on a board and applied to cards.
type Label struct {
	*Handle
}

func newLabel(handle *Handle) *Label {
	return &Label{Handle: handle}
}

// Board returns the board that defines the label, as a lazy handle.
func (label *Label) Board(ctx context.Context) (*Board, error) {
	handle, err := getHandle(ctx, label.Handle, "board")
	if err != nil {
		return nil, err
	}
	return newBoard(handle), nil
}

// Name returns the label's text, often empty for color-only labels.
func (label *Label) Name(ctx context.Context) (string, error) {
	return getString(ctx, label.Handle, "name")
}

// Color returns the label's color name.
func (label *Label) Color(ctx context.Context) (string, error) {
	return getString(ctx, label.Handle, "color")
}

// Uses returns how many cards carry the label.
func (label *Label) Uses(ctx context.Context) (int, error) {
	return getInt(ctx, label.Handle, "uses")
}
