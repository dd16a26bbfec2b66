// Copyright 2026 The Cardwall Authors
// SPDX-License-Identifier: Apache-2.0

package trello

import "context"

// Checklist is a list of check items on a card.
type Checklist struct {
	*Handle
}

func newChecklist(handle *Handle) *Checklist {
	return &Checklist{Handle: handle}
}

// Name returns the checklist's title.
func (checklist *Checklist) Name(ctx context.Context) (string, error) {
	return getString(ctx, checklist.Handle, "name")
}

// Board returns the board the checklist's card is on, as a lazy
// handle.
func (checklist *Checklist) Board(ctx context.Context) (*Board, error) {
	handle, err := getHandle(ctx, checklist.Handle, "board")
	if err != nil {
		return nil, err
	}
	return newBoard(handle), nil
}

// CheckItems returns the checklist's items in checklist order.
func (checklist *Checklist) CheckItems(ctx context.Context) ([]*CheckItem, error) {
	handles, err := getHandleList(ctx, checklist.Handle, "checkItems")
	if err != nil {
		return nil, err
	}
	checkItems := make([]*CheckItem, len(handles))
	for i, handle := range handles {
		checkItems[i] = newCheckItem(handle)
	}
	return checkItems, nil
}

// Cards returns the cards the checklist appears on.
func (checklist *Checklist) Cards(ctx context.Context) ([]*Card, error) {
	handles, err := getHandleList(ctx, checklist.Handle, "cards")
	if err != nil {
		return nil, err
	}
	cards := make([]*Card, len(handles))
	for i, handle := range handles {
		cards[i] = newCard(handle)
	}
	return cards, nil
}

// CheckItem is one entry in a checklist.
type CheckItem struct {
	*Handle
}

func newCheckItem(handle *Handle) *CheckItem {
	return &CheckItem{Handle: handle}
}

// Name returns the item's text.
func (checkItem *CheckItem) Name(ctx context.Context) (string, error) {
	return getString(ctx, checkItem.Handle, "name")
}

// Pos returns the item's position within its checklist.
func (checkItem *CheckItem) Pos(ctx context.Context) (float64, error) {
	return getFloat(ctx, checkItem.Handle, "pos")
}

// Type returns the item's type tag.
func (checkItem *CheckItem) Type(ctx context.Context) (string, error) {
	return getString(ctx, checkItem.Handle, "type")
}
