// Copyright 2026 The Cardwall Authors
// SPDX-License-Identifier: Apache-2.0

package trello

import (
	"context"
	"fmt"

	"github.com/google/go-querystring/query"
)

// List is a vertical column of cards on a board.
type List struct {
	*Handle
	Closable
}

func newList(handle *Handle) *List {
	return &List{Handle: handle, Closable: Closable{handle: handle}}
}

// Name returns the list's title.
func (list *List) Name(ctx context.Context) (string, error) {
	return getString(ctx, list.Handle, "name")
}

// URL returns the list's browser URL.
func (list *List) URL(ctx context.Context) (string, error) {
	return getString(ctx, list.Handle, "url")
}

// Closed reports whether the list is archived.
func (list *List) Closed(ctx context.Context) (bool, error) {
	return getBool(ctx, list.Handle, "closed")
}

// Board returns the board the list is on, as a lazy handle.
func (list *List) Board(ctx context.Context) (*Board, error) {
	handle, err := getHandle(ctx, list.Handle, "board")
	if err != nil {
		return nil, err
	}
	return newBoard(handle), nil
}

// Cards returns the list's open cards in list order.
func (list *List) Cards(ctx context.Context) ([]*Card, error) {
	handles, err := getHandleList(ctx, list.Handle, "cards")
	if err != nil {
		return nil, err
	}
	cards := make([]*Card, len(handles))
	for i, handle := range handles {
		cards[i] = newCard(handle)
	}
	return cards, nil
}

// cardCreateArgs carries the parameters for creating a card.
type cardCreateArgs struct {
	Name   string `url:"name"`
	Desc   string `url:"desc,omitempty"`
	IDList string `url:"idList"`
}

// maxCardDescLength is the longest description the service accepts on
// card creation; anything longer is truncated before sending.
const maxCardDescLength = 1000

// AddCard creates a card at the bottom of the list. Desc is optional
// and truncated to the service's 1000-character limit. The returned
// card is pre-seeded from the creation response and needs no fetch.
func (list *List) AddCard(ctx context.Context, name, desc string) (*Card, error) {
	if runes := []rune(desc); len(runes) > maxCardDescLength {
		desc = string(runes[:maxCardDescLength])
	}
	params, err := query.Values(cardCreateArgs{Name: name, Desc: desc, IDList: list.ID()})
	if err != nil {
		return nil, fmt.Errorf("encoding card parameters: %w", err)
	}
	body, err := list.client.Post(ctx, "/cards", params, nil)
	if err != nil {
		return nil, fmt.Errorf("adding card to list %s: %w", list.ID(), err)
	}
	document, err := documentFromJSON(body)
	if err != nil {
		return nil, err
	}
	id, ok := document.stringID()
	if !ok {
		return nil, fmt.Errorf("trello: card creation response missing id")
	}
	return newCard(newSeededHandle(list.client, KindCard, id, document)), nil
}
