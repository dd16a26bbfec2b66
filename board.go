// Copyright 2026 The Cardwall Authors
// SPDX-License-Identifier: Apache-2.0

package trello

import "context"

// Board is a project board: an ordered set of lists plus the members,
// labels, and activity feed around them.
type Board struct {
	*Handle
	Closable
}

func newBoard(handle *Handle) *Board {
	return &Board{Handle: handle, Closable: Closable{handle: handle}}
}

// URL returns the board's browser URL.
func (board *Board) URL(ctx context.Context) (string, error) {
	return getString(ctx, board.Handle, "url")
}

// Name returns the board's display name.
func (board *Board) Name(ctx context.Context) (string, error) {
	return getString(ctx, board.Handle, "name")
}

// Desc returns the board's description, raw markdown.
func (board *Board) Desc(ctx context.Context) (string, error) {
	return getString(ctx, board.Handle, "desc")
}

// DescriptionHTML returns the board's description rendered to HTML.
func (board *Board) DescriptionHTML(ctx context.Context) (string, error) {
	desc, err := board.Desc(ctx)
	if err != nil {
		return "", err
	}
	return renderMarkdownHTML(desc)
}

// Pinned reports whether the member has pinned the board.
func (board *Board) Pinned(ctx context.Context) (bool, error) {
	return getBool(ctx, board.Handle, "pinned")
}

// Closed reports whether the board is archived.
func (board *Board) Closed(ctx context.Context) (bool, error) {
	return getBool(ctx, board.Handle, "closed")
}

// Prefs returns the board's preference document: visibility, voting
// permissions, background, and the rest.
func (board *Board) Prefs(ctx context.Context) (Document, error) {
	return getDocument(ctx, board.Handle, "prefs")
}

// Organization returns the organization the board belongs to, as a
// lazy handle.
func (board *Board) Organization(ctx context.Context) (*Organization, error) {
	handle, err := getHandle(ctx, board.Handle, "organization")
	if err != nil {
		return nil, err
	}
	return newOrganization(handle), nil
}

// Lists returns the board's lists in board order. Each list arrives
// pre-seeded with its document.
func (board *Board) Lists(ctx context.Context) ([]*List, error) {
	handles, err := getHandleList(ctx, board.Handle, "lists")
	if err != nil {
		return nil, err
	}
	lists := make([]*List, len(handles))
	for i, handle := range handles {
		lists[i] = newList(handle)
	}
	return lists, nil
}

// Cards returns the board's open cards across all lists.
func (board *Board) Cards(ctx context.Context) ([]*Card, error) {
	handles, err := getHandleList(ctx, board.Handle, "cards")
	if err != nil {
		return nil, err
	}
	cards := make([]*Card, len(handles))
	for i, handle := range handles {
		cards[i] = newCard(handle)
	}
	return cards, nil
}

// Checklists returns every checklist on the board's cards.
func (board *Board) Checklists(ctx context.Context) ([]*Checklist, error) {
	handles, err := getHandleList(ctx, board.Handle, "checklists")
	if err != nil {
		return nil, err
	}
	checklists := make([]*Checklist, len(handles))
	for i, handle := range handles {
		checklists[i] = newChecklist(handle)
	}
	return checklists, nil
}

// Members returns the board's members.
func (board *Board) Members(ctx context.Context) ([]*Member, error) {
	handles, err := getHandleList(ctx, board.Handle, "members")
	if err != nil {
		return nil, err
	}
	members := make([]*Member, len(handles))
	for i, handle := range handles {
		members[i] = newMember(handle)
	}
	return members, nil
}

// Labels returns the board's labels.
func (board *Board) Labels(ctx context.Context) ([]*Label, error) {
	handles, err := getHandleList(ctx, board.Handle, "labels")
	if err != nil {
		return nil, err
	}
	labels := make([]*Label, len(handles))
	for i, handle := range handles {
		labels[i] = newLabel(handle)
	}
	return labels, nil
}

// Actions returns the board's activity feed, newest first.
func (board *Board) Actions(ctx context.Context) ([]*Action, error) {
	handles, err := getHandleList(ctx, board.Handle, "actions")
	if err != nil {
		return nil, err
	}
	actions := make([]*Action, len(handles))
	for i, handle := range handles {
		actions[i] = newAction(handle)
	}
	return actions, nil
}
