// Copyright 2026 The Cardwall Authors
// SPDX-License-Identifier: Apache-2.0

package trello

import "context"

// Member is a user account: the boards and cards they belong to and
// the activity and notifications addressed to them. Client.Me returns
// the member behind the client's own credentials.
type Member struct {
	*Handle
}

func newMember(handle *Handle) *Member {
	return &Member{Handle: handle}
}

// URL returns the member's profile URL.
func (member *Member) URL(ctx context.Context) (string, error) {
	return getString(ctx, member.Handle, "url")
}

// Username returns the member's unique username.
func (member *Member) Username(ctx context.Context) (string, error) {
	return getString(ctx, member.Handle, "username")
}

// FullName returns the member's display name.
func (member *Member) FullName(ctx context.Context) (string, error) {
	return getString(ctx, member.Handle, "fullname")
}

// Actions returns the member's activity feed, newest first.
func (member *Member) Actions(ctx context.Context) ([]*Action, error) {
	handles, err := getHandleList(ctx, member.Handle, "actions")
	if err != nil {
		return nil, err
	}
	actions := make([]*Action, len(handles))
	for i, handle := range handles {
		actions[i] = newAction(handle)
	}
	return actions, nil
}

// Boards returns the boards the member belongs to.
func (member *Member) Boards(ctx context.Context) ([]*Board, error) {
	handles, err := getHandleList(ctx, member.Handle, "boards")
	if err != nil {
		return nil, err
	}
	boards := make([]*Board, len(handles))
	for i, handle := range handles {
		boards[i] = newBoard(handle)
	}
	return boards, nil
}

// Cards returns the open cards assigned to the member.
func (member *Member) Cards(ctx context.Context) ([]*Card, error) {
	handles, err := getHandleList(ctx, member.Handle, "cards")
	if err != nil {
		return nil, err
	}
	cards := make([]*Card, len(handles))
	for i, handle := range handles {
		cards[i] = newCard(handle)
	}
	return cards, nil
}

// Notifications returns the member's notifications, newest first.
// Only available for the credential owner (Client.Me).
func (member *Member) Notifications(ctx context.Context) ([]*Notification, error) {
	handles, err := getHandleList(ctx, member.Handle, "notifications")
	if err != nil {
		return nil, err
	}
	notifications := make([]*Notification, len(handles))
	for i, handle := range handles {
		notifications[i] = newNotification(handle)
	}
	return notifications, nil
}

// Organizations returns the organizations the member belongs to.
func (member *Member) Organizations(ctx context.Context) ([]*Organization, error) {
	handles, err := getHandleList(ctx, member.Handle, "organizations")
	if err != nil {
		return nil, err
	}
	organizations := make([]*Organization, len(handles))
	for i, handle := range handles {
		organizations[i] = newOrganization(handle)
	}
	return organizations, nil
}
