// Copyright 2026 The Cardwall Authors
// SPDX-License-Identifier: Apache-2.0

package trello

import "context"

// Organization is a workspace grouping boards and members.
type Organization struct {
	*Handle
}

func newOrganization(handle *Handle) *Organization {
	return &Organization{Handle: handle}
}

// URL returns the organization's browser URL.
func (organization *Organization) URL(ctx context.Context) (string, error) {
	return getString(ctx, organization.Handle, "url")
}

// Name returns the organization's short, URL-safe name.
func (organization *Organization) Name(ctx context.Context) (string, error) {
	return getString(ctx, organization.Handle, "name")
}

// DisplayName returns the organization's human-readable name.
func (organization *Organization) DisplayName(ctx context.Context) (string, error) {
	return getString(ctx, organization.Handle, "displayname")
}

// Desc returns the organization's description.
func (organization *Organization) Desc(ctx context.Context) (string, error) {
	return getString(ctx, organization.Handle, "desc")
}

// Actions returns the organization's activity feed, newest first.
func (organization *Organization) Actions(ctx context.Context) ([]*Action, error) {
	handles, err := getHandleList(ctx, organization.Handle, "actions")
	if err != nil {
		return nil, err
	}
	actions := make([]*Action, len(handles))
	for i, handle := range handles {
		actions[i] = newAction(handle)
	}
	return actions, nil
}

// Boards returns the organization's boards.
func (organization *Organization) Boards(ctx context.Context) ([]*Board, error) {
	handles, err := getHandleList(ctx, organization.Handle, "boards")
	if err != nil {
		return nil, err
	}
	boards := make([]*Board, len(handles))
	for i, handle := range handles {
		boards[i] = newBoard(handle)
	}
	return boards, nil
}

// Members returns the organization's members.
func (organization *Organization) Members(ctx context.Context) ([]*Member, error) {
	handles, err := getHandleList(ctx, organization.Handle, "members")
	if err != nil {
		return nil, err
	}
	members := make([]*Member, len(handles))
	for i, handle := range handles {
		members[i] = newMember(handle)
	}
	return members, nil
}
