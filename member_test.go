// Copyright 2026 The Cardwall Authors
// SPDX-License-Identifier: Apache-2.0

package trello

import (
	"context"
	"testing"
	"time"
)

func TestMemberNotifications(t *testing.T) {
	client, fake := newFakeClient(t)
	fake.respond("GET", "/members/me/notifications", `[
		{
			"id": "n1",
			"type": "mentionedOnCard",
			"unread": true,
			"date": "2024-05-20T08:15:00.000Z",
			"idMemberCreator": "m2"
		}
	]`)

	ctx := context.Background()
	notifications, err := client.Me().Notifications(ctx)
	if err != nil {
		t.Fatalf("Notifications: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("len(notifications) = %d, want 1", len(notifications))
	}

	notification := notifications[0]
	notificationType, err := notification.Type(ctx)
	if err != nil {
		t.Fatalf("Type: %v", err)
	}
	if notificationType != "mentionedOnCard" {
		t.Errorf("type = %q, want %q", notificationType, "mentionedOnCard")
	}

	unread, err := notification.Unread(ctx)
	if err != nil {
		t.Fatalf("Unread: %v", err)
	}
	if !unread {
		t.Error("unread = false, want true")
	}

	date, err := notification.Date(ctx)
	if err != nil {
		t.Fatalf("Date: %v", err)
	}
	want := time.Date(2024, 5, 20, 8, 15, 0, 0, time.UTC)
	if !date.Equal(want) {
		t.Errorf("date = %v, want %v", date, want)
	}

	creator, err := notification.Creator(ctx)
	if err != nil {
		t.Fatalf("Creator: %v", err)
	}
	if got := creator.ID(); got != "m2" {
		t.Errorf("creator id = %q, want %q", got, "m2")
	}

	if got := fake.requestCount(); got != 1 {
		t.Errorf("request count = %d, want 1", got)
	}
}

func TestMemberOrganizations(t *testing.T) {
	client, fake := newFakeClient(t)
	fake.respond("GET", "/members/m1/organizations", `[
		{
			"id": "org1",
			"name": "acme",
			"displayName": "Acme Corporation",
			"desc": "widgets"
		}
	]`)

	ctx := context.Background()
	organizations, err := client.Member("m1").Organizations(ctx)
	if err != nil {
		t.Fatalf("Organizations: %v", err)
	}
	if len(organizations) != 1 {
		t.Fatalf("len(organizations) = %d, want 1", len(organizations))
	}

	displayName, err := organizations[0].DisplayName(ctx)
	if err != nil {
		t.Fatalf("DisplayName: %v", err)
	}
	if displayName != "Acme Corporation" {
		t.Errorf("display name = %q, want %q", displayName, "Acme Corporation")
	}

	if got := fake.requestCount(); got != 1 {
		t.Errorf("request count = %d, want 1", got)
	}
}

func TestMemberBoardsToCards(t *testing.T) {
	client, fake := newFakeClient(t)
	fake.respond("GET", "/members/m1/boards", `[{"id": "b1", "name": "ops"}]`)
	fake.respond("GET", "/boards/b1/cards", `[{"id": "c1", "name": "rotate keys"}]`)

	ctx := context.Background()
	boards, err := client.Member("m1").Boards(ctx)
	if err != nil {
		t.Fatalf("Boards: %v", err)
	}
	if len(boards) != 1 {
		t.Fatalf("len(boards) = %d, want 1", len(boards))
	}

	cards, err := boards[0].Cards(ctx)
	if err != nil {
		t.Fatalf("Cards: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("len(cards) = %d, want 1", len(cards))
	}
	name, err := cards[0].Name(ctx)
	if err != nil {
		t.Fatalf("Name: %v", err)
	}
	if name != "rotate keys" {
		t.Errorf("card name = %q, want %q", name, "rotate keys")
	}

	// One request for the board listing, one for the card listing; the
	// board and card documents ride along seeded.
	if got := fake.requestCount(); got != 2 {
		t.Errorf("request count = %d, want 2", got)
	}
}
