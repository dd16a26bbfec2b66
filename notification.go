// Copyright 2026 The Cardwall Authors
// SPDX-License-Identifier: Apache-2.0

package trello

import (
	"context"
	"time"
)

// Notification is an alert delivered to a member: a mention, a due
// date, an invitation.
type Notification struct {
	*Handle
}

func newNotification(handle *Handle) *Notification {
	return &Notification{Handle: handle}
}

// Data returns the notification's type-specific payload.
func (notification *Notification) Data(ctx context.Context) (Document, error) {
	return getDocument(ctx, notification.Handle, "data")
}

// Type returns the notification's type tag, such as "mentionedOnCard".
func (notification *Notification) Type(ctx context.Context) (string, error) {
	return getString(ctx, notification.Handle, "type")
}

// Unread reports whether the member has seen the notification.
func (notification *Notification) Unread(ctx context.Context) (bool, error) {
	return getBool(ctx, notification.Handle, "unread")
}

// Date returns when the notification was sent.
func (notification *Notification) Date(ctx context.Context) (time.Time, error) {
	return getTime(ctx, notification.Handle, "date")
}

// Creator returns the member whose activity produced the notification,
// as a lazy handle.
func (notification *Notification) Creator(ctx context.Context) (*Member, error) {
	handle, err := getHandle(ctx, notification.Handle, "creator")
	if err != nil {
		return nil, err
	}
	return newMember(handle), nil
}
