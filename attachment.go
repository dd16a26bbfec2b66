// Copyright 2026 The Cardwall Authors
// SPDX-License-Identifier: Apache-2.0

package trello

import (
	"context"
	"time"
)

// Attachment is a file or link attached to a card.
type Attachment struct {
	*Handle
}

func newAttachment(handle *Handle) *Attachment {
	return &Attachment{Handle: handle}
}

// Bytes returns the attachment's size. Zero for link attachments.
func (attachment *Attachment) Bytes(ctx context.Context) (int, error) {
	return getInt(ctx, attachment.Handle, "bytes")
}

// Date returns when the attachment was added.
func (attachment *Attachment) Date(ctx context.Context) (time.Time, error) {
	return getTime(ctx, attachment.Handle, "date")
}

// MimeType returns the attachment's MIME type, when the service knows
// it.
func (attachment *Attachment) MimeType(ctx context.Context) (string, error) {
	return getString(ctx, attachment.Handle, "mimeType")
}

// Name returns the attachment's display name.
func (attachment *Attachment) Name(ctx context.Context) (string, error) {
	return getString(ctx, attachment.Handle, "name")
}

// URL returns where the attached content lives.
func (attachment *Attachment) URL(ctx context.Context) (string, error) {
	return getString(ctx, attachment.Handle, "url")
}

// IsUpload reports whether the attachment is an uploaded file rather
// than a link.
func (attachment *Attachment) IsUpload(ctx context.Context) (bool, error) {
	return getBool(ctx, attachment.Handle, "isUpload")
}
