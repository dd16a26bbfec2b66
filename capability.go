// Copyright 2026 The Cardwall Authors
// SPDX-License-Identifier: Apache-2.0

package trello

import (
	"context"
	"net/url"
	"slices"
	"strings"
)

// Capabilities are small mutation surfaces shared by several entity
// types; an entity embeds the ones its kind supports. Mutations do not
// rewrite the handle's cached document. A fresh handle is the way to
// observe the change.

// Closable archives its object.
type Closable struct {
	handle *Handle
}

// Close archives the object. The handle stays usable and keeps serving
// its cached document.
func (c Closable) Close(ctx context.Context) error {
	_, err := c.handle.client.Put(ctx, c.handle.Path()+"/closed", url.Values{"value": {"true"}}, nil)
	return err
}

// Deletable removes its object permanently.
type Deletable struct {
	handle *Handle
}

// Delete removes the object. On success the handle is marked deleted
// and every later access fails with ErrHandleDeleted.
func (d Deletable) Delete(ctx context.Context) error {
	if _, err := d.handle.client.Delete(ctx, d.handle.Path(), nil); err != nil {
		return err
	}
	d.handle.invalidate()
	return nil
}

// labelColors is the fixed palette the service accepts for labels.
var labelColors = []string{"green", "yellow", "orange", "red", "purple", "blue"}

// Labeled adds and removes colored labels on its object.
type Labeled struct {
	handle *Handle
}

// SetLabel adds the label of the given color. Colors match
// case-insensitively; a color outside the palette fails with an
// *InvalidArgumentError before any request is sent.
func (l Labeled) SetLabel(ctx context.Context, color string) error {
	normalized := strings.ToLower(color)
	if !slices.Contains(labelColors, normalized) {
		return &InvalidArgumentError{Op: "SetLabel", Argument: "color", Value: color, Allowed: labelColors}
	}
	_, err := l.handle.client.Post(ctx, l.handle.Path()+"/labels", url.Values{"value": {normalized}}, nil)
	return err
}

// ClearLabel removes the label of the given color, with the same color
// validation as SetLabel.
func (l Labeled) ClearLabel(ctx context.Context, color string) error {
	normalized := strings.ToLower(color)
	if !slices.Contains(labelColors, normalized) {
		return &InvalidArgumentError{Op: "ClearLabel", Argument: "color", Value: color, Allowed: labelColors}
	}
	_, err := l.handle.client.Delete(ctx, l.handle.Path()+"/labels/"+normalized, nil)
	return err
}
