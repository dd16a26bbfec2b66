// Copyright 2026 The Cardwall Authors
// SPDX-License-Identifier: Apache-2.0

package trello

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/go-querystring/query"
)

// Card is a single work item on a board. Cards can be archived,
// deleted, and labeled, carry attachments and stickers, and reference
// their board, list, checklists, and members.
type Card struct {
	*Handle
	Closable
	Deletable
	Labeled
}

func newCard(handle *Handle) *Card {
	return &Card{
		Handle:    handle,
		Closable:  Closable{handle: handle},
		Deletable: Deletable{handle: handle},
		Labeled:   Labeled{handle: handle},
	}
}

// Sticker is a decoration placed on the front of a card.
type Sticker struct {
	*Handle
}

func newSticker(handle *Handle) *Sticker {
	return &Sticker{Handle: handle}
}

// Image returns the sticker's image name, such as "taco".
func (sticker *Sticker) Image(ctx context.Context) (string, error) {
	return getString(ctx, sticker.Handle, "image")
}

// URL returns the card's browser URL.
func (card *Card) URL(ctx context.Context) (string, error) {
	return getString(ctx, card.Handle, "url")
}

// Name returns the card's title.
func (card *Card) Name(ctx context.Context) (string, error) {
	return getString(ctx, card.Handle, "name")
}

// Desc returns the card's description, raw markdown.
func (card *Card) Desc(ctx context.Context) (string, error) {
	return getString(ctx, card.Handle, "desc")
}

// DescriptionHTML returns the card's description rendered to HTML.
func (card *Card) DescriptionHTML(ctx context.Context) (string, error) {
	desc, err := card.Desc(ctx)
	if err != nil {
		return "", err
	}
	return renderMarkdownHTML(desc)
}

// Closed reports whether the card is archived.
func (card *Card) Closed(ctx context.Context) (bool, error) {
	return getBool(ctx, card.Handle, "closed")
}

// Due returns the card's due date. Cards without one fail with a
// *MalformedDateError, since the service reports the absence as a
// null.
func (card *Card) Due(ctx context.Context) (time.Time, error) {
	return getTime(ctx, card.Handle, "due")
}

// Badges returns the card's badge counts: votes, comments, attachments,
// checklist progress.
func (card *Card) Badges(ctx context.Context) (Document, error) {
	return getDocument(ctx, card.Handle, "badges")
}

// CheckItemStates returns the completion state of the card's checklist
// items.
func (card *Card) CheckItemStates(ctx context.Context) ([]Document, error) {
	return getDocumentList(ctx, card.Handle, "checkItemStates")
}

// LabelIDs returns the ids of the labels on the card.
func (card *Card) LabelIDs(ctx context.Context) ([]string, error) {
	return getStringList(ctx, card.Handle, "idLabels")
}

// Board returns the board the card is on, as a lazy handle.
func (card *Card) Board(ctx context.Context) (*Board, error) {
	handle, err := getHandle(ctx, card.Handle, "board")
	if err != nil {
		return nil, err
	}
	return newBoard(handle), nil
}

// List returns the list the card sits in, as a lazy handle.
func (card *Card) List(ctx context.Context) (*List, error) {
	handle, err := getHandle(ctx, card.Handle, "list")
	if err != nil {
		return nil, err
	}
	return newList(handle), nil
}

// Checklists returns the card's checklists as lazy handles, in card
// order.
func (card *Card) Checklists(ctx context.Context) ([]*Checklist, error) {
	handles, err := getHandleList(ctx, card.Handle, "checklists")
	if err != nil {
		return nil, err
	}
	checklists := make([]*Checklist, len(handles))
	for i, handle := range handles {
		checklists[i] = newChecklist(handle)
	}
	return checklists, nil
}

// Members returns the members assigned to the card as lazy handles, in
// card order.
func (card *Card) Members(ctx context.Context) ([]*Member, error) {
	handles, err := getHandleList(ctx, card.Handle, "members")
	if err != nil {
		return nil, err
	}
	members := make([]*Member, len(handles))
	for i, handle := range handles {
		members[i] = newMember(handle)
	}
	return members, nil
}

// Stickers returns the stickers on the card's front.
func (card *Card) Stickers(ctx context.Context) ([]*Sticker, error) {
	handles, err := getHandleList(ctx, card.Handle, "stickers")
	if err != nil {
		return nil, err
	}
	stickers := make([]*Sticker, len(handles))
	for i, handle := range handles {
		stickers[i] = newSticker(handle)
	}
	return stickers, nil
}

// Attachments returns the card's attachments.
func (card *Card) Attachments(ctx context.Context) ([]*Attachment, error) {
	handles, err := getHandleList(ctx, card.Handle, "attachments")
	if err != nil {
		return nil, err
	}
	attachments := make([]*Attachment, len(handles))
	for i, handle := range handles {
		attachments[i] = newAttachment(handle)
	}
	return attachments, nil
}

// Labels returns the labels on the card.
func (card *Card) Labels(ctx context.Context) ([]*Label, error) {
	handles, err := getHandleList(ctx, card.Handle, "labels")
	if err != nil {
		return nil, err
	}
	labels := make([]*Label, len(handles))
	for i, handle := range handles {
		labels[i] = newLabel(handle)
	}
	return labels, nil
}

// commentArgs carries the parameters for posting a comment.
type commentArgs struct {
	Text string `url:"text"`
}

// AddComment posts a comment on the card. The returned action is
// pre-seeded from the creation response.
func (card *Card) AddComment(ctx context.Context, text string) (*Action, error) {
	params, err := query.Values(commentArgs{Text: text})
	if err != nil {
		return nil, fmt.Errorf("encoding comment parameters: %w", err)
	}
	body, err := card.client.Post(ctx, card.Path()+"/actions/comments", params, nil)
	if err != nil {
		return nil, fmt.Errorf("commenting on card %s: %w", card.ID(), err)
	}
	document, err := documentFromJSON(body)
	if err != nil {
		return nil, err
	}
	id, ok := document.stringID()
	if !ok {
		return nil, fmt.Errorf("trello: comment response missing action id")
	}
	return newAction(newSeededHandle(card.client, KindAction, id, document)), nil
}

// SetDueDate sets the card's due date. A nil due clears it.
func (card *Card) SetDueDate(ctx context.Context, due *time.Time) error {
	value := ""
	if due != nil {
		value = due.Format(time.RFC3339)
	}
	_, err := card.client.Put(ctx, card.Path()+"/due", url.Values{"value": {value}}, nil)
	if err != nil {
		return fmt.Errorf("setting due date on card %s: %w", card.ID(), err)
	}
	return nil
}

// SetCover makes an attachment the card's cover image. A nil
// attachment clears the cover.
func (card *Card) SetCover(ctx context.Context, attachment *Attachment) error {
	value := ""
	if attachment != nil {
		value = attachment.ID()
	}
	_, err := card.client.Put(ctx, card.Path()+"/idAttachmentCover", url.Values{"value": {value}}, nil)
	if err != nil {
		return fmt.Errorf("setting cover on card %s: %w", card.ID(), err)
	}
	return nil
}

// attachArgs carries the parameters for attaching a link.
type attachArgs struct {
	URL  string `url:"url"`
	Name string `url:"name,omitempty"`
}

// AttachURL attaches a link to the card. The returned attachment is
// pre-seeded from the creation response. Name is optional; the service
// falls back to the URL itself.
func (card *Card) AttachURL(ctx context.Context, name, fileURL string) (*Attachment, error) {
	params, err := query.Values(attachArgs{URL: fileURL, Name: name})
	if err != nil {
		return nil, fmt.Errorf("encoding attachment parameters: %w", err)
	}
	body, err := card.client.Post(ctx, card.Path()+"/attachments", params, nil)
	if err != nil {
		return nil, fmt.Errorf("attaching to card %s: %w", card.ID(), err)
	}
	document, err := documentFromJSON(body)
	if err != nil {
		return nil, err
	}
	id, ok := document.stringID()
	if !ok {
		return nil, fmt.Errorf("trello: attachment response missing id")
	}
	return newAttachment(newSeededHandle(card.client, KindAttachment, id, document)), nil
}

// Detach removes an attachment from the card.
func (card *Card) Detach(ctx context.Context, attachment *Attachment) error {
	_, err := card.client.Delete(ctx, card.Path()+attachment.Path(), nil)
	if err != nil {
		return fmt.Errorf("detaching from card %s: %w", card.ID(), err)
	}
	return nil
}

// StickerPlacement positions a sticker on a card's front. Left and Top
// are percentages of the card's size and may be negative; ZIndex
// stacks overlapping stickers; Rotate is degrees clockwise.
type StickerPlacement struct {
	Left   float64 `url:"left"`
	Top    float64 `url:"top"`
	ZIndex int     `url:"zIndex"`
	Rotate float64 `url:"rotate,omitempty"`
}

// stickerPasteArgs carries the parameters for pasting a sticker.
type stickerPasteArgs struct {
	Image string `url:"image"`
	StickerPlacement
}

// PasteSticker puts a sticker on the card's front. Image names the
// sticker ("taco", "check", ...). The returned sticker is pre-seeded
// from the creation response.
func (card *Card) PasteSticker(ctx context.Context, image string, placement StickerPlacement) (*Sticker, error) {
	params, err := query.Values(stickerPasteArgs{Image: image, StickerPlacement: placement})
	if err != nil {
		return nil, fmt.Errorf("encoding sticker parameters: %w", err)
	}
	body, err := card.client.Post(ctx, card.Path()+"/stickers", params, nil)
	if err != nil {
		return nil, fmt.Errorf("pasting sticker on card %s: %w", card.ID(), err)
	}
	document, err := documentFromJSON(body)
	if err != nil {
		return nil, err
	}
	id, ok := document.stringID()
	if !ok {
		return nil, fmt.Errorf("trello: sticker response missing id")
	}
	return newSticker(newSeededHandle(card.client, KindSticker, id, document)), nil
}

// RemoveSticker takes a sticker off the card.
func (card *Card) RemoveSticker(ctx context.Context, sticker *Sticker) error {
	_, err := card.client.Delete(ctx, card.Path()+sticker.Path(), nil)
	if err != nil {
		return fmt.Errorf("removing sticker from card %s: %w", card.ID(), err)
	}
	return nil
}
