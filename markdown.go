// Copyright 2026 The Cardwall Authors
// SPDX-License-Identifier: Apache-2.0

package trello

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdownInstance is initialized once and reused. The converter
// configuration never changes and goldmark is safe to share; each
// Convert call creates its own parse state.
var (
	markdownInstance goldmark.Markdown
	markdownOnce     sync.Once
)

func getMarkdown() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return markdownInstance
}

// renderMarkdownHTML converts service markdown to HTML. Board and card
// descriptions use GitHub-flavored constructs (tables, strikethrough,
// task lists, autolinks), so the GFM extension is enabled.
func renderMarkdownHTML(source string) (string, error) {
	if source == "" {
		return "", nil
	}
	var output bytes.Buffer
	if err := getMarkdown().Convert([]byte(source), &output); err != nil {
		return "", fmt.Errorf("trello: rendering markdown: %w", err)
	}
	return output.String(), nil
}
