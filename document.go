// Copyright 2026 The Cardwall Authors
// SPDX-License-Identifier: Apache-2.0

package trello

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Document is the raw field-to-value mapping the service returns for a
// single object, decoded with encoding/json defaults: strings, bools,
// float64 numbers, nested map[string]any objects, and []any arrays.
type Document map[string]any

// documentFromJSON decodes one JSON object. A JSON null decodes to an
// empty document so that a handle seeded from it still counts as
// fetched.
func documentFromJSON(data []byte) (Document, error) {
	var document Document
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("trello: decoding object document: %w", err)
	}
	if document == nil {
		document = Document{}
	}
	return document, nil
}

// documentsFromJSON decodes a JSON array of objects, preserving the
// service's ordering.
func documentsFromJSON(data []byte) ([]Document, error) {
	var documents []Document
	if err := json.Unmarshal(data, &documents); err != nil {
		return nil, fmt.Errorf("trello: decoding object listing: %w", err)
	}
	return documents, nil
}

// stringID extracts the identifier of a listed document. Every object
// the service returns carries a string id.
func (document Document) stringID() (string, bool) {
	id, ok := document["id"].(string)
	return id, ok && id != ""
}

// asInt converts a raw document value to an int. JSON numbers arrive as
// float64 and are accepted only when integral; numeric strings are
// parsed.
func asInt(value any) (int, bool) {
	switch typed := value.(type) {
	case float64:
		if typed != math.Trunc(typed) {
			return 0, false
		}
		return int(typed), true
	case string:
		parsed, err := strconv.Atoi(typed)
		if err != nil {
			return 0, false
		}
		return parsed, true
	case int:
		return typed, true
	}
	return 0, false
}

// asBool converts a raw document value to a bool. Accepts JSON booleans
// and the literal strings "true" and "false".
func asBool(value any) (bool, bool) {
	switch typed := value.(type) {
	case bool:
		return typed, true
	case string:
		parsed, err := strconv.ParseBool(typed)
		if err != nil {
			return false, false
		}
		return parsed, true
	}
	return false, false
}
