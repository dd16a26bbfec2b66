// Copyright 2026 The Cardwall Authors
// SPDX-License-Identifier: Apache-2.0

package trello

import (
	"context"
	"net/url"
	"sync"
	"testing"
)

// fakeTransport is an in-memory Transport serving canned JSON bodies
// keyed by method and path. Every call is recorded. Paths with no
// canned response answer 404, like the live service does for missing
// objects.
type fakeTransport struct {
	mu        sync.Mutex
	requests  []fakeRequest
	responses map[string]string

	// gate, when set, blocks every exchange until the channel closes.
	// Set before use; tests use it to pile up concurrent callers.
	gate chan struct{}
}

type fakeRequest struct {
	method string
	path   string
	query  url.Values
	body   any
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{responses: make(map[string]string)}
}

// respond registers a canned response body for a method and path.
func (transport *fakeTransport) respond(method, path, body string) {
	transport.mu.Lock()
	defer transport.mu.Unlock()
	transport.responses[method+" "+path] = body
}

func (transport *fakeTransport) exchange(method, path string, query url.Values, body any) ([]byte, error) {
	if transport.gate != nil {
		<-transport.gate
	}

	transport.mu.Lock()
	transport.requests = append(transport.requests, fakeRequest{method: method, path: path, query: query, body: body})
	response, ok := transport.responses[method+" "+path]
	transport.mu.Unlock()

	if !ok {
		return nil, &TransportError{StatusCode: 404, Method: method, Path: path, Message: "model not found"}
	}
	return []byte(response), nil
}

func (transport *fakeTransport) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return transport.exchange("GET", path, query, nil)
}

func (transport *fakeTransport) Post(ctx context.Context, path string, query url.Values, body any) ([]byte, error) {
	return transport.exchange("POST", path, query, body)
}

func (transport *fakeTransport) Put(ctx context.Context, path string, query url.Values, body any) ([]byte, error) {
	return transport.exchange("PUT", path, query, body)
}

func (transport *fakeTransport) Delete(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return transport.exchange("DELETE", path, query, nil)
}

func (transport *fakeTransport) requestCount() int {
	transport.mu.Lock()
	defer transport.mu.Unlock()
	return len(transport.requests)
}

// request returns the recorded request at index, failing the test when
// fewer requests were made.
func (transport *fakeTransport) request(t *testing.T, index int) fakeRequest {
	t.Helper()
	transport.mu.Lock()
	defer transport.mu.Unlock()
	if index >= len(transport.requests) {
		t.Fatalf("request %d not made; %d requests recorded", index, len(transport.requests))
	}
	return transport.requests[index]
}

// newFakeClient builds a client over a fresh fakeTransport with the
// fixture credentials.
func newFakeClient(t *testing.T) (*Client, *fakeTransport) {
	t.Helper()
	transport := newFakeTransport()
	client, err := NewClient(Config{Key: "blah", Token: "blerg", Transport: transport})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client, transport
}
