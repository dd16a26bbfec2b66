// Copyright 2026 The Cardwall Authors
// SPDX-License-Identifier: Apache-2.0

package trello

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/juju/clock"
)

// defaultBaseURL is the base URL for the public Trello API.
const defaultBaseURL = "https://api.trello.com"

// defaultListLimit is the result limit requested on GETs when the
// caller does not set one. The service's own default is far lower and
// silently truncates listings.
const defaultListLimit = 1000

// Transport performs HTTP exchanges against the service and returns
// raw response bodies. The query already contains the client's
// credentials; paths are service paths without the version prefix,
// such as "/boards/b1". The production implementation is
// *HTTPTransport; tests substitute in-memory fakes.
type Transport interface {
	Get(ctx context.Context, path string, query url.Values) ([]byte, error)
	Post(ctx context.Context, path string, query url.Values, body any) ([]byte, error)
	Put(ctx context.Context, path string, query url.Values, body any) ([]byte, error)
	Delete(ctx context.Context, path string, query url.Values) ([]byte, error)
}

// Config holds configuration for creating a Client.
type Config struct {
	// Key and Token are the developer key and member token sent with
	// every request. Both are required.
	Key   string
	Token string

	// BaseURL is the root URL for API requests. Defaults to
	// "https://api.trello.com". Must use HTTPS.
	BaseURL string

	// HTTPClient is used for all HTTP requests. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// Transport overrides the HTTP layer entirely. When set, BaseURL,
	// HTTPClient, and Clock are ignored. Credentials are still merged
	// into each request's query.
	Transport Transport

	// Clock provides time operations for rate limit backoff. Defaults
	// to clock.WallClock. Inject a testclock.Clock in tests for
	// deterministic behavior.
	Clock clock.Clock

	// Logger is used for structured logging. Defaults to slog.Default().
	Logger *slog.Logger

	// Limit is the result limit merged into GET queries that do not
	// set their own. Defaults to 1000.
	Limit int
}

// Client is the entry point to the service: it owns the credentials,
// signs every request with them, and hands out lazy handles to remote
// objects. The zero-cost factories (Board, Card, Me, ...) perform no
// requests; fetching happens on first field access.
type Client struct {
	transport Transport
	key       string
	token     string
	limit     int
}

// NewClient creates a client from the given configuration. Returns an
// error when credentials are missing or the base URL is not HTTPS.
func NewClient(config Config) (*Client, error) {
	if config.Key == "" {
		return nil, fmt.Errorf("trello: key is required")
	}
	if config.Token == "" {
		return nil, fmt.Errorf("trello: token is required")
	}

	limit := config.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	transport := config.Transport
	if transport == nil {
		httpTransport, err := NewHTTPTransport(TransportConfig{
			BaseURL:    config.BaseURL,
			HTTPClient: config.HTTPClient,
			Clock:      config.Clock,
			Logger:     config.Logger,
		})
		if err != nil {
			return nil, err
		}
		transport = httpTransport
	}

	return &Client{
		transport: transport,
		key:       config.Key,
		token:     config.Token,
		limit:     limit,
	}, nil
}

// query merges the client's credentials into the caller's parameters.
// GET queries also receive the default result limit unless the caller
// set one.
func (c *Client) query(params url.Values, withLimit bool) url.Values {
	merged := url.Values{}
	for name, values := range params {
		merged[name] = values
	}
	merged.Set("key", c.key)
	merged.Set("token", c.token)
	if withLimit && merged.Get("limit") == "" {
		merged.Set("limit", strconv.Itoa(c.limit))
	}
	return merged
}

// Get performs an authenticated GET against a service path and returns
// the raw response body. Most callers want the typed accessors on the
// entity types instead; Get is the escape hatch for endpoints the
// schemas do not model.
func (c *Client) Get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	return c.transport.Get(ctx, path, c.query(params, true))
}

// Post performs an authenticated POST against a service path.
func (c *Client) Post(ctx context.Context, path string, params url.Values, body any) ([]byte, error) {
	return c.transport.Post(ctx, path, c.query(params, false), body)
}

// Put performs an authenticated PUT against a service path.
func (c *Client) Put(ctx context.Context, path string, params url.Values, body any) ([]byte, error) {
	return c.transport.Put(ctx, path, c.query(params, false), body)
}

// Delete performs an authenticated DELETE against a service path.
func (c *Client) Delete(ctx context.Context, path string, params url.Values) ([]byte, error) {
	return c.transport.Delete(ctx, path, c.query(params, false))
}

// Board returns a lazy handle to the board with the given id. No
// request is made until a field is first read.
func (c *Client) Board(id string) *Board {
	return newBoard(newHandle(c, KindBoard, id))
}

// Card returns a lazy handle to the card with the given id.
func (c *Client) Card(id string) *Card {
	return newCard(newHandle(c, KindCard, id))
}

// List returns a lazy handle to the list with the given id.
func (c *Client) List(id string) *List {
	return newList(newHandle(c, KindList, id))
}

// Checklist returns a lazy handle to the checklist with the given id.
func (c *Client) Checklist(id string) *Checklist {
	return newChecklist(newHandle(c, KindChecklist, id))
}

// Member returns a lazy handle to the member with the given id or
// username.
func (c *Client) Member(id string) *Member {
	return newMember(newHandle(c, KindMember, id))
}

// Notification returns a lazy handle to the notification with the
// given id.
func (c *Client) Notification(id string) *Notification {
	return newNotification(newHandle(c, KindNotification, id))
}

// Organization returns a lazy handle to the organization with the
// given id or name.
func (c *Client) Organization(id string) *Organization {
	return newOrganization(newHandle(c, KindOrganization, id))
}

// Me returns the member the client's credentials belong to. The
// service resolves the special id "me" to that member on first access.
func (c *Client) Me() *Member {
	return c.Member("me")
}
