// Copyright 2026 The Cardwall Authors
// SPDX-License-Identifier: Apache-2.0

package trello

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/juju/clock"
)

// apiVersionPath is the versioned root every service path hangs off.
// The transport owns version prefixing so that the mapping layer deals
// only in object paths like "/boards/b1".
const apiVersionPath = "/1"

// maxResponseSize is the bound on response body reads: 64 MB. It
// exists solely to prevent a pathological response from exhausting
// memory; legitimate responses, even full board listings, are orders
// of magnitude smaller.
const maxResponseSize int64 = 64 << 20

// TransportConfig holds configuration for creating an HTTPTransport.
type TransportConfig struct {
	// BaseURL is the root URL for API requests, without the version
	// segment. Defaults to "https://api.trello.com". Must use HTTPS.
	BaseURL string

	// HTTPClient is used for all HTTP requests. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// Clock provides time operations for rate limit backoff. Defaults
	// to clock.WallClock.
	Clock clock.Clock

	// Logger is used for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// HTTPTransport is the production Transport: HTTPS-only requests with
// rate limit tracking, a single backoff-and-retry on 429 responses,
// and ETag-based conditional GETs.
type HTTPTransport struct {
	baseURL    string
	httpClient *http.Client
	clock      clock.Clock
	logger     *slog.Logger
	rateLimit  *rateLimitTracker
	etagCache  *etagCache
}

// NewHTTPTransport creates a transport from the given configuration.
// Returns an error if the base URL is not HTTPS.
func NewHTTPTransport(config TransportConfig) (*HTTPTransport, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	if !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("trello: API transport requires HTTPS (got %q)", baseURL)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	clk := config.Clock
	if clk == nil {
		clk = clock.WallClock
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &HTTPTransport{
		baseURL:    baseURL + apiVersionPath,
		httpClient: httpClient,
		clock:      clk,
		logger:     logger,
		rateLimit:  newRateLimitTracker(clk),
		etagCache:  newETagCache(),
	}, nil
}

// Get implements Transport.
func (transport *HTTPTransport) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return transport.do(ctx, http.MethodGet, path, query, nil, false)
}

// Post implements Transport.
func (transport *HTTPTransport) Post(ctx context.Context, path string, query url.Values, body any) ([]byte, error) {
	return transport.do(ctx, http.MethodPost, path, query, body, false)
}

// Put implements Transport.
func (transport *HTTPTransport) Put(ctx context.Context, path string, query url.Values, body any) ([]byte, error) {
	return transport.do(ctx, http.MethodPut, path, query, body, false)
}

// Delete implements Transport.
func (transport *HTTPTransport) Delete(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return transport.do(ctx, http.MethodDelete, path, query, nil, false)
}

// do executes one request. Handles rate limit waiting, ETag caching,
// error parsing, and a single backoff-and-retry when the service
// answers 429; isRetry prevents looping on persistent rate limiting.
//
// Returns the response body as raw bytes. On non-2xx responses,
// returns a *TransportError.
func (transport *HTTPTransport) do(ctx context.Context, method, path string, query url.Values, body any, isRetry bool) ([]byte, error) {
	requestURL := transport.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	response, err := transport.doRaw(ctx, method, path, requestURL, body)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	// 304 Not Modified: replay the cached body.
	if response.StatusCode == http.StatusNotModified {
		if _, cached, ok := transport.etagCache.lookup(requestURL); ok {
			return cached, nil
		}
		// Cache miss on 304 should not happen; fall through and read
		// the (empty) response body rather than failing silently.
	}

	responseBody, err := io.ReadAll(io.LimitReader(response.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("trello: reading response body: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		// One retry after backoff. The service rejects rate-limited
		// requests without processing them, so retrying mutations is
		// safe.
		if !isRetry && response.StatusCode == http.StatusTooManyRequests {
			retryDuration := transport.rateLimit.retryAfter(response.Header)
			if retryDuration > 0 {
				transport.logger.Info("rate limited, backing off",
					"duration", retryDuration,
					"method", method,
					"path", path,
				)

				select {
				case <-transport.clock.After(retryDuration):
				case <-ctx.Done():
					return nil, ctx.Err()
				}

				return transport.do(ctx, method, path, query, body, true)
			}
		}

		return nil, transportErrorFromBody(method, path, response.StatusCode, responseBody)
	}

	// Cache ETag for GET responses.
	if method == http.MethodGet {
		transport.etagCache.store(requestURL, response.Header.Get("ETag"), responseBody)
	}

	return responseBody, nil
}

// doRaw executes an HTTP request with rate limit waiting but without
// response parsing. The caller is responsible for closing the response
// body. The path is carried separately from the full URL so that
// errors never echo the credential-bearing query string.
func (transport *HTTPTransport) doRaw(ctx context.Context, method, path, requestURL string, body any) (*http.Response, error) {
	// Preemptive rate limit check.
	if err := transport.rateLimit.wait(ctx); err != nil {
		return nil, err
	}

	var bodyReader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("trello: encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("trello: creating request: %w", err)
	}

	request.Header.Set("Accept", "application/json")
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	// ETag for conditional GET requests.
	if method == http.MethodGet {
		if etag, _, ok := transport.etagCache.lookup(requestURL); ok {
			request.Header.Set("If-None-Match", etag)
		}
	}

	response, err := transport.httpClient.Do(request)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Message: err.Error(), cause: err}
	}

	// Update rate limit tracking from every response.
	transport.rateLimit.update(response.Header)

	return response, nil
}

// transportErrorFromBody parses a service error from a status code and
// response body. Trello error bodies are usually plain text, sometimes
// a JSON object with a message or error field.
func transportErrorFromBody(method, path string, statusCode int, body []byte) *TransportError {
	transportError := &TransportError{
		StatusCode: statusCode,
		Method:     method,
		Path:       path,
		Body:       body,
	}

	var wireError struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(body, &wireError) == nil && (wireError.Message != "" || wireError.Error != "") {
		transportError.Message = wireError.Message
		if transportError.Message == "" {
			transportError.Message = wireError.Error
		}
	} else {
		transportError.Message = strings.TrimSpace(string(body))
	}

	return transportError
}
