package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
)

// descQueryParam carries the descriptive prompt shown by the host when it
// asks the user to share their profile.
const descQueryParam = "desc"

// HTTPSource fetches a profile object from the host API over HTTP.
// The response body is decoded as JSON into T.
//
// No retry or backoff is applied; a failed call surfaces as a single error.
// Cancellation and deadlines are honoured through the request context.
type HTTPSource[T any] struct {
	client   *http.Client
	endpoint string
	desc     string
}

// NewHTTPSource creates a source for the given endpoint. desc is the
// descriptive prompt string forwarded to the host with every fetch. When
// token is non-empty, requests carry it as an OAuth2 bearer token.
func NewHTTPSource[T any](endpoint, desc, token string) *HTTPSource[T] {
	client := http.DefaultClient
	if token != "" {
		client = oauth2.NewClient(
			context.Background(),
			oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
		)
	}

	return &HTTPSource[T]{
		client:   client,
		endpoint: endpoint,
		desc:     desc,
	}
}

// Fetch performs one GET against the host endpoint and decodes the response.
// Non-2xx responses are returned as *HTTPError.
func (s *HTTPSource[T]) Fetch(ctx context.Context) (T, error) {
	var zero T

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return zero, fmt.Errorf("failed to create profile request: %w", err)
	}

	if s.desc != "" {
		q := req.URL.Query()
		q.Set(descQueryParam, s.desc)
		req.URL.RawQuery = q.Encode()
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return zero, fmt.Errorf("profile request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, fmt.Errorf("failed to read profile response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return zero, &HTTPError{StatusCode: resp.StatusCode, Body: body}
	}

	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return zero, fmt.Errorf("failed to decode profile response: %w", err)
	}

	return v, nil
}
