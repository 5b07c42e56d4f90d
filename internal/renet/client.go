// Package renet wraps the upstream Renet listings API: bearer-token HTTPS
// JSON endpoints returning a {data, status, success} envelope. The client is
// explicitly constructed and injected into its callers; there is no shared
// instance.
package renet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gardianmky/listings/internal/domain"
)

// DefaultBaseURL is the production Renet endpoint.
const DefaultBaseURL = "https://api.renet.app/Website"

// ErrMissingToken is returned by NewClient when no API token is supplied.
var ErrMissingToken = errors.New("renet: API token is required")

// Client calls the Renet listings API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	retry      RetryConfig
}

// NewClient creates a Client. The token is required; httpClient may be nil,
// in which case a client with a 30s timeout is used.
func NewClient(baseURL, token string, httpClient *http.Client) (*Client, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: httpClient,
		retry:      RetryConfig{MaxAttempts: 3, BaseDelay: time.Second},
	}, nil
}

// envelope is the upstream response wrapper.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Status  int             `json:"status"`
	Success bool            `json:"success"`
}

// ListParams narrows a FetchListings call.
type ListParams struct {
	Type   string // "forSale", "forRent", or "commercial"
	Limit  int
	Offset int
}

// FetchListings retrieves the listing collection.
func (c *Client) FetchListings(ctx context.Context, params ListParams) ([]domain.Listing, error) {
	q := url.Values{}
	if params.Type != "" {
		q.Set("type", params.Type)
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}

	var listings []domain.Listing
	if err := c.get(ctx, "/Listings", q, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// FetchListing retrieves a single listing by ID.
func (c *Client) FetchListing(ctx context.Context, id string) (*domain.Listing, error) {
	var l domain.Listing
	if err := c.get(ctx, "/Listings/"+url.PathEscape(id), nil, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// SearchListings runs a free-text search with additional filter parameters.
func (c *Client) SearchListings(ctx context.Context, query string, filters url.Values) ([]domain.Listing, error) {
	q := url.Values{}
	q.Set("query", query)
	for key, values := range filters {
		for _, v := range values {
			q.Add(key, v)
		}
	}

	var listings []domain.Listing
	if err := c.get(ctx, "/Listings/search", q, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// get performs one authenticated GET with retry, decodes the envelope, and
// unmarshals its data payload into out.
func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	return c.retry.Do(ctx, "GET "+path, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return fmt.Errorf("renet: request failed with status %d", resp.StatusCode)
		}

		var env envelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			return fmt.Errorf("renet: decode envelope: %w", err)
		}
		if !env.Success {
			return fmt.Errorf("renet: upstream reported failure (status %d)", env.Status)
		}
		return json.Unmarshal(env.Data, out)
	})
}
