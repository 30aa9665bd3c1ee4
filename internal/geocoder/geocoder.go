// Package geocoder resolves coordinates into a validated US (city, state)
// pair through the Geoapify reverse-geocoding API. Client-submitted place
// names are never trusted; the coordinate is the only client input and the
// authoritative place name comes from the upstream service.
package geocoder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

var (
	// ErrMissingAPIKey means the service was started without a Geoapify
	// credential. Surfaced to the operator, never retried.
	ErrMissingAPIKey = errors.New("geocoder: api key is not configured")
	// ErrUpstream means the geocoding service answered with a non-success
	// status.
	ErrUpstream = errors.New("geocoder: upstream returned non-success status")
	// ErrNoResult means the coordinate resolved to nothing.
	ErrNoResult = errors.New("geocoder: no result for coordinates")
	// ErrOutsideUS means the coordinate resolved outside the United States.
	ErrOutsideUS = errors.New("geocoder: coordinates are outside the US")
	// ErrIncompleteResult means the upstream result lacks a city or state.
	ErrIncompleteResult = errors.New("geocoder: result is missing city or state")
)

// Place is a validated canonical location.
type Place struct {
	City  string
	State string
}

// ReverseGeocoder resolves a coordinate into raw upstream results. The
// validation rules in Validate are separate from the transport so they can
// be exercised without a network.
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) ([]Result, error)
}

// Result is one entry of the upstream response's results array.
type Result struct {
	CountryCode string `json:"country_code"`
	City        string `json:"city"`
	StateCode   string `json:"state_code"`
}

type reverseResponse struct {
	Results []Result `json:"results"`
}

// Client calls the Geoapify reverse geocoding endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Geoapify client. A nil httpClient falls back to
// http.DefaultClient; no timeout is imposed beyond the client's own.
func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// ReverseGeocode issues one GET to /v1/geocode/reverse and decodes the
// results array. It does not validate the content; see Validate.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) ([]Result, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("apiKey", c.apiKey)
	params.Set("format", "json")

	reqURL := c.baseURL + "/v1/geocode/reverse?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("geocoder: failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoder: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ErrUpstream, resp.Status)
	}

	var body reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("geocoder: failed to decode response: %w", err)
	}

	return body.Results, nil
}

// Validate applies the acceptance rules to reverse-geocode results and
// returns the canonical place: the first result must exist, be in the US,
// and carry both a city and a state code.
func Validate(results []Result) (Place, error) {
	if len(results) == 0 {
		return Place{}, ErrNoResult
	}

	first := results[0]
	if strings.ToLower(first.CountryCode) != "us" {
		return Place{}, ErrOutsideUS
	}
	if first.City == "" || first.StateCode == "" {
		return Place{}, ErrIncompleteResult
	}

	return Place{City: first.City, State: first.StateCode}, nil
}
