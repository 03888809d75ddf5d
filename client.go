// Package clearlydefined provides a typed client for the ClearlyDefined
// service, which indexes open-source components and their license and
// attribution findings (https://clearlydefined.io).
package clearlydefined

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// ProductionAPI is the public ClearlyDefined deployment.
	ProductionAPI = "https://api.clearlydefined.io"
	// DevelopmentAPI is the ClearlyDefined development deployment.
	DevelopmentAPI = "https://dev-api.clearlydefined.io"
)

const defaultUserAgent = "clearlydefined-go"

// Client queries the ClearlyDefined REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a server other than production,
// e.g. DevelopmentAPI or a self-hosted deployment.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(base, "/")
	}
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent sets the User-Agent header for API requests.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a client for the production service. Pass options to
// change the server, HTTP client, or user agent.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: ProductionAPI,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetDefinitions fetches the aggregated definitions for a batch of
// coordinates. The response is keyed by canonical coordinate string;
// coordinates the service does not know are omitted.
func (c *Client) GetDefinitions(ctx context.Context, coords []Coordinates) (map[Coordinates]*Defined, error) {
	body := make([]string, len(coords))
	for i, coord := range coords {
		body[i] = coord.String()
	}

	resp, err := c.send(ctx, http.MethodPost, "definitions", nil, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result map[Coordinates]*Defined
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return result, nil
}

// FindDefinitions searches for known coordinates matching a pattern and
// returns them as coordinate strings, exactly as the service reports
// them. Use ParseCoordinates on entries the caller wants typed.
func (c *Client) FindDefinitions(ctx context.Context, pattern string) ([]string, error) {
	q := url.Values{"pattern": {pattern}}
	resp, err := c.send(ctx, http.MethodGet, "definitions", q, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result []string
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetCuration fetches the curation recorded for a component revision.
// The coordinate's revision must be set; curations attach to concrete
// revisions.
func (c *Client) GetCuration(ctx context.Context, coord Coordinates) (*Curation, error) {
	if err := requireRevision(coord); err != nil {
		return nil, err
	}
	resp, err := c.send(ctx, http.MethodGet, "curations/"+coordinatePath(coord), nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result Curation
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SubmitCuration proposes curations to the service, which opens a pull
// request against its curation store and reports it back.
func (c *Client) SubmitCuration(ctx context.Context, patch ContributionPatch) (*ContributionSummary, error) {
	resp, err := c.send(ctx, http.MethodPatch, "curations", nil, patch)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result ContributionSummary
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RequestHarvest queues harvest runs for the given components. The
// service answers with an opaque acknowledgement string.
func (c *Client) RequestHarvest(ctx context.Context, entries []HarvestRequest) (string, error) {
	resp, err := c.send(ctx, http.MethodPost, "harvest", nil, entries)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	ack, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(ack), nil
}

// HarvestTools lists the tools that have harvested a component revision.
func (c *Client) HarvestTools(ctx context.Context, coord Coordinates) ([]string, error) {
	if err := requireRevision(coord); err != nil {
		return nil, err
	}
	q := url.Values{"form": {"list"}}
	resp, err := c.send(ctx, http.MethodGet, "harvest/"+coordinatePath(coord), q, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result []string
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return result, nil
}

// HarvestData streams the raw output one tool produced for a component
// revision. The caller owns the returned body and must close it.
func (c *Client) HarvestData(ctx context.Context, coord Coordinates, tool, toolVersion string) (io.ReadCloser, error) {
	if err := requireRevision(coord); err != nil {
		return nil, err
	}
	path := "harvest/" + coordinatePath(coord) +
		"/" + url.PathEscape(tool) + "/" + url.PathEscape(toolVersion)
	q := url.Values{"form": {"streamed"}}
	resp, err := c.send(ctx, http.MethodGet, path, q, nil)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// send issues one request and returns the response, translating any
// non-2xx status into an error. body, when non-nil, is JSON-encoded.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	u := c.baseURL + "/" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("clearlydefined: %s", resp.Status)
	}
	return resp, nil
}

// requireRevision rejects coordinates without a revision before they
// reach a revision-scoped route, where the 4-segment form would address
// a different resource entirely.
func requireRevision(c Coordinates) error {
	if c.Revision == "" {
		return fmt.Errorf("clearlydefined: %s: revision required", c)
	}
	return nil
}

// coordinatePath renders a coordinate as URL path segments, escaping
// each segment individually. The trailing revision segment is omitted
// when absent, matching the canonical string form.
func coordinatePath(c Coordinates) string {
	ns := c.Namespace
	if ns == "" {
		ns = "-"
	}
	segments := []string{
		url.PathEscape(string(c.Type)),
		url.PathEscape(string(c.Provider)),
		url.PathEscape(ns),
		url.PathEscape(c.Name),
	}
	if c.Revision != "" {
		segments = append(segments, url.PathEscape(c.Revision))
	}
	return strings.Join(segments, "/")
}
