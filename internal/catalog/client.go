// Package catalog queries the public MCP server registry so users can find
// servers by name before wiring them into their tools.
package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tidwall/gjson"

	"github.com/opensync/opensync/internal/errors"
)

// DefaultBaseURL is the hosted community registry.
const DefaultBaseURL = "https://registry.modelcontextprotocol.io/v0.1"

// maxPageSize caps one search page; the registry rejects larger limits.
const maxPageSize = 100

// Result is one registry listing, flattened to the fields the CLI shows.
type Result struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Version     string    `json:"version"`
	Repository  string    `json:"repository,omitempty"`
	Packages    []Package `json:"packages,omitempty"`
	Remotes     []Remote  `json:"remotes,omitempty"`
}

// Package describes one installable distribution of a listed server.
type Package struct {
	RegistryType string `json:"registry_type"`
	Identifier   string `json:"identifier"`
	Version      string `json:"version,omitempty"`
	RuntimeHint  string `json:"runtime_hint,omitempty"`
}

// Remote describes one hosted endpoint of a listed server.
type Remote struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// Client talks to one MCP registry instance.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the given registry. An empty baseURL means
// the hosted community registry.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Search returns one page of listings matching the query, plus the cursor
// for the next page ("" when this page is the last).
func (c *Client) Search(ctx context.Context, query, cursor string, limit int) ([]Result, string, error) {
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	if query != "" {
		params.Set("search", query)
	}
	if cursor != "" {
		params.Set("cursor", cursor)
	}

	body, err := c.get(ctx, fmt.Sprintf("%s/servers?%s", c.baseURL, params.Encode()))
	if err != nil {
		return nil, "", err
	}

	var results []Result
	for _, entry := range gjson.GetBytes(body, "servers").Array() {
		results = append(results, parseResult(entry.Get("server")))
	}
	return results, gjson.GetBytes(body, "metadata.nextCursor").String(), nil
}

// Get returns the latest published version of one listing by its exact
// registry name (e.g. "io.github.owner/server").
func (c *Client) Get(ctx context.Context, name string) (*Result, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/servers/%s/versions/latest", c.baseURL, url.PathEscape(name)))
	if err != nil {
		return nil, err
	}
	result := parseResult(gjson.GetBytes(body, "server"))
	if result.Name == "" {
		return nil, errors.Wrapf(errors.ErrNotFound, "registry entry %q", name)
	}
	return &result, nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building registry request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "querying registry")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.Wrapf(errors.ErrNotFound, "registry returned 404 for %s", rawURL)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf("registry returned %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, errors.Wrap(err, "reading registry response")
	}
	return body, nil
}

func parseResult(server gjson.Result) Result {
	r := Result{
		Name:        server.Get("name").String(),
		Description: server.Get("description").String(),
		Version:     server.Get("version").String(),
		Repository:  server.Get("repository.url").String(),
	}
	for _, pkg := range server.Get("packages").Array() {
		r.Packages = append(r.Packages, Package{
			RegistryType: pkg.Get("registryType").String(),
			Identifier:   pkg.Get("identifier").String(),
			Version:      pkg.Get("version").String(),
			RuntimeHint:  pkg.Get("runtimeHint").String(),
		})
	}
	for _, remote := range server.Get("remotes").Array() {
		r.Remotes = append(r.Remotes, Remote{
			Type: remote.Get("type").String(),
			URL:  remote.Get("url").String(),
		})
	}
	return r
}
