package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/opensync/opensync/internal/errors"
)

const searchPage = `{
  "servers": [
    {
      "server": {
        "name": "io.github.github/github-mcp-server",
        "description": "GitHub's official MCP server",
        "version": "1.2.0",
        "repository": {"url": "https://github.com/github/github-mcp-server"},
        "packages": [
          {"registryType": "npm", "identifier": "@github/mcp-server", "version": "1.2.0", "runtimeHint": "npx"}
        ],
        "remotes": [
          {"type": "streamable-http", "url": "https://api.githubcopilot.com/mcp/"}
        ]
      }
    },
    {"server": {"name": "io.github.acme/other", "version": "0.1.0"}}
  ],
  "metadata": {"nextCursor": "page-2"}
}`

func TestSearch(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("search")
		w.Write([]byte(searchPage))
	}))
	defer srv.Close()

	results, cursor, err := NewClient(srv.URL).Search(context.Background(), "github", "", 10)
	if err != nil {
		t.Fatal(err)
	}
	if gotPath != "/servers" || gotQuery != "github" {
		t.Errorf("request = %s?search=%s", gotPath, gotQuery)
	}
	if cursor != "page-2" {
		t.Errorf("cursor = %q", cursor)
	}
	if len(results) != 2 {
		t.Fatalf("results = %+v", results)
	}

	first := results[0]
	if first.Name != "io.github.github/github-mcp-server" || first.Version != "1.2.0" {
		t.Errorf("first result = %+v", first)
	}
	if len(first.Packages) != 1 || first.Packages[0].RuntimeHint != "npx" {
		t.Errorf("packages = %+v", first.Packages)
	}
	if len(first.Remotes) != 1 || first.Remotes[0].URL != "https://api.githubcopilot.com/mcp/" {
		t.Errorf("remotes = %+v", first.Remotes)
	}
}

func TestGet_EscapesName(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`{"server": {"name": "io.github.acme/weather", "version": "2.0.0"}}`))
	}))
	defer srv.Close()

	result, err := NewClient(srv.URL).Get(context.Background(), "io.github.acme/weather")
	if err != nil {
		t.Fatal(err)
	}
	if gotPath != "/servers/io.github.acme%2Fweather/versions/latest" {
		t.Errorf("path = %q, name must be escaped as one segment", gotPath)
	}
	if result.Version != "2.0.0" {
		t.Errorf("result = %+v", result)
	}
}

func TestGet_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Get(context.Background(), "io.github.acme/ghost")
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSearch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, _, err := NewClient(srv.URL).Search(context.Background(), "x", "", 10)
	if err == nil {
		t.Error("err = nil, want status error")
	}
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	if c := NewClient(""); c.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q", c.baseURL)
	}
}
