package probe

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/opensync/opensync/internal/mcp"
)

func TestTransportFor(t *testing.T) {
	tests := []struct {
		name   string
		server *mcp.Server
		want   string
	}{
		{"local command", &mcp.Server{Name: "fs", Command: "npx"}, TransportStdio},
		{"url defaults to http", &mcp.Server{Name: "linear", URL: "https://x/mcp"}, TransportStreamableHTTP},
		{"explicit sse", &mcp.Server{Name: "old", URL: "https://x/sse", Type: mcp.TypeSSE}, TransportSSE},
		{"url wins over command", &mcp.Server{Name: "both", Command: "npx", URL: "https://x/mcp"}, TransportStreamableHTTP},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := transportFor(tt.server); got != tt.want {
				t.Errorf("transportFor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEnvStrings(t *testing.T) {
	got := envStrings(map[string]string{"A": "1", "B": "two"})
	sort.Strings(got)
	if len(got) != 2 || got[0] != "A=1" || got[1] != "B=two" {
		t.Errorf("envStrings() = %v", got)
	}
	if envStrings(nil) != nil {
		t.Error("envStrings(nil) should be nil")
	}
}

func TestProbe_MissingCommand(t *testing.T) {
	report := Probe(context.Background(), &mcp.Server{Name: "empty"})
	if report.OK {
		t.Fatal("probe succeeded against an empty definition")
	}
	if report.Error == "" {
		t.Error("report has no error message")
	}
}

func TestProbe_UnreachableURL(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	report := Probe(ctx, &mcp.Server{Name: "dead", URL: "http://127.0.0.1:1/mcp"})
	if report.OK {
		t.Fatal("probe succeeded against a closed port")
	}
	if report.Transport != TransportStreamableHTTP {
		t.Errorf("transport = %q", report.Transport)
	}
}
