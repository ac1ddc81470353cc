// Package probe performs a live MCP handshake against a server definition
// to verify it actually starts and answers, and reports what it offers.
package probe

import (
	"context"
	"fmt"
	"time"

	mcpclient "github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/client/transport"
	mcpproto "github.com/mark3labs/mcp-go/mcp"

	"github.com/opensync/opensync/internal/errors"
	"github.com/opensync/opensync/internal/mcp"
)

// DefaultTimeout bounds one probe when the caller's context has no
// deadline. Stdio servers need process startup time, so this is generous.
const DefaultTimeout = 10 * time.Second

const protocolVersion = "2024-11-05"

// Transport names reported in a probe's result.
const (
	TransportStdio          = "stdio"
	TransportSSE            = "sse"
	TransportStreamableHTTP = "streamable-http"
)

// Report is the outcome of probing one server.
type Report struct {
	// Server is the probed definition's name.
	Server string `json:"server"`

	// Transport is which transport the probe used.
	Transport string `json:"transport"`

	// OK reports whether the handshake completed.
	OK bool `json:"ok"`

	// Error holds the failure, empty on success.
	Error string `json:"error,omitempty"`

	// ServerName and ServerVersion are what the server announced about
	// itself during initialization.
	ServerName    string `json:"server_name,omitempty"`
	ServerVersion string `json:"server_version,omitempty"`

	// Tools are the tool names the server advertises.
	Tools []string `json:"tools,omitempty"`

	// Duration is how long the handshake and tool listing took.
	Duration time.Duration `json:"duration"`
}

// Probe connects to the server, performs the MCP initialize handshake, and
// lists its tools. The connection is torn down before returning; a stdio
// server's process does not outlive the probe.
func Probe(ctx context.Context, s *mcp.Server) *Report {
	report := &Report{
		Server:    s.Name,
		Transport: transportFor(s),
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultTimeout)
		defer cancel()
	}

	start := time.Now()
	err := run(ctx, s, report)
	report.Duration = time.Since(start)
	if err != nil {
		report.Error = err.Error()
		return report
	}
	report.OK = true
	return report
}

func run(ctx context.Context, s *mcp.Server, report *Report) error {
	c, err := connect(ctx, s)
	if err != nil {
		return err
	}
	defer c.Close()

	initResult, err := c.Initialize(ctx, initializeRequest())
	if err != nil {
		return errors.Wrap(err, "initialize handshake failed")
	}
	report.ServerName = initResult.ServerInfo.Name
	report.ServerVersion = initResult.ServerInfo.Version

	tools, err := c.ListTools(ctx, mcpproto.ListToolsRequest{})
	if err != nil {
		return errors.Wrap(err, "listing tools failed")
	}
	for _, tool := range tools.Tools {
		report.Tools = append(report.Tools, tool.Name)
	}
	return nil
}

// transportFor picks the transport from the definition's shape: no URL
// means stdio, a URL means streamable HTTP unless the type says sse.
func transportFor(s *mcp.Server) string {
	if !s.IsRemote() {
		return TransportStdio
	}
	if s.Type == mcp.TypeSSE {
		return TransportSSE
	}
	return TransportStreamableHTTP
}

func connect(ctx context.Context, s *mcp.Server) (*mcpclient.Client, error) {
	switch transportFor(s) {
	case TransportStdio:
		if s.Command == "" {
			return nil, errors.New("server has neither a command nor a url")
		}
		c, err := mcpclient.NewStdioMCPClient(s.Command, envStrings(s.Env), s.Args...)
		if err != nil {
			return nil, errors.Wrapf(err, "starting %s", s.Command)
		}
		return c, nil

	case TransportSSE:
		var opts []transport.ClientOption
		if len(s.Headers) > 0 {
			opts = append(opts, transport.WithHeaders(s.Headers))
		}
		c, err := mcpclient.NewSSEMCPClient(s.URL, opts...)
		if err != nil {
			return nil, errors.Wrapf(err, "creating SSE client for %s", s.URL)
		}
		if err := c.Start(ctx); err != nil {
			c.Close()
			return nil, errors.Wrapf(err, "connecting to %s", s.URL)
		}
		return c, nil

	default:
		var opts []transport.StreamableHTTPCOption
		if len(s.Headers) > 0 {
			opts = append(opts, transport.WithHTTPHeaders(s.Headers))
		}
		c, err := mcpclient.NewStreamableHttpClient(s.URL, opts...)
		if err != nil {
			return nil, errors.Wrapf(err, "creating HTTP client for %s", s.URL)
		}
		return c, nil
	}
}

func initializeRequest() mcpproto.InitializeRequest {
	return mcpproto.InitializeRequest{
		Params: struct {
			ProtocolVersion string                      `json:"protocolVersion"`
			Capabilities    mcpproto.ClientCapabilities `json:"capabilities"`
			ClientInfo      mcpproto.Implementation     `json:"clientInfo"`
		}{
			ProtocolVersion: protocolVersion,
			ClientInfo: mcpproto.Implementation{
				Name:    "opensync",
				Version: "1.0.0",
			},
			Capabilities: mcpproto.ClientCapabilities{},
		},
	}
}

func envStrings(env map[string]string) []string {
	var out []string
	for k, v := range env {
		out = append(out, fmt.Sprintf("%s=%s", k, v))
	}
	return out
}
