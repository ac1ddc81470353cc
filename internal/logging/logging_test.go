package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelDebug, Format: FormatText, Output: &buf})

	logger.Info("syncing servers", "target", "cursor_global", "count", 3)

	out := buf.String()
	if !strings.Contains(out, "syncing servers") {
		t.Errorf("output missing message: %q", out)
	}
	if !strings.Contains(out, "target=cursor_global") {
		t.Errorf("output missing attr: %q", out)
	}
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatJSON, Output: &buf})

	logger.Info("discovered", "servers", 5)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if record["msg"] != "discovered" {
		t.Errorf("msg = %v, want %q", record["msg"], "discovered")
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelWarn, Format: FormatText, Output: &buf})

	logger.Debug("hidden")
	logger.Info("also hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered messages: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("output missing warn message: %q", out)
	}
}

func TestHandler_MasksSecretAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelDebug, Format: FormatText, Output: &buf})

	logger.Info("probing", "api_token", "ghp_supersecretvalue1234")

	out := buf.String()
	if strings.Contains(out, "supersecret") {
		t.Errorf("secret leaked into log output: %q", out)
	}
	if !strings.Contains(out, "****") {
		t.Errorf("expected masked value in output: %q", out)
	}
}

func TestMaskValue(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"abcd", "********"},
		{"", "********"},
		{"ghp_abcdef1234", "****1234"},
	}
	for _, tt := range tests {
		if got := MaskValue(tt.input); got != tt.want {
			t.Errorf("MaskValue(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestMaskSecrets(t *testing.T) {
	env := map[string]string{
		"GITHUB_TOKEN": "ghp_1234567890abcdef",
		"PLAIN":        "visible",
		"SNEAKY":       "sk-hiddenvalue",
	}

	masked := MaskSecrets(env)

	if masked["PLAIN"] != "visible" {
		t.Errorf("PLAIN = %q, want unmasked", masked["PLAIN"])
	}
	if strings.Contains(masked["GITHUB_TOKEN"], "1234567890") {
		t.Errorf("GITHUB_TOKEN not masked: %q", masked["GITHUB_TOKEN"])
	}
	if !strings.HasPrefix(masked["SNEAKY"], "****") {
		t.Errorf("token-prefixed value not masked: %q", masked["SNEAKY"])
	}
}
