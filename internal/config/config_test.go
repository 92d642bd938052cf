package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Solomko2/aicommit/internal/provider"
)

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error for missing file: %v", err)
	}
	if cfg != (FileConfig{}) {
		t.Errorf("missing file should yield the zero config, got %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aicommit.json")
	auto := true
	in := FileConfig{
		Provider:     "gemini",
		Model:        "gemini-1.5-flash",
		Style:        "thorough",
		GeminiKey:    "g-key",
		AnthropicKey: "a-key",
		AutoCommit:   &auto,
	}

	if err := Save(in, path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if out.Provider != in.Provider || out.Model != in.Model || out.Style != in.Style {
		t.Errorf("round trip changed fields: %+v", out)
	}
	if out.GeminiKey != "g-key" || out.AnthropicKey != "a-key" {
		t.Errorf("round trip lost keys: %+v", out)
	}
	if out.AutoCommit == nil || !*out.AutoCommit {
		t.Error("round trip lost auto_commit")
	}
}

func TestLoadRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() accepted malformed JSON")
	}
}

func TestSecretsSkipsEmptyKeys(t *testing.T) {
	cfg := FileConfig{OpenAIKey: "o-key"}
	secrets := cfg.Secrets()

	if got := secrets[provider.BackendOpenAI]; got != "o-key" {
		t.Errorf("openai secret = %q, want o-key", got)
	}
	if _, ok := secrets[provider.BackendAnthropic]; ok {
		t.Error("empty anthropic key should be absent so the env fallback applies")
	}
	if _, ok := secrets[provider.BackendGemini]; ok {
		t.Error("empty gemini key should be absent so the env fallback applies")
	}
}

func TestResolveString(t *testing.T) {
	tests := []struct {
		name                        string
		flagVal, envVal, fileVal, d string
		want                        string
	}{
		{"flag wins", "f", "e", "c", "d", "f"},
		{"env next", "", "e", "c", "d", "e"},
		{"file next", "", "", "c", "d", "c"},
		{"default last", "", "", "", "d", "d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveString(tt.flagVal, tt.envVal, tt.fileVal, tt.d); got != tt.want {
				t.Errorf("ResolveString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveBool(t *testing.T) {
	yes := true
	if !ResolveBool(true, true, nil, false) {
		t.Error("set flag should win")
	}
	if !ResolveBool(false, false, &yes, false) {
		t.Error("file value should apply when the flag is unset")
	}
	if ResolveBool(false, false, nil, false) {
		t.Error("default should apply when nothing is set")
	}
}
