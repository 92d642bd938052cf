package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Solomko2/aicommit/internal/provider"
)

// FileConfig is the JSON shape of ~/.aicommit.json. All fields are optional;
// a missing file yields the zero value.
type FileConfig struct {
	Provider string `json:"provider,omitempty"` // anthropic, openai, gemini
	Model    string `json:"model,omitempty"`
	Style    string `json:"style,omitempty"` // concise, thorough

	AnthropicKey string `json:"anthropic_key,omitempty"`
	OpenAIKey    string `json:"openai_key,omitempty"`
	GeminiKey    string `json:"gemini_key,omitempty"`

	AutoCommit *bool `json:"auto_commit,omitempty"`
}

// DefaultPath returns ~/.aicommit.json, or "" when the home directory is
// unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".aicommit.json")
}

func Load(path string) (FileConfig, error) {
	var cfg FileConfig
	if path == "" {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func Save(cfg FileConfig, path string) error {
	if path == "" {
		path = DefaultPath()
		if path == "" {
			return os.ErrNotExist
		}
	}

	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, 0600)
}

// Secrets builds the per-backend credential mapping the dispatcher reads.
// Empty keys are left out so the environment fallback applies.
func (c FileConfig) Secrets() map[provider.Backend]string {
	out := make(map[provider.Backend]string)
	if c.AnthropicKey != "" {
		out[provider.BackendAnthropic] = c.AnthropicKey
	}
	if c.OpenAIKey != "" {
		out[provider.BackendOpenAI] = c.OpenAIKey
	}
	if c.GeminiKey != "" {
		out[provider.BackendGemini] = c.GeminiKey
	}
	return out
}

func ResolveString(flagVal, envVal, fileVal, defVal string) string {
	if flagVal != "" {
		return flagVal
	}
	if envVal != "" {
		return envVal
	}
	if fileVal != "" {
		return fileVal
	}
	return defVal
}

func ResolveBool(flagVal bool, flagSet bool, fileVal *bool, defVal bool) bool {
	if flagSet {
		return flagVal
	}
	if fileVal != nil {
		return *fileVal
	}
	return defVal
}
