// Package provider selects an AI backend, bounds the diff sent to it,
// and normalizes the backend's reply into one trimmed commit message.
package provider

import (
	"context"
	"net/http"

	"github.com/Solomko2/aicommit/internal/anthropic"
	"github.com/Solomko2/aicommit/internal/gemini"
	"github.com/Solomko2/aicommit/internal/openai"
)

// Backend identifies one supported AI service.
type Backend string

const (
	BackendAnthropic Backend = "anthropic"
	BackendOpenAI    Backend = "openai"
	BackendGemini    Backend = "gemini"
)

// Client is the interface every backend client implements.
type Client interface {
	GenerateCommitMessage(ctx context.Context, prompt string) (string, error)
}

type backendSpec struct {
	envKey       string
	diffLimit    int
	defaultModel string
	newClient    func(apiKey, model string, hc *http.Client) Client
}

// backends keys every per-backend difference: credential env var, safe diff
// size, default model, and client constructor. Adding a backend means adding
// one entry here plus its client package.
var backends = map[Backend]backendSpec{
	BackendAnthropic: {
		envKey:       "ANTHROPIC_API_KEY",
		diffLimit:    100000,
		defaultModel: "claude-3-5-sonnet-latest",
		newClient: func(apiKey, model string, hc *http.Client) Client {
			return anthropic.New(anthropic.Config{APIKey: apiKey, Model: model, HTTPClient: hc})
		},
	},
	BackendOpenAI: {
		envKey:       "OPENAI_API_KEY",
		diffLimit:    32000,
		defaultModel: "gpt-4o-mini",
		newClient: func(apiKey, model string, hc *http.Client) Client {
			return openai.New(openai.Config{APIKey: apiKey, Model: model, HTTPClient: hc})
		},
	},
	BackendGemini: {
		envKey:       "GEMINI_API_KEY",
		diffLimit:    12000,
		defaultModel: "gemini-1.5-flash",
		newClient: func(apiKey, model string, hc *http.Client) Client {
			return gemini.New(gemini.Config{APIKey: apiKey, Model: model, HTTPClient: hc})
		},
	},
}

// Known reports whether b is a supported backend.
func Known(b Backend) bool {
	_, ok := backends[b]
	return ok
}

// Names returns the supported backend names for help and form output.
func Names() []Backend {
	return []Backend{BackendAnthropic, BackendOpenAI, BackendGemini}
}

// EnvKey returns the environment variable consulted for b's API key.
func EnvKey(b Backend) string {
	return backends[b].envKey
}

// DefaultModel returns the model used for b when none is configured.
func DefaultModel(b Backend) string {
	return backends[b].defaultModel
}
