package provider

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/Solomko2/aicommit/internal/prompt"
)

// Dispatcher turns a diff into a commit message via one backend. The zero
// value reads real environment variables and uses each client's default
// transport; tests inject Env and HTTPClient.
type Dispatcher struct {
	// Secrets maps a backend to its API key. A missing or empty entry
	// falls back to the backend's environment variable.
	Secrets map[Backend]string

	// Model overrides the backend's default model when non-empty.
	Model string

	// Style selects the instruction template variant.
	Style prompt.Style

	// Env resolves environment variables. Defaults to os.Getenv.
	Env func(key string) string

	// HTTPClient, when non-nil, is handed to the backend client.
	HTTPClient *http.Client
}

// Generate resolves a credential, bounds the diff, builds the instruction
// document, performs one network call, and returns the trimmed reply.
// Exactly one of (message, error) is meaningful; there is no partial result.
func (d *Dispatcher) Generate(ctx context.Context, diff string, backend Backend) (string, error) {
	spec, ok := backends[backend]
	if !ok {
		return "", &UnknownBackendError{Backend: backend}
	}

	key := d.Secrets[backend]
	if key == "" {
		getenv := d.Env
		if getenv == nil {
			getenv = os.Getenv
		}
		key = getenv(spec.envKey)
	}
	if key == "" {
		return "", &MissingCredentialError{Backend: backend, EnvKey: spec.envKey}
	}

	bounded := BoundDiff(diff, backend)

	style := d.Style
	if style == "" {
		style = prompt.StyleConcise
	}
	doc := prompt.Build(bounded.Text, style)

	model := d.Model
	if model == "" {
		model = spec.defaultModel
	}

	client := spec.newClient(key, model, d.HTTPClient)
	raw, err := client.GenerateCommitMessage(ctx, doc)
	if err != nil {
		return "", &RequestError{Backend: backend, Err: err}
	}

	msg := strings.TrimSpace(raw)
	if msg == "" {
		return "", &EmptyResultError{Backend: backend}
	}
	return msg, nil
}
