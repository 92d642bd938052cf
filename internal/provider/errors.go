package provider

import "fmt"

// UnknownBackendError reports a backend name outside the supported set.
// It is raised before any bounding, prompt construction, or network call.
type UnknownBackendError struct {
	Backend Backend
}

func (e *UnknownBackendError) Error() string {
	return fmt.Sprintf("unknown backend %q (supported: anthropic, openai, gemini)", string(e.Backend))
}

// MissingCredentialError reports that no API key could be resolved for the
// chosen backend from config or the environment. No network call was made.
type MissingCredentialError struct {
	Backend Backend
	EnvKey  string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("missing API key for %s: set it in the config file or export %s", e.Backend, e.EnvKey)
}

// RequestError wraps any transport, HTTP, or response-envelope failure from
// a backend. Never retried.
type RequestError struct {
	Backend Backend
	Err     error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Backend, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// EmptyResultError reports a well-formed reply whose text was empty or
// whitespace-only after trimming.
type EmptyResultError struct {
	Backend Backend
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("%s returned an empty message", e.Backend)
}
