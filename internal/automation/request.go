package automation

import (
	"net/url"
	"strings"
)

const (
	// DefaultBaseURL is used when no base URL is configured or the
	// configured one is not an absolute URL.
	DefaultBaseURL = "https://api.novaflux.example/v1"
	// DefaultAPIKey is a placeholder that callers are expected to replace.
	DefaultAPIKey = "nova-demo-key-please-replace"

	// EnvBaseURL and EnvAPIKey are the environment variables read by the
	// config layer for the builder's defaults.
	EnvBaseURL = "NOVFLUX_API_BASE"
	EnvAPIKey  = "NOVFLUX_API_KEY"

	automationsPath = "automations"
	intent          = "mobile-github-assistant"
	device          = "automation-cli"
)

// Request is a fully assembled NovaFlux call.
type Request struct {
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers"`
	Body    RequestBody       `json:"body"`
}

// RequestBody is the JSON payload sent to the automations endpoint.
type RequestBody struct {
	Intent string `json:"intent"`
	Prompt string `json:"prompt"`
	Device string `json:"device"`
}

// Builder assembles NovaFlux requests.
type Builder struct {
	baseURL string
	apiKey  string
}

// Option configures a Builder.
type Option func(*Builder)

// WithBaseURL overrides the API base URL. Values without a scheme and host
// fall back to DefaultBaseURL.
func WithBaseURL(base string) Option {
	return func(b *Builder) {
		b.baseURL = base
	}
}

// WithAPIKey overrides the bearer token. An empty key keeps the default.
func WithAPIKey(key string) Option {
	return func(b *Builder) {
		if key != "" {
			b.apiKey = key
		}
	}
}

// New creates a Builder with the default endpoint and key, then applies opts.
func New(opts ...Option) *Builder {
	b := &Builder{
		baseURL: DefaultBaseURL,
		apiKey:  DefaultAPIKey,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.baseURL = sanitizeBaseURL(b.baseURL)
	return b
}

// BaseURL returns the sanitized base URL the builder targets.
func (b *Builder) BaseURL() string {
	return b.baseURL
}

// Build assembles the request for prompt.
func (b *Builder) Build(prompt string) Request {
	return Request{
		URL: b.baseURL + "/" + automationsPath,
		Headers: map[string]string{
			"Authorization": "Bearer " + b.apiKey,
			"Content-Type":  "application/json",
		},
		Body: RequestBody{
			Intent: intent,
			Prompt: prompt,
			Device: device,
		},
	}
}

// sanitizeBaseURL keeps raw when it is an absolute URL, minus trailing
// slashes, and returns DefaultBaseURL otherwise.
func sanitizeBaseURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return DefaultBaseURL
	}
	return strings.TrimRight(strings.TrimSpace(raw), "/")
}
