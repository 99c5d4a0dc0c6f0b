// Package llm provides a provider-agnostic chat completion client for the
// hosted text and vision models the backend delegates to.
package llm

import (
	"context"
	"time"
)

// Message represents a chat message (system/user/assistant). Content carries
// plain text; Parts, when non-empty, is sent instead as multi-part content
// (text plus image references) for vision-capable models.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content,omitempty"`
	Parts   []Part `json:"parts,omitempty"`
}

// Part is one element of a multi-part user message.
type Part struct {
	Type     string `json:"type"` // "text" or "image_url"
	Text     string `json:"text,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// TextPart builds a text part.
func TextPart(text string) Part {
	return Part{Type: "text", Text: text}
}

// ImagePart builds an image reference part.
func ImagePart(url string) Part {
	return Part{Type: "image_url", ImageURL: url}
}

// Request is a provider-agnostic chat completion request.
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

// Response is a provider-agnostic chat completion response.
type Response struct {
	Provider     string        `json:"provider"`
	Model        string        `json:"model"`
	Content      string        `json:"content"`
	TokensIn     int           `json:"tokens_in"`
	TokensOut    int           `json:"tokens_out"`
	FinishReason string        `json:"finish_reason"`
	Latency      time.Duration `json:"latency_ms"`
}

// Provider is a single hosted model API backend.
type Provider interface {
	// Name returns the provider identifier (e.g. "groq", "openai").
	Name() string
	// Models returns the list of model IDs available on this provider.
	Models() []string
	// Complete sends a chat completion request and returns the response.
	Complete(ctx context.Context, req Request) (*Response, error)
}

// Client routes completion requests to named providers. A single failed call
// is returned to the caller as-is; handlers apply their own fallback policy,
// so no retries or provider fallback happen here.
type Client struct {
	providers map[string]Provider
	names     []string // registration order
}

// New creates a client over the given providers.
func New(providers []Provider) *Client {
	m := make(map[string]Provider, len(providers))
	names := make([]string, 0, len(providers))
	for _, p := range providers {
		m[p.Name()] = p
		names = append(names, p.Name())
	}
	return &Client{providers: m, names: names}
}

// Complete sends a request to the named provider.
func (c *Client) Complete(ctx context.Context, providerName string, req Request) (*Response, error) {
	p, ok := c.providers[providerName]
	if !ok {
		return nil, &ProviderError{Provider: providerName, Err: ErrProviderNotFound}
	}
	return p.Complete(ctx, req)
}

// Providers returns the names of all configured providers.
func (c *Client) Providers() []string {
	return c.names
}

// HasProvider checks if a named provider is configured.
func (c *Client) HasProvider(name string) bool {
	_, ok := c.providers[name]
	return ok
}
