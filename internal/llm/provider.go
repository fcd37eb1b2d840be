package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over LLM backends. Both the question
// generator and the answer evaluator talk to a Provider and never to a
// vendor SDK directly.
type Provider interface {
	// Generate sends one request and returns the structured response.
	// When the request carries a Schema, the provider uses its native
	// structured-output mechanism and the returned Content is JSON
	// validated against that schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes one LLM call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. topiq only ever sends a single user
	// message per call, but the slice keeps providers general.
	Messages []Message

	// Schema, when set, constrains the response to the given JSON shape.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature in [0,1]; zero means deterministic.
	Temperature float64
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a JSON Schema the response must conform to.
type Schema struct {
	// Name identifies the schema, kebab-case (e.g. "quiz-question").
	Name string

	// Description guides the model.
	Description string

	// Definition is the schema document as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is validated JSON when the request had a Schema, raw text
	// wrapped as a JSON string otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
