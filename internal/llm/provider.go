package llm

import "context"

// Provider is the Model Gateway: it takes role-tagged messages and returns
// generated text. Every call is one blocking request/response round trip.
type Provider interface {
	// Generate sends the request to the model and returns its text.
	// When req.Schema is set, providers that support native structured
	// output are asked to honour it and the reply is validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt. Providers map it to their native
	// system instruction rather than a message.
	System string

	// Messages is the ordered conversation. Single-shot generation sends
	// one user message; the chat loop sends the whole transcript.
	Messages []Message

	// Schema optionally requests structured JSON output. Nil means free text.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message is a single role-tagged entry in the conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Role is the message sender role.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies this schema, e.g. "quiz". Also the cache key for
	// the compiled validator.
	Name string

	// Description is sent to providers that accept one.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Text is the generated output, exactly as returned by the model.
	Text string

	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// UserPrompt builds a request holding a single user message.
func UserPrompt(content string, maxTokens int, temperature float64) Request {
	return Request{
		Messages:    []Message{{Role: RoleUser, Content: content}},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
}
