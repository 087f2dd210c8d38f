// Package llmclient is the detector's language-model contract (spec.md
// §6): prompt in, structured response out. The core only depends on
// this interface — provider adapters, recording, and prompt templates
// are out of scope per spec.md §1.
package llmclient

import (
	"context"
	"strings"

	"github.com/gizzahub/universalbuild/internal/errtax"
)

// Message is one turn of a chat request.
type Message struct {
	Role    string
	Content string
}

// ToolCall is a structured function-call the model requested.
type ToolCall struct {
	Name      string
	Arguments string
}

// Request is the input to Client.Chat.
type Request struct {
	Messages    []Message
	Tools       []string
	MaxTokens   int
	Temperature float64
}

// Response is the output of Client.Chat.
type Response struct {
	Content   string
	ToolCalls []ToolCall
}

// Client is implemented by every LLM backend the detector can use.
// Implementations must translate backend failures into errtax.Error
// with one of the recoverable-in-phase kinds (spec.md §7).
type Client interface {
	Chat(ctx context.Context, req Request) (Response, error)
}

// Mock is a deterministic Client used by tests: it returns a canned
// response for prompts containing a registered substring, otherwise
// Default when its Content is set, and errtax.KindTimeoutError when
// neither applies, the way the detector's own test
// suite exercises LLM-dependent service phases without a live backend.
type Mock struct {
	Responses map[string]Response
	Default   Response
}

func NewMock() *Mock {
	return &Mock{Responses: make(map[string]Response)}
}

func (m *Mock) Register(promptContains string, resp Response) {
	m.Responses[promptContains] = resp
}

func (m *Mock) Chat(ctx context.Context, req Request) (Response, error) {
	select {
	case <-ctx.Done():
		return Response{}, errtax.Wrap(errtax.KindTimeoutError, "llm call cancelled", ctx.Err())
	default:
	}
	for _, msg := range req.Messages {
		for substr, resp := range m.Responses {
			if substr != "" && strings.Contains(msg.Content, substr) {
				return resp, nil
			}
		}
	}
	if m.Default.Content != "" {
		return m.Default, nil
	}
	return Response{}, errtax.New(errtax.KindTimeoutError, "mock client has no matching response registered")
}
