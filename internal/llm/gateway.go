package llm

import "context"

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role
	Content string
}

// Request is a single completion call. An empty Model means the gateway's
// configured default.
type Request struct {
	Model     string
	Messages  []Message
	MaxTokens int
}

// Gateway sends one prompt to a hosted completion API and returns the raw
// reply text. Implementations never retry.
type Gateway interface {
	Complete(ctx context.Context, req Request) (string, error)
	Provider() string
}

// GatewayFunc adapts a plain function to the Gateway interface.
type GatewayFunc func(ctx context.Context, req Request) (string, error)

func (f GatewayFunc) Complete(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

func (f GatewayFunc) Provider() string { return "func" }

// splitSystem separates system messages from the conversation turns for
// providers that take the system instruction as a dedicated field.
func splitSystem(msgs []Message) (string, []Message) {
	var system string
	turns := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		if m.Role == RoleSystem {
			if system != "" {
				system += "\n\n"
			}
			system += m.Content
			continue
		}
		turns = append(turns, m)
	}
	return system, turns
}
