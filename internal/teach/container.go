package teach

import (
	"github.com/saulo-duarte/dinolingo-lambda/internal/llm"
	"github.com/saulo-duarte/dinolingo-lambda/internal/prompt"
	"github.com/saulo-duarte/dinolingo-lambda/internal/reply"
)

type TeachContainer struct {
	Handler *Handler
	Service Service
}

func NewTeachContainer(gateway llm.Gateway, builder *prompt.Builder, policy reply.Policy) *TeachContainer {
	service := NewService(gateway, builder, policy)
	handler := NewHandler(service)

	return &TeachContainer{
		Handler: handler,
		Service: service,
	}
}
