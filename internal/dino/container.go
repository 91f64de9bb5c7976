package dino

import (
	"github.com/saulo-duarte/dinolingo-lambda/internal/llm"
	"github.com/saulo-duarte/dinolingo-lambda/internal/prompt"
	"github.com/saulo-duarte/dinolingo-lambda/internal/reply"
)

type DinoContainer struct {
	Handler *Handler
	Service Service
}

func NewDinoContainer(gateway llm.Gateway, builder *prompt.Builder, policy reply.Policy) *DinoContainer {
	service := NewService(gateway, builder, policy)
	handler := NewHandler(service)

	return &DinoContainer{
		Handler: handler,
		Service: service,
	}
}
