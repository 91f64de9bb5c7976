package mole

import (
	"github.com/saulo-duarte/dinolingo-lambda/internal/llm"
	"github.com/saulo-duarte/dinolingo-lambda/internal/prompt"
	"github.com/saulo-duarte/dinolingo-lambda/internal/reply"
)

type MoleContainer struct {
	Handler *Handler
	Service Service
}

func NewMoleContainer(gateway llm.Gateway, builder *prompt.Builder, policy reply.Policy) *MoleContainer {
	service := NewService(gateway, builder, policy)
	handler := NewHandler(service)

	return &MoleContainer{
		Handler: handler,
		Service: service,
	}
}
