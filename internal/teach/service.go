package teach

import (
	"context"

	"github.com/saulo-duarte/dinolingo-lambda/internal/config"
	"github.com/saulo-duarte/dinolingo-lambda/internal/exercise"
	"github.com/saulo-duarte/dinolingo-lambda/internal/llm"
	"github.com/saulo-duarte/dinolingo-lambda/internal/prompt"
	"github.com/saulo-duarte/dinolingo-lambda/internal/reply"
)

type Service interface {
	Chat(ctx context.Context, req ChatRequest) (*exercise.ChatReply, error)
	Dummy(ctx context.Context) *exercise.ChatReply
}

type service struct {
	gateway llm.Gateway
	builder *prompt.Builder
	policy  reply.Policy
}

func NewService(gateway llm.Gateway, builder *prompt.Builder, policy reply.Policy) Service {
	return &service{gateway: gateway, builder: builder, policy: policy}
}

func (s *service) Chat(ctx context.Context, req ChatRequest) (*exercise.ChatReply, error) {
	log := config.WithContext(ctx)

	request, err := s.builder.Build(exercise.KindChat, prompt.Params{Message: req.Message})
	if err != nil {
		return nil, err
	}

	text, err := reply.Fetch(ctx, s.gateway, request, s.policy.Timeout)
	if err != nil {
		log.WithError(err).Error("Failed to fetch teacher reply")
		return nil, err
	}

	parsed, err := reply.DecodeChat(text)
	if err != nil {
		log.WithError(err).Error("Teacher reply is unusable")
		return nil, err
	}

	if parsed.Source == reply.PlainText && s.builder.ChatMode == prompt.ChatStructured {
		log.Warn("Teacher reply did not follow the JSON contract, using it as plain text")
	}

	log.WithField("source", parsed.Source.String()).Info("Teacher replied")
	return &parsed.Reply, nil
}

func (s *service) Dummy(ctx context.Context) *exercise.ChatReply {
	config.WithContext(ctx).Debug("Serving dummy teacher reply")
	return dummyReply()
}
