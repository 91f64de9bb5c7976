package mole

import (
	"context"

	"github.com/saulo-duarte/dinolingo-lambda/internal/config"
	"github.com/saulo-duarte/dinolingo-lambda/internal/exercise"
	"github.com/saulo-duarte/dinolingo-lambda/internal/llm"
	"github.com/saulo-duarte/dinolingo-lambda/internal/prompt"
	"github.com/saulo-duarte/dinolingo-lambda/internal/reply"
)

type Service interface {
	Generate(ctx context.Context) (*exercise.GrammarSet, error)
	Dummy(ctx context.Context) *exercise.GrammarSet
}

type service struct {
	gateway llm.Gateway
	builder *prompt.Builder
	policy  reply.Policy
}

func NewService(gateway llm.Gateway, builder *prompt.Builder, policy reply.Policy) Service {
	return &service{gateway: gateway, builder: builder, policy: policy}
}

func (s *service) Generate(ctx context.Context) (*exercise.GrammarSet, error) {
	log := config.WithContext(ctx)

	request, err := s.builder.Build(exercise.KindGrammar, prompt.Params{})
	if err != nil {
		return nil, err
	}

	text, err := reply.Fetch(ctx, s.gateway, request, s.policy.Timeout)
	if err != nil {
		log.WithError(err).Error("Failed to fetch grammar exercises")
		return nil, err
	}

	set, err := reply.DecodeGrammar(text)
	if err != nil {
		log.WithError(err).Errorf("Failed to decode grammar exercises. Cleaned content:\n%s", text)
		return nil, err
	}

	if err := reply.CheckCount(len(set.ExerciseList)); err != nil {
		if s.policy.StrictCount {
			log.WithError(err).Error("Rejecting grammar set")
			return nil, err
		}
		log.WithError(err).Warn("Grammar set has an unexpected size")
	}

	if missing := reply.MissingAnswers(set); len(missing) > 0 {
		log.WithField("indexes", missing).Warn("Grammar answers not found in their word lists")
	}

	log.Infof("Generated %d grammar exercises", len(set.ExerciseList))
	return set, nil
}

func (s *service) Dummy(ctx context.Context) *exercise.GrammarSet {
	config.WithContext(ctx).Debug("Serving dummy grammar exercises")
	return dummySet()
}
