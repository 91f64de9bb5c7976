package dino

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/dinolingo-lambda/internal/config"
	"github.com/saulo-duarte/dinolingo-lambda/internal/exercise"
	"github.com/saulo-duarte/dinolingo-lambda/internal/llm"
	"github.com/saulo-duarte/dinolingo-lambda/internal/prompt"
	"github.com/saulo-duarte/dinolingo-lambda/internal/reply"
)

type Service interface {
	Generate(ctx context.Context, req GenerateRequest) (*exercise.VocabularySet, error)
	Dummy(ctx context.Context) *exercise.VocabularySet
}

type service struct {
	gateway llm.Gateway
	builder *prompt.Builder
	policy  reply.Policy
}

// NewService wires the vocabulary generator. gateway may be nil when no
// credential is configured; Generate then fails without calling out.
func NewService(gateway llm.Gateway, builder *prompt.Builder, policy reply.Policy) Service {
	return &service{gateway: gateway, builder: builder, policy: policy}
}

func (s *service) Generate(ctx context.Context, req GenerateRequest) (*exercise.VocabularySet, error) {
	log := config.WithContext(ctx).WithField("theme", req.Theme)

	request, err := s.builder.Build(exercise.KindVocabulary, prompt.Params{Theme: req.Theme})
	if err != nil {
		return nil, err
	}

	text, err := reply.Fetch(ctx, s.gateway, request, s.policy.Timeout)
	if err != nil {
		log.WithError(err).Error("Failed to fetch vocabulary exercises")
		return nil, err
	}

	set, err := reply.DecodeVocabulary(text)
	if err != nil {
		log.WithError(err).Errorf("Failed to decode vocabulary exercises. Cleaned content:\n%s", text)
		return nil, err
	}

	if err := reply.CheckCount(len(set.ExerciseList)); err != nil {
		if s.policy.StrictCount {
			log.WithError(err).Error("Rejecting vocabulary set")
			return nil, err
		}
		log.WithError(err).Warn("Vocabulary set has an unexpected size")
	}

	for i, ex := range set.ExerciseList {
		if ex.RightTranslation == ex.WrongTranslation {
			log.WithFields(logrus.Fields{
				"index":       i,
				"translation": ex.RightTranslation,
			}).Warn("Wrong translation equals the right one")
		}
	}

	log.Infof("Generated %d vocabulary exercises", len(set.ExerciseList))
	return set, nil
}

func (s *service) Dummy(ctx context.Context) *exercise.VocabularySet {
	config.WithContext(ctx).Debug("Serving dummy vocabulary exercises")
	return dummySet()
}
