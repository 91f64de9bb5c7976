package dino_test

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/dinolingo-lambda/internal/dino"
	"github.com/saulo-duarte/dinolingo-lambda/internal/exercise"
	"github.com/saulo-duarte/dinolingo-lambda/internal/llm"
	"github.com/saulo-duarte/dinolingo-lambda/internal/prompt"
	"github.com/saulo-duarte/dinolingo-lambda/internal/reply"
)

func fencedVocabulary(t *testing.T, n int) string {
	t.Helper()
	list := make([]exercise.Vocabulary, n)
	for i := range list {
		list[i] = exercise.Vocabulary{
			EnglishWord:      fmt.Sprintf("Fork %d", i),
			RightTranslation: fmt.Sprintf("Fourchette %d", i),
			WrongTranslation: fmt.Sprintf("Cuillère %d", i),
		}
	}
	b, err := json.Marshal(map[string]any{"exercise_list": list})
	require.NoError(t, err)
	return "```json\n" + string(b) + "\n```"
}

func newService(gw llm.Gateway, strict bool) dino.Service {
	return dino.NewService(gw, prompt.NewBuilder("gpt-4o", prompt.ChatStructured), reply.Policy{
		Timeout:     time.Second,
		StrictCount: strict,
	})
}

func TestService_Generate(t *testing.T) {
	var sent llm.Request
	gw := llm.GatewayFunc(func(ctx context.Context, req llm.Request) (string, error) {
		sent = req
		return fencedVocabulary(t, 10), nil
	})

	set, err := newService(gw, false).Generate(context.Background(), dino.GenerateRequest{Theme: "kitchen"})
	require.NoError(t, err)

	require.Len(t, set.ExerciseList, 10)
	assert.Equal(t, "Fourchette 0", set.ExerciseList[0].RightTranslation)
	assert.Equal(t, "gpt-4o", sent.Model)
	assert.True(t, strings.Contains(sent.Messages[0].Content, "about kitchen"))
}

func TestService_GenerateCountPolicy(t *testing.T) {
	gw := llm.GatewayFunc(func(ctx context.Context, req llm.Request) (string, error) {
		return fencedVocabulary(t, 7), nil
	})

	set, err := newService(gw, false).Generate(context.Background(), dino.GenerateRequest{})
	require.NoError(t, err)
	assert.Len(t, set.ExerciseList, 7)

	_, err = newService(gw, true).Generate(context.Background(), dino.GenerateRequest{})
	assert.ErrorIs(t, err, reply.ErrCountMismatch)
}

func TestService_GenerateMalformed(t *testing.T) {
	gw := llm.GatewayFunc(func(ctx context.Context, req llm.Request) (string, error) {
		return "Sure! Here are your exercises: {", nil
	})

	_, err := newService(gw, false).Generate(context.Background(), dino.GenerateRequest{})
	assert.ErrorIs(t, err, reply.ErrMalformedJSON)
}

func TestService_GenerateWithoutCredential(t *testing.T) {
	_, err := newService(nil, false).Generate(context.Background(), dino.GenerateRequest{Theme: "zoo"})
	assert.ErrorIs(t, err, llm.ErrMissingCredential)
}

func TestService_Dummy(t *testing.T) {
	set := newService(nil, false).Dummy(context.Background())

	require.Len(t, set.ExerciseList, exercise.ExpectedCount)
	for _, ex := range set.ExerciseList {
		assert.NotEmpty(t, ex.EnglishWord)
		assert.NotEqual(t, ex.RightTranslation, ex.WrongTranslation, ex.EnglishWord)
	}
}
