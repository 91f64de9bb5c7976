package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/dinolingo-lambda/internal/exercise"
	"github.com/saulo-duarte/dinolingo-lambda/internal/llm"
)

var ErrEmptyMessage = errors.New("message must not be empty")

const (
	exerciseMaxTokens = 1200
	chatMaxTokens     = 800
)

type ChatMode string

const (
	// ChatStructured asks for a JSON reply with response, translation and
	// audioText fields.
	ChatStructured ChatMode = "structured"
	// ChatPlain is the free-text teacher prompt. Replies come back as prose.
	ChatPlain ChatMode = "plain"
)

type Params struct {
	Theme   string
	Message string
}

// Builder turns an exercise kind and its parameters into a completion
// request. It has no side effects.
type Builder struct {
	Model    string
	ChatMode ChatMode
}

func NewBuilder(model string, mode ChatMode) *Builder {
	if mode == "" {
		mode = ChatStructured
	}
	return &Builder{Model: model, ChatMode: mode}
}

func (b *Builder) Build(kind exercise.Kind, p Params) (llm.Request, error) {
	switch kind {
	case exercise.KindVocabulary:
		return b.request(exerciseMaxTokens, userMessage(BuildVocabularyPrompt(p.Theme))), nil
	case exercise.KindGrammar:
		return b.request(exerciseMaxTokens, userMessage(grammarTemplate)), nil
	case exercise.KindChat:
		return b.chat(p.Message)
	default:
		return llm.Request{}, fmt.Errorf("%w: %q", exercise.ErrUnknownKind, kind)
	}
}

func BuildVocabularyPrompt(theme string) string {
	theme = strings.TrimSpace(theme)
	if theme == "" {
		theme = exercise.DefaultTheme
	}
	return fmt.Sprintf(vocabularyTemplate, theme)
}

func (b *Builder) chat(message string) (llm.Request, error) {
	if strings.TrimSpace(message) == "" {
		return llm.Request{}, ErrEmptyMessage
	}

	if b.ChatMode == ChatPlain {
		return b.request(chatMaxTokens, userMessage(fmt.Sprintf(chatPlainTemplate, message))), nil
	}

	return b.request(chatMaxTokens,
		llm.Message{Role: llm.RoleSystem, Content: chatSystemTemplate},
		userMessage(message),
	), nil
}

func (b *Builder) request(maxTokens int, msgs ...llm.Message) llm.Request {
	return llm.Request{
		Model:     b.Model,
		Messages:  msgs,
		MaxTokens: maxTokens,
	}
}

func userMessage(content string) llm.Message {
	return llm.Message{Role: llm.RoleUser, Content: content}
}
