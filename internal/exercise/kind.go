package exercise

import "errors"

var ErrUnknownKind = errors.New("unknown exercise kind")

type Kind string

const (
	KindVocabulary Kind = "vocabulary"
	KindGrammar    Kind = "grammar"
	KindChat       Kind = "chat"
)
