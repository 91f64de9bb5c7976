package reply

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/saulo-duarte/dinolingo-lambda/internal/exercise"
)

type ReplySource int

const (
	// Structured means the model followed the JSON reply contract.
	Structured ReplySource = iota
	// PlainText means the reply was used verbatim as the response.
	PlainText
)

func (s ReplySource) String() string {
	if s == PlainText {
		return "plain_text"
	}
	return "structured"
}

// ChatParse is the tagged result of decoding a chat reply.
type ChatParse struct {
	Reply  exercise.ChatReply
	Source ReplySource
}

// Validate decodes a normalized reply into the record type for kind:
// *exercise.VocabularySet, *exercise.GrammarSet or ChatParse.
func Validate(candidate string, kind exercise.Kind) (any, error) {
	switch kind {
	case exercise.KindVocabulary:
		set, err := DecodeVocabulary(candidate)
		if err != nil {
			return nil, err
		}
		return set, nil
	case exercise.KindGrammar:
		set, err := DecodeGrammar(candidate)
		if err != nil {
			return nil, err
		}
		return set, nil
	case exercise.KindChat:
		parsed, err := DecodeChat(candidate)
		if err != nil {
			return nil, err
		}
		return parsed, nil
	default:
		return nil, fmt.Errorf("%w: %q", exercise.ErrUnknownKind, kind)
	}
}

func DecodeVocabulary(candidate string) (*exercise.VocabularySet, error) {
	var wire struct {
		ExerciseList []exercise.Vocabulary `json:"exercise_list"`
		Legacy       []exercise.Vocabulary `json:"exercice_list"`
	}
	if err := decode(candidate, exercise.KindVocabulary, &wire); err != nil {
		return nil, err
	}
	list := pickList(wire.ExerciseList, wire.Legacy)
	if err := checkVocabulary(list); err != nil {
		return nil, err
	}
	return &exercise.VocabularySet{ExerciseList: list}, nil
}

func DecodeGrammar(candidate string) (*exercise.GrammarSet, error) {
	var wire struct {
		ExerciseList []exercise.Grammar `json:"exercise_list"`
		Legacy       []exercise.Grammar `json:"exercice_list"`
	}
	if err := decode(candidate, exercise.KindGrammar, &wire); err != nil {
		return nil, err
	}
	list := pickList(wire.ExerciseList, wire.Legacy)
	if err := checkGrammar(list); err != nil {
		return nil, err
	}
	return &exercise.GrammarSet{ExerciseList: list}, nil
}

// DecodeChat fails only on an empty reply or a blank response field. A JSON
// string becomes the response; prose or an object without a string response
// falls back to the whole text. Optional fields of the wrong type are
// dropped.
func DecodeChat(candidate string) (ChatParse, error) {
	text := strings.TrimSpace(candidate)
	if text == "" {
		return ChatParse{}, mismatch("chat reply is empty")
	}

	var doc any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return plainText(text), nil
	}

	switch v := doc.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return ChatParse{}, mismatch("chat reply is an empty string")
		}
		return plainText(v), nil
	case map[string]any:
		response, ok := v["response"].(string)
		if !ok {
			return plainText(text), nil
		}
		if strings.TrimSpace(response) == "" {
			return ChatParse{}, mismatch("chat reply has a blank response")
		}
		return ChatParse{
			Reply: exercise.ChatReply{
				Response:    response,
				Translation: optionalString(v, "translation"),
				AudioText:   optionalString(v, "audioText"),
			},
			Source: Structured,
		}, nil
	default:
		return plainText(text), nil
	}
}

// CheckCount reports a set that does not hold exercise.ExpectedCount records.
func CheckCount(n int) error {
	if n != exercise.ExpectedCount {
		return fmt.Errorf("%w: got %d, want %d", ErrCountMismatch, n, exercise.ExpectedCount)
	}
	return nil
}

// MissingAnswers lists the indexes of grammar records whose answer is not
// one of their words.
func MissingAnswers(set *exercise.GrammarSet) []int {
	var idx []int
	for i, g := range set.ExerciseList {
		if !g.AnswerInWords() {
			idx = append(idx, i)
		}
	}
	return idx
}

func decode(candidate string, kind exercise.Kind, dst any) error {
	var doc any
	if err := json.Unmarshal([]byte(candidate), &doc); err != nil {
		return malformed(err)
	}
	if err := checkFoldedKeys(doc, ""); err != nil {
		return err
	}
	if err := checkShape(kind, doc); err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(candidate), dst); err != nil {
		return mismatch("%v", err)
	}
	return nil
}

func checkShape(kind exercise.Kind, doc any) error {
	schema, err := schemaFor(kind)
	if err != nil {
		return err
	}
	if err := schema.Validate(doc); err != nil {
		return mismatch("%s", flatten(err.Error()))
	}
	return nil
}

// checkFoldedKeys rejects objects holding two keys that differ only in
// case. The typed decode matches keys case-insensitively and would merge
// them after the shape check has passed.
func checkFoldedKeys(doc any, path string) error {
	switch v := doc.(type) {
	case map[string]any:
		seen := make(map[string]string, len(v))
		for key, child := range v {
			folded := strings.ToLower(key)
			if prev, ok := seen[folded]; ok {
				return mismatch("%s: keys %q and %q differ only in case", pathOrRoot(path), prev, key)
			}
			seen[folded] = key
			if err := checkFoldedKeys(child, path+"/"+key); err != nil {
				return err
			}
		}
	case []any:
		for i, child := range v {
			if err := checkFoldedKeys(child, fmt.Sprintf("%s/%d", path, i)); err != nil {
				return err
			}
		}
	}
	return nil
}

func pathOrRoot(path string) string {
	if path == "" {
		return "/"
	}
	return path
}

func checkVocabulary(list []exercise.Vocabulary) error {
	for i, v := range list {
		for field, value := range map[string]string{
			"english_word":      v.EnglishWord,
			"right_translation": v.RightTranslation,
			"wrong_translation": v.WrongTranslation,
		} {
			if blank(value) {
				return mismatch("/exercise_list/%d/%s must not be blank", i, field)
			}
		}
	}
	return nil
}

func checkGrammar(list []exercise.Grammar) error {
	for i, g := range list {
		switch {
		case blank(g.Exercise):
			return mismatch("/exercise_list/%d/exercise must not be blank", i)
		case blank(g.Answer):
			return mismatch("/exercise_list/%d/answer must not be blank", i)
		case len(g.Words) == 0:
			return mismatch("/exercise_list/%d/words must not be empty", i)
		}
		for j, w := range g.Words {
			if blank(w) {
				return mismatch("/exercise_list/%d/words/%d must not be blank", i, j)
			}
		}
	}
	return nil
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

func optionalString(obj map[string]any, key string) *string {
	s, ok := obj[key].(string)
	if !ok || blank(s) {
		return nil
	}
	return &s
}

func flatten(msg string) string {
	lines := strings.Split(msg, "\n")
	parts := lines[:0]
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			parts = append(parts, l)
		}
	}
	return strings.Join(parts, "; ")
}

func pickList[T any](canonical, legacy []T) []T {
	list := canonical
	if list == nil {
		list = legacy
	}
	if list == nil {
		list = []T{}
	}
	return list
}

func plainText(text string) ChatParse {
	return ChatParse{Reply: exercise.ChatReply{Response: text}, Source: PlainText}
}
