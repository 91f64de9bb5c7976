package reply

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/saulo-duarte/dinolingo-lambda/internal/exercise"
)

// nonEmptyString rejects empty and whitespace-only values.
var nonEmptyString = map[string]any{"type": "string", "minLength": 1, "pattern": `\S`}

var vocabularyItem = map[string]any{
	"type":     "object",
	"required": []any{"english_word", "right_translation", "wrong_translation"},
	"properties": map[string]any{
		"english_word":      nonEmptyString,
		"right_translation": nonEmptyString,
		"wrong_translation": nonEmptyString,
	},
}

var grammarItem = map[string]any{
	"type":     "object",
	"required": []any{"exercise", "words", "answer", "explanation"},
	"properties": map[string]any{
		"exercise":    nonEmptyString,
		"words":       map[string]any{"type": "array", "minItems": 1, "items": nonEmptyString},
		"answer":      nonEmptyString,
		"explanation": map[string]any{"type": "string"},
	},
}

// exerciseList accepts both the canonical exercise_list key and the
// exercice_list spelling older prompts produced.
func exerciseList(item map[string]any) map[string]any {
	list := map[string]any{"type": "array", "items": item}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"exercise_list": list,
			"exercice_list": list,
		},
		"anyOf": []any{
			map[string]any{"required": []any{"exercise_list"}},
			map[string]any{"required": []any{"exercice_list"}},
		},
	}
}

var definitions = map[exercise.Kind]map[string]any{
	exercise.KindVocabulary: exerciseList(vocabularyItem),
	exercise.KindGrammar:    exerciseList(grammarItem),
}

var (
	compileOnce sync.Once
	compiled    map[exercise.Kind]*jsonschema.Schema
	compileErr  error
)

func schemaFor(kind exercise.Kind) (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled, compileErr = compileAll()
	})
	if compileErr != nil {
		return nil, compileErr
	}
	s, ok := compiled[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", exercise.ErrUnknownKind, kind)
	}
	return s, nil
}

func compileAll() (map[exercise.Kind]*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	out := make(map[exercise.Kind]*jsonschema.Schema, len(definitions))
	for kind, def := range definitions {
		doc, err := toJSONValue(def)
		if err != nil {
			return nil, fmt.Errorf("encode schema %s: %w", kind, err)
		}
		url := fmt.Sprintf("schema://%s.json", kind)
		if err := c.AddResource(url, doc); err != nil {
			return nil, fmt.Errorf("add schema %s: %w", kind, err)
		}
		s, err := c.Compile(url)
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", kind, err)
		}
		out[kind] = s
	}
	return out, nil
}

// toJSONValue converts a Go literal into the plain decoded form the
// compiler expects (float64 numbers, []any arrays).
func toJSONValue(def map[string]any) (any, error) {
	b, err := json.Marshal(def)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
