package reply

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedJSON  = errors.New("malformed JSON")
	ErrSchemaMismatch = errors.New("schema mismatch")
	ErrCountMismatch  = errors.New("unexpected exercise count")
)

type ErrorKind string

const (
	MalformedJSON  ErrorKind = "malformed_json"
	SchemaMismatch ErrorKind = "schema_mismatch"
)

// ValidationError reports why a normalized reply could not become a typed
// record. errors.Is matches it against ErrMalformedJSON or
// ErrSchemaMismatch according to Kind.
type ValidationError struct {
	Kind   ErrorKind
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.sentinel(), e.Detail)
}

func (e *ValidationError) Unwrap() error { return e.sentinel() }

func (e *ValidationError) sentinel() error {
	if e.Kind == MalformedJSON {
		return ErrMalformedJSON
	}
	return ErrSchemaMismatch
}

func malformed(err error) error {
	return &ValidationError{Kind: MalformedJSON, Detail: err.Error()}
}

func mismatch(format string, args ...any) error {
	return &ValidationError{Kind: SchemaMismatch, Detail: fmt.Sprintf(format, args...)}
}
