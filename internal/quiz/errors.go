package quiz

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrQuizNotFound    = errors.New("quiz not found")
	ErrInvalidID       = errors.New("invalid id format")
	ErrCorruptQuestion = errors.New("stored question does not match its type")
)

// ValidationError collects every field problem of a rejected submission.
// Keys are "title", "questions" or "questions.<index>.<field>".
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records msg for field unless the field already has a message.
func (e *ValidationError) Add(field, msg string) {
	if _, ok := e.Fields[field]; ok {
		return
	}
	e.Fields[field] = msg
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) OrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}

func QuestionField(index int, field string) string {
	return fmt.Sprintf("questions.%d.%s", index, field)
}

func IsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
