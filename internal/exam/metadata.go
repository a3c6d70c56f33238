package exam

import (
	"fmt"
	"time"

	"examgen/internal/source"
)

// Option keys recognized by the builder. Every other preamble key passes
// through to the document renderer untouched.
const (
	KeyShuffleQuestions = "shuffle-questions"
	KeyShuffleAnswers   = "shuffle-answers"
	KeyRequireCorrect   = "require-correct"
)

// Metadata is the resolved preamble: every author-supplied key verbatim,
// plus defaults for the recognized options. Treated as immutable once
// resolved.
type Metadata map[string]any

// ResolveMetadata merges option defaults into a parsed preamble. Values
// given by the author take precedence; unrecognized keys are never
// validated or rejected.
func ResolveMetadata(preamble source.Document) Metadata {
	meta := make(Metadata, len(preamble)+3)
	for key, value := range preamble {
		meta[key] = value
	}
	if _, ok := meta[KeyShuffleQuestions]; !ok {
		meta[KeyShuffleQuestions] = false
	}
	if _, ok := meta[KeyShuffleAnswers]; !ok {
		meta[KeyShuffleAnswers] = true
	}
	if _, ok := meta[KeyRequireCorrect]; !ok {
		meta[KeyRequireCorrect] = true
	}
	return meta
}

// ShuffleQuestions reports whether question display order is randomized.
func (m Metadata) ShuffleQuestions() bool {
	return m.flag(KeyShuffleQuestions, false)
}

// ShuffleAnswers reports whether answer order is randomized.
func (m Metadata) ShuffleAnswers() bool {
	return m.flag(KeyShuffleAnswers, true)
}

// RequireCorrect reports whether choice questions must mark at least one
// correct answer.
func (m Metadata) RequireCorrect() bool {
	return m.flag(KeyRequireCorrect, true)
}

// flag reads a boolean option. A non-bool stored value falls back to the
// option default; the verbatim value stays in the map for the renderer.
func (m Metadata) flag(key string, fallback bool) bool {
	if value, ok := m[key].(bool); ok {
		return value
	}
	return fallback
}

// Text returns a passthrough key rendered as text, or "" when absent.
func (m Metadata) Text(key string) string {
	value, ok := m[key]
	if !ok {
		return ""
	}
	return coerceText(value)
}

// coerceText renders a scalar source value as text. Any scalar is
// accepted: numbers and booleans print in their literal form, and an
// unquoted date prints as YYYY-MM-DD.
func coerceText(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case time.Time:
		return typed.Format("2006-01-02")
	default:
		return fmt.Sprint(typed)
	}
}
