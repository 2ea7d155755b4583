package wordgen

import (
	"context"
	"errors"

	"github.com/minhtran/vocamaster/internal/vocab"
)

// ErrUnavailable means no LLM provider is configured; callers fall back
// to static or canned word lists.
var ErrUnavailable = errors.New("wordgen: no LLM provider configured")

// Generator produces vocabulary word lists using an LLM provider.
type Generator interface {
	// Generate produces words for the given input. The result is
	// filtered: excluded and duplicate terms are dropped, so it may be
	// shorter than input.Count.
	Generate(ctx context.Context, input GenerateInput) ([]vocab.Item, error)
}

// GenerateInput describes one word list request.
type GenerateInput struct {
	// Topic is the free-form topic name, e.g. "Giao tiếp hàng ngày".
	Topic string

	// Count is the number of words to request.
	Count int

	// ExcludeTerms lists terms the session already has, so the model
	// does not repeat them.
	ExcludeTerms []string
}

// Unavailable is a word source for running without an LLM provider.
// Every call fails with ErrUnavailable.
type Unavailable struct{}

func (Unavailable) GenerateWords(context.Context, string, int, []string) ([]vocab.Item, error) {
	return nil, ErrUnavailable
}
