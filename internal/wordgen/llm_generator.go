package wordgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/minhtran/vocamaster/internal/llm"
	"github.com/minhtran/vocamaster/internal/vocab"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// wordOutput is one raw LLM word entry before filtering.
type wordOutput struct {
	Word     string `json:"word"`
	Phonetic string `json:"phonetic"`
	Meaning  string `json:"meaning"`
	Example  string `json:"example"`
	Type     string `json:"type"`
}

type listOutput struct {
	Words []wordOutput `json:"words"`
}

// Generate produces words for the given input.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) ([]vocab.Item, error) {
	ctx = llm.WithPurpose(ctx, "word-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      WordListSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw listOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	return filterWords(raw.Words, input.ExcludeTerms), nil
}

// GenerateWords adapts Generate to the signature the session controller
// consumes.
func (g *LLMGenerator) GenerateWords(ctx context.Context, topic string, count int, excludeTerms []string) ([]vocab.Item, error) {
	return g.Generate(ctx, GenerateInput{
		Topic:        topic,
		Count:        count,
		ExcludeTerms: excludeTerms,
	})
}

// filterWords drops empty, excluded and duplicate terms. Matching is
// case-insensitive on the term.
func filterWords(words []wordOutput, excludeTerms []string) []vocab.Item {
	excluded := make(map[string]bool, len(excludeTerms))
	for _, t := range excludeTerms {
		excluded[strings.ToLower(strings.TrimSpace(t))] = true
	}

	seen := make(map[string]bool, len(words))
	out := make([]vocab.Item, 0, len(words))
	for _, w := range words {
		term := strings.TrimSpace(w.Word)
		key := strings.ToLower(term)
		if term == "" || excluded[key] || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, vocab.Item{
			Term:         term,
			Phonetic:     strings.TrimSpace(w.Phonetic),
			Translation:  strings.TrimSpace(w.Meaning),
			Example:      strings.TrimSpace(w.Example),
			PartOfSpeech: strings.TrimSpace(w.Type),
		})
	}
	return out
}
