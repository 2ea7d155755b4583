package wordgen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/minhtran/vocamaster/internal/llm"
)

func cannedList(words ...string) json.RawMessage {
	entries := make([]wordOutput, len(words))
	for i, w := range words {
		entries[i] = wordOutput{
			Word:     w,
			Phonetic: "/" + w + "/",
			Meaning:  "nghĩa của " + w,
			Example:  "An example with " + w + ".",
			Type:     "noun",
		}
	}
	raw, _ := json.Marshal(listOutput{Words: entries})
	return raw
}

func TestGenerateParsesResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: cannedList("harvest", "orchard", "ripen")})
	g := New(mock, DefaultConfig())

	items, err := g.GenerateWords(context.Background(), "Farming", 3, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].Term != "harvest" || items[0].Translation != "nghĩa của harvest" {
		t.Fatalf("unexpected first item %+v", items[0])
	}
	if items[0].PartOfSpeech != "noun" {
		t.Fatalf("part of speech not mapped: %+v", items[0])
	}
}

func TestGenerateRequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: cannedList("seed")})
	g := New(mock, DefaultConfig())

	_, err := g.GenerateWords(context.Background(), "Gardening", 10, []string{"soil", "rake"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema.Name != "word-list" {
		t.Fatalf("schema name %q", req.Schema.Name)
	}
	if req.MaxTokens != DefaultConfig().MaxTokens {
		t.Fatalf("max tokens %d", req.MaxTokens)
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != llm.RoleUser {
		t.Fatal("expected a single user message")
	}

	msg := req.Messages[0].Content
	for _, want := range []string{"Topic: Gardening", "Number of words: 10", "1. soil", "2. rake"} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q:\n%s", want, msg)
		}
	}
}

func TestGenerateFiltersExcludedAndDuplicates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: cannedList("Soil", "seed", "  seed ", "", "sprout"),
	})
	g := New(mock, DefaultConfig())

	items, err := g.GenerateWords(context.Background(), "Gardening", 5, []string{"soil"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	// "Soil" is excluded case-insensitively, the second "seed" is a
	// duplicate after trimming, and the empty entry is dropped.
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d: %+v", len(items), items)
	}
	if items[0].Term != "seed" || items[1].Term != "sprout" {
		t.Fatalf("unexpected items %+v", items)
	}
}

func TestGenerateProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	g := New(mock, DefaultConfig())

	if _, err := g.GenerateWords(context.Background(), "Farming", 5, nil); err == nil {
		t.Fatal("expected provider error to propagate")
	}
}

func TestGenerateMalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"words": [`)})
	g := New(mock, DefaultConfig())

	if _, err := g.GenerateWords(context.Background(), "Farming", 5, nil); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestExcludeListCapped(t *testing.T) {
	terms := make([]string, 150)
	for i := range terms {
		terms[i] = "w" + string(rune('0'+i%10)) + string(rune('0'+i/10%10)) + string(rune('0'+i/100))
	}

	out := buildExcludeList(terms, 100)
	lines := strings.Split(out, "\n")
	if len(lines) != 100 {
		t.Fatalf("expected 100 lines, got %d", len(lines))
	}
	// The most recent terms survive, oldest are dropped.
	if !strings.HasSuffix(lines[99], terms[149]) {
		t.Fatalf("last line %q, want term %q", lines[99], terms[149])
	}
	if !strings.HasSuffix(lines[0], terms[50]) {
		t.Fatalf("first line %q, want term %q", lines[0], terms[50])
	}
}

func TestUnavailableSource(t *testing.T) {
	var src Unavailable
	if _, err := src.GenerateWords(context.Background(), "x", 5, nil); err != ErrUnavailable {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
