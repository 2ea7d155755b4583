package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/minhtran/vocamaster/internal/store"
)

type fakeEventRepo struct {
	mu     sync.Mutex
	events []store.LLMEventData
	err    error
}

func (f *fakeEventRepo) AppendLLMEvent(ctx context.Context, data store.LLMEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, data)
	return nil
}

func (f *fakeEventRepo) QueryLLMEvents(ctx context.Context, limit int) ([]store.LLMEvent, error) {
	return nil, nil
}

func TestLogging_RecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 34},
	})
	repo := &fakeEventRepo{}
	p := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), "word-gen")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if !ev.Success {
		t.Fatal("expected success event")
	}
	if ev.Purpose != "word-gen" {
		t.Fatalf("purpose %q", ev.Purpose)
	}
	if ev.InputTokens != 12 || ev.OutputTokens != 34 {
		t.Fatalf("token counts %d/%d", ev.InputTokens, ev.OutputTokens)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	repo := &fakeEventRepo{}
	p := WithLogging(mock, repo)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected provider error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success {
		t.Fatal("expected failure event")
	}
	if ev.ErrorMessage == "" {
		t.Fatal("failure event must carry the error message")
	}
}

func TestLogging_RepoFailureDoesNotFailRequest(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	repo := &fakeEventRepo{err: errors.New("disk full")}
	p := WithLogging(mock, repo)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("logging failure must not surface: %v", err)
	}
}

func TestLogging_EachRetryAttemptLogged(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("flaky")}},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	repo := &fakeEventRepo{}
	// Logging sits inside retry so every attempt produces an event.
	p := WithRetry(WithLogging(mock, repo), retryConfig())

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(repo.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(repo.events))
	}
	if repo.events[0].Success || !repo.events[1].Success {
		t.Fatal("expected a failure event followed by a success event")
	}
}
