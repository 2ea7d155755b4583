package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhtran/vocamaster/internal/quiz"
	"github.com/minhtran/vocamaster/internal/session"
	"github.com/minhtran/vocamaster/internal/vocab"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleWords(terms ...string) []vocab.Item {
	words := make([]vocab.Item, len(terms))
	for i, term := range terms {
		words[i] = vocab.Item{
			Term:        term,
			Phonetic:    "/" + term + "/",
			Translation: "nghĩa của " + term,
			Example:     "Example with " + term + ".",
		}
	}
	return words
}

func TestTopicRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec := session.TopicRecord{
		ID:        "gardening",
		Name:      "Gardening",
		Words:     sampleWords("soil", "seed"),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, s.SaveTopic(ctx, "u1", rec))

	got, err := s.GetTopic(ctx, "u1", "gardening")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Gardening", got.Name)
	require.Len(t, got.Words, 2)
	assert.Equal(t, "soil", got.Words[0].Term)
	assert.Equal(t, "nghĩa của soil", got.Words[0].Translation)
}

func TestGetTopicMissing(t *testing.T) {
	s := openTestStore(t)

	got, err := s.GetTopic(context.Background(), "u1", "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTopicsScopedPerUser(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveTopic(ctx, "u1", session.TopicRecord{ID: "t", Name: "T", Words: sampleWords("a")}))

	got, err := s.GetTopic(ctx, "u2", "t")
	require.NoError(t, err)
	assert.Nil(t, got, "another user's topic must not be visible")
}

func TestSaveTopicUpsert(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveTopic(ctx, "u1", session.TopicRecord{ID: "t", Name: "T", Words: sampleWords("a")}))
	require.NoError(t, s.SaveTopic(ctx, "u1", session.TopicRecord{ID: "t", Name: "T", Words: sampleWords("a", "b", "c")}))

	got, err := s.GetTopic(ctx, "u1", "t")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got.Words, 3)
}

func TestAppendWords(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveTopic(ctx, "u1", session.TopicRecord{ID: "t", Name: "T", Words: sampleWords("a", "b")}))
	require.NoError(t, s.AppendWords(ctx, "u1", "t", sampleWords("c", "d")))

	got, err := s.GetTopic(ctx, "u1", "t")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Words, 4)
	assert.Equal(t, []string{"a", "b", "c", "d"}, vocab.Terms(got.Words))
}

func TestAppendWordsMissingTopic(t *testing.T) {
	s := openTestStore(t)
	err := s.AppendWords(context.Background(), "u1", "nope", sampleWords("a"))
	assert.Error(t, err)
}

func TestListTopicsOrderedByUpdate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Now()
	require.NoError(t, s.SaveTopic(ctx, "u1", session.TopicRecord{
		ID: "old", Name: "Old", Words: sampleWords("a"),
		CreatedAt: base.Add(-2 * time.Hour), UpdatedAt: base.Add(-2 * time.Hour),
	}))
	require.NoError(t, s.SaveTopic(ctx, "u1", session.TopicRecord{
		ID: "new", Name: "New", Words: sampleWords("b"),
		CreatedAt: base, UpdatedAt: base,
	}))

	got, err := s.ListTopics(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].ID)
	assert.Equal(t, "old", got[1].ID)
}

func TestProgressUpsert(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveProgress(ctx, "u1", session.ProgressRecord{
		TopicID: "c1", TopicName: "Daily Routine",
		WordsLearned: 3, TotalWords: 10, LastAccessed: time.Now(),
	}))
	require.NoError(t, s.SaveProgress(ctx, "u1", session.ProgressRecord{
		TopicID: "c1", TopicName: "Daily Routine",
		WordsLearned: 7, TotalWords: 10, LastAccessed: time.Now(),
	}))

	p, err := s.Profile(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, p.Progress, 1, "same topic must upsert, not duplicate")
	assert.Equal(t, 7, p.Progress[0].WordsLearned)
	assert.Equal(t, 10, p.Progress[0].TotalWords)
}

func TestProfileAggregates(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveProgress(ctx, "u1", session.ProgressRecord{
		TopicID: "c1", TopicName: "Daily Routine",
		WordsLearned: 5, TotalWords: 10, LastAccessed: time.Now(),
	}))
	require.NoError(t, s.SaveQuizResult(ctx, "u1", quiz.Result{
		CorrectCount: 8, TotalCount: 10, Score: 95, MaxStreak: 4,
	}, "Daily Routine"))
	require.NoError(t, s.SaveQuizResult(ctx, "u2", quiz.Result{
		CorrectCount: 1, TotalCount: 10, Score: 10, MaxStreak: 1,
	}, "Other"))

	p, err := s.Profile(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, p.Progress, 1)
	require.Len(t, p.History, 1, "history must be scoped per user")

	h := p.History[0]
	assert.Equal(t, "Daily Routine", h.TopicName)
	assert.Equal(t, 95, h.Score)
	assert.Equal(t, 8, h.Correct)
	assert.Equal(t, 10, h.Total)
	assert.Equal(t, 4, h.MaxStreak)
	assert.False(t, h.TakenAt.IsZero())
}

func TestProfileEmpty(t *testing.T) {
	s := openTestStore(t)

	p, err := s.Profile(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, p.Progress)
	assert.Empty(t, p.History)
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AppendLLMEvent(ctx, LLMEventData{
		Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "word-gen",
		InputTokens: 120, OutputTokens: 400, LatencyMs: 900, Success: true,
	}))
	require.NoError(t, s.AppendLLMEvent(ctx, LLMEventData{
		Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "word-gen",
		LatencyMs: 50, Success: false, ErrorMessage: "rate limited",
	}))

	events, err := s.QueryLLMEvents(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Newest first.
	assert.False(t, events[0].Success)
	assert.Equal(t, "rate limited", events[0].ErrorMessage)
	assert.True(t, events[1].Success)
	assert.Equal(t, 120, events[1].InputTokens)
	for _, ev := range events {
		assert.NotEmpty(t, ev.ID)
		assert.False(t, ev.Timestamp.IsZero())
	}
}

func TestQueryLLMEventsDefaultLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for range 25 {
		require.NoError(t, s.AppendLLMEvent(ctx, LLMEventData{Provider: "mock", Model: "mock", Success: true}))
	}

	events, err := s.QueryLLMEvents(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, events, 20)
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveTopic(ctx, "u1", session.TopicRecord{ID: "t", Name: "T", Words: sampleWords("a")}))
	require.NoError(t, s.SaveProgress(ctx, "u1", session.ProgressRecord{TopicID: "t", TopicName: "T", LastAccessed: time.Now()}))
	require.NoError(t, s.SaveQuizResult(ctx, "u1", quiz.Result{TotalCount: 1}, "T"))
	require.NoError(t, s.AppendLLMEvent(ctx, LLMEventData{Provider: "mock", Model: "mock"}))

	require.NoError(t, s.Reset())

	got, err := s.GetTopic(ctx, "u1", "t")
	require.NoError(t, err)
	assert.Nil(t, got)

	p, err := s.Profile(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, p.Progress)
	assert.Empty(t, p.History)

	events, err := s.QueryLLMEvents(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, events)
}
