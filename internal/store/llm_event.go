package store

import (
	"context"
	"fmt"
	"time"
)

// LLMEventData captures the data for a single LLM request event.
type LLMEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEvent is a persisted LLM request event.
type LLMEvent struct {
	ID        int64
	Timestamp time.Time
	LLMEventData
}

// LLMEventRepo provides append and query access to LLM request events.
type LLMEventRepo interface {
	// AppendLLMEvent records an LLM API call event.
	AppendLLMEvent(ctx context.Context, data LLMEventData) error

	// QueryLLMEvents returns the most recent events, newest first.
	QueryLLMEvents(ctx context.Context, limit int) ([]LLMEvent, error)
}

type llmEventRow struct {
	ID           int64     `db:"id"`
	Provider     string    `db:"provider"`
	Model        string    `db:"model"`
	Purpose      string    `db:"purpose"`
	InputTokens  int       `db:"input_tokens"`
	OutputTokens int       `db:"output_tokens"`
	LatencyMs    int64     `db:"latency_ms"`
	Success      bool      `db:"success"`
	ErrorMessage string    `db:"error_message"`
	CreatedAt    time.Time `db:"created_at"`
}

func (s *Store) AppendLLMEvent(ctx context.Context, data LLMEventData) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO llm_events (provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Provider, data.Model, data.Purpose, data.InputTokens, data.OutputTokens,
		data.LatencyMs, data.Success, data.ErrorMessage, time.Now())
	if err != nil {
		return fmt.Errorf("save LLM event: %w", err)
	}
	return nil
}

func (s *Store) QueryLLMEvents(ctx context.Context, limit int) ([]LLMEvent, error) {
	if limit <= 0 {
		limit = 20
	}
	var rows []llmEventRow
	err := s.db.SelectContext(ctx, &rows,
		`SELECT id, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, created_at
		 FROM llm_events ORDER BY id DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	out := make([]LLMEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, LLMEvent{
			ID:        row.ID,
			Timestamp: row.CreatedAt,
			LLMEventData: LLMEventData{
				Provider:     row.Provider,
				Model:        row.Model,
				Purpose:      row.Purpose,
				InputTokens:  row.InputTokens,
				OutputTokens: row.OutputTokens,
				LatencyMs:    row.LatencyMs,
				Success:      row.Success,
				ErrorMessage: row.ErrorMessage,
			},
		})
	}
	return out, nil
}
