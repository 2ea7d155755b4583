package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/minhtran/vocamaster/internal/session"
	"github.com/minhtran/vocamaster/internal/vocab"
)

type topicRow struct {
	UserID    string    `db:"user_id"`
	TopicID   string    `db:"topic_id"`
	Name      string    `db:"name"`
	Words     string    `db:"words"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// GetTopic returns the user's extended topic record, or nil if none exists.
func (s *Store) GetTopic(ctx context.Context, userID, topicID string) (*session.TopicRecord, error) {
	var row topicRow
	err := s.db.GetContext(ctx, &row,
		`SELECT user_id, topic_id, name, words, created_at, updated_at
		 FROM custom_topics WHERE user_id = ? AND topic_id = ?`,
		userID, topicID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get topic %s: %w", topicID, err)
	}
	return row.toRecord()
}

// SaveTopic upserts the user's extended topic record. The word list
// replaces any existing one wholesale.
func (s *Store) SaveTopic(ctx context.Context, userID string, rec session.TopicRecord) error {
	words, err := json.Marshal(rec.Words)
	if err != nil {
		return fmt.Errorf("encode words: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO custom_topics (user_id, topic_id, name, words, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (user_id, topic_id) DO UPDATE SET
		   name = excluded.name,
		   words = excluded.words,
		   updated_at = excluded.updated_at`,
		userID, rec.ID, rec.Name, string(words), rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save topic %s: %w", rec.ID, err)
	}
	return nil
}

// AppendWords adds words to an existing topic record inside a transaction,
// so concurrent appends cannot drop each other's words.
func (s *Store) AppendWords(ctx context.Context, userID, topicID string, words []vocab.Item) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var row topicRow
	err = tx.GetContext(ctx, &row,
		`SELECT user_id, topic_id, name, words, created_at, updated_at
		 FROM custom_topics WHERE user_id = ? AND topic_id = ?`,
		userID, topicID)
	if err != nil {
		return fmt.Errorf("get topic %s: %w", topicID, err)
	}

	var existing []vocab.Item
	if err := json.Unmarshal([]byte(row.Words), &existing); err != nil {
		return fmt.Errorf("decode words for %s: %w", topicID, err)
	}

	merged, err := json.Marshal(append(existing, words...))
	if err != nil {
		return fmt.Errorf("encode words: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE custom_topics SET words = ?, updated_at = ?
		 WHERE user_id = ? AND topic_id = ?`,
		string(merged), time.Now(), userID, topicID)
	if err != nil {
		return fmt.Errorf("update topic %s: %w", topicID, err)
	}
	return tx.Commit()
}

// ListTopics returns all of the user's extended topic records, most
// recently updated first.
func (s *Store) ListTopics(ctx context.Context, userID string) ([]session.TopicRecord, error) {
	var rows []topicRow
	err := s.db.SelectContext(ctx, &rows,
		`SELECT user_id, topic_id, name, words, created_at, updated_at
		 FROM custom_topics WHERE user_id = ? ORDER BY updated_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	out := make([]session.TopicRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := row.toRecord()
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, nil
}

func (r topicRow) toRecord() (*session.TopicRecord, error) {
	var words []vocab.Item
	if err := json.Unmarshal([]byte(r.Words), &words); err != nil {
		return nil, fmt.Errorf("decode words for %s: %w", r.TopicID, err)
	}
	return &session.TopicRecord{
		ID:        r.TopicID,
		Name:      r.Name,
		Words:     words,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}
