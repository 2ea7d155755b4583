package store

import (
	"context"
	"fmt"
	"time"

	"github.com/minhtran/vocamaster/internal/quiz"
	"github.com/minhtran/vocamaster/internal/session"
)

const historyLimit = 50

type progressRow struct {
	UserID       string    `db:"user_id"`
	TopicID      string    `db:"topic_id"`
	TopicName    string    `db:"topic_name"`
	WordsLearned int       `db:"words_learned"`
	TotalWords   int       `db:"total_words"`
	LastAccessed time.Time `db:"last_accessed"`
}

type historyRow struct {
	ID           int64     `db:"id"`
	UserID       string    `db:"user_id"`
	TopicName    string    `db:"topic_name"`
	Score        int       `db:"score"`
	CorrectCount int       `db:"correct_count"`
	TotalCount   int       `db:"total_count"`
	MaxStreak    int       `db:"max_streak"`
	TakenAt      time.Time `db:"taken_at"`
}

// SaveProgress upserts the user's progress for a topic. The latest
// session wins; its counts replace the previous ones.
func (s *Store) SaveProgress(ctx context.Context, userID string, rec session.ProgressRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO learning_progress (user_id, topic_id, topic_name, words_learned, total_words, last_accessed)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (user_id, topic_id) DO UPDATE SET
		   topic_name = excluded.topic_name,
		   words_learned = excluded.words_learned,
		   total_words = excluded.total_words,
		   last_accessed = excluded.last_accessed`,
		userID, rec.TopicID, rec.TopicName, rec.WordsLearned, rec.TotalWords, rec.LastAccessed)
	if err != nil {
		return fmt.Errorf("save progress %s: %w", rec.TopicID, err)
	}
	return nil
}

// SaveQuizResult appends a quiz outcome to the user's history.
func (s *Store) SaveQuizResult(ctx context.Context, userID string, res quiz.Result, topicName string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO quiz_history (user_id, topic_name, score, correct_count, total_count, max_streak, taken_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		userID, topicName, res.Score, res.CorrectCount, res.TotalCount, res.MaxStreak, time.Now())
	if err != nil {
		return fmt.Errorf("save quiz result: %w", err)
	}
	return nil
}

// Profile returns the user's learning progress and recent quiz history.
func (s *Store) Profile(ctx context.Context, userID string) (*session.Profile, error) {
	var progRows []progressRow
	err := s.db.SelectContext(ctx, &progRows,
		`SELECT user_id, topic_id, topic_name, words_learned, total_words, last_accessed
		 FROM learning_progress WHERE user_id = ? ORDER BY last_accessed DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}

	var histRows []historyRow
	err = s.db.SelectContext(ctx, &histRows,
		`SELECT id, user_id, topic_name, score, correct_count, total_count, max_streak, taken_at
		 FROM quiz_history WHERE user_id = ? ORDER BY taken_at DESC LIMIT ?`,
		userID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	p := &session.Profile{
		Progress: make([]session.ProgressRecord, 0, len(progRows)),
		History:  make([]session.HistoryRecord, 0, len(histRows)),
	}
	for _, row := range progRows {
		p.Progress = append(p.Progress, session.ProgressRecord{
			TopicID:      row.TopicID,
			TopicName:    row.TopicName,
			WordsLearned: row.WordsLearned,
			TotalWords:   row.TotalWords,
			LastAccessed: row.LastAccessed,
		})
	}
	for _, row := range histRows {
		p.History = append(p.History, session.HistoryRecord{
			TopicName: row.TopicName,
			Score:     row.Score,
			Correct:   row.CorrectCount,
			Total:     row.TotalCount,
			MaxStreak: row.MaxStreak,
			TakenAt:   row.TakenAt,
		})
	}
	return p, nil
}
