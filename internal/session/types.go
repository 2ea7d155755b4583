// Package session implements the study-session controller: the state
// machine deciding which view is active, the topic resolution flow, and
// the hand-off between the flashcard and quiz engines.
package session

import (
	"context"
	"time"

	"github.com/minhtran/vocamaster/internal/quiz"
	"github.com/minhtran/vocamaster/internal/vocab"
)

// State identifies the active view of the application.
type State int

const (
	StateHome State = iota
	StateLoading
	StateTopicDetail
	StateFlashcard
	StateQuiz
	StateResult
	StateProfile
)

func (s State) String() string {
	switch s {
	case StateHome:
		return "home"
	case StateLoading:
		return "loading"
	case StateTopicDetail:
		return "topic-detail"
	case StateFlashcard:
		return "flashcard"
	case StateQuiz:
		return "quiz"
	case StateResult:
		return "result"
	case StateProfile:
		return "profile"
	}
	return "unknown"
}

// Mode selects how a topic is studied.
type Mode string

const (
	ModeLearn Mode = "learn"
	ModeTest  Mode = "test"
)

// SessionContext carries the vocabulary set and metadata for one study
// session. Items are fixed once the session starts; only the generate-more
// flow replaces the sequence, wholesale.
type SessionContext struct {
	ID        string
	TopicID   string
	TopicName string
	Mode      Mode
	Items     []vocab.Item
}

// AuthSession is the identity the controller persists under. No ambient
// global user: the value is handed to the controller at construction.
type AuthSession struct {
	UID   string
	Name  string
	Email string
}

// TopicRecord is a per-user extended topic: a stored word list that
// supersedes the static catalog for that topic.
type TopicRecord struct {
	ID        string
	Name      string
	Words     []vocab.Item
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProgressRecord tracks how far a user got with one topic.
type ProgressRecord struct {
	TopicID      string
	TopicName    string
	WordsLearned int
	TotalWords   int
	LastAccessed time.Time
}

// HistoryRecord is one finished quiz.
type HistoryRecord struct {
	TopicName string
	Score     int
	Correct   int
	Total     int
	MaxStreak int
	TakenAt   time.Time
}

// Profile is the read-only view backing the profile screen.
type Profile struct {
	Progress []ProgressRecord
	History  []HistoryRecord
}

// WordSource produces vocabulary for a topic through the AI path. An
// empty result with a nil error means "nothing new to add".
type WordSource interface {
	GenerateWords(ctx context.Context, topic string, count int, excludeTerms []string) ([]vocab.Item, error)
}

// Store is the persistence sink for extended topics, progress and quiz
// history. Failures never block navigation; the controller logs and moves
// on.
type Store interface {
	GetTopic(ctx context.Context, userID, topicID string) (*TopicRecord, error)
	SaveTopic(ctx context.Context, userID string, rec TopicRecord) error
	AppendWords(ctx context.Context, userID, topicID string, words []vocab.Item) error
	SaveProgress(ctx context.Context, userID string, rec ProgressRecord) error
	SaveQuizResult(ctx context.Context, userID string, res quiz.Result, topicName string) error
	Profile(ctx context.Context, userID string) (*Profile, error)
}
