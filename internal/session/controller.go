package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/minhtran/vocamaster/internal/quiz"
	"github.com/minhtran/vocamaster/internal/vocab"
)

const (
	// newTopicWordCount is requested when a fresh custom topic is
	// generated for the first time.
	newTopicWordCount = 15

	// moreWordCount is requested per generate-more invocation.
	moreWordCount = 10

	// testModeQuizSize caps the item pool for test-mode quizzes.
	testModeQuizSize = 20
)

var (
	// ErrNoItems means resolution produced zero items; the controller
	// stays in Loading rather than entering an engine with empty input.
	ErrNoItems = errors.New("session: topic resolved to no items")

	// ErrStaleLoad means a resolution completed after the user had
	// already navigated elsewhere; the result is discarded.
	ErrStaleLoad = errors.New("session: stale load discarded")

	// ErrBadTransition means the requested transition is not valid from
	// the current state.
	ErrBadTransition = errors.New("session: invalid state transition")
)

// Controller is the navigation state machine. It owns the SessionContext,
// translates engine completion events into transitions, and forwards
// summaries to the persistence sink. Home is the initial state and is
// re-entered after every session; the machine is a cycle, not a pipeline.
type Controller struct {
	mu sync.Mutex

	auth  AuthSession
	words WordSource
	store Store
	rng   *rand.Rand

	state      State
	sess       *SessionContext
	lastResult *quiz.Result
	loadSeq    uint64
	loadErr    error
}

// NewController builds a controller in the Home state. rng drives the
// test-mode subsample; inject a seeded source in tests.
func NewController(auth AuthSession, words WordSource, store Store, rng *rand.Rand) *Controller {
	return &Controller{
		auth:  auth,
		words: words,
		store: store,
		state: StateHome,
		rng:   rng,
	}
}

// State returns the current navigation state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Auth returns the identity this controller persists under.
func (c *Controller) Auth() AuthSession {
	return c.auth
}

// Session returns the active session context, or nil outside a session.
func (c *Controller) Session() *SessionContext {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sess
}

// LastResult returns the most recent quiz result while in Result state.
func (c *Controller) LastResult() *quiz.Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastResult
}

// LoadError returns the failure of the most recent load, if any. Cleared
// on every new load.
func (c *Controller) LoadError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadErr
}

// Load identifies one in-flight vocabulary resolution. Completions carry
// their Load back so the controller can discard results that arrive after
// the user navigated away.
type Load struct {
	seq       uint64
	TopicID   string
	TopicName string
	Mode      Mode
	extend    bool
	exclude   []string
}

// BeginSession enters Loading for the given topic and mode and returns
// the load token. Used for catalog topics, custom topic text ("custom"
// id, learn mode), and profile resume.
func (c *Controller) BeginSession(topicID, topicName string, mode Mode) Load {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = StateLoading
	c.loadErr = nil
	c.loadSeq++
	return Load{
		seq:       c.loadSeq,
		TopicID:   topicID,
		TopicName: topicName,
		Mode:      mode,
	}
}

// ResolveItems runs the topic resolution algorithm for ld and returns the
// full resolved pool. It never mutates controller state, so it is safe to
// call from a background task while the UI shows the loading view.
//
// Resolution order: the per-user extended record under the normalized
// topic name always wins (a static topic a user has extended is upgraded
// transparently), then the static catalog, then AI generation, which
// also persists a newly created extended record so the next resolution
// returns it verbatim.
func (c *Controller) ResolveItems(ctx context.Context, ld Load) []vocab.Item {
	safeID := vocab.NormalizeTopicID(ld.TopicName)

	if c.auth.UID != "" {
		rec, err := c.store.GetTopic(ctx, c.auth.UID, safeID)
		if err != nil {
			warnf("look up extended topic %q: %v", safeID, err)
		} else if rec != nil && len(rec.Words) > 0 {
			return rec.Words
		}
	}

	if !isCustomTopic(ld.TopicID) {
		if words, ok := vocab.StaticWords(ld.TopicID); ok {
			return words
		}
	}

	words, err := c.words.GenerateWords(ctx, ld.TopicName, newTopicWordCount, nil)
	if err != nil || len(words) == 0 {
		if err != nil {
			warnf("generate words for %q: %v", ld.TopicName, err)
		}
		words = vocab.FallbackWords(ld.TopicName)
	}

	if c.auth.UID != "" && len(words) > 0 {
		now := time.Now()
		rec := TopicRecord{
			ID:        safeID,
			Name:      ld.TopicName,
			Words:     words,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := c.store.SaveTopic(ctx, c.auth.UID, rec); err != nil {
			warnf("save extended topic %q: %v", safeID, err)
		}
	}
	return words
}

// CompleteSession applies a finished resolution: stale loads are
// discarded, empty pools keep the controller in Loading, test mode draws
// an unbiased random subset, and an initial progress record is written
// fire-and-forget. Ends in Quiz (test) or TopicDetail (learn).
func (c *Controller) CompleteSession(ld Load, pool []vocab.Item) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ld.seq != c.loadSeq || c.state != StateLoading {
		return ErrStaleLoad
	}
	if len(pool) == 0 {
		c.loadErr = ErrNoItems
		return ErrNoItems
	}

	items := pool
	if ld.Mode == ModeTest {
		items = subsample(c.rng, pool, testModeQuizSize)
	}

	c.sess = &SessionContext{
		ID:        uuid.New().String(),
		TopicID:   ld.TopicID,
		TopicName: ld.TopicName,
		Mode:      ld.Mode,
		Items:     items,
	}

	c.persistProgress(ProgressRecord{
		TopicID:      progressTopicID(ld.TopicID, ld.TopicName),
		TopicName:    ld.TopicName,
		WordsLearned: 0,
		TotalWords:   len(pool),
		LastAccessed: time.Now(),
	})

	if ld.Mode == ModeTest {
		c.state = StateQuiz
	} else {
		c.state = StateTopicDetail
	}
	return nil
}

// StartFlashcard transitions TopicDetail -> Flashcard.
func (c *Controller) StartFlashcard() error {
	return c.transition(StateTopicDetail, StateFlashcard)
}

// StartQuiz transitions TopicDetail -> Quiz.
func (c *Controller) StartQuiz() error {
	return c.transition(StateTopicDetail, StateQuiz)
}

// BeginGenerateMore enters Loading for the generate-more flow, capturing
// the current terms as the exclusion set.
func (c *Controller) BeginGenerateMore() (Load, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateTopicDetail || c.sess == nil {
		return Load{}, ErrBadTransition
	}
	c.state = StateLoading
	c.loadErr = nil
	c.loadSeq++
	return Load{
		seq:       c.loadSeq,
		TopicID:   c.sess.TopicID,
		TopicName: c.sess.TopicName,
		Mode:      c.sess.Mode,
		extend:    true,
		exclude:   vocab.Terms(c.sess.Items),
	}, nil
}

// ResolveMore requests additional words from the AI path, excluding every
// term already in the session. A nil or empty result means nothing new.
func (c *Controller) ResolveMore(ctx context.Context, ld Load) []vocab.Item {
	words, err := c.words.GenerateWords(ctx, ld.TopicName, moreWordCount, ld.exclude)
	if err != nil {
		warnf("generate more words for %q: %v", ld.TopicName, err)
		return nil
	}
	return words
}

// CompleteGenerateMore merges newly generated words into storage and the
// session, then returns to TopicDetail. Zero new words is a silent no-op,
// not an error. If the topic had no extended record yet, one is created
// containing old static items plus the new words, so no history is lost.
func (c *Controller) CompleteGenerateMore(ld Load, newWords []vocab.Item) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ld.seq != c.loadSeq || c.state != StateLoading || !ld.extend {
		return ErrStaleLoad
	}
	if c.sess == nil {
		c.state = StateHome
		return ErrBadTransition
	}

	if len(newWords) == 0 {
		c.state = StateTopicDetail
		return nil
	}

	merged := make([]vocab.Item, 0, len(c.sess.Items)+len(newWords))
	merged = append(merged, c.sess.Items...)
	merged = append(merged, newWords...)

	if c.auth.UID != "" {
		safeID := vocab.NormalizeTopicID(ld.TopicName)
		ctx := context.Background()
		rec, err := c.store.GetTopic(ctx, c.auth.UID, safeID)
		if err != nil {
			warnf("look up extended topic %q: %v", safeID, err)
		}
		switch {
		case rec != nil:
			if err := c.store.AppendWords(ctx, c.auth.UID, safeID, newWords); err != nil {
				warnf("append words to %q: %v", safeID, err)
			}
		default:
			now := time.Now()
			if err := c.store.SaveTopic(ctx, c.auth.UID, TopicRecord{
				ID:        safeID,
				Name:      ld.TopicName,
				Words:     merged,
				CreatedAt: now,
				UpdatedAt: now,
			}); err != nil {
				warnf("save extended topic %q: %v", safeID, err)
			}
		}
	}

	c.sess.Items = merged
	c.persistProgress(ProgressRecord{
		TopicID:      vocab.NormalizeTopicID(ld.TopicName),
		TopicName:    ld.TopicName,
		WordsLearned: 0,
		TotalWords:   len(merged),
		LastAccessed: time.Now(),
	})

	c.state = StateTopicDetail
	return nil
}

// FlashcardEnded handles the flashcard engine's sessionEnded event. A
// session abandoned with nothing learned returns Home; otherwise progress
// is persisted and the quiz follows for reinforcement.
func (c *Controller) FlashcardEnded(learnedCount int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateFlashcard || c.sess == nil {
		return
	}

	if learnedCount > 0 {
		c.persistProgress(ProgressRecord{
			TopicID:      progressTopicID(c.sess.TopicID, c.sess.TopicName),
			TopicName:    c.sess.TopicName,
			WordsLearned: learnedCount,
			TotalWords:   len(c.sess.Items),
			LastAccessed: time.Now(),
		})
	}

	if learnedCount == 0 && len(c.sess.Items) > 0 {
		c.resetLocked()
		return
	}
	c.state = StateQuiz
}

// QuizFinished handles the quiz engine's finished event: the result is
// stored for the Result view and persisted to history fire-and-forget.
func (c *Controller) QuizFinished(res quiz.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateQuiz || c.sess == nil {
		return
	}
	c.lastResult = &res

	if c.auth.UID != "" {
		topicName := c.sess.TopicName
		c.detach("save quiz result", func(ctx context.Context) error {
			return c.store.SaveQuizResult(ctx, c.auth.UID, res, topicName)
		})
	}
	c.state = StateResult
}

// Retry re-runs the current set from the Result view: flashcards in learn
// mode, straight to the quiz in test mode. The prior result is cleared.
func (c *Controller) Retry() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateResult || c.sess == nil {
		return ErrBadTransition
	}
	c.lastResult = nil
	if c.sess.Mode == ModeTest {
		c.state = StateQuiz
	} else {
		c.state = StateFlashcard
	}
	return nil
}

// GoHome resets the controller to its initial state.
func (c *Controller) GoHome() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
}

// OpenProfile switches to the profile view. Allowed from any state.
func (c *Controller) OpenProfile() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateProfile
}

// FetchProfile reads the user's progress and history from the sink.
func (c *Controller) FetchProfile(ctx context.Context) (*Profile, error) {
	if c.auth.UID == "" {
		return &Profile{}, nil
	}
	return c.store.Profile(ctx, c.auth.UID)
}

func (c *Controller) transition(from, to State) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != from || c.sess == nil || len(c.sess.Items) == 0 {
		return ErrBadTransition
	}
	c.state = to
	return nil
}

func (c *Controller) resetLocked() {
	c.state = StateHome
	c.sess = nil
	c.lastResult = nil
	c.loadErr = nil
}

// persistProgress writes a progress record fire-and-forget. Requires
// c.mu held by the caller.
func (c *Controller) persistProgress(rec ProgressRecord) {
	if c.auth.UID == "" {
		return
	}
	c.detach("save progress", func(ctx context.Context) error {
		return c.store.SaveProgress(ctx, c.auth.UID, rec)
	})
}

// detach runs a persistence call in the background. The state machine
// never waits on the sink: a failed write costs a log line, not a stuck
// session.
func (c *Controller) detach(op string, fn func(context.Context) error) {
	go func() {
		if err := fn(context.Background()); err != nil {
			warnf("%s: %v", op, err)
		}
	}()
}

// progressTopicID mirrors how sessions are keyed for progress: custom and
// unknown topics use the normalized name, catalog topics keep their id.
func progressTopicID(topicID, topicName string) string {
	if isCustomTopic(topicID) {
		return vocab.NormalizeTopicID(topicName)
	}
	return topicID
}

func isCustomTopic(topicID string) bool {
	return topicID == "custom" || !vocab.IsStaticTopic(topicID)
}

// subsample returns up to n items drawn uniformly at random, in random
// order. The input is never modified and the subset is session-local.
func subsample(rng *rand.Rand, pool []vocab.Item, n int) []vocab.Item {
	out := make([]vocab.Item, len(pool))
	copy(out, pool)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}
