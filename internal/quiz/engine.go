// Package quiz implements the multiple-choice quiz engine: one question
// per vocabulary item, streak-based scoring, and a result summary.
package quiz

import (
	"errors"
	"math/rand/v2"

	"github.com/minhtran/vocamaster/internal/vocab"
)

// ErrNoItems is returned when an engine is constructed with an empty set.
var ErrNoItems = errors.New("quiz: no items to quiz on")

const (
	// basePoints is awarded for every correct answer.
	basePoints = 10

	// streakBonus is added once per full streakWindow of consecutive
	// correct answers, counted after the current answer.
	streakBonus  = 5
	streakWindow = 3

	// distractorCount is the number of wrong options shown per question.
	distractorCount = 3

	// placeholderDistractor pads the option set when the pool has more
	// than distractorCount+1 items but fewer distinct translations.
	placeholderDistractor = "Từ khác..."
)

// Result summarizes one completed quiz run. Immutable once produced.
type Result struct {
	CorrectCount int
	TotalCount   int
	Score        int
	MaxStreak    int
	WrongItems   []vocab.Item
}

// Feedback describes the outcome of a single answered question.
type Feedback struct {
	Correct bool
	Points  int
	Answer  string // the correct translation
}

// Engine drives one quiz over a fixed item set. Methods are not safe for
// concurrent use; the engine expects a single event loop.
type Engine struct {
	items     []vocab.Item
	rng       *rand.Rand
	index     int
	options   []string
	answered  bool
	finished  bool
	score     int
	streak    int
	maxStreak int
	wrong     []vocab.Item
	onFinish  func(Result)
}

// New creates an engine over items, using rng for distractor sampling and
// option shuffling. onFinish is invoked exactly once, after the last
// question is advanced past.
func New(items []vocab.Item, rng *rand.Rand, onFinish func(Result)) (*Engine, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	set := make([]vocab.Item, len(items))
	copy(set, items)
	e := &Engine{
		items:    set,
		rng:      rng,
		onFinish: onFinish,
	}
	e.options = e.generateOptions()
	return e, nil
}

// Current returns the item the current question asks about.
func (e *Engine) Current() vocab.Item { return e.items[e.index] }

// Index returns the zero-based index of the current question.
func (e *Engine) Index() int { return e.index }

// Total returns the number of questions in this run.
func (e *Engine) Total() int { return len(e.items) }

// Options returns the answer options for the current question, in display
// order. Regenerated every time the question advances.
func (e *Engine) Options() []string { return e.options }

// Score returns the accumulated score.
func (e *Engine) Score() int { return e.score }

// Streak returns the current consecutive-correct count.
func (e *Engine) Streak() int { return e.streak }

// MaxStreak returns the highest streak observed so far.
func (e *Engine) MaxStreak() int { return e.maxStreak }

// Answered reports whether the current question has been answered and the
// engine is waiting for Advance.
func (e *Engine) Answered() bool { return e.answered }

// Finished reports whether the run is over.
func (e *Engine) Finished() bool { return e.finished }

// Answer records the learner's choice for the current question. Exactly
// one answer is accepted per question; further calls before Advance are
// rejected with ok=false. Correctness is exact string equality with the
// current item's translation.
func (e *Engine) Answer(choice string) (Feedback, bool) {
	if e.answered || e.finished {
		return Feedback{}, false
	}
	e.answered = true

	cur := e.items[e.index]
	fb := Feedback{Answer: cur.Translation}

	if choice == cur.Translation {
		fb.Correct = true
		e.streak++
		if e.streak > e.maxStreak {
			e.maxStreak = e.streak
		}
		fb.Points = basePoints + (e.streak/streakWindow)*streakBonus
		e.score += fb.Points
	} else {
		e.streak = 0
		e.wrong = append(e.wrong, cur)
	}
	return fb, true
}

// Advance moves past the current question once its feedback window has
// elapsed: either the next question becomes current (with fresh options)
// or, after the last question, the run finalizes and the result is
// emitted. Calling Advance before the question is answered is a no-op.
func (e *Engine) Advance() {
	if !e.answered || e.finished {
		return
	}
	if e.index < len(e.items)-1 {
		e.index++
		e.answered = false
		e.options = e.generateOptions()
		return
	}
	e.finished = true
	if e.onFinish != nil {
		e.onFinish(e.Result())
	}
}

// Result builds the summary for the run so far. After Finished reports
// true this is the final, immutable result.
func (e *Engine) Result() Result {
	wrong := make([]vocab.Item, len(e.wrong))
	copy(wrong, e.wrong)
	return Result{
		CorrectCount: len(e.items) - len(e.wrong),
		TotalCount:   len(e.items),
		Score:        e.score,
		MaxStreak:    e.maxStreak,
		WrongItems:   wrong,
	}
}

// generateOptions builds the option set for the current question: the
// correct translation plus up to three distinct distractors sampled from
// the other items, padded with a placeholder when the pool is large
// enough to expect a full set. Pools of three or fewer items yield fewer
// than four options; that is accepted, not an error.
func (e *Engine) generateOptions() []string {
	cur := e.items[e.index]

	pool := make([]string, 0, len(e.items)-1)
	seen := make(map[string]bool)
	for _, it := range e.items {
		if it.Term == cur.Term {
			continue
		}
		if seen[it.Translation] {
			continue
		}
		seen[it.Translation] = true
		pool = append(pool, it.Translation)
	}

	e.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > distractorCount {
		pool = pool[:distractorCount]
	}
	for len(pool) < distractorCount && len(e.items) > distractorCount {
		pool = append(pool, placeholderDistractor)
	}

	opts := append([]string{cur.Translation}, pool...)
	e.rng.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})
	return opts
}
