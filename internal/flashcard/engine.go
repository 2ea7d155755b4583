// Package flashcard implements the self-paced review queue used in learn
// mode. Cards are served front-to-back; a card leaves the queue only when
// the learner marks it memorized, otherwise it is requeued at the back.
package flashcard

import (
	"errors"

	"github.com/minhtran/vocamaster/internal/vocab"
)

// ErrNoItems is returned when an engine is constructed with an empty set.
// An empty set means "still loading", never a zero-card completed session.
var ErrNoItems = errors.New("flashcard: no items to review")

// Engine drives one flashcard session over a fixed item set.
type Engine struct {
	queue     []vocab.Item
	initial   int
	learned   int
	suspended bool
	ended     bool
	onEnd     func(learnedCount int)
}

// New creates an engine seeded with items in their given order. onEnd is
// invoked exactly once, with the final learned count, when the queue
// empties or Exit is called.
func New(items []vocab.Item, onEnd func(learnedCount int)) (*Engine, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	queue := make([]vocab.Item, len(items))
	copy(queue, items)
	return &Engine{
		queue:   queue,
		initial: len(items),
		onEnd:   onEnd,
	}, nil
}

// Current returns the card at the front of the queue. Only valid while
// Done reports false.
func (e *Engine) Current() vocab.Item {
	return e.queue[0]
}

// InitialCount returns the number of items the session started with.
func (e *Engine) InitialCount() int { return e.initial }

// Learned returns the number of cards marked memorized so far.
func (e *Engine) Learned() int { return e.learned }

// Remaining returns the number of cards still in the queue.
func (e *Engine) Remaining() int { return len(e.queue) }

// Done reports whether the session has ended.
func (e *Engine) Done() bool { return e.ended }

// Suspended reports whether the engine is inside a transition window and
// rejecting input.
func (e *Engine) Suspended() bool { return e.suspended }

// MarkMemorized retires the front card and opens a transition window.
// Returns false (and changes nothing) while a window is open or after the
// session ended.
func (e *Engine) MarkMemorized() bool {
	if e.suspended || e.ended {
		return false
	}
	e.queue = e.queue[1:]
	e.learned++
	e.suspended = true
	if len(e.queue) == 0 {
		e.finish()
	}
	return true
}

// DeferForReview moves the front card to the back of the queue unchanged
// and opens a transition window. Returns false while a window is open or
// after the session ended.
func (e *Engine) DeferForReview() bool {
	if e.suspended || e.ended {
		return false
	}
	front := e.queue[0]
	e.queue = append(e.queue[1:], front)
	e.suspended = true
	return true
}

// Release closes the transition window, allowing the next action.
func (e *Engine) Release() {
	e.suspended = false
}

// Exit ends the session early with whatever learned count accumulated,
// which may be zero. The remaining queue is discarded.
func (e *Engine) Exit() {
	e.finish()
}

func (e *Engine) finish() {
	if e.ended {
		return
	}
	e.ended = true
	if e.onEnd != nil {
		e.onEnd(e.learned)
	}
}
