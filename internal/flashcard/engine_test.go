package flashcard

import (
	"testing"

	"github.com/minhtran/vocamaster/internal/vocab"
)

func testItems(terms ...string) []vocab.Item {
	items := make([]vocab.Item, len(terms))
	for i, term := range terms {
		items[i] = vocab.Item{Term: term, Translation: "nghĩa của " + term}
	}
	return items
}

func TestNewRejectsEmptySet(t *testing.T) {
	if _, err := New(nil, nil); err != ErrNoItems {
		t.Fatalf("expected ErrNoItems, got %v", err)
	}
}

func TestMarkMemorizedRetiresCard(t *testing.T) {
	e, err := New(testItems("apple", "banana", "cherry"), nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if got := e.Current().Term; got != "apple" {
		t.Fatalf("expected front card apple, got %q", got)
	}
	if !e.MarkMemorized() {
		t.Fatal("expected MarkMemorized to succeed")
	}
	e.Release()

	if got := e.Current().Term; got != "banana" {
		t.Fatalf("expected front card banana, got %q", got)
	}
	if e.Learned() != 1 {
		t.Fatalf("expected 1 learned, got %d", e.Learned())
	}
	if e.Remaining() != 2 {
		t.Fatalf("expected 2 remaining, got %d", e.Remaining())
	}
}

func TestDeferMovesCardToBack(t *testing.T) {
	e, err := New(testItems("a", "b", "c"), nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if !e.DeferForReview() {
		t.Fatal("expected DeferForReview to succeed")
	}
	e.Release()

	// Deck order is now b, c, a.
	want := []string{"b", "c", "a"}
	for _, term := range want {
		if got := e.Current().Term; got != term {
			t.Fatalf("expected front %q, got %q", term, got)
		}
		e.DeferForReview()
		e.Release()
	}
}

func TestConservation(t *testing.T) {
	e, err := New(testItems("a", "b", "c", "d"), nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	check := func() {
		if e.Remaining()+e.Learned() != e.InitialCount() {
			t.Fatalf("remaining(%d)+learned(%d) != initial(%d)",
				e.Remaining(), e.Learned(), e.InitialCount())
		}
	}

	check()
	e.DeferForReview()
	e.Release()
	check()
	e.MarkMemorized()
	e.Release()
	check()
	e.DeferForReview()
	e.Release()
	check()
	e.MarkMemorized()
	e.Release()
	check()
}

func TestSessionEndsWhenQueueEmpties(t *testing.T) {
	var learned int
	fired := 0
	e, err := New(testItems("x", "y"), func(count int) {
		learned = count
		fired++
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	e.MarkMemorized()
	e.Release()
	if e.Done() {
		t.Fatal("session ended early")
	}
	e.MarkMemorized()

	if !e.Done() {
		t.Fatal("expected session to end")
	}
	if fired != 1 {
		t.Fatalf("expected onEnd to fire once, fired %d times", fired)
	}
	if learned != 2 {
		t.Fatalf("expected learned count 2, got %d", learned)
	}
}

func TestDeferralNeverEndsSession(t *testing.T) {
	e, err := New(testItems("only"), nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	for range 10 {
		e.DeferForReview()
		e.Release()
		if e.Done() {
			t.Fatal("deferral alone must not end the session")
		}
	}
}

func TestTransitionWindowRejectsInput(t *testing.T) {
	e, err := New(testItems("a", "b"), nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if !e.MarkMemorized() {
		t.Fatal("first grade should succeed")
	}
	if e.MarkMemorized() {
		t.Fatal("grade during transition window should be rejected")
	}
	if e.DeferForReview() {
		t.Fatal("defer during transition window should be rejected")
	}

	e.Release()
	if !e.MarkMemorized() {
		t.Fatal("grade after release should succeed")
	}
}

func TestExitReportsPartialCount(t *testing.T) {
	var learned = -1
	e, err := New(testItems("a", "b", "c"), func(count int) {
		learned = count
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	e.MarkMemorized()
	e.Release()
	e.Exit()

	if learned != 1 {
		t.Fatalf("expected learned count 1 on exit, got %d", learned)
	}
	if !e.Done() {
		t.Fatal("expected session ended after exit")
	}

	// A second exit must not fire the callback again.
	learned = -1
	e.Exit()
	if learned != -1 {
		t.Fatal("onEnd fired twice")
	}
}
