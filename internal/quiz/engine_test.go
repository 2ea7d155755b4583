package quiz

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/minhtran/vocamaster/internal/vocab"
)

func testRng() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func quizItems(n int) []vocab.Item {
	items := make([]vocab.Item, n)
	for i := range items {
		items[i] = vocab.Item{
			Term:        string(rune('a' + i)),
			Translation: "nghĩa " + string(rune('a'+i)),
		}
	}
	return items
}

func TestNewRejectsEmptySet(t *testing.T) {
	if _, err := New(nil, testRng(), nil); err != ErrNoItems {
		t.Fatalf("expected ErrNoItems, got %v", err)
	}
}

func TestStreakScoring(t *testing.T) {
	items := quizItems(7)
	e, err := New(items, testRng(), nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	// Points per consecutive correct answer: base 10 plus 5 for every
	// completed window of three.
	want := []int{10, 10, 15, 15, 15, 20, 20}
	for i, points := range want {
		fb, ok := e.Answer(e.Current().Translation)
		if !ok {
			t.Fatalf("q%d: answer rejected", i)
		}
		if !fb.Correct {
			t.Fatalf("q%d: expected correct", i)
		}
		if fb.Points != points {
			t.Fatalf("q%d: expected %d points, got %d", i, points, fb.Points)
		}
		e.Advance()
	}

	res := e.Result()
	if res.Score != 10+10+15+15+15+20+20 {
		t.Fatalf("unexpected total score %d", res.Score)
	}
	if res.MaxStreak != 7 {
		t.Fatalf("expected max streak 7, got %d", res.MaxStreak)
	}
}

func TestWrongAnswerResetsStreak(t *testing.T) {
	items := quizItems(5)
	e, err := New(items, testRng(), nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	for range 3 {
		e.Answer(e.Current().Translation)
		e.Advance()
	}
	if e.Streak() != 3 {
		t.Fatalf("expected streak 3, got %d", e.Streak())
	}

	fb, _ := e.Answer("không đúng")
	if fb.Correct {
		t.Fatal("expected wrong answer")
	}
	if fb.Points != 0 {
		t.Fatalf("wrong answer must award 0 points, got %d", fb.Points)
	}
	if fb.Answer != e.Current().Translation {
		t.Fatalf("feedback answer %q != current translation", fb.Answer)
	}
	if e.Streak() != 0 {
		t.Fatalf("expected streak reset, got %d", e.Streak())
	}
	e.Advance()

	// Streak restarts from one after a miss.
	fb, _ = e.Answer(e.Current().Translation)
	if fb.Points != 10 {
		t.Fatalf("expected base points after reset, got %d", fb.Points)
	}
	if e.MaxStreak() != 3 {
		t.Fatalf("max streak should survive the reset, got %d", e.MaxStreak())
	}
}

func TestOneAnswerPerQuestion(t *testing.T) {
	e, err := New(quizItems(3), testRng(), nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if _, ok := e.Answer("không đúng"); !ok {
		t.Fatal("first answer should be accepted")
	}
	if _, ok := e.Answer(e.Current().Translation); ok {
		t.Fatal("second answer before advance should be rejected")
	}

	// Advancing an unanswered question is a no-op.
	e.Advance()
	e2, _ := New(quizItems(3), testRng(), nil)
	e2.Advance()
	if e2.Index() != 0 {
		t.Fatal("advance before answer must not move the index")
	}
}

func TestResultCountsMisses(t *testing.T) {
	items := quizItems(6)
	var final *Result
	fired := 0
	e, err := New(items, testRng(), func(r Result) {
		final = &r
		fired++
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	missAt := map[int]bool{1: true, 4: true}
	for i := range items {
		if missAt[i] {
			e.Answer("không đúng")
		} else {
			e.Answer(e.Current().Translation)
		}
		e.Advance()
	}

	if !e.Finished() {
		t.Fatal("expected run finished")
	}
	if fired != 1 {
		t.Fatalf("onFinish fired %d times", fired)
	}
	if final.TotalCount != 6 || final.CorrectCount != 4 {
		t.Fatalf("unexpected counts: %d/%d", final.CorrectCount, final.TotalCount)
	}
	if len(final.WrongItems) != 2 {
		t.Fatalf("expected 2 wrong items, got %d", len(final.WrongItems))
	}
	if final.WrongItems[0].Term != items[1].Term || final.WrongItems[1].Term != items[4].Term {
		t.Fatal("wrong items must keep quiz order")
	}

	// Answering after the run ends is rejected.
	if _, ok := e.Answer("anything"); ok {
		t.Fatal("answer after finish should be rejected")
	}
}

func TestOptionsContainCorrectAnswer(t *testing.T) {
	items := quizItems(10)
	e, err := New(items, testRng(), nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	for !e.Finished() {
		opts := e.Options()
		if len(opts) != 4 {
			t.Fatalf("q%d: expected 4 options, got %d", e.Index(), len(opts))
		}
		if !slices.Contains(opts, e.Current().Translation) {
			t.Fatalf("q%d: options missing correct answer", e.Index())
		}
		seen := make(map[string]bool)
		for _, o := range opts {
			if seen[o] {
				t.Fatalf("q%d: duplicate option %q", e.Index(), o)
			}
			seen[o] = true
		}
		e.Answer(e.Current().Translation)
		e.Advance()
	}
}

func TestSmallPoolYieldsFewerOptions(t *testing.T) {
	e, err := New(quizItems(2), testRng(), nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	opts := e.Options()
	if len(opts) != 2 {
		t.Fatalf("expected 2 options from a 2-item pool, got %d", len(opts))
	}
	if slices.Contains(opts, placeholderDistractor) {
		t.Fatal("small pools must not be padded")
	}
}

func TestDuplicateTranslationsPadded(t *testing.T) {
	// Five items but only two distinct translations besides the current
	// one, so the option set is padded to four with the placeholder.
	items := []vocab.Item{
		{Term: "cat", Translation: "con mèo"},
		{Term: "dog", Translation: "con chó"},
		{Term: "hound", Translation: "con chó"},
		{Term: "puppy", Translation: "con chó"},
		{Term: "kitten", Translation: "con mèo con"},
	}
	e, err := New(items, testRng(), nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	opts := e.Options()
	if len(opts) != 4 {
		t.Fatalf("expected 4 options, got %d", len(opts))
	}
	if !slices.Contains(opts, placeholderDistractor) {
		t.Fatal("expected placeholder padding")
	}
	if !slices.Contains(opts, "con mèo") {
		t.Fatal("options missing correct answer")
	}
}
