package vocab

import "testing"

func TestNormalizeTopicID(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Daily Routine", "daily_routine"},
		{"  Daily   Routine  ", "daily_routine"},
		{"food", "food"},
		{"TOEIC Office Life", "toeic_office_life"},
		{"", ""},
		{"one\ttwo\nthree", "one_two_three"},
	}
	for _, tc := range cases {
		if got := NormalizeTopicID(tc.in); got != tc.want {
			t.Errorf("NormalizeTopicID(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCatalogLookup(t *testing.T) {
	topic, ok := TopicByID("c1")
	if !ok {
		t.Fatal("c1 missing from catalog")
	}
	if topic.Name != "Daily Routine" {
		t.Fatalf("c1 name %q", topic.Name)
	}
	if _, ok := TopicByID("nope"); ok {
		t.Fatal("unknown id must not resolve")
	}
}

func TestStaticWordsCoverage(t *testing.T) {
	for _, topic := range DefaultTopics() {
		words, ok := StaticWords(topic.ID)
		if !ok {
			// Catalog topics without a built-in list are generated on
			// first use.
			if IsStaticTopic(topic.ID) {
				t.Errorf("%s: IsStaticTopic disagrees with StaticWords", topic.ID)
			}
			continue
		}
		if !IsStaticTopic(topic.ID) {
			t.Errorf("%s: IsStaticTopic disagrees with StaticWords", topic.ID)
		}
		if len(words) == 0 {
			t.Errorf("%s: empty built-in word list", topic.ID)
		}
		for _, w := range words {
			if w.Term == "" || w.Translation == "" {
				t.Errorf("%s: incomplete item %+v", topic.ID, w)
			}
		}
	}
}

func TestStaticWordsReturnsCopy(t *testing.T) {
	a, _ := StaticWords("c1")
	a[0].Term = "mutated"
	b, _ := StaticWords("c1")
	if b[0].Term == "mutated" {
		t.Fatal("StaticWords must not expose the backing slice")
	}
}

func TestFallbackWordsNonEmpty(t *testing.T) {
	words := FallbackWords("anything")
	if len(words) == 0 {
		t.Fatal("fallback list must not be empty")
	}
	for _, w := range words {
		if w.Term == "" || w.Translation == "" {
			t.Fatalf("incomplete fallback item %+v", w)
		}
	}
}

func TestTerms(t *testing.T) {
	items := []Item{{Term: "a"}, {Term: "b"}}
	got := Terms(items)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("Terms = %v", got)
	}
}
