package vocab

import "strings"

// Item is a single vocabulary entry. Items are immutable once created;
// the term is the identity used for deduplication and exclusion checks
// (case-sensitive exact match, no surrogate id).
type Item struct {
	// Term is the English word or phrase being learned.
	Term string `json:"term"`

	// Phonetic is the IPA transcription, e.g. "/ˈbreə.kfəst/".
	Phonetic string `json:"phonetic"`

	// Translation is the meaning in the learner's language. The quiz
	// treats this as the correct answer value.
	Translation string `json:"translation"`

	// Example is a short example sentence using the term.
	Example string `json:"example"`

	// PartOfSpeech is "noun", "verb", "adjective", etc.
	PartOfSpeech string `json:"part_of_speech"`
}

// Terms returns the term of every item, in order.
func Terms(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Term
	}
	return out
}

// NormalizeTopicID converts a free-form topic name into a storage-safe
// identifier: whitespace runs collapse to a single underscore and the
// result is lower-cased. "Daily  Routine" -> "daily_routine".
func NormalizeTopicID(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "_"))
}
