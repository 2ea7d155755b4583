package wordgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an English teacher preparing vocabulary lists for Vietnamese learners.

Rules:
- Generate common, genuinely useful English words for the given topic.
- Every word needs an accurate IPA transcription, a natural Vietnamese translation, and a short example sentence in English.
- The part of speech must be one of: noun, verb, adjective, adverb, phrase.
- Prefer single words; use short phrases only when the topic demands it.
- Do not include any word from the "already known" list, in any form.
- Do not repeat a word within the list.`

// buildUserMessage constructs the user message from GenerateInput and
// Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Number of words: %d\n", input.Count)

	b.WriteString("\nAlready known, do not repeat:\n")
	b.WriteString(buildExcludeList(input.ExcludeTerms, cfg.MaxExcludeTerms))

	return b.String()
}

// buildExcludeList formats the exclusion list for the prompt, keeping
// only the most recent N terms.
func buildExcludeList(terms []string, max int) string {
	if len(terms) == 0 {
		return "None"
	}

	if max > 0 && len(terms) > max {
		terms = terms[len(terms)-max:]
	}

	var b strings.Builder
	for i, t := range terms {
		fmt.Fprintf(&b, "%d. %s\n", i+1, t)
	}
	return strings.TrimRight(b.String(), "\n")
}
