package wordgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxExcludeTerms caps how many already-known terms are listed in
	// the prompt.
	MaxExcludeTerms int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:       2048,
		Temperature:     0.7,
		MaxExcludeTerms: 100,
	}
}
