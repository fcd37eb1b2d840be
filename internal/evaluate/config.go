package evaluate

// Config controls the behavior of the Evaluator.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	// Grading should be near-deterministic.
	Temperature float64
}

// DefaultConfig returns recommended evaluator defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   384,
		Temperature: 0.2,
	}
}
