package questiongen

// Config controls question generation.
type Config struct {
	// DefaultCount is used when GenerateInput.Count is zero.
	DefaultCount int

	// MaxTokens caps the model response size. Batches are long, so this is
	// much higher than a single-question budget.
	MaxTokens int

	// Temperature controls sampling randomness.
	Temperature float64
}

// DefaultConfig returns the standard generation configuration.
func DefaultConfig() Config {
	return Config{
		DefaultCount: 20,
		MaxTokens:    8192,
		Temperature:  0.7,
	}
}
