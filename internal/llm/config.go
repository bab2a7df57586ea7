package llm

import "time"

type Config struct {
	APIKey string
	// Empty means the public OpenAI endpoint.
	BaseURL     string
	Model       string
	MaxTokens   int64
	Temperature float64
	Timeout     time.Duration
}
