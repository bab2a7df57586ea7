package ai

import "time"

type HealthResponse struct {
	Status     string `json:"status"`
	Configured bool   `json:"configured"`
	Model      string `json:"model,omitempty"`
}

type PromptResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Icon        string `json:"icon"`
}

type PromptsResponse struct {
	Prompts []PromptResponse `json:"prompts"`
}

type ExecuteRequest struct {
	UserInput  string `json:"userInput"  validate:"max=20000"`
	Repository string `json:"repository" validate:"max=255"`
	Branch     string `json:"branch"     validate:"max=255"`
	Context    string `json:"context"    validate:"max=2000"`
}

type ExecutionMetadata struct {
	Timestamp  time.Time `json:"timestamp"`
	Repository string    `json:"repository"`
	Branch     string    `json:"branch"`
	Context    string    `json:"context"`
}

type ExecuteResponse struct {
	PromptID string            `json:"promptId"`
	Response string            `json:"response"`
	Metadata ExecutionMetadata `json:"metadata"`
}
