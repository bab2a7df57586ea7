package llm

import "time"

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role
	Content string
}

type CompletionRequest struct {
	Messages []Message
	// Zero values fall back to configuration.
	MaxTokens        int64
	Temperature      *float64
	PresencePenalty  float64
	FrequencyPenalty float64
}

type Completion struct {
	Content          string
	Model            string
	FinishReason     string
	PromptTokens     int64
	CompletionTokens int64
}

// Prompt is a predefined task template.
type Prompt struct {
	ID           string `yaml:"id"`
	Title        string `yaml:"title"`
	Description  string `yaml:"description"`
	Category     string `yaml:"category"`
	Icon         string `yaml:"icon"`
	SystemPrompt string `yaml:"system_prompt"`
	Template     string `yaml:"template"`
}

type ExecuteRequest struct {
	UserInput  string
	Repository string
	Branch     string
	Context    string
}

type ExecutionMetadata struct {
	Timestamp  time.Time
	Repository string
	Branch     string
	Context    string
}

type Execution struct {
	PromptID string
	Response string
	Metadata ExecutionMetadata
}
