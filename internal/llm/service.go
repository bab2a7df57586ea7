package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.uber.org/zap"
)

const (
	predefinedTemperature = 0.3
	predefinedMaxTokens   = 3000
	predefinedPenalty     = 0.1
	defaultContext        = "DevOps automation and infrastructure management"
)

type Service struct {
	config Config
	client *openai.Client

	catalog *Catalog

	now    func() time.Time
	logger *zap.Logger
}

func NewService(config Config, catalog *Catalog, logger *zap.Logger) *Service {
	s := &Service{
		config: config,

		catalog: catalog,

		now:    time.Now,
		logger: logger,
	}

	if config.APIKey == "" {
		logger.Warn("OpenAI API key is not set, LLM endpoints are disabled")
		return s
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
		option.WithMaxRetries(0),
	}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}
	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(config.Timeout))
	}

	client := openai.NewClient(opts...)
	s.client = &client

	return s
}

func (s *Service) Configured() bool {
	return s.client != nil
}

func (s *Service) Model() string {
	return s.config.Model
}

// Complete runs a chat completion and returns the first choice.
func (s *Service) Complete(ctx context.Context, req CompletionRequest) (*Completion, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}

	params := openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(s.config.Model),
		Messages: make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)),
	}
	for _, m := range req.Messages {
		switch m.Role {
		case RoleSystem:
			params.Messages = append(params.Messages, openai.SystemMessage(m.Content))
		case RoleAssistant:
			params.Messages = append(params.Messages, openai.AssistantMessage(m.Content))
		default:
			params.Messages = append(params.Messages, openai.UserMessage(m.Content))
		}
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = s.config.MaxTokens
	}
	if maxTokens > 0 {
		params.MaxTokens = openai.Int(maxTokens)
	}

	temperature := s.config.Temperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}
	params.Temperature = openai.Float(temperature)

	if req.PresencePenalty != 0 {
		params.PresencePenalty = openai.Float(req.PresencePenalty)
	}
	if req.FrequencyPenalty != 0 {
		params.FrequencyPenalty = openai.Float(req.FrequencyPenalty)
	}

	s.logger.Debug("requesting completion",
		zap.String("model", s.config.Model),
		zap.Int("messages", len(params.Messages)),
		zap.Int64("max_tokens", maxTokens))

	resp, err := s.client.Chat.Completions.New(ctx, params)
	if err != nil {
		s.logger.Error("completion failed", zap.Error(err))
		return nil, classify(err)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	return &Completion{
		Content:          resp.Choices[0].Message.Content,
		Model:            resp.Model,
		FinishReason:     string(resp.Choices[0].FinishReason),
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
	}, nil
}

// ChatCompletions forwards a raw chat completions body and returns the raw
// upstream response. A missing model is filled from configuration.
func (s *Service) ChatCompletions(ctx context.Context, body []byte) ([]byte, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: body is not valid JSON", ErrBadRequest)
	}

	if !gjson.GetBytes(body, "model").Exists() {
		patched, err := sjson.SetBytes(body, "model", s.config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to set model: %w", err)
		}
		body = patched
	}

	s.logger.Info("proxying chat completion",
		zap.String("model", gjson.GetBytes(body, "model").String()),
		zap.Int("messages", int(gjson.GetBytes(body, "messages.#").Int())))

	var raw json.RawMessage
	if err := s.client.Post(ctx, "chat/completions", json.RawMessage(body), &raw); err != nil {
		s.logger.Error("chat completion proxy failed", zap.Error(err))
		return nil, classify(err)
	}

	return raw, nil
}

func (s *Service) Prompts() []Prompt {
	return s.catalog.List()
}

// ExecutePrompt runs a predefined prompt, appending the user's input to its
// template.
func (s *Service) ExecutePrompt(ctx context.Context, id string, req ExecuteRequest) (*Execution, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}

	prompt, err := s.catalog.Get(id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("executing predefined prompt",
		zap.String("prompt_id", id),
		zap.String("repository", req.Repository),
		zap.String("branch", req.Branch))

	content := prompt.Template
	if req.UserInput != "" {
		content += "\n\nAdditional requirements: " + req.UserInput
	}

	temperature := predefinedTemperature
	completion, err := s.Complete(ctx, CompletionRequest{
		Messages: []Message{
			{Role: RoleSystem, Content: prompt.SystemPrompt},
			{Role: RoleUser, Content: content},
		},
		MaxTokens:        predefinedMaxTokens,
		Temperature:      &temperature,
		PresencePenalty:  predefinedPenalty,
		FrequencyPenalty: predefinedPenalty,
	})
	if err != nil {
		return nil, err
	}

	execContext := req.Context
	if execContext == "" {
		execContext = defaultContext
	}

	return &Execution{
		PromptID: id,
		Response: completion.Content,
		Metadata: ExecutionMetadata{
			Timestamp:  s.now(),
			Repository: req.Repository,
			Branch:     req.Branch,
			Context:    execContext,
		},
	}, nil
}

func classify(err error) error {
	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	switch {
	case apiErr.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrInvalidAPIKey, apiErr.Message)
	case apiErr.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, apiErr.Message)
	case apiErr.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrUpstream, apiErr.Message)
	}

	return fmt.Errorf("%w: %s", ErrBadRequest, apiErr.Message)
}
