package assistant

import (
	"context"
	"errors"
	"strings"

	"github.com/apiarycd/assistd/internal/llm"
	"go.uber.org/zap"
)

var ErrEmptyPrompt = errors.New("prompt is required")

type Service struct {
	llm *llm.Service

	logger *zap.Logger
}

func NewService(llmSvc *llm.Service, logger *zap.Logger) *Service {
	return &Service{
		llm: llmSvc,

		logger: logger,
	}
}

// Chat classifies the prompt, asks the model and parses the answer. In
// conversation mode the answer is always text.
func (s *Service) Chat(ctx context.Context, req ChatRequest, exists func(path string) bool) (*ChatResponse, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, ErrEmptyPrompt
	}

	classification := Classify(ClassifyInput{
		Message:        req.Prompt,
		HasRepository:  req.Repository != "",
		AvailableFiles: req.AvailableFiles,
		HistoryLength:  len(req.History),
	})

	s.logger.Info("chat",
		zap.String("repository", req.Repository),
		zap.String("intent", string(classification.Intent)),
		zap.Int("confidence", classification.Confidence))

	messages := make([]llm.Message, 0, len(req.History)+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: systemPrompt(req, classification.Intent)})
	messages = append(messages, req.History...)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: userPrompt(req)})

	completion, err := s.llm.Complete(ctx, llm.CompletionRequest{Messages: messages})
	if err != nil {
		return nil, err
	}

	var result Result
	if classification.Intent.Generates() {
		result = Parse(completion.Content, exists)
	} else {
		result = Result{Kind: KindText, Message: strings.TrimSpace(completion.Content)}
	}

	if len(result.Skipped) > 0 {
		s.logger.Warn("skipped file blocks", zap.Strings("paths", result.Skipped))
	}

	return &ChatResponse{
		Classification: classification,
		Result:         result,
		Model:          completion.Model,
	}, nil
}
