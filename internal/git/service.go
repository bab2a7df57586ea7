package git

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v72/github"
	"go.uber.org/zap"
)

// Service hands out repository-scoped clients.
type Service struct {
	config  Config
	baseURL *url.URL

	metrics *metrics
	logger  *zap.Logger
}

func NewService(config Config, metrics *metrics, logger *zap.Logger) (*Service, error) {
	s := &Service{
		config: config,

		metrics: metrics,
		logger:  logger,
	}

	if config.APIURL != "" {
		raw := config.APIURL
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}
		baseURL, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid git host API URL: %w", err)
		}
		s.baseURL = baseURL
	}

	return s, nil
}

// Client returns a client for repo. An empty token falls back to the
// configured one; with neither, calls are anonymous.
func (s *Service) Client(token string, repo Repository) *Client {
	if token == "" {
		token = s.config.Token
	}

	gh := github.NewClient(&http.Client{Timeout: s.config.Timeout})
	if token != "" {
		gh = gh.WithAuthToken(token)
	}
	if s.baseURL != nil {
		gh.BaseURL = s.baseURL
	}

	return &Client{
		gh:   gh,
		repo: repo,

		metrics: s.metrics,
		logger:  s.logger.With(zap.Stringer("repository", repo)),
	}
}
