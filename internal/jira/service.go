package jira

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const searchLimit = 100

type Service struct {
	client *client

	logger *zap.Logger
}

func NewService(config Config, logger *zap.Logger) *Service {
	s := &Service{
		logger: logger,
	}

	if !config.complete() {
		logger.Warn("Jira credentials are not set, Jira endpoints are disabled")
		return s
	}

	s.client = newClient(config)

	return s
}

func (s *Service) Configured() bool {
	return s.client != nil
}

func (s *Service) Projects(ctx context.Context) ([]Project, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}

	s.logger.Debug("listing projects")

	res, err := s.client.do(ctx, http.MethodGet, "/project", nil)
	if err != nil {
		s.logger.Error("failed to list projects", zap.Error(err))
		return nil, err
	}

	projects := make([]Project, 0, len(res.Array()))
	res.ForEach(func(_, p gjson.Result) bool {
		projects = append(projects, Project{
			ID:             p.Get("id").String(),
			Key:            p.Get("key").String(),
			Name:           p.Get("name").String(),
			ProjectTypeKey: p.Get("projectTypeKey").String(),
		})
		return true
	})

	return projects, nil
}

func (s *Service) Issues(ctx context.Context, filter IssueFilter) ([]Issue, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}

	jql := BuildJQL(filter)
	s.logger.Debug("searching issues", zap.String("jql", jql))

	var req requestBody
	req.set("jql", jql)
	req.set("maxResults", searchLimit)
	req.set("fields", issueFields)
	body, err := req.bytes()
	if err != nil {
		return nil, err
	}

	res, err := s.client.do(ctx, http.MethodPost, "/search", body)
	if err != nil {
		s.logger.Error("failed to search issues", zap.String("jql", jql), zap.Error(err))
		return nil, err
	}

	raw := res.Get("issues").Array()
	issues := make([]Issue, 0, len(raw))
	for _, r := range raw {
		issues = append(issues, parseIssue(r))
	}

	return issues, nil
}

func (s *Service) Issue(ctx context.Context, key string) (*Issue, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}

	s.logger.Debug("getting issue", zap.String("key", key))

	res, err := s.client.do(ctx, http.MethodGet, "/issue/"+url.PathEscape(key), nil)
	if err != nil {
		return nil, err
	}

	issue := parseIssue(res)
	return &issue, nil
}

func (s *Service) CreateIssue(ctx context.Context, draft IssueDraft) (*Issue, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}
	if draft.ProjectKey == "" || draft.Summary == "" || draft.IssueType == "" {
		return nil, fmt.Errorf("%w: projectKey, summary and issueType are required", ErrInvalidInput)
	}

	s.logger.Info("creating issue",
		zap.String("project", draft.ProjectKey),
		zap.String("type", draft.IssueType))

	var req requestBody
	req.set("fields.project.key", draft.ProjectKey)
	req.set("fields.summary", draft.Summary)
	req.set("fields.issuetype.name", draft.IssueType)
	if draft.Description != "" {
		req.setDocument("fields.description", draft.Description)
	}
	if draft.Priority != "" {
		req.set("fields.priority.name", draft.Priority)
	}
	if draft.Assignee != "" {
		req.set("fields.assignee.emailAddress", draft.Assignee)
	}
	body, err := req.bytes()
	if err != nil {
		return nil, err
	}

	res, err := s.client.do(ctx, http.MethodPost, "/issue", body)
	if err != nil {
		s.logger.Error("failed to create issue", zap.String("project", draft.ProjectKey), zap.Error(err))
		return nil, err
	}

	key := res.Get("key").String()
	s.logger.Info("issue created", zap.String("key", key))

	return s.Issue(ctx, key)
}

// UpdateIssue applies field changes, then moves the issue to the requested
// status through a matching transition.
func (s *Service) UpdateIssue(ctx context.Context, key string, update IssueUpdate) (*Issue, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}

	s.logger.Info("updating issue", zap.String("key", key))

	req := requestBody{data: []byte(`{"fields":{}}`)}
	if update.Summary != nil {
		req.set("fields.summary", *update.Summary)
	}
	if update.Description != nil {
		req.setDocument("fields.description", *update.Description)
	}
	if update.Priority != nil && *update.Priority != "" {
		req.set("fields.priority.name", *update.Priority)
	}
	if update.Assignee != nil {
		if ref, ok := assigneeValue(*update.Assignee); ok {
			req.set("fields.assignee", ref)
		} else {
			req.setRaw("fields.assignee", "null")
		}
	}
	body, err := req.bytes()
	if err != nil {
		return nil, err
	}

	if len(gjson.GetBytes(body, "fields").Map()) > 0 {
		if _, err := s.client.do(ctx, http.MethodPut, "/issue/"+url.PathEscape(key), body); err != nil {
			s.logger.Error("failed to update issue", zap.String("key", key), zap.Error(err))
			return nil, err
		}
	}

	if update.Status != nil && *update.Status != "" {
		if err := s.transition(ctx, key, *update.Status); err != nil {
			s.logger.Error("failed to transition issue",
				zap.String("key", key),
				zap.String("status", *update.Status),
				zap.Error(err))
			return nil, err
		}
	}

	return s.Issue(ctx, key)
}

func (s *Service) Transitions(ctx context.Context, key string) ([]Transition, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}

	res, err := s.client.do(ctx, http.MethodGet, "/issue/"+url.PathEscape(key)+"/transitions", nil)
	if err != nil {
		return nil, err
	}

	raw := res.Get("transitions").Array()
	transitions := make([]Transition, 0, len(raw))
	for _, t := range raw {
		transitions = append(transitions, Transition{
			ID:   t.Get("id").String(),
			Name: t.Get("name").String(),
			To:   t.Get("to.name").String(),
		})
	}

	return transitions, nil
}

func (s *Service) transition(ctx context.Context, key, status string) error {
	transitions, err := s.Transitions(ctx, key)
	if err != nil {
		return err
	}

	var id string
	for _, t := range transitions {
		if t.To == status {
			id = t.ID
			break
		}
	}
	if id == "" {
		return fmt.Errorf("%w: status '%s' is not available for issue %s", ErrInvalidInput, status, key)
	}

	var req requestBody
	req.set("transition.id", id)
	body, err := req.bytes()
	if err != nil {
		return err
	}
	_, err = s.client.do(ctx, http.MethodPost, "/issue/"+url.PathEscape(key)+"/transitions", body)

	return err
}

func (s *Service) IssueTypes(ctx context.Context, projectKey string) ([]IssueType, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}

	res, err := s.client.do(ctx, http.MethodGet, "/project/"+url.PathEscape(projectKey), nil)
	if err != nil {
		return nil, err
	}

	raw := res.Get("issueTypes").Array()
	types := make([]IssueType, 0, len(raw))
	for _, t := range raw {
		types = append(types, IssueType{
			ID:      t.Get("id").String(),
			Name:    t.Get("name").String(),
			IconURL: t.Get("iconUrl").String(),
			Subtask: t.Get("subtask").Bool(),
		})
	}

	return types, nil
}

func (s *Service) AddComment(ctx context.Context, key, comment string) error {
	if !s.Configured() {
		return ErrNotConfigured
	}
	if strings.TrimSpace(comment) == "" {
		return fmt.Errorf("%w: comment is required", ErrInvalidInput)
	}

	s.logger.Info("adding comment", zap.String("key", key))

	var req requestBody
	req.setDocument("body", comment)
	body, err := req.bytes()
	if err != nil {
		return err
	}
	if _, err := s.client.do(ctx, http.MethodPost, "/issue/"+url.PathEscape(key)+"/comment", body); err != nil {
		s.logger.Error("failed to add comment", zap.String("key", key), zap.Error(err))
		return err
	}

	return nil
}
