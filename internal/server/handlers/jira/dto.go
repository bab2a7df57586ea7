package jira

import "github.com/apiarycd/assistd/internal/jira"

type IssuesQuery struct {
	ProjectKey string `query:"projectKey" validate:"max=255"`
	Status     string `query:"status"     validate:"max=255"`
	Assignee   string `query:"assignee"   validate:"max=255"`
}

type CreateIssueRequest struct {
	ProjectKey  string `json:"projectKey"  validate:"required,max=255"`
	Summary     string `json:"summary"     validate:"required,max=255"`
	Description string `json:"description" validate:"max=32000"`
	IssueType   string `json:"issueType"   validate:"required,max=255"`
	Priority    string `json:"priority"    validate:"max=255"`
	Assignee    string `json:"assignee"    validate:"max=255"`
}

type UpdateIssueRequest struct {
	Summary     *string `json:"summary"     validate:"omitempty,max=255"`
	Description *string `json:"description" validate:"omitempty,max=32000"`
	Status      *string `json:"status"      validate:"omitempty,max=255"`
	Assignee    *string `json:"assignee"    validate:"omitempty,max=255"`
	Priority    *string `json:"priority"    validate:"omitempty,max=255"`
}

type CommentRequest struct {
	Comment string `json:"comment" validate:"required,max=32000"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ProjectResponse struct {
	ID             string `json:"id"`
	Key            string `json:"key"`
	Name           string `json:"name"`
	ProjectTypeKey string `json:"projectTypeKey"`
}

type NamedResponse struct {
	Name    string `json:"name"`
	IconURL string `json:"iconUrl,omitempty"`
}

type StatusResponse struct {
	Name           string `json:"name"`
	StatusCategory string `json:"statusCategory,omitempty"`
}

type UserResponse struct {
	DisplayName  string `json:"displayName"`
	EmailAddress string `json:"emailAddress,omitempty"`
}

type ProjectRefResponse struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type IssueResponse struct {
	ID          string             `json:"id"`
	Key         string             `json:"key"`
	Summary     string             `json:"summary"`
	Description string             `json:"description,omitempty"`
	Status      StatusResponse     `json:"status"`
	Priority    *NamedResponse     `json:"priority,omitempty"`
	IssueType   NamedResponse      `json:"issueType"`
	Assignee    *UserResponse      `json:"assignee,omitempty"`
	Created     string             `json:"created"`
	Updated     string             `json:"updated"`
	Project     ProjectRefResponse `json:"project"`
}

type IssueTypeResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IconURL string `json:"iconUrl,omitempty"`
	Subtask bool   `json:"subtask"`
}

type TransitionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	To   string `json:"to"`
}

func newIssueResponse(issue *jira.Issue) IssueResponse {
	res := IssueResponse{
		ID:          issue.ID,
		Key:         issue.Key,
		Summary:     issue.Summary,
		Description: issue.Description,
		Status:      StatusResponse{Name: issue.Status.Name, StatusCategory: issue.Status.Category},
		IssueType:   NamedResponse{Name: issue.IssueType.Name, IconURL: issue.IssueType.IconURL},
		Created:     issue.Created,
		Updated:     issue.Updated,
		Project:     ProjectRefResponse{Key: issue.Project.Key, Name: issue.Project.Name},
	}
	if issue.Priority != nil {
		res.Priority = &NamedResponse{Name: issue.Priority.Name, IconURL: issue.Priority.IconURL}
	}
	if issue.Assignee != nil {
		res.Assignee = &UserResponse{DisplayName: issue.Assignee.DisplayName, EmailAddress: issue.Assignee.EmailAddress}
	}

	return res
}
