package jira

type Project struct {
	ID             string
	Key            string
	Name           string
	ProjectTypeKey string
}

type Status struct {
	Name     string
	Category string
}

type Named struct {
	Name    string
	IconURL string
}

type User struct {
	DisplayName  string
	EmailAddress string
}

type ProjectRef struct {
	Key  string
	Name string
}

type Issue struct {
	ID          string
	Key         string
	Summary     string
	Description string
	Status      Status
	Priority    *Named
	IssueType   Named
	Assignee    *User
	Created     string
	Updated     string
	Project     ProjectRef
}

type IssueType struct {
	ID      string
	Name    string
	IconURL string
	Subtask bool
}

type Transition struct {
	ID   string
	Name string
	To   string
}

type IssueFilter struct {
	ProjectKey string
	Status     string
	Assignee   string
}

type IssueDraft struct {
	ProjectKey  string
	Summary     string
	Description string
	IssueType   string
	Priority    string
	Assignee    string
}

// IssueUpdate changes only the non-nil fields.
type IssueUpdate struct {
	Summary     *string
	Description *string
	Status      *string
	Assignee    *string
	Priority    *string
}
