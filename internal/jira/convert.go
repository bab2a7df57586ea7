package jira

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

var issueFields = []string{
	"summary", "description", "status", "priority", "issuetype",
	"assignee", "created", "updated", "project",
}

func parseIssue(r gjson.Result) Issue {
	f := r.Get("fields")

	issue := Issue{
		ID:          r.Get("id").String(),
		Key:         r.Get("key").String(),
		Summary:     f.Get("summary").String(),
		Description: adfText(f.Get("description")),
		Status: Status{
			Name:     f.Get("status.name").String(),
			Category: f.Get("status.statusCategory.key").String(),
		},
		IssueType: Named{
			Name:    f.Get("issuetype.name").String(),
			IconURL: f.Get("issuetype.iconUrl").String(),
		},
		Created: f.Get("created").String(),
		Updated: f.Get("updated").String(),
		Project: ProjectRef{
			Key:  f.Get("project.key").String(),
			Name: f.Get("project.name").String(),
		},
	}

	if p := f.Get("priority"); p.IsObject() {
		issue.Priority = &Named{Name: p.Get("name").String(), IconURL: p.Get("iconUrl").String()}
	}
	if a := f.Get("assignee"); a.IsObject() {
		issue.Assignee = &User{
			DisplayName:  a.Get("displayName").String(),
			EmailAddress: a.Get("emailAddress").String(),
		}
	}

	return issue
}

// adfText flattens an Atlassian document into plain text, one line per
// block. Plain strings pass through.
func adfText(doc gjson.Result) string {
	if doc.Type == gjson.String {
		return doc.String()
	}
	if !doc.IsObject() {
		return ""
	}

	lines := make([]string, 0)
	doc.Get("content").ForEach(func(_, block gjson.Result) bool {
		var b strings.Builder
		collectText(block, &b)
		lines = append(lines, b.String())
		return true
	})

	return strings.Join(lines, "\n")
}

func collectText(node gjson.Result, b *strings.Builder) {
	if node.Get("type").String() == "text" {
		b.WriteString(node.Get("text").String())
		return
	}
	node.Get("content").ForEach(func(_, child gjson.Result) bool {
		collectText(child, b)
		return true
	})
}

const adfParagraph = `{"type":"doc","version":1,"content":[{"type":"paragraph","content":[{"type":"text"}]}]}`

// requestBody assembles a JSON request body and keeps the first failed write.
type requestBody struct {
	data []byte
	err  error
}

func (b *requestBody) set(path string, value any) {
	if b.err != nil {
		return
	}
	b.data, b.err = sjson.SetBytes(b.data, path, value)
}

func (b *requestBody) setRaw(path string, raw string) {
	if b.err != nil {
		return
	}
	b.data, b.err = sjson.SetRawBytes(b.data, path, []byte(raw))
}

// setDocument stores text at path as a single-paragraph document.
func (b *requestBody) setDocument(path, text string) {
	b.setRaw(path, adfParagraph)
	b.set(path+".content.0.content.0.text", text)
}

func (b *requestBody) bytes() ([]byte, error) {
	if b.err != nil {
		return nil, fmt.Errorf("failed to build request body: %w", b.err)
	}
	if b.data == nil {
		return []byte("{}"), nil
	}
	return b.data, nil
}

// assigneeValue maps the free-form assignee input onto a Jira user reference.
// The second return is false for "unassign".
func assigneeValue(assignee string) (map[string]string, bool) {
	switch {
	case assignee == "" || strings.EqualFold(assignee, "unassigned"):
		return nil, false
	case strings.Contains(assignee, "@"):
		return map[string]string{"emailAddress": assignee}, true
	default:
		return map[string]string{"displayName": assignee}, true
	}
}

// BuildJQL renders a filter as a JQL query ordered by last update.
func BuildJQL(filter IssueFilter) string {
	conditions := make([]string, 0, 3)
	if filter.ProjectKey != "" {
		conditions = append(conditions, `project = "`+escapeJQL(filter.ProjectKey)+`"`)
	}
	if filter.Status != "" {
		conditions = append(conditions, `status = "`+escapeJQL(filter.Status)+`"`)
	}
	if filter.Assignee != "" {
		conditions = append(conditions, `assignee = "`+escapeJQL(filter.Assignee)+`"`)
	}

	if len(conditions) == 0 {
		return "ORDER BY updated DESC"
	}

	return strings.Join(conditions, " AND ") + " ORDER BY updated DESC"
}

func escapeJQL(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
