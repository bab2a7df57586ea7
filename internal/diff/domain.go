package diff

import "strings"

type LineType string

const (
	LineAdded     LineType = "added"
	LineRemoved   LineType = "removed"
	LineUnchanged LineType = "unchanged"
)

// Line is one rendered diff line. Line numbers are 1-based; zero means the
// line has no counterpart on that side.
type Line struct {
	Type    LineType
	Content string
	OldLine int
	NewLine int
}

type Summary struct {
	Added     int
	Removed   int
	Unchanged int
}

func (s Summary) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

func Summarize(lines []Line) Summary {
	var s Summary
	for _, l := range lines {
		switch l.Type {
		case LineAdded:
			s.Added++
		case LineRemoved:
			s.Removed++
		case LineUnchanged:
			s.Unchanged++
		}
	}
	return s
}

// splitLines splits text on '\n'. Empty text has no lines and a trailing
// newline does not produce an extra empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// allAdded renders text as a new file.
func allAdded(text string) []Line {
	lines := splitLines(text)
	result := make([]Line, 0, len(lines))
	for i, l := range lines {
		result = append(result, Line{Type: LineAdded, Content: l, NewLine: i + 1})
	}
	return result
}
