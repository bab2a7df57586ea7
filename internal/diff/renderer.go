package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

type Algorithm string

const (
	AlgorithmPositional Algorithm = "positional"
	AlgorithmLCS        Algorithm = "lcs"
)

type Renderer interface {
	Render(original, modified string, isNew bool) []Line
}

func New(algorithm Algorithm) (Renderer, error) {
	switch algorithm {
	case AlgorithmPositional, "":
		return Positional{}, nil
	case AlgorithmLCS:
		return LCS{}, nil
	}
	return nil, fmt.Errorf("unknown diff algorithm %q", algorithm)
}

// Positional compares lines pairwise with two cursors and never looks ahead.
// A single inserted line therefore shows every following line as changed.
type Positional struct{}

func (Positional) Render(original, modified string, isNew bool) []Line {
	if isNew {
		return allAdded(modified)
	}

	oldLines := splitLines(original)
	newLines := splitLines(modified)
	result := make([]Line, 0, len(oldLines)+len(newLines))

	i, j := 0, 0
	for i < len(oldLines) || j < len(newLines) {
		switch {
		case i < len(oldLines) && j < len(newLines):
			if oldLines[i] == newLines[j] {
				result = append(result, Line{Type: LineUnchanged, Content: oldLines[i], OldLine: i + 1, NewLine: j + 1})
			} else {
				result = append(result,
					Line{Type: LineRemoved, Content: oldLines[i], OldLine: i + 1},
					Line{Type: LineAdded, Content: newLines[j], NewLine: j + 1},
				)
			}
			i++
			j++
		case i < len(oldLines):
			result = append(result, Line{Type: LineRemoved, Content: oldLines[i], OldLine: i + 1})
			i++
		default:
			result = append(result, Line{Type: LineAdded, Content: newLines[j], NewLine: j + 1})
			j++
		}
	}

	return result
}

// LCS produces a minimal line diff.
type LCS struct{}

func (LCS) Render(original, modified string, isNew bool) []Line {
	if isNew {
		return allAdded(modified)
	}

	oldLines := splitLines(original)
	newLines := splitLines(modified)
	if len(oldLines) == 0 && len(newLines) == 0 {
		return []Line{}
	}

	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(joinLines(oldLines), joinLines(newLines))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	result := make([]Line, 0, len(oldLines)+len(newLines))
	oldNo, newNo := 0, 0
	for _, d := range diffs {
		for _, text := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				oldNo++
				newNo++
				result = append(result, Line{Type: LineUnchanged, Content: text, OldLine: oldNo, NewLine: newNo})
			case diffmatchpatch.DiffDelete:
				oldNo++
				result = append(result, Line{Type: LineRemoved, Content: text, OldLine: oldNo})
			case diffmatchpatch.DiffInsert:
				newNo++
				result = append(result, Line{Type: LineAdded, Content: text, NewLine: newNo})
			}
		}
	}

	return result
}

// joinLines terminates every line so the last line hashes like the others.
func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
