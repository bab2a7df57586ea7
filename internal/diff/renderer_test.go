package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositional_Identical(t *testing.T) {
	lines := Positional{}.Render("a\nb\nc\n", "a\nb\nc\n", false)

	require.Len(t, lines, 3)
	for i, l := range lines {
		assert.Equal(t, LineUnchanged, l.Type)
		assert.Equal(t, i+1, l.OldLine)
		assert.Equal(t, i+1, l.NewLine)
	}
}

func TestPositional_NewFile(t *testing.T) {
	lines := Positional{}.Render("ignored", "x\ny", true)

	assert.Equal(t, []Line{
		{Type: LineAdded, Content: "x", NewLine: 1},
		{Type: LineAdded, Content: "y", NewLine: 2},
	}, lines)
}

func TestPositional_EmptyInputs(t *testing.T) {
	assert.Empty(t, Positional{}.Render("", "", false))
	assert.Empty(t, Positional{}.Render("", "", true))

	lines := Positional{}.Render("", "a\n", false)
	assert.Equal(t, []Line{{Type: LineAdded, Content: "a", NewLine: 1}}, lines)
}

func TestPositional_Substitution(t *testing.T) {
	lines := Positional{}.Render("a\nb\nc", "a\nx\nc", false)

	assert.Equal(t, []Line{
		{Type: LineUnchanged, Content: "a", OldLine: 1, NewLine: 1},
		{Type: LineRemoved, Content: "b", OldLine: 2},
		{Type: LineAdded, Content: "x", NewLine: 2},
		{Type: LineUnchanged, Content: "c", OldLine: 3, NewLine: 3},
	}, lines)
}

func TestPositional_InsertionCascades(t *testing.T) {
	lines := Positional{}.Render("a\nb\n", "new\na\nb\n", false)

	summary := Summarize(lines)
	assert.Equal(t, Summary{Added: 3, Removed: 2}, summary)
	assert.Equal(t, LineAdded, lines[len(lines)-1].Type)
	assert.Equal(t, "b", lines[len(lines)-1].Content)
}

func TestPositional_Truncation(t *testing.T) {
	lines := Positional{}.Render("a\nb\nc", "a", false)

	assert.Equal(t, []Line{
		{Type: LineUnchanged, Content: "a", OldLine: 1, NewLine: 1},
		{Type: LineRemoved, Content: "b", OldLine: 2},
		{Type: LineRemoved, Content: "c", OldLine: 3},
	}, lines)
}

func TestLCS_Insertion(t *testing.T) {
	lines := LCS{}.Render("a\nb\n", "new\na\nb\n", false)

	assert.Equal(t, []Line{
		{Type: LineAdded, Content: "new", NewLine: 1},
		{Type: LineUnchanged, Content: "a", OldLine: 1, NewLine: 2},
		{Type: LineUnchanged, Content: "b", OldLine: 2, NewLine: 3},
	}, lines)
}

func TestLCS_IdenticalAndNew(t *testing.T) {
	assert.Equal(t, Summary{Unchanged: 2}, Summarize(LCS{}.Render("a\nb", "a\nb\n", false)))
	assert.Equal(t, Summary{Added: 2}, Summarize(LCS{}.Render("a", "a\nb", true)))
	assert.Empty(t, LCS{}.Render("", "", false))
}

func TestNew(t *testing.T) {
	r, err := New(AlgorithmLCS)
	require.NoError(t, err)
	assert.IsType(t, LCS{}, r)

	r, err = New("")
	require.NoError(t, err)
	assert.IsType(t, Positional{}, r)

	_, err = New("myers")
	assert.Error(t, err)
}
