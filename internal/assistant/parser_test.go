package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_MarkerBlocks(t *testing.T) {
	text := "Here is the pipeline you asked for.\n\n" +
		"FILE_START: .github/workflows/deploy.yml\n" +
		"```yaml\n" +
		"name: deploy\n" +
		"on: push\n" +
		"```\n" +
		"FILE_END\n\n" +
		"FILE_START: infra/main.tf\n" +
		"resource \"x\" \"y\" {}\n" +
		"FILE_END\n"

	res := Parse(text, func(path string) bool { return path == "infra/main.tf" })

	require.Equal(t, KindFiles, res.Kind)
	assert.Equal(t, "Here is the pipeline you asked for.", res.Message)
	require.Len(t, res.Files, 2)

	assert.Equal(t, File{
		Path:     ".github/workflows/deploy.yml",
		Content:  "name: deploy\non: push\n",
		Language: "yaml",
		IsNew:    true,
	}, res.Files[0])
	assert.Equal(t, File{
		Path:    "infra/main.tf",
		Content: "resource \"x\" \"y\" {}\n",
		IsNew:   false,
	}, res.Files[1])
	assert.Empty(t, res.Skipped)
}

func TestParse_DefaultMessage(t *testing.T) {
	res := Parse("FILE_START: a.txt\nhello\nFILE_END", nil)

	require.Equal(t, KindFiles, res.Kind)
	assert.Equal(t, defaultFilesMessage, res.Message)
	assert.Equal(t, "hello\n", res.Files[0].Content)
	assert.True(t, res.Files[0].IsNew)
}

func TestParse_SkipsBadBlocks(t *testing.T) {
	text := "FILE_START: ../escape.sh\nrm -rf /\nFILE_END\n" +
		"FILE_START: ok.md\n# ok\nFILE_END\n" +
		"FILE_START: dangling.yml\nkey: value\n"

	res := Parse(text, nil)

	require.Equal(t, KindFiles, res.Kind)
	require.Len(t, res.Files, 1)
	assert.Equal(t, "ok.md", res.Files[0].Path)
	assert.Equal(t, []string{"../escape.sh", "dangling.yml"}, res.Skipped)
}

func TestParse_UnterminatedBeforeNextBlock(t *testing.T) {
	res := Parse("FILE_START: a.txt\nA\nFILE_START: b.txt\nB\nFILE_END", nil)

	require.Len(t, res.Files, 1)
	assert.Equal(t, "b.txt", res.Files[0].Path)
	assert.Equal(t, []string{"a.txt"}, res.Skipped)
}

func TestParse_DuplicateLastWins(t *testing.T) {
	res := Parse("FILE_START: a.txt\none\nFILE_END\nFILE_START: a.txt\ntwo\nFILE_END", nil)

	require.Len(t, res.Files, 1)
	assert.Equal(t, "two\n", res.Files[0].Content)
}

func TestParse_EmptyContent(t *testing.T) {
	res := Parse("FILE_START: .keep\nFILE_END", nil)

	require.Len(t, res.Files, 1)
	assert.Equal(t, "", res.Files[0].Content)
}

func TestParse_JSONEnvelope(t *testing.T) {
	text := "```json\n" + `{
  "message": "Added a Dockerfile",
  "type": "file_generation",
  "files": [{"path": "Dockerfile", "content": "FROM alpine", "isNew": false}]
}` + "\n```"

	res := Parse(text, nil)

	require.Equal(t, KindFiles, res.Kind)
	assert.Equal(t, "Added a Dockerfile", res.Message)
	require.Len(t, res.Files, 1)
	assert.Equal(t, File{Path: "Dockerfile", Content: "FROM alpine\n", IsNew: false}, res.Files[0])

	res = Parse(`Sure: {"message": "Nothing to change"}`, nil)
	assert.Equal(t, KindText, res.Kind)
	assert.Equal(t, "Nothing to change", res.Message)
}

func TestParse_Text(t *testing.T) {
	res := Parse("  The pipeline builds on every push. Use {braces} freely.  ", nil)

	assert.Equal(t, KindText, res.Kind)
	assert.Equal(t, "The pipeline builds on every push. Use {braces} freely.", res.Message)
	assert.Empty(t, res.Files)
}

func TestParse_JSONFileInsideMarkerBlock(t *testing.T) {
	text := "Added the English locale.\n\n" +
		"FILE_START: locales/en.json\n" +
		"```json\n" +
		"{\"message\": \"hello\", \"files\": []}\n" +
		"```\n" +
		"FILE_END\n"

	res := Parse(text, nil)

	require.Equal(t, KindFiles, res.Kind)
	assert.Equal(t, "Added the English locale.", res.Message)
	require.Len(t, res.Files, 1)
	assert.Equal(t, File{
		Path:     "locales/en.json",
		Content:  "{\"message\": \"hello\", \"files\": []}\n",
		Language: "json",
		IsNew:    true,
	}, res.Files[0])
}
