package assistant

import "github.com/apiarycd/assistd/internal/llm"

type Kind string

const (
	KindFiles Kind = "files"
	KindText  Kind = "text"
)

// File is one file proposed by the assistant.
type File struct {
	Path     string
	Content  string
	Language string
	IsNew    bool
}

// Result is a parsed assistant response. Files is empty unless Kind is
// KindFiles.
type Result struct {
	Kind    Kind
	Message string
	Files   []File
	// Skipped lists blocks that were dropped: invalid paths and blocks
	// missing their FILE_END marker.
	Skipped []string
}

type Intent string

const (
	IntentAnalyze      Intent = "ANALYZE"
	IntentModify       Intent = "MODIFY"
	IntentGenerate     Intent = "GENERATE"
	IntentConversation Intent = "CONVERSATION"
)

// Generates reports whether the assistant is expected to produce files.
func (i Intent) Generates() bool {
	return i == IntentModify || i == IntentGenerate
}

type ClassifyInput struct {
	Message        string
	HasRepository  bool
	AvailableFiles []string
	HistoryLength  int
	CurrentFile    string
}

type ContextFlags struct {
	HasFileReference     bool
	HasRepository        bool
	ConversationHistory  bool
	MentionsExistingFile bool
	RequestsNewFile      bool
}

type Classification struct {
	Intent     Intent
	Confidence int
	Reasoning  string
	Context    ContextFlags
}

// ContextFile is a file shown to the model as context.
type ContextFile struct {
	Path    string
	Content string
}

type ChatRequest struct {
	Repository string
	Branch     string
	Prompt     string
	Context    string

	// AvailableFiles are repository paths known to the caller.
	AvailableFiles []string
	// Files are staged or selected files whose content the model may edit.
	Files   []ContextFile
	History []llm.Message
}

type ChatResponse struct {
	Classification Classification
	Result         Result
	Model          string
}
