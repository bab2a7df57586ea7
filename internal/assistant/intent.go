package assistant

import (
	"regexp"
	"strings"
)

const (
	baseConfidence = 60
	maxConfidence  = 90
)

var (
	analysisPatterns = []*regexp.Regexp{
		regexp.MustCompile(`summar|explain|what|how|where|show|tell|describe|detail|info`),
		regexp.MustCompile(`read|view|see|look|check|examine|inspect`),
		regexp.MustCompile(`understand|know|learn|find out`),
		regexp.MustCompile(`deploy|pipeline|config|setup|infrastructure`),
	}

	modificationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`modify|update|change|edit|fix|replace|alter`),
		regexp.MustCompile(`use.*instead|don.t.*use|switch.*to`),
		regexp.MustCompile(`artifact.*registry|container.*registry`),
		regexp.MustCompile(`improve|enhance|optimize|refactor`),
	}

	generationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`create|generate|make|build|setup|new`),
		regexp.MustCompile(`template|scaffold|boilerplate`),
		regexp.MustCompile(`pipeline|workflow|action|ci.*cd`),
	}

	newFilePattern = regexp.MustCompile(`new|create|generate|template`)

	fileExtensions  = []string{".yml", ".yaml", ".json", ".ts", ".js", ".py", ".sh", ".md", ".tf"}
	deploymentWords = []string{"deploy", "ci", "cd", "pipeline", "workflow", "action"}
)

// Classify guesses what the user wants from the message alone by counting
// matching pattern groups per intent.
func Classify(in ClassifyInput) Classification {
	msg := strings.ToLower(in.Message)

	analysis := countMatches(analysisPatterns, msg)
	modification := countMatches(modificationPatterns, msg)
	generation := countMatches(generationPatterns, msg)

	c := Classification{
		Intent:     IntentConversation,
		Confidence: baseConfidence,
		Reasoning:  "Fallback classification",
	}

	switch {
	case analysis > modification && analysis > generation:
		c.Intent = IntentAnalyze
		c.Confidence = 70 + analysis*10
		c.Reasoning = "Strong analysis signals detected"
	case modification > generation && len(in.AvailableFiles) > 0:
		c.Intent = IntentModify
		c.Confidence = 70 + modification*10
		c.Reasoning = "Modification intent with available files"
	case generation > 0:
		c.Intent = IntentGenerate
		c.Confidence = 70 + generation*10
		c.Reasoning = "Generation intent detected"
	}

	c.Confidence = min(c.Confidence, maxConfidence)
	c.Context = ContextFlags{
		HasFileReference:     hasFileReference(msg, in.CurrentFile),
		HasRepository:        in.HasRepository,
		ConversationHistory:  in.HistoryLength > 0,
		MentionsExistingFile: mentionsAny(msg, in.AvailableFiles),
		RequestsNewFile:      newFilePattern.MatchString(msg),
	}

	return c
}

func countMatches(patterns []*regexp.Regexp, msg string) int {
	n := 0
	for _, p := range patterns {
		if p.MatchString(msg) {
			n++
		}
	}
	return n
}

func hasFileReference(msg, currentFile string) bool {
	if currentFile != "" {
		return true
	}
	for _, ext := range fileExtensions {
		if strings.Contains(msg, ext) {
			return true
		}
	}
	for _, w := range deploymentWords {
		if strings.Contains(msg, w) {
			return true
		}
	}
	return false
}

func mentionsAny(msg string, files []string) bool {
	for _, f := range files {
		if f != "" && strings.Contains(msg, strings.ToLower(f)) {
			return true
		}
	}
	return false
}
