package assistant

import (
	"fmt"
	"strings"
)

const conversationPrompt = `You are an expert DevOps and software engineer assistant.
You are helping analyze repository: %s on branch: %s.

%s

You are in CONVERSATION-ONLY mode. Your role is to:
1. Analyze and explain existing files and configurations
2. Answer questions about code, deployments, and DevOps practices
3. Provide summaries and explanations
4. Offer guidance and best practices
5. NEVER generate, create, or modify any files

Respond with conversational text only. Do not emit file content or FILE_START markers.`

const generationPrompt = `You are an expert DevOps and software engineer assistant with access to the repository context and conversation history.
You are helping with repository: %s on branch: %s.

%s

## Guidelines:
- When asked to modify a file, update the existing content rather than creating a new file
- Only change what is necessary and keep the existing structure
- Always provide complete, production-ready files
- Never use Google Container Registry (GCR); use Artifact Registry (REGION-docker.pkg.dev/PROJECT_ID/REPO_NAME/IMAGE_NAME)
- Include the Artifact Registry repository creation step in GCP deployment pipelines

## Response Format:
Start with a short explanation, then give every file in this format:

FILE_START: path/to/file.ext
` + "```" + `language
complete file content
` + "```" + `
FILE_END

Paths are relative to the repository root. Separate multiple files with blank lines.`

func systemPrompt(req ChatRequest, intent Intent) string {
	tmpl := conversationPrompt
	if intent.Generates() {
		tmpl = generationPrompt
	}

	return fmt.Sprintf(tmpl, orUnknown(req.Repository), orUnknown(req.Branch), repositoryContext(req))
}

func repositoryContext(req ChatRequest) string {
	var b strings.Builder

	if len(req.AvailableFiles) == 0 {
		b.WriteString("No existing configuration files found.")
	} else {
		b.WriteString("Existing files: ")
		b.WriteString(strings.Join(req.AvailableFiles, ", "))
	}

	for _, f := range req.Files {
		fmt.Fprintf(&b, "\n\n## Current content of %s:\n```\n%s\n```", f.Path, strings.TrimRight(f.Content, "\n"))
	}

	return b.String()
}

func userPrompt(req ChatRequest) string {
	if req.Context == "" {
		return req.Prompt
	}
	return req.Prompt + "\n\nAdditional context: " + req.Context
}

func orUnknown(s string) string {
	if s == "" {
		return "(not selected)"
	}
	return s
}
