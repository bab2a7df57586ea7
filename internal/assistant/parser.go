package assistant

import (
	"strings"

	"github.com/apiarycd/assistd/internal/git"
	"github.com/tidwall/gjson"
)

const (
	fileStart = "FILE_START:"
	fileEnd   = "FILE_END"
	fence     = "```"

	defaultFilesMessage = "Generated files based on your request"
)

// Parse turns raw model output into a Result.
//
// Grammar:
//
//  1. Marker blocks. When any line starts with "FILE_START:", the response
//     is read as blocks only. "FILE_START: <path>" opens a block that runs
//     until a line "FILE_END". The body may be wrapped in a ``` fence, whose
//     info string becomes Language. A block still open at the next
//     FILE_START or at the end of input is skipped. Text before the first
//     block is the message. Block bodies are never read as an envelope.
//  2. JSON envelope. Otherwise the whole response, the body of a ```json
//     fence, or the span from the first '{' to the last '}' is an object
//     with "message" and/or "files" ([{path, content, isNew}]). Non-empty
//     files yield KindFiles, otherwise KindText with the message.
//  3. Anything else is KindText with the trimmed response as message.
//
// Paths must pass git.ValidatePath; others are skipped. A repeated path
// replaces the earlier block. Non-empty content always ends with "\n".
// exists reports whether a path is already in the repository and decides
// IsNew; it may be nil.
func Parse(text string, exists func(path string) bool) Result {
	if hasMarkers(text) {
		if res, ok := parseBlocks(text, exists); ok {
			return res
		}
	}

	if res, ok := parseEnvelope(text, exists); ok {
		return res
	}

	return Result{Kind: KindText, Message: strings.TrimSpace(text)}
}

func hasMarkers(text string) bool {
	for line := range strings.Lines(text) {
		if strings.HasPrefix(strings.TrimSpace(line), fileStart) {
			return true
		}
	}
	return false
}

func parseEnvelope(text string, exists func(string) bool) (Result, bool) {
	for _, candidate := range envelopeCandidates(text) {
		if !gjson.Valid(candidate) {
			continue
		}
		doc := gjson.Parse(candidate)
		if !doc.IsObject() || (!doc.Get("message").Exists() && !doc.Get("files").Exists()) {
			continue
		}

		res := Result{Message: strings.TrimSpace(doc.Get("message").String())}
		doc.Get("files").ForEach(func(_, f gjson.Result) bool {
			path := strings.TrimSpace(f.Get("path").String())
			isNew := true
			if v := f.Get("isNew"); v.Exists() {
				isNew = v.Bool()
			}
			res.add(File{
				Path:     path,
				Content:  f.Get("content").String(),
				Language: f.Get("language").String(),
				IsNew:    isNew,
			}, exists)
			return true
		})

		if len(res.Files) > 0 {
			res.Kind = KindFiles
			if res.Message == "" {
				res.Message = defaultFilesMessage
			}
		} else {
			res.Kind = KindText
		}

		return res, true
	}

	return Result{}, false
}

func envelopeCandidates(text string) []string {
	trimmed := strings.TrimSpace(text)
	candidates := []string{trimmed}

	if strings.HasPrefix(trimmed, fence) {
		body := strings.TrimPrefix(trimmed, fence)
		if nl := strings.IndexByte(body, '\n'); nl >= 0 {
			body = body[nl+1:]
		}
		candidates = append(candidates, strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(body), fence)))
	}

	if first, last := strings.IndexByte(text, '{'), strings.LastIndexByte(text, '}'); first >= 0 && last > first {
		candidates = append(candidates, text[first:last+1])
	}

	return candidates
}

func parseBlocks(text string, exists func(string) bool) (Result, bool) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var (
		res      Result
		preamble []string
		open     bool
		seen     bool
		path     string
		body     []string
	)

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, fileStart):
			if open {
				res.Skipped = append(res.Skipped, path)
			}
			open, seen = true, true
			path = strings.TrimSpace(strings.TrimPrefix(trimmed, fileStart))
			body = body[:0]
		case open && trimmed == fileEnd:
			content, language := unfence(body)
			res.add(File{Path: path, Content: content, Language: language, IsNew: true}, exists)
			open = false
		case open:
			body = append(body, line)
		case !seen:
			preamble = append(preamble, line)
		}
	}
	if open {
		res.Skipped = append(res.Skipped, path)
	}

	if !seen {
		return Result{}, false
	}

	res.Message = strings.TrimSpace(strings.Join(preamble, "\n"))
	if len(res.Files) == 0 {
		res.Kind = KindText
		if res.Message == "" {
			res.Message = strings.TrimSpace(text)
		}
		return res, true
	}

	res.Kind = KindFiles
	if res.Message == "" {
		res.Message = defaultFilesMessage
	}

	return res, true
}

// unfence strips an optional ``` wrapper and returns the content and the
// fence info string.
func unfence(body []string) (string, string) {
	first, last := 0, len(body)-1
	for first <= last && strings.TrimSpace(body[first]) == "" {
		first++
	}
	for last >= first && strings.TrimSpace(body[last]) == "" {
		last--
	}
	if first > last {
		return "", ""
	}

	var language string
	open := strings.TrimSpace(body[first])
	if strings.HasPrefix(open, fence) && last > first && strings.TrimSpace(body[last]) == fence {
		language = strings.TrimSpace(strings.TrimPrefix(open, fence))
		first++
		last--
	}

	return strings.Join(body[first:last+1], "\n"), language
}

func (r *Result) add(f File, exists func(string) bool) {
	if err := git.ValidatePath(f.Path); err != nil {
		r.Skipped = append(r.Skipped, f.Path)
		return
	}

	if exists != nil {
		f.IsNew = !exists(f.Path)
	}
	if f.Content != "" && !strings.HasSuffix(f.Content, "\n") {
		f.Content += "\n"
	}

	for i := range r.Files {
		if r.Files[i].Path == f.Path {
			r.Files[i] = f
			return
		}
	}
	r.Files = append(r.Files, f)
}
