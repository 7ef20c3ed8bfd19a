package chat

import (
	"regexp"
	"strings"
)

// Snippet is a widget source fragment extracted from a model reply.
type Snippet struct {
	Language string
	Code     string
}

// codeBlockPattern matches fenced jsx/tsx code blocks in model output.
var codeBlockPattern = regexp.MustCompile("(?s)```(?:jsx|tsx)\n(.*?)```")

// ParseResponse splits a model reply into its prose and any widget code
// blocks. The blocks are removed from the returned text.
func ParseResponse(response string) (string, []Snippet) {
	var snippets []Snippet
	for _, match := range codeBlockPattern.FindAllStringSubmatch(response, -1) {
		snippets = append(snippets, Snippet{
			Language: "jsx",
			Code:     strings.TrimSpace(match[1]),
		})
	}

	text := strings.TrimSpace(codeBlockPattern.ReplaceAllString(response, ""))
	return text, snippets
}
