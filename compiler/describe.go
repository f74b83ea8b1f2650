package compiler

import (
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
)

var (
	htmlTagRe   = regexp.MustCompile(`</?[a-zA-Z][^>]*>`)
	underlineRe = regexp.MustCompile(`^\s*(=+|-+)\s*$`)
	spaceRe     = regexp.MustCompile(`\s+`)
)

// describer normalizes ontology comments for embedding in generated code.
type describer struct {
	converter *md.Converter
}

func newDescriber() *describer {
	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())
	return &describer{converter: converter}
}

// clean converts embedded HTML to markdown, drops setext heading
// underlines, and collapses each paragraph onto one line. Paragraphs are
// separated by a blank line.
func (d *describer) clean(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if htmlTagRe.MatchString(text) {
		if converted, err := d.converter.ConvertString(text); err == nil {
			text = converted
		}
	}

	var paragraphs []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, " "))
			current = nil
		}
	}
	for _, line := range strings.Split(text, "\n") {
		if underlineRe.MatchString(line) {
			continue
		}
		line = strings.TrimSpace(spaceRe.ReplaceAllString(line, " "))
		if line == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return strings.Join(paragraphs, "\n\n")
}

// wrap splits text into lines of at most width runes, breaking on spaces.
// Paragraph breaks are kept as empty lines.
func wrap(text string, width int) []string {
	var lines []string
	for i, para := range strings.Split(text, "\n\n") {
		if i > 0 {
			lines = append(lines, "")
		}
		var line strings.Builder
		for _, word := range strings.Fields(para) {
			if line.Len() > 0 && line.Len()+1+len(word) > width {
				lines = append(lines, line.String())
				line.Reset()
			}
			if line.Len() > 0 {
				line.WriteByte(' ')
			}
			line.WriteString(word)
		}
		if line.Len() > 0 {
			lines = append(lines, line.String())
		}
	}
	return lines
}
