// Package markdown renders the constrained markdown subset used in content
// record descriptions into HTML fragments.
//
// Supported syntax: paragraphs separated by blank lines, blocks wrapped
// entirely in ** (bold headers), "+ " list items, inline **bold** and
// [label](url) links. Input is trusted and is not escaped.
package markdown

import (
	"regexp"
	"strings"
)

var (
	blockSeparator = regexp.MustCompile(`\n{2,}`)
	boldPattern    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	linkPattern    = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

const (
	boldDelimiter = "**"
	listMarker    = "+ "
)

// Render converts text to an HTML fragment. Empty input yields "".
func Render(text string) string {
	if text == "" {
		return ""
	}

	var out strings.Builder
	for _, block := range blockSeparator.Split(text, -1) {
		trimmed := strings.TrimSpace(block)
		if trimmed == "" {
			continue
		}

		switch {
		case isBoldHeader(trimmed):
			header := strings.ReplaceAll(trimmed, boldDelimiter, "")
			out.WriteString("<p><strong>" + header + "</strong></p>\n")
		case isListBlock(trimmed):
			renderListBlock(&out, trimmed)
		default:
			writeParagraph(&out, trimmed)
		}
	}

	return strings.TrimSpace(out.String())
}

func isBoldHeader(block string) bool {
	return strings.HasPrefix(block, boldDelimiter) && strings.HasSuffix(block, boldDelimiter)
}

func isListBlock(block string) bool {
	return strings.HasPrefix(block, listMarker) || strings.Contains(block, "\n"+listMarker)
}

// renderListBlock emits paragraphs and lists in line order. Consecutive
// plain lines are joined with a space into one paragraph.
func renderListBlock(out *strings.Builder, block string) {
	var items []string
	var paragraph string

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, listMarker):
			if paragraph != "" {
				writeParagraph(out, paragraph)
				paragraph = ""
			}
			items = append(items, inline(line[len(listMarker):]))
		case line != "":
			if len(items) > 0 {
				writeList(out, items)
				items = nil
			}
			if paragraph != "" {
				paragraph += " "
			}
			paragraph += line
		}
	}

	if len(items) > 0 {
		writeList(out, items)
	}
	if paragraph != "" {
		writeParagraph(out, paragraph)
	}
}

func writeParagraph(out *strings.Builder, text string) {
	out.WriteString("<p>" + inline(text) + "</p>\n")
}

func writeList(out *strings.Builder, items []string) {
	out.WriteString("<ul>\n")
	for _, item := range items {
		out.WriteString("<li>" + item + "</li>\n")
	}
	out.WriteString("</ul>\n")
}

// inline applies bold before links.
func inline(text string) string {
	text = boldPattern.ReplaceAllString(text, "<strong>$1</strong>")
	return linkPattern.ReplaceAllString(text, `<a href="$2">$1</a>`)
}
