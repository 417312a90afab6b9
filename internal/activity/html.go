package activity

import (
	"html"
	"regexp"
	"strings"
)

var (
	paragraphClosePattern = regexp.MustCompile(`(?i)</p>`)
	tagPattern            = regexp.MustCompile(`<[^>]+>`)
	paragraphSplitPattern = regexp.MustCompile(`\n\s*\n`)
	whitespacePattern     = regexp.MustCompile(`\s+`)
)

// TextToHTML converts plain course text to the portal's rich-text form:
// blank-line-separated paragraphs each wrapped in <p dir="ltr">, with
// newlines inside a paragraph collapsed to spaces.
func TextToHTML(text string) string {
	var b strings.Builder
	for _, paragraph := range strings.Split(strings.TrimSpace(text), "\n\n") {
		paragraph = strings.TrimSpace(strings.ReplaceAll(paragraph, "\n", " "))
		if paragraph == "" {
			continue
		}
		b.WriteString(`<p dir="ltr">`)
		b.WriteString(paragraph)
		b.WriteString(`</p>`)
	}
	return b.String()
}

// HTMLToText is the inverse of TextToHTML: paragraph boundaries come
// back as blank lines, other markup is stripped, entities are decoded,
// and whitespace inside a paragraph is collapsed. Plain text passes
// through unchanged, so the conversion is idempotent.
func HTMLToText(s string) string {
	return strings.Join(textParagraphs(s), "\n\n")
}

// textParagraphs reduces rich text (or plain text) to its cleaned
// paragraphs.
func textParagraphs(s string) []string {
	text := paragraphClosePattern.ReplaceAllString(s, "\n\n")
	text = tagPattern.ReplaceAllString(text, "")
	text = html.UnescapeString(text)

	var out []string
	for _, paragraph := range paragraphSplitPattern.Split(text, -1) {
		paragraph = strings.TrimSpace(whitespacePattern.ReplaceAllString(paragraph, " "))
		if paragraph != "" {
			out = append(out, paragraph)
		}
	}
	return out
}

// comparableText normalizes rich text for equality checks: extracted
// paragraphs, lowercased. Markup, attribute, whitespace and case
// differences disappear; wording and paragraph structure survive.
func comparableText(s string) string {
	paragraphs := textParagraphs(s)
	for i := range paragraphs {
		paragraphs[i] = strings.ToLower(paragraphs[i])
	}
	return strings.Join(paragraphs, "\n")
}

// HTMLTextsEqual reports whether two rich-text values carry the same
// text split into the same paragraphs, ignoring markup, entities,
// whitespace, and case. The same wording in a different paragraph
// structure is a real difference.
func HTMLTextsEqual(a, b string) bool {
	return comparableText(a) == comparableText(b)
}
