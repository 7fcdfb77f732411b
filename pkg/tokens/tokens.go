// Package tokens renders Markdown constructs as strings.
//
// Every function is pure: it returns the Markdown text for one construct and
// leaves placing it in a document to the caller, typically through
// document.Document.WriteLines or WriteSpans.
package tokens

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is wrapped by errors caused by out-of-range arguments.
var ErrInvalidArgument = errors.New("invalid argument")

// Heading levels accepted by Heading.
const (
	MinHeadingLevel = 1
	MaxHeadingLevel = 6
)

// HorizontalRuleText is the thematic break emitted by HorizontalRule.
const HorizontalRuleText = "---"

// Heading returns an ATX heading of the given level.
func Heading(text string, level int) (string, error) {
	if level < MinHeadingLevel || level > MaxHeadingLevel {
		return "", fmt.Errorf("%w: heading level must be between %d and %d, got %d",
			ErrInvalidArgument, MinHeadingLevel, MaxHeadingLevel, level)
	}
	return strings.Repeat("#", level) + " " + text, nil
}

func heading(text string, level int) string {
	return strings.Repeat("#", level) + " " + text
}

// H1 returns a level 1 heading.
func H1(text string) string { return heading(text, 1) }

// H2 returns a level 2 heading.
func H2(text string) string { return heading(text, 2) }

// H3 returns a level 3 heading.
func H3(text string) string { return heading(text, 3) }

// H4 returns a level 4 heading.
func H4(text string) string { return heading(text, 4) }

// H5 returns a level 5 heading.
func H5(text string) string { return heading(text, 5) }

// H6 returns a level 6 heading.
func H6(text string) string { return heading(text, 6) }

// Paragraph returns text unchanged.
func Paragraph(text string) string {
	return text
}

// Quote returns text as a block quote.
func Quote(text string) string {
	return "> " + text
}

// HorizontalRule returns a thematic break.
func HorizontalRule() string {
	return HorizontalRuleText
}

// Link returns an inline link. An empty text shows the href itself.
func Link(href, text string) string {
	if text == "" {
		text = href
	}
	return "[" + text + "](" + href + ")"
}

// Image returns an inline image. The mouseover title is omitted when empty.
func Image(src, alt, mouseover string) string {
	title := ""
	if mouseover != "" {
		title = ` "` + mouseover + `"`
	}
	return "![" + alt + "](" + src + title + ")"
}

// CodeBlock returns a fenced code block with an optional language.
func CodeBlock(text, lang string) string {
	return "```" + lang + "\n" + text + "\n```"
}

// UnorderedList returns one "- " item per line.
func UnorderedList(items ...string) string {
	return list("- ", items)
}

// OrderedList returns one "1. " item per line; renderers number them.
func OrderedList(items ...string) string {
	return list("1. ", items)
}

func list(marker string, items []string) string {
	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(marker)
		sb.WriteString(item)
	}
	return sb.String()
}
