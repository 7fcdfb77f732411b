package tokens

import (
	"bytes"
	"fmt"

	"github.com/muesli/reflow/wordwrap"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/gomdbuild/pkg/langdetect"
)

// CodeBlockAuto returns a fenced code block whose language is inferred
// from its content. Undetectable content is fenced as "text".
func CodeBlockAuto(text string) string {
	return CodeBlock(text, langdetect.Detect([]byte(text)))
}

// CodeBlockFile returns a fenced code block for the contents of filename,
// using the file name to pick the language.
func CodeBlockFile(filename, text string) string {
	return CodeBlock(text, langdetect.DetectFile(filename, []byte(text)))
}

// FrontMatter returns v encoded as a YAML front matter block.
func FrontMatter(v any) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return "", fmt.Errorf("encode front matter: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return "", fmt.Errorf("close encoder: %w", err)
	}

	buf.WriteString("---")
	return buf.String(), nil
}

// Reflow word-wraps text at width columns. Words longer than width are
// kept whole. A width of zero or less returns text unchanged.
func Reflow(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}
