package tokens

import "github.com/yaklabco/gomdbuild/pkg/config"

// Renderer applies configured options to the tokens that depend on them.
type Renderer struct {
	opts *config.Options
}

// NewRenderer returns a Renderer for opts. Nil opts use config.Default.
func NewRenderer(opts *config.Options) *Renderer {
	if opts == nil {
		opts = config.Default()
	}
	return &Renderer{opts: opts.Clone()}
}

// Paragraph returns text wrapped to the configured width.
func (r *Renderer) Paragraph(text string) string {
	return Reflow(text, r.opts.WrapWidth)
}

// Quote returns a block quote of text wrapped to the configured width,
// with every wrapped line kept inside the quote.
func (r *Renderer) Quote(text string) string {
	width := r.opts.WrapWidth
	if width > 0 {
		width -= len("> ")
		if width < 1 {
			width = 1
		}
	}
	return prefixLines(Reflow(text, width), "> ")
}

// CodeBlock returns a fenced code block. An empty lang is inferred from
// the content when language detection is enabled.
func (r *Renderer) CodeBlock(text, lang string) string {
	if lang == "" && r.opts.DetectLanguage {
		return CodeBlockAuto(text)
	}
	return CodeBlock(text, lang)
}

func prefixLines(text, prefix string) string {
	out := make([]byte, 0, len(text)+len(prefix))
	out = append(out, prefix...)
	for i := 0; i < len(text); i++ {
		out = append(out, text[i])
		if text[i] == '\n' {
			out = append(out, prefix...)
		}
	}
	return string(out)
}
