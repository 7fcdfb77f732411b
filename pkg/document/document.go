// Package document accumulates Markdown text under two writing modes.
//
// In line mode every write after the first is separated from the previous
// content by a blank line, so each write becomes its own block. In span
// mode writes are concatenated, which suits inline text assembled piece by
// piece.
//
// A Document is not safe for concurrent use.
package document

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/gomdbuild/internal/logging"
	"github.com/yaklabco/gomdbuild/pkg/config"
)

// LineSeparator is placed between line-mode writes.
const LineSeparator = "\n\n"

// Document is an append-only Markdown buffer with a current Mode.
type Document struct {
	content strings.Builder
	mode    Mode
	logger  *log.Logger
	opts    *config.Options
	logOut  io.Writer
}

// Option configures a Document.
type Option func(*Document)

// WithContent seeds the document with initial content.
func WithContent(content string) Option {
	return func(d *Document) {
		d.content.WriteString(content)
	}
}

// WithLogger attaches a logger that receives debug records for writes.
func WithLogger(logger *log.Logger) Option {
	return func(d *Document) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithConfig sets the options used by Save and Check when they are called
// with nil options. Unless WithLogger is also given, the document logs at
// cfg.LogLevel to stderr, or to the writer set with WithLogOutput.
func WithConfig(cfg *config.Options) Option {
	return func(d *Document) {
		d.opts = cfg.Clone()
	}
}

// WithLogOutput redirects the logger built from WithConfig to w.
func WithLogOutput(w io.Writer) Option {
	return func(d *Document) {
		d.logOut = w
	}
}

// New returns an empty Document in ModeLine.
func New(opts ...Option) *Document {
	d := &Document{mode: ModeLine}
	for _, opt := range opts {
		opt(d)
	}

	switch {
	case d.logger != nil:
	case d.opts != nil:
		out := d.logOut
		if out == nil {
			out = os.Stderr
		}
		d.logger = logging.NewWithWriter(out, d.opts.LogLevel)
	default:
		d.logger = logging.Discard()
	}
	return d
}

// options returns opts, falling back to the document's configuration and
// then to config.Default.
func (d *Document) options(opts *config.Options) *config.Options {
	switch {
	case opts != nil:
		return opts
	case d.opts != nil:
		return d.opts
	default:
		return config.Default()
	}
}

// Write appends text. In ModeLine a separator precedes text unless the
// document is empty.
func (d *Document) Write(text string) *Document {
	if d.mode == ModeLine && d.content.Len() > 0 {
		d.content.WriteString(LineSeparator)
	}
	d.content.WriteString(text)

	d.logger.Debug("write",
		logging.FieldMode, d.mode,
		logging.FieldBytes, len(text),
		logging.FieldLength, d.content.Len(),
	)
	return d
}

// WriteLines joins lines with LineSeparator and writes them in ModeLine,
// whatever the current mode. The current mode is restored afterwards.
func (d *Document) WriteLines(lines ...string) *Document {
	defer d.withMode(ModeLine)()
	d.logger.Debug("write lines", logging.FieldCount, len(lines))
	return d.Write(strings.Join(lines, LineSeparator))
}

// WriteSpans concatenates spans and writes them in ModeSpan, whatever the
// current mode. The current mode is restored afterwards.
func (d *Document) WriteSpans(spans ...string) *Document {
	defer d.withMode(ModeSpan)()
	d.logger.Debug("write spans", logging.FieldCount, len(spans))
	return d.Write(strings.Join(spans, ""))
}

// withMode switches to m and returns a func restoring the previous mode.
func (d *Document) withMode(m Mode) func() {
	prev := d.mode
	d.mode = m
	return func() {
		d.mode = prev
	}
}

// LineBreak appends LineSeparator regardless of mode or content.
func (d *Document) LineBreak() *Document {
	d.content.WriteString(LineSeparator)
	return d
}

// Short names matching the token aliases.

// Lines is WriteLines.
func (d *Document) Lines(lines ...string) *Document { return d.WriteLines(lines...) }

// Spans is WriteSpans.
func (d *Document) Spans(spans ...string) *Document { return d.WriteSpans(spans...) }

// BR is LineBreak.
func (d *Document) BR() *Document { return d.LineBreak() }

// Mode returns the current mode.
func (d *Document) Mode() Mode {
	return d.mode
}

// SetMode sets the current mode.
func (d *Document) SetMode(m Mode) *Document {
	if m != d.mode {
		d.logger.Debug("mode changed", logging.FieldPrevMode, d.mode, logging.FieldMode, m)
	}
	d.mode = m
	return d
}

// ToggleMode switches between ModeLine and ModeSpan.
func (d *Document) ToggleMode() *Document {
	return d.SetMode(d.mode.Toggle())
}

// IsMode reports whether the current mode is m.
func (d *Document) IsMode(m Mode) bool {
	return d.mode == m
}

// Reset discards the content and returns to ModeLine, as if newly
// constructed with the same logger.
func (d *Document) Reset() *Document {
	d.content.Reset()
	d.mode = ModeLine
	return d
}

// Len returns the content length in bytes.
func (d *Document) Len() int {
	return d.content.Len()
}

// IsEmpty reports whether nothing has been written.
func (d *Document) IsEmpty() bool {
	return d.content.Len() == 0
}

// String returns the content.
func (d *Document) String() string {
	return d.content.String()
}

// WriteTo writes the content to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.content.String())
	return int64(n), err
}
