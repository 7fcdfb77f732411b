package tokens

import "github.com/yaklabco/gomdbuild/pkg/wrap"

// Inline decorations. Each can wrap text directly, as in Bold.Wrap("x"),
// or take part in a wrap.Chain.
//
//nolint:gochecknoglobals // immutable values
var (
	Bold   = wrap.New("**")
	Italic = wrap.New("*")
	Code   = wrap.New("`")
	Strike = wrap.New("~~")
)
