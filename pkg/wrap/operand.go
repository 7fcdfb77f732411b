package wrap

// Kind identifies the variant held by an Operand.
type Kind int

// Operand kinds.
const (
	KindText Kind = iota
	KindWrapper
	KindContent
)

// KindNil is reported for a missing operand.
const KindNil Kind = -1

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindText:
		return "text"
	case KindWrapper:
		return "wrapper"
	case KindContent:
		return "content"
	default:
		return "unknown"
	}
}

// Operand is one side of a composition. It is a closed set: Text, Wrapper
// and Content are the only implementations.
type Operand interface {
	Kind() Kind
	operand()
}

// Text is plain text taking part in a composition.
type Text string

// Kind reports KindText.
func (Text) Kind() Kind { return KindText }

func (Text) operand() {}

// Content is text accumulated by composing operands. Two Content values with
// equal text are interchangeable.
type Content string

// Kind reports KindContent.
func (Content) Kind() Kind { return KindContent }

func (Content) operand() {}

// String returns the accumulated text.
func (c Content) String() string { return string(c) }

// Wrapper is a reusable delimiter pair. The zero value wraps with nothing.
type Wrapper struct {
	Open  string
	Close string
}

// New returns a Wrapper with the given opening delimiter. The closing
// delimiter is the first element of closeDelim when present and non-empty,
// otherwise it equals open.
func New(open string, closeDelim ...string) Wrapper {
	w := Wrapper{Open: open, Close: open}
	if len(closeDelim) > 0 && closeDelim[0] != "" {
		w.Close = closeDelim[0]
	}
	return w
}

// Kind reports KindWrapper.
func (Wrapper) Kind() Kind { return KindWrapper }

func (Wrapper) operand() {}

// Wrap surrounds text with the opening and closing delimiters.
func (w Wrapper) Wrap(text string) string {
	return w.Open + text + w.Close
}

// Pipe starts a composition chain opened by w.
func (w Wrapper) Pipe(right Operand) *Pipe {
	return From(w).Then(right)
}
