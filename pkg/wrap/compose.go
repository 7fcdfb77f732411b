package wrap

import "fmt"

// Compose combines left and right into Content.
//
// Text can only be closed by a Wrapper once it has become Content, so
// Text followed by a Wrapper (or by more Text) is rejected with a
// *CompositionError.
func Compose(left, right Operand) (Content, error) {
	switch l := left.(type) {
	case Content:
		switch r := right.(type) {
		case Text:
			return l + Content(r), nil
		case Wrapper:
			return l + Content(r.Close), nil
		case Content:
			return l + r, nil
		}

	case Wrapper:
		switch r := right.(type) {
		case Text:
			return Content(l.Open + string(r)), nil
		case Wrapper:
			return Content(l.Open + r.Open), nil
		case Content:
			return Content(l.Close) + r, nil
		}

	case Text:
		if r, ok := right.(Content); ok {
			return Content(l) + r, nil
		}
	}

	return "", &CompositionError{Left: kindOf(left), Right: kindOf(right)}
}

// Chain reduces operands left to right with Compose. A nil operand fails
// with a *CompositionError.
// An empty chain yields empty Content; a single operand is converted on
// its own, a Wrapper contributing its opening delimiter.
func Chain(operands ...Operand) (Content, error) {
	p := &Pipe{}
	for _, op := range operands {
		p.Then(op)
	}
	return p.Result()
}

// MustChain is like Chain but panics if the chain is invalid.
// It simplifies package-level declarations of fixed decorations.
func MustChain(operands ...Operand) Content {
	c, err := Chain(operands...)
	if err != nil {
		panic(fmt.Sprintf("wrap: MustChain: %v", err))
	}
	return c
}

func kindOf(op Operand) Kind {
	if op == nil {
		return KindNil
	}
	return op.Kind()
}
