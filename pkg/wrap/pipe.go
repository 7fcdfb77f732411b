package wrap

// Pipe accumulates a composition chain one operand at a time.
// After the first failure further operands are ignored and Err reports the
// failure.
type Pipe struct {
	acc     Operand
	err     error
	started bool
}

// From starts a Pipe with op as its leftmost operand.
func From(op Operand) *Pipe {
	return (&Pipe{}).Then(op)
}

// Then composes the accumulated value with op. A nil op fails the Pipe.
func (p *Pipe) Then(op Operand) *Pipe {
	if p.err != nil {
		return p
	}
	if op == nil {
		p.err = &CompositionError{Left: kindOf(p.acc), Right: KindNil}
		return p
	}
	if !p.started {
		p.acc = op
		p.started = true
		return p
	}

	c, err := Compose(p.acc, op)
	if err != nil {
		p.err = err
		return p
	}
	p.acc = c
	return p
}

// Text is shorthand for Then(Text(s)).
func (p *Pipe) Text(s string) *Pipe {
	return p.Then(Text(s))
}

// Err returns the first composition error, if any.
func (p *Pipe) Err() error {
	return p.err
}

// Result returns the accumulated Content.
func (p *Pipe) Result() (Content, error) {
	if p.err != nil {
		return "", p.err
	}

	switch acc := p.acc.(type) {
	case Content:
		return acc, nil
	case Text:
		return Content(acc), nil
	case Wrapper:
		return Content(acc.Open), nil
	}
	return "", nil
}

// String returns the accumulated text, or the empty string after a failure.
func (p *Pipe) String() string {
	c, err := p.Result()
	if err != nil {
		return ""
	}
	return string(c)
}
