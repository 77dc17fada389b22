package element

import "github.com/go-garcide/garcide/factor"

// Engine carries the factor.Kind every element-level operation is generic
// over. It holds no mutable state; all state lives in the Elements it is
// handed.
type Engine[P comparable, F any] struct {
	Kind factor.Kind[P, F]
}

// New creates an Engine for the given factor kind.
func New[P comparable, F any](k factor.Kind[P, F]) Engine[P, F] {
	return Engine[P, F]{Kind: k}
}

// Identity returns the identity element (Inf 0, no factors) for parameter
// p, in the requested canonical form.
func (e Engine[P, F]) Identity(p P, form Form) *Element[P, F] {
	return &Element[P, F]{Parameter: p, Form: form}
}

// FromFactor returns the element wrapping the single factor f (or the
// identity/Delta-power element if f is the identity/Delta), in the
// requested canonical form.
func (e Engine[P, F]) FromFactor(f F, form Form) *Element[P, F] {
	p := e.Kind.Parameter(f)
	el := e.Identity(p, form)
	switch {
	case factor.IsIdentity(e.Kind, f):
		// already identity
	case factor.IsDelta(e.Kind, f):
		el.Inf = 1
	default:
		el.Factors = []F{f}
	}
	return el
}

// clean absorbs leading (LCF) or trailing (RCF) Delta factors into Inf,
// and drops trailing (LCF) or leading (RCF) identity factors. This is the
// shared tail call of every single-factor multiply operation.
func (e Engine[P, F]) clean(el *Element[P, F]) {
	k := e.Kind
	if el.Form == LCF {
		for len(el.Factors) > 0 && factor.IsDelta(k, el.Factors[0]) {
			el.Factors = el.Factors[1:]
			el.Inf++
		}
		for len(el.Factors) > 0 && factor.IsIdentity(k, el.Factors[len(el.Factors)-1]) {
			el.Factors = el.Factors[:len(el.Factors)-1]
		}
	} else {
		for len(el.Factors) > 0 && factor.IsDelta(k, el.Factors[len(el.Factors)-1]) {
			el.Factors = el.Factors[:len(el.Factors)-1]
			el.Inf++
		}
		for len(el.Factors) > 0 && factor.IsIdentity(k, el.Factors[0]) {
			el.Factors = el.Factors[1:]
		}
	}
}
