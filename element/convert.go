package element

// ToForm returns b converted to the requested canonical form. Rather
// than the textbook conjugate-then-rebubble pass, this
// replays b's own factorization into a fresh accumulator of the target
// form through RightMultiplyFactor/RightMultiplyElement, which already
// perform the necessary Delta-conjugation and re-weighting as each piece
// is folded in; associativity of the underlying group product guarantees
// the replay reconstructs the same element. Returns a clone if b is
// already in the requested form.
func (e Engine[P, F]) ToForm(b *Element[P, F], form Form) *Element[P, F] {
	if b.Form == form {
		return b.Clone()
	}
	acc := e.Identity(b.Parameter, form)
	if b.Form == LCF {
		// b = Delta^inf * f_1 * ... * f_k: fold in the Delta power first.
		e.RightMultiplyElement(acc, &Element[P, F]{Parameter: b.Parameter, Inf: b.Inf, Form: form})
		for _, f := range b.Factors {
			e.RightMultiplyFactor(acc, f)
		}
	} else {
		// b = f_1 * ... * f_k * Delta^inf: factors first, Delta power last.
		for _, f := range b.Factors {
			e.RightMultiplyFactor(acc, f)
		}
		e.RightMultiplyElement(acc, &Element[P, F]{Parameter: b.Parameter, Inf: b.Inf, Form: form})
	}
	return acc
}

// ToLCF is ToForm(b, LCF).
func (e Engine[P, F]) ToLCF(b *Element[P, F]) *Element[P, F] { return e.ToForm(b, LCF) }

// ToRCF is ToForm(b, RCF).
func (e Engine[P, F]) ToRCF(b *Element[P, F]) *Element[P, F] { return e.ToForm(b, RCF) }
