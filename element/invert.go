package element

import "github.com/go-garcide/garcide/factor"

// Invert returns b^-1, in the same canonical form as b.
//
// Rather than deriving a closed-form conjugated-complement expression by
// hand, this builds the inverse as a literal product and lets
// RightMultiplyElement/LeftMultiplyElement (already correct for any
// canonical form, by construction) assemble it — associativity of group
// multiplication does the rest.
//
// For LCF, b = Delta^r * u_1 * ... * u_k, and u_i^-1 = ~u_i * Delta^-1
// (since u_i * ~u_i = Delta), so
//
//	b^-1 = u_k^-1 * ... * u_1^-1 * Delta^-r
//	     = (~u_k * Delta^-1) * (~u_{k-1} * Delta^-1) * ... * (~u_1 * Delta^-1) * Delta^-r
//
// which is assembled by right-multiplying an identity accumulator by
// each term in that exact order. RCF is the mirror image, built by
// left-multiplying instead, using the complement c with c*u_i = Delta.
func (e Engine[P, F]) Invert(b *Element[P, F]) *Element[P, F] {
	k := e.Kind
	acc := e.Identity(b.Parameter, b.Form)

	if b.Form == LCF {
		deltaInv := &Element[P, F]{Parameter: b.Parameter, Inf: -1, Form: LCF}
		for i := len(b.Factors) - 1; i >= 0; i-- {
			notU := factor.RightComplementToDelta(k, b.Factors[i])
			e.RightMultiplyFactor(acc, notU)
			e.RightMultiplyElement(acc, deltaInv)
		}
		e.RightMultiplyElement(acc, &Element[P, F]{Parameter: b.Parameter, Inf: -b.Inf, Form: LCF})
		return acc
	}

	deltaInv := &Element[P, F]{Parameter: b.Parameter, Inf: -1, Form: RCF}
	for i := 0; i < len(b.Factors); i++ {
		c := factor.LeftComplementToDelta(k, b.Factors[i])
		e.LeftMultiplyFactor(acc, c)
		e.LeftMultiplyElement(acc, deltaInv)
	}
	e.LeftMultiplyElement(acc, &Element[P, F]{Parameter: b.Parameter, Inf: -b.Inf, Form: RCF})
	return acc
}
