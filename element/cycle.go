package element

import "github.com/go-garcide/garcide/factor"

// First is the leftmost non-Delta factor (identity if canonical length is
// zero).
func (e Engine[P, F]) First(b *Element[P, F]) F {
	if len(b.Factors) > 0 {
		return b.Factors[0]
	}
	return e.Kind.Identity(b.Parameter)
}

// Final is the rightmost factor (identity if canonical length is zero).
func (e Engine[P, F]) Final(b *Element[P, F]) F {
	if n := len(b.Factors); n > 0 {
		return b.Factors[n-1]
	}
	return e.Kind.Identity(b.Parameter)
}

// Initial is First(b) conjugated by Delta^-inf, bringing it to the
// position it would occupy immediately after the Delta power.
func (e Engine[P, F]) Initial(b *Element[P, F]) F {
	return e.Kind.DeltaConjugate(e.First(b), -b.Inf)
}

// PreferredPrefix is Initial(b) ∧ᴸ ~Final(b).
func (e Engine[P, F]) PreferredPrefix(b *Element[P, F]) F {
	k := e.Kind
	return k.LeftMeet(e.Initial(b), factor.RightComplementToDelta(k, e.Final(b)))
}

// PreferredSuffix is the RCF dual of PreferredPrefix: Final(b) conjugated
// by Delta^inf, met on the right against the left-complement of First(b).
// b must be in RCF.
func (e Engine[P, F]) PreferredSuffix(b *Element[P, F]) F {
	k := e.Kind
	return k.RightMeet(k.DeltaConjugate(e.Final(b), b.Inf), factor.LeftComplementToDelta(k, e.First(b)))
}

// Cycling drops the first factor of b and right-multiplies the remainder
// by Initial(b). A no-op on the empty braid.
func (e Engine[P, F]) Cycling(b *Element[P, F]) *Element[P, F] {
	if b.CanonicalLength() == 0 {
		return b.Clone()
	}
	ini := e.Initial(b)
	out := &Element[P, F]{Parameter: b.Parameter, Inf: b.Inf, Factors: append([]F(nil), b.Factors[1:]...), Form: b.Form}
	e.RightMultiplyFactor(out, ini)
	return out
}

// Decycling drops the last factor of b and left-multiplies the remainder
// by Final(b). A no-op on the empty braid.
func (e Engine[P, F]) Decycling(b *Element[P, F]) *Element[P, F] {
	if b.CanonicalLength() == 0 {
		return b.Clone()
	}
	fin := e.Final(b)
	n := len(b.Factors)
	out := &Element[P, F]{Parameter: b.Parameter, Inf: b.Inf, Factors: append([]F(nil), b.Factors[:n-1]...), Form: b.Form}
	e.LeftMultiplyFactor(out, fin)
	return out
}

// CyclicSliding conjugates b by its own preferred prefix: b ↦ p^-1 b p
// where p = PreferredPrefix(b). A no-op on the empty braid or when the
// preferred prefix is trivial.
func (e Engine[P, F]) CyclicSliding(b *Element[P, F]) *Element[P, F] {
	if b.CanonicalLength() == 0 {
		return b.Clone()
	}
	pf := e.PreferredPrefix(b)
	if factor.IsIdentity(e.Kind, pf) {
		return b.Clone()
	}
	p := e.FromFactor(pf, b.Form)
	out := e.Invert(p)
	e.RightMultiplyElement(out, b)
	e.RightMultiplyElement(out, p)
	return out
}
