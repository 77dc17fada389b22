package element

import "github.com/go-garcide/garcide/factor"

// leftWeightRewrite applies the left-weighting local rewrite to an
// adjacent pair (u, v): if t := (~u) ∧ᴸ v is non-identity, it can be
// pulled out of v and absorbed into u.
func leftWeightRewrite[P comparable, F any](k factor.Kind[P, F], u, v F) (F, F, bool) {
	notU := factor.RightComplementToDelta(k, u)
	t := k.LeftMeet(notU, v)
	if factor.IsIdentity(k, t) {
		return u, v, false
	}
	return k.Product(u, t), k.RightComplement(t, v), true
}

// rightWeightRewrite applies the right-weighting local rewrite to an
// adjacent pair (u, v): if s := u ∧ᴿ (~ᴸv) is non-identity, it can be
// pulled out of u and absorbed into v.
func rightWeightRewrite[P comparable, F any](k factor.Kind[P, F], u, v F) (F, F, bool) {
	notV := factor.LeftComplementToDelta(k, v)
	s := k.RightMeet(u, notV)
	if factor.IsIdentity(k, s) {
		return u, v, false
	}
	return k.LeftComplement(s, u), k.Product(s, v), true
}

// LeftMultiplyFactor sets b := f * b, in whichever canonical form b is
// currently held. Insertion adjacent to the Delta power
// requires conjugating f by Delta^Inf first (LCF only, since in LCF the
// Delta power sits at the front); the other form inserts f unconjugated.
// A single rebubble pass, directed away from the insertion point,
// restores weightedness.
func (e Engine[P, F]) LeftMultiplyFactor(b *Element[P, F], f F) {
	k := e.Kind
	if b.Form == LCF {
		f = k.DeltaConjugate(f, b.Inf)
		b.Factors = append([]F{f}, b.Factors...)
		for i := 0; i+1 < len(b.Factors); i++ {
			u, v, changed := leftWeightRewrite(k, b.Factors[i], b.Factors[i+1])
			if !changed {
				continue
			}
			b.Factors[i], b.Factors[i+1] = u, v
		}
	} else {
		b.Factors = append([]F{f}, b.Factors...)
		for i := 0; i+1 < len(b.Factors); i++ {
			u, v, changed := rightWeightRewrite(k, b.Factors[i], b.Factors[i+1])
			if !changed {
				continue
			}
			b.Factors[i], b.Factors[i+1] = u, v
		}
	}
	e.clean(b)
}

// RightMultiplyFactor sets b := b * f, the mirror image of
// LeftMultiplyFactor: in RCF the Delta power sits at the back, so f is
// conjugated before being appended there; in LCF it is appended
// unconjugated. Rebubbling runs away from the insertion point, from the
// back of the factor list to the front.
func (e Engine[P, F]) RightMultiplyFactor(b *Element[P, F], f F) {
	k := e.Kind
	if b.Form == LCF {
		b.Factors = append(b.Factors, f)
		for i := len(b.Factors) - 2; i >= 0; i-- {
			u, v, changed := leftWeightRewrite(k, b.Factors[i], b.Factors[i+1])
			if !changed {
				continue
			}
			b.Factors[i], b.Factors[i+1] = u, v
		}
	} else {
		f = k.DeltaConjugate(f, -b.Inf)
		b.Factors = append(b.Factors, f)
		for i := len(b.Factors) - 2; i >= 0; i-- {
			u, v, changed := rightWeightRewrite(k, b.Factors[i], b.Factors[i+1])
			if !changed {
				continue
			}
			b.Factors[i], b.Factors[i+1] = u, v
		}
	}
	e.clean(b)
}

// LeftMultiplyElement sets b := v * b.
//
// In LCF, v = Delta^v.Inf * V, so v*b = Delta^v.Inf * (V*b): v's factor
// word is inserted back-to-front via LeftMultiplyFactor, each call
// conjugating by b's own Delta^Inf, and only then is v.Inf added to
// b.Inf.
//
// In RCF, v's Delta power sits *between* v's factor word and b (v = V *
// Delta^v.Inf, so v*b = V * Delta^v.Inf * b), so it must first be
// threaded past b's existing factors — conjugating each by Delta^-v.Inf
// — before v's factor word is prepended.
func (e Engine[P, F]) LeftMultiplyElement(b *Element[P, F], v *Element[P, F]) {
	k := e.Kind
	if b.Form == RCF {
		for i := range b.Factors {
			b.Factors[i] = k.DeltaConjugate(b.Factors[i], -v.Inf)
		}
	}
	for i := len(v.Factors) - 1; i >= 0; i-- {
		e.LeftMultiplyFactor(b, v.Factors[i])
	}
	b.Inf += v.Inf
}

// RightMultiplyElement sets b := b * v, the mirror image of
// LeftMultiplyElement.
//
// In LCF, v's Delta power sits between b's factor word and v's factor
// word, so it must migrate past all of b's existing factors to merge
// with b's own leading Delta power: those factors are conjugated by
// Delta^v.Inf before v's factor word is appended raw.
//
// In RCF, it is b's own Delta power that sits between b's factor word
// and v's: RightMultiplyFactor already conjugates each newly-appended
// factor by Delta^-b.Inf internally (using b's Inf as it stands *before*
// this call folds v.Inf in), so appending v's factors raw, in order,
// before folding in v.Inf reproduces that migration exactly.
func (e Engine[P, F]) RightMultiplyElement(b *Element[P, F], v *Element[P, F]) {
	k := e.Kind
	if b.Form == LCF {
		for i := range b.Factors {
			b.Factors[i] = k.DeltaConjugate(b.Factors[i], v.Inf)
		}
		b.Inf += v.Inf
		for _, f := range v.Factors {
			e.RightMultiplyFactor(b, f)
		}
		return
	}
	for _, f := range v.Factors {
		e.RightMultiplyFactor(b, f)
	}
	b.Inf += v.Inf
}
