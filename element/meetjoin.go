package element

import "github.com/go-garcide/garcide/factor"

// firstFactor and restAfterFirst peel the leftmost unit of a non-negative
// LCF element: Delta itself while Inf > 0 still "covers" the factor list,
// then each stored factor in turn.
func firstFactor[P comparable, F any](k factor.Kind[P, F], p P, cur *Element[P, F]) F {
	if cur.Inf > 0 {
		return k.Delta(p)
	}
	if len(cur.Factors) > 0 {
		return cur.Factors[0]
	}
	return k.Identity(p)
}

func leftPeel[P comparable, F any](e Engine[P, F], cur *Element[P, F], f F) *Element[P, F] {
	k := e.Kind
	if cur.Inf > 0 {
		fcomp := k.RightComplement(f, k.Delta(cur.Parameter))
		rest := &Element[P, F]{Parameter: cur.Parameter, Inf: cur.Inf - 1, Factors: append([]F(nil), cur.Factors...), Form: LCF}
		e.LeftMultiplyFactor(rest, fcomp)
		return rest
	}
	if len(cur.Factors) > 0 {
		fcomp := k.RightComplement(f, cur.Factors[0])
		rest := &Element[P, F]{Parameter: cur.Parameter, Factors: append([]F(nil), cur.Factors[1:]...), Form: LCF}
		e.LeftMultiplyFactor(rest, fcomp)
		return rest
	}
	return cur
}

// LeftMeet computes x ∧ᴸ y: a greedy LCF walk that
// repeatedly extracts the left-meet of the operands' current leading
// factors, accumulates it, and left-divides both operands by it, until
// nothing more can be extracted. Both arguments must be in LCF; the
// result is in LCF.
func (e Engine[P, F]) LeftMeet(x, y *Element[P, F]) *Element[P, F] {
	k := e.Kind
	p := x.Inf
	if y.Inf < p {
		p = y.Inf
	}
	cx := &Element[P, F]{Parameter: x.Parameter, Inf: x.Inf - p, Factors: append([]F(nil), x.Factors...), Form: LCF}
	cy := &Element[P, F]{Parameter: y.Parameter, Inf: y.Inf - p, Factors: append([]F(nil), y.Factors...), Form: LCF}
	acc := e.Identity(x.Parameter, LCF)
	for {
		fx := firstFactor(k, x.Parameter, cx)
		fy := firstFactor(k, x.Parameter, cy)
		f := k.LeftMeet(fx, fy)
		if factor.IsIdentity(k, f) {
			break
		}
		e.RightMultiplyFactor(acc, f)
		cx = leftPeel(e, cx, f)
		cy = leftPeel(e, cy, f)
	}
	e.LeftMultiplyElement(acc, &Element[P, F]{Parameter: x.Parameter, Inf: p, Form: LCF})
	return acc
}

// lastFactor and rightPeel mirror firstFactor/leftPeel for a non-negative
// RCF element, walking from the tail.
func lastFactor[P comparable, F any](k factor.Kind[P, F], p P, cur *Element[P, F]) F {
	if cur.Inf > 0 {
		return k.Delta(p)
	}
	if n := len(cur.Factors); n > 0 {
		return cur.Factors[n-1]
	}
	return k.Identity(p)
}

func rightPeel[P comparable, F any](e Engine[P, F], cur *Element[P, F], f F) *Element[P, F] {
	k := e.Kind
	if cur.Inf > 0 {
		fcomp := k.LeftComplement(f, k.Delta(cur.Parameter))
		rest := &Element[P, F]{Parameter: cur.Parameter, Inf: cur.Inf - 1, Factors: append([]F(nil), cur.Factors...), Form: RCF}
		e.RightMultiplyFactor(rest, fcomp)
		return rest
	}
	if n := len(cur.Factors); n > 0 {
		fcomp := k.LeftComplement(f, cur.Factors[n-1])
		rest := &Element[P, F]{Parameter: cur.Parameter, Factors: append([]F(nil), cur.Factors[:n-1]...), Form: RCF}
		e.RightMultiplyFactor(rest, fcomp)
		return rest
	}
	return cur
}

// RightMeet computes x ∧ᴿ y: the mirror image of LeftMeet, walking RCF
// from the tail and extracting right-meets of trailing factors. Both
// arguments must be in RCF; the result is in RCF.
func (e Engine[P, F]) RightMeet(x, y *Element[P, F]) *Element[P, F] {
	k := e.Kind
	p := x.Inf
	if y.Inf < p {
		p = y.Inf
	}
	cx := &Element[P, F]{Parameter: x.Parameter, Inf: x.Inf - p, Factors: append([]F(nil), x.Factors...), Form: RCF}
	cy := &Element[P, F]{Parameter: y.Parameter, Inf: y.Inf - p, Factors: append([]F(nil), y.Factors...), Form: RCF}
	acc := e.Identity(x.Parameter, RCF)
	for {
		fx := lastFactor(k, x.Parameter, cx)
		fy := lastFactor(k, x.Parameter, cy)
		f := k.RightMeet(fx, fy)
		if factor.IsIdentity(k, f) {
			break
		}
		e.LeftMultiplyFactor(acc, f)
		cx = rightPeel(e, cx, f)
		cy = rightPeel(e, cy, f)
	}
	e.RightMultiplyElement(acc, &Element[P, F]{Parameter: x.Parameter, Inf: p, Form: RCF})
	return acc
}

// LeftJoin computes x ∨ᴸ y via the duality b ∧ᴿ v = !((!b) ∨ᴸ (!v)),
// rearranged to x ∨ᴸ y = !((!x) ∧ᴿ (!y)). Operands may be in either
// form; the result is produced in LCF.
func (e Engine[P, F]) LeftJoin(x, y *Element[P, F]) *Element[P, F] {
	rx := e.ToForm(x, RCF)
	ry := e.ToForm(y, RCF)
	ix, iy := e.Invert(rx), e.Invert(ry)
	m := e.RightMeet(ix, iy)
	return e.ToForm(e.Invert(m), LCF)
}

// RightJoin computes x ∨ᴿ y, the symmetric counterpart of LeftJoin:
// x ∨ᴿ y = !((!x) ∧ᴸ (!y)).
func (e Engine[P, F]) RightJoin(x, y *Element[P, F]) *Element[P, F] {
	lx := e.ToForm(x, LCF)
	ly := e.ToForm(y, LCF)
	ix, iy := e.Invert(lx), e.Invert(ly)
	m := e.LeftMeet(ix, iy)
	return e.ToForm(e.Invert(m), RCF)
}
