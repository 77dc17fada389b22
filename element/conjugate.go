package element

// ConjugateByFactor returns f^-1 * b * f.
func (e Engine[P, F]) ConjugateByFactor(b *Element[P, F], f F) *Element[P, F] {
	p := e.FromFactor(f, b.Form)
	out := e.Invert(p)
	e.RightMultiplyElement(out, b)
	e.RightMultiplyElement(out, p)
	return out
}

// ConjugateByElement returns v^-1 * b * v.
func (e Engine[P, F]) ConjugateByElement(b *Element[P, F], v *Element[P, F]) *Element[P, F] {
	out := e.Invert(v)
	e.RightMultiplyElement(out, b)
	e.RightMultiplyElement(out, v)
	return out
}
