package factor

// RightComplementToDelta returns the factor ~a := RightComplement(a, Delta),
// i.e. the unique c with a*c = Delta.
func RightComplementToDelta[P comparable, F any](k Kind[P, F], a F) F {
	p := k.Parameter(a)
	return k.RightComplement(a, k.Delta(p))
}

// LeftComplementToDelta returns the factor c with c*a = Delta, the
// symmetric left complement under Delta.
func LeftComplementToDelta[P comparable, F any](k Kind[P, F], a F) F {
	p := k.Parameter(a)
	return k.LeftComplement(a, k.Delta(p))
}

// LeftJoin computes the left join of a and b, derived from LeftMeet/RightMeet
// by duality: left_join(a,b) = ~( ~a ∧ᴿ ~b ).
func LeftJoin[P comparable, F any](k Kind[P, F], a, b F) F {
	notA := RightComplementToDelta(k, a)
	notB := RightComplementToDelta(k, b)
	return RightComplementToDelta(k, k.RightMeet(notA, notB))
}

// RightJoin computes the right join of a and b, by the symmetric duality
// over the left complement.
func RightJoin[P comparable, F any](k Kind[P, F], a, b F) F {
	notA := LeftComplementToDelta(k, a)
	notB := LeftComplementToDelta(k, b)
	return LeftComplementToDelta(k, k.LeftMeet(notA, notB))
}

// IsIdentity reports whether f equals the identity for its parameter.
func IsIdentity[P comparable, F any](k Kind[P, F], f F) bool {
	return k.Equal(f, k.Identity(k.Parameter(f)))
}

// IsDelta reports whether f equals Delta for its parameter.
func IsDelta[P comparable, F any](k Kind[P, F], f F) bool {
	return k.Equal(f, k.Delta(k.Parameter(f)))
}

// MapAtomsOrdered maps fn over atoms and returns the results in the same
// order as atoms: fn is a pure function of each atom, and the
// caller is free to run the calls concurrently across workers as long as
// the returned slice preserves atom order, since the dedup pass that
// follows depends on it. This sequential implementation keeps that
// contract trivially; see MapAtomsParallel for the concurrent variant.
func MapAtomsOrdered[F any, R any](atoms []F, fn func(F) R) []R {
	out := make([]R, len(atoms))
	for i, a := range atoms {
		out[i] = fn(a)
	}
	return out
}
