package conjugacy

import (
	"context"

	"github.com/go-garcide/garcide/element"
	"github.com/go-garcide/garcide/factor"
	"github.com/go-garcide/garcide/summit"
)

// Centralizer computes a generating set for the centralizer of b: every
// element g with g^-1*b*g = b. Built from the Ultra Summit Set the way
// Gebhardt's centralizer algorithm does — per orbit, a "loop" generator
// from the orbit's own cycling and, for each indecomposable conjugator
// out of the orbit base, a "bridge" generator wrapped by the tree path
// to the child orbit it lands on — then every generator is conjugated
// back from the USS representative to b itself. ctx is forwarded to the
// USS construction BFS; see summit.BuildUSS.
func Centralizer[P comparable, F any](ctx context.Context, eng element.Engine[P, F], k factor.Kind[P, F], b *element.Element[P, F]) ([]*element.Element[P, F], error) {
	bUSS, c := summit.SendToUSSConjugator(eng, k, b)
	uss, mins, prev, err := summit.BuildUSSBookkeeping(ctx, eng, k, bUSS)
	if err != nil {
		return nil, err
	}

	var gens []*element.Element[P, F]
	notIdentity := func(g *element.Element[P, F]) bool { return g.CanonicalLength() > 0 || g.Inf != 0 }

	for o := 0; o < uss.NumberOfOrbits(); o++ {
		base := uss.At(o, 0)
		baseRCF := eng.ToRCF(base)
		d := summit.TreePath(eng, k, uss, mins, prev, base)

		loop := d.Clone()
		for shift := 0; shift < uss.OrbitSize(o); shift++ {
			eng.RightMultiplyFactor(loop, k.DeltaConjugate(eng.First(uss.At(o, shift)), bUSS.Inf))
		}
		eng.RightMultiplyElement(loop, eng.Invert(d))
		if notIdentity(loop) {
			gens = append(gens, loop)
		}

		minFactors, err := summit.MinUltraSummitAll(eng, k, base, baseRCF)
		if err != nil {
			return nil, err
		}
		for _, f := range minFactors {
			b2 := eng.ConjugateByFactor(base, f)
			bridge := d.Clone()
			eng.RightMultiplyFactor(bridge, f)
			eng.RightMultiplyElement(bridge, eng.Invert(summit.TreePath(eng, k, uss, mins, prev, b2)))
			if notIdentity(bridge) {
				gens = append(gens, bridge)
			}
		}
	}

	notC := eng.Invert(c)
	out := make([]*element.Element[P, F], len(gens))
	for i, g := range gens {
		out[i] = eng.ConjugateByElement(g, notC)
	}
	return dedupByHash(k, out), nil
}

// dedupByHash discards structurally duplicate elements, keeping the
// first occurrence.
func dedupByHash[P comparable, F any](k factor.Kind[P, F], els []*element.Element[P, F]) []*element.Element[P, F] {
	seen := make(map[uint64][]*element.Element[P, F])
	var out []*element.Element[P, F]
	for _, el := range els {
		h := element.Hash(k, el)
		dup := false
		for _, x := range seen[h] {
			if element.Equal(k, x, el) {
				dup = true
				break
			}
		}
		if !dup {
			seen[h] = append(seen[h], el)
			out = append(out, el)
		}
	}
	return out
}
