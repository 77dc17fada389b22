package summit

import (
	"context"

	"github.com/go-garcide/garcide/element"
	"github.com/go-garcide/garcide/factor"
)

// SendToSSS sends b into its Super Summit Set by raising inf as far as
// possible through repeated cycling, then lowering sup as far as
// possible through repeated decycling. The stopping
// condition is lattice_height(p)+1 consecutive cyclings/decyclings that
// fail to move inf/sup — this bounds a search that would otherwise have
// no a priori termination point, since cycling is not monotone in
// general, only eventually so.
func SendToSSS[P comparable, F any](eng element.Engine[P, F], k factor.Kind[P, F], b *element.Element[P, F]) *element.Element[P, F] {
	height := k.LatticeHeight(b.Parameter)

	b2, b3 := b.Clone(), b.Clone()
	p, j := b.Inf, 0
	for j <= height {
		b2 = eng.Cycling(b2)
		if b2.Inf == p {
			j++
		} else {
			b3 = b2.Clone()
			p++
			j = 0
		}
	}

	j = 0
	b2 = b3.Clone()
	l := b2.Supremum()
	for j <= height {
		b2 = eng.Decycling(b2)
		if b2.Supremum() == l {
			j++
		} else {
			b3 = b2.Clone()
			l--
			j = 0
		}
	}
	return b3
}

// SendToSSSConjugator is SendToSSS, additionally returning a conjugator
// c with c^-1*b*c = the returned element: the running product of the
// initial factors committed during the cycling phase, followed by the
// inverses of the final factors committed during the decycling phase.
func SendToSSSConjugator[P comparable, F any](eng element.Engine[P, F], k factor.Kind[P, F], b *element.Element[P, F]) (*element.Element[P, F], *element.Element[P, F]) {
	height := k.LatticeHeight(b.Parameter)

	b2, b3 := b.Clone(), b.Clone()
	c2 := eng.Identity(b.Parameter, element.LCF)
	c := eng.Identity(b.Parameter, element.LCF)
	p, j := b.Inf, 0
	for j <= height {
		ini := eng.Initial(b2)
		eng.RightMultiplyFactor(c2, ini)
		b2 = eng.Cycling(b2)
		if b2.Inf == p {
			j++
		} else {
			b3 = b2.Clone()
			p++
			j = 0
			eng.RightMultiplyElement(c, c2)
			c2 = eng.Identity(b.Parameter, element.LCF)
		}
	}

	j = 0
	b2 = b3.Clone()
	l := b2.Supremum()
	c2 = eng.Identity(b.Parameter, element.LCF)
	for j <= height {
		fin := eng.Final(b2)
		eng.LeftMultiplyFactor(c2, fin)
		b2 = eng.Decycling(b2)
		if b2.Supremum() == l {
			j++
		} else {
			b3 = b2.Clone()
			l--
			j = 0
			eng.RightMultiplyElement(c, eng.Invert(c2))
			c2 = eng.Identity(b.Parameter, element.LCF)
		}
	}
	return b3, c
}

// MinSummit computes the smallest simple conjugator above f sending b
// into its summit set, without yet requiring canonical length to match.
func MinSummit[P comparable, F any](eng element.Engine[P, F], k factor.Kind[P, F], b *element.Element[P, F], f F) F {
	r2 := f
	r := k.Identity(b.Parameter)
	w := &element.Element[P, F]{Parameter: b.Parameter, Inf: 0, Factors: append([]F(nil), b.Factors...), Form: element.LCF}

	for !factor.IsIdentity(k, r2) {
		r = k.Product(r, r2)
		w2 := w.Clone()
		eng.RightMultiplyFactor(w2, r)
		r2 = remainder(eng, k, w2, k.DeltaConjugate(r, b.Inf))
	}
	return r
}

// MinSuperSummit computes the smallest simple conjugator above f that
// both sends b to its summit set and does not increase canonical length
// beyond b's own. b_rcf is b in RCF.
func MinSuperSummit[P comparable, F any](eng element.Engine[P, F], k factor.Kind[P, F], b, bRCF *element.Element[P, F], f F) F {
	r := MinSummit(eng, k, b, f)
	b2 := eng.ConjugateByFactor(bRCF, r)
	for b2.CanonicalLength() > b.CanonicalLength() {
		r = k.Product(r, eng.First(b2))
		b2 = eng.ConjugateByFactor(bRCF, r)
	}
	return r
}

// MinSuperSummitAll maps MinSuperSummit over every atom and deduplicates
// the results, producing the full set of minimal simple conjugators out
// of b.
func MinSuperSummitAll[P comparable, F any](eng element.Engine[P, F], k factor.Kind[P, F], b, bRCF *element.Element[P, F]) []F {
	atoms := k.Atoms(b.Parameter)
	factors := factor.MapAtomsParallel(atoms, func(a F) F {
		return MinSuperSummit(eng, k, b, bRCF, a)
	})
	return dedupMinimal(k, atoms, factors)
}

// BuildSSS constructs the Super Summit Set of b by BFS over
// MinSuperSummitAll-generated conjugates. ctx is checked once per BFS
// frontier pop, the same cadence the teacher's bfs.BFS walker checks its
// own context at; a cancelled or expired ctx stops the walk early and
// returns ctx.Err(), since SSS construction is the one place in this
// module whose running time has no a priori bound from the caller's
// point of view.
func BuildSSS[P comparable, F any](ctx context.Context, eng element.Engine[P, F], k factor.Kind[P, F], b *element.Element[P, F]) ([]*element.Element[P, F], error) {
	b2 := SendToSSS(eng, k, b)
	b2RCF := eng.ToRCF(b2)

	s := newSet[P, F](k)
	s.add(b2)
	queue := []*element.Element[P, F]{b2}
	queueRCF := []*element.Element[P, F]{b2RCF}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cur, curRCF := queue[0], queueRCF[0]
		queue, queueRCF = queue[1:], queueRCF[1:]

		for _, f := range MinSuperSummitAll(eng, k, cur, curRCF) {
			next := eng.ConjugateByFactor(cur, f)
			if s.has(next) {
				continue
			}
			nextRCF := eng.ConjugateByFactor(curRCF, f)
			s.add(next)
			queue = append(queue, next)
			queueRCF = append(queueRCF, nextRCF)
		}
	}
	return s.all(), nil
}
