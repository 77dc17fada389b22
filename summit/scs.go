package summit

import (
	"context"

	"github.com/go-garcide/garcide/element"
	"github.com/go-garcide/garcide/factor"
)

// SlidingTrajectory slides b until the first repetition and returns the
// sequence of distinct conjugates seen, in order: the sliding analogue
// of Trajectory.
func SlidingTrajectory[P comparable, F any](eng element.Engine[P, F], k factor.Kind[P, F], b *element.Element[P, F]) []*element.Element[P, F] {
	seen := newSet(k)
	var t []*element.Element[P, F]
	cur := b
	for !seen.has(cur) {
		t = append(t, cur)
		seen.add(cur)
		cur = eng.CyclicSliding(cur)
	}
	return t
}

// SendToSCS sends b into its Sliding Circuits Set: the last element of
// b's sliding trajectory, slid once more past its own period, mirroring
// the USS construction with sliding in place of cycling.
func SendToSCS[P comparable, F any](eng element.Engine[P, F], k factor.Kind[P, F], b *element.Element[P, F]) *element.Element[P, F] {
	t := SlidingTrajectory(eng, k, b)
	return eng.CyclicSliding(t[len(t)-1])
}

// SendToSCSConjugator is SendToSCS, additionally returning a conjugator
// c with c^-1*b*c equal to the returned element. The running product of
// preferred prefixes visited along the trajectory already lands exactly
// on the sliding-circuit representative once the loop closes, so (unlike
// the reference implementation) no further period-alignment correction
// is needed to satisfy that invariant.
func SendToSCSConjugator[P comparable, F any](eng element.Engine[P, F], k factor.Kind[P, F], b *element.Element[P, F]) (*element.Element[P, F], *element.Element[P, F]) {
	c := eng.Identity(b.Parameter, element.LCF)
	seen := newSet(k)
	cur := b
	for !seen.has(cur) {
		seen.add(cur)
		eng.RightMultiplyFactor(c, eng.PreferredPrefix(cur))
		cur = eng.CyclicSliding(cur)
	}
	return cur, c
}

// Transport computes the transport of f at b for sliding, per
// Gebhardt & González-Meneses, "The cyclic sliding operation in
// Garside groups" (2008).
func Transport[P comparable, F any](eng element.Engine[P, F], k factor.Kind[P, F], b *element.Element[P, F], f F) F {
	p := b.Parameter
	b2 := eng.ConjugateByFactor(b, f)

	notPP := eng.Invert(eng.FromFactor(eng.PreferredPrefix(b), b.Form))
	b3 := notPP
	eng.RightMultiplyFactor(b3, f)
	eng.RightMultiplyElement(b3, eng.FromFactor(eng.PreferredPrefix(b2), b2.Form))

	switch {
	case b3.CanonicalLength() > 0:
		return eng.First(b3)
	case b3.Inf == 1:
		return k.Delta(p)
	default:
		return k.Identity(p)
	}
}

// TransportsSendingToTrajectory iterates Transport starting from f until
// a repetition occurs, then drops the prefix before the repeated value
// first appeared. b is assumed to be in its sliding circuits set; f is
// assumed to conjugate b to its super summit set.
func TransportsSendingToTrajectory[P comparable, F any](eng element.Engine[P, F], k factor.Kind[P, F], b *element.Element[P, F], f F) []F {
	n := len(SlidingTrajectory(eng, k, b))

	var ret []F
	seen := newFactorSet(k)
	g := f
	for !seen.has(g) {
		ret = append(ret, g)
		seen.add(g, len(ret)-1)

		b1 := b
		for i := 0; i < n; i++ {
			g = Transport(eng, k, b1, g)
			b1 = eng.CyclicSliding(b1)
		}
	}

	idx := seen.index(g)
	return ret[idx:]
}

// Pullback computes the pullback for sliding of f at b, per
// Gebhardt & González-Meneses, "Solving the Conjugacy Problem in
// Garside Groups by Cyclic Sliding" (2010).
func Pullback[P comparable, F any](eng element.Engine[P, F], k factor.Kind[P, F], b *element.Element[P, F], f F) F {
	p := b.Parameter
	b2 := eng.FromFactor(eng.PreferredPrefix(b), b.Form)
	eng.RightMultiplyFactor(b2, f)
	b2RCF := eng.ToRCF(b2)

	b3 := eng.CyclicSliding(b)
	b3 = eng.ConjugateByFactor(b3, f)
	b3RCF := eng.ToRCF(b3)
	f2 := eng.PreferredSuffix(b3RCF)

	return pullbackReduce(eng, k, b2RCF, f2, p)
}

// pullbackReduce right-divides b2 (in RCF) by the right meet of b2 and
// f2, then classifies the quotient into identity, Delta, or its own
// first factor.
func pullbackReduce[P comparable, F any](eng element.Engine[P, F], k factor.Kind[P, F], b2RCF *element.Element[P, F], f2 F, p P) F {
	f2Elem := eng.FromFactor(f2, element.RCF)
	meet := eng.RightMeet(b2RCF, f2Elem)
	quotient := b2RCF.Clone()
	eng.RightMultiplyElement(quotient, eng.Invert(meet))

	switch {
	case quotient.CanonicalLength() == 0 && quotient.Inf == 0:
		return k.Identity(p)
	case quotient.CanonicalLength() == 0:
		return k.Delta(p)
	default:
		return eng.First(quotient)
	}
}

// MainPullback iterates Pullback down the sliding trajectory of b until
// a value repeats, and returns that first repeated value. Delta is
// returned immediately.
func MainPullback[P comparable, F any](eng element.Engine[P, F], k factor.Kind[P, F], b *element.Element[P, F], f F) F {
	if factor.IsDelta(k, f) {
		return f
	}
	t := SlidingTrajectory(eng, k, b)

	seen := newFactorSet(k)
	f2 := f
	for !seen.has(f2) {
		seen.add(f2, 0)
		for i := len(t) - 1; i >= 0; i-- {
			f2 = Pullback(eng, k, t[i], f2)
		}
	}
	return f2
}

// MinSlidingCircuits computes the smallest factor above f that
// conjugates b to an element of its sliding circuits set. Unlike
// MinUltraSummit, this never fails: when neither the
// super-summit-derived transports nor the pullback-derived transports
// find a candidate above f, it falls back to Delta.
func MinSlidingCircuits[P comparable, F any](eng element.Engine[P, F], k factor.Kind[P, F], b, bRCF *element.Element[P, F], f F) F {
	f2 := MinSuperSummit(eng, k, b, bRCF, f)
	for _, cand := range TransportsSendingToTrajectory(eng, k, b, f2) {
		if above(k, f, cand) {
			return cand
		}
	}

	f2 = MainPullback(eng, k, b, f)
	for _, cand := range TransportsSendingToTrajectory(eng, k, b, f2) {
		if above(k, f, cand) {
			return cand
		}
	}

	return k.Delta(b.Parameter)
}

// MinSlidingCircuitsAll computes the sliding circuit indecomposable
// conjugators at b, mapped over every atom and deduplicated.
func MinSlidingCircuitsAll[P comparable, F any](eng element.Engine[P, F], k factor.Kind[P, F], b, bRCF *element.Element[P, F]) []F {
	atoms := k.Atoms(b.Parameter)
	factors := make([]F, len(atoms))
	for i, a := range atoms {
		factors[i] = MinSlidingCircuits(eng, k, b, bRCF, a)
	}
	return dedupMinimal(k, atoms, factors)
}

// SCS is the Sliding Circuits Set of a conjugacy class: a disjoint union
// of sliding circuits, identical in shape to USS. Immutable once built.
type SCS[P comparable, F any] struct {
	k       factor.Kind[P, F]
	circuit [][]*element.Element[P, F]
	index   map[uint64][]ussEntry[P, F]
}

func newSCS[P comparable, F any](k factor.Kind[P, F]) *SCS[P, F] {
	return &SCS[P, F]{k: k, index: make(map[uint64][]ussEntry[P, F])}
}

func (s *SCS[P, F]) insert(circuit []*element.Element[P, F]) {
	idx := len(s.circuit)
	s.circuit = append(s.circuit, circuit)
	for _, el := range circuit {
		h := element.Hash(s.k, el)
		s.index[h] = append(s.index[h], ussEntry[P, F]{el: el, orbit: idx})
	}
}

// Mem reports whether b is a member of s.
func (s *SCS[P, F]) Mem(b *element.Element[P, F]) bool {
	_, ok := s.find(b)
	return ok
}

func (s *SCS[P, F]) find(b *element.Element[P, F]) (ussEntry[P, F], bool) {
	h := element.Hash(s.k, b)
	for _, e := range s.index[h] {
		if element.Equal(s.k, e.el, b) {
			return e, true
		}
	}
	return ussEntry[P, F]{}, false
}

// FindCircuit returns the circuit index b belongs to.
func (s *SCS[P, F]) FindCircuit(b *element.Element[P, F]) int {
	e, _ := s.find(b)
	return e.orbit
}

// At returns the element at (circuitIndex, shift).
func (s *SCS[P, F]) At(circuitIndex, shift int) *element.Element[P, F] {
	return s.circuit[circuitIndex][shift]
}

// NumberOfCircuits returns the number of sliding circuits.
func (s *SCS[P, F]) NumberOfCircuits() int { return len(s.circuit) }

// CircuitSize returns the size (period) of the circuit at circuitIndex.
func (s *SCS[P, F]) CircuitSize(circuitIndex int) int { return len(s.circuit[circuitIndex]) }

// Card returns the total number of elements in s.
func (s *SCS[P, F]) Card() int {
	n := 0
	for _, c := range s.circuit {
		n += len(c)
	}
	return n
}

// All returns every element of s, circuit by circuit.
func (s *SCS[P, F]) All() []*element.Element[P, F] {
	out := make([]*element.Element[P, F], 0, s.Card())
	for _, c := range s.circuit {
		out = append(out, c...)
	}
	return out
}

// BuildSCS constructs the Sliding Circuits Set of b by BFS over
// MinSlidingCircuitsAll-generated conjugates. See BuildSSS for ctx's role.
func BuildSCS[P comparable, F any](ctx context.Context, eng element.Engine[P, F], k factor.Kind[P, F], b *element.Element[P, F]) (*SCS[P, F], error) {
	scs, _, _, err := buildSCSBookkeeping(ctx, eng, k, b)
	return scs, err
}

// BuildSCSBookkeeping is BuildSCS, additionally returning the BFS tree
// (mins, prev) consumed by TreePath. Exported for package conjugacy's
// conjugator reconstruction.
func BuildSCSBookkeeping[P comparable, F any](ctx context.Context, eng element.Engine[P, F], k factor.Kind[P, F], b *element.Element[P, F]) (*SCS[P, F], []F, []int, error) {
	return buildSCSBookkeeping(ctx, eng, k, b)
}

// buildSCSBookkeeping is BuildSCS, additionally returning the BFS tree
// (mins, prev) used to reconstruct conjugators.
func buildSCSBookkeeping[P comparable, F any](ctx context.Context, eng element.Engine[P, F], k factor.Kind[P, F], b *element.Element[P, F]) (*SCS[P, F], []F, []int, error) {
	scs := newSCS[P, F](k)
	var mins []F
	var prev []int

	b2 := SendToSCS(eng, k, b)
	b2RCF := eng.ToRCF(b2)

	mins = append(mins, k.Identity(b.Parameter))
	prev = append(prev, 0)
	scs.insert(SlidingTrajectory(eng, k, b2))

	queue := []*element.Element[P, F]{b2}
	queueRCF := []*element.Element[P, F]{b2RCF}
	current := 0

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, nil, nil, err
		}
		cur, curRCF := queue[0], queueRCF[0]
		queue, queueRCF = queue[1:], queueRCF[1:]

		for _, f := range MinSlidingCircuitsAll(eng, k, cur, curRCF) {
			next := eng.ConjugateByFactor(cur, f)
			if scs.Mem(next) {
				continue
			}
			nextRCF := eng.ConjugateByFactor(curRCF, f)
			scs.insert(SlidingTrajectory(eng, k, next))
			queue = append(queue, next)
			queueRCF = append(queueRCF, nextRCF)
			mins = append(mins, f)
			prev = append(prev, current)
		}
		current++
	}
	return scs, mins, prev, nil
}

// TreePath reconstructs a conjugator from the root of scs's BFS tree to
// b, assumed to be a member of scs: the product of preferred prefixes
// from the start of b's circuit up to b, preceded by mins[i] at each
// step walking back to the root.
func TreePath[P comparable, F any](eng element.Engine[P, F], k factor.Kind[P, F], scs *SCS[P, F], mins []F, prev []int, b *element.Element[P, F]) *element.Element[P, F] {
	c := eng.Identity(b.Parameter, element.LCF)
	if b.CanonicalLength() == 0 {
		return c
	}

	current := scs.FindCircuit(b)
	for shift := 0; shift < scs.CircuitSize(current) && !element.Equal(k, scs.At(current, shift), b); shift++ {
		eng.RightMultiplyFactor(c, eng.PreferredPrefix(scs.At(current, shift)))
	}

	for current != 0 {
		eng.LeftMultiplyFactor(c, mins[current])
		current = prev[current]
	}
	return c
}
