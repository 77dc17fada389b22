package summit

import (
	"context"

	"github.com/go-garcide/garcide/element"
	"github.com/go-garcide/garcide/factor"
)

// Trajectory cycles b until the first repetition and returns the
// sequence of distinct conjugates seen, in order. On a USS element the
// trajectory is exactly one cycling orbit.
func Trajectory[P comparable, F any](eng element.Engine[P, F], k factor.Kind[P, F], b *element.Element[P, F]) []*element.Element[P, F] {
	seen := newSet(k)
	var t []*element.Element[P, F]
	cur := b
	for !seen.has(cur) {
		t = append(t, cur)
		seen.add(cur)
		cur = eng.Cycling(cur)
	}
	return t
}

// trajectoryPair cycles b (and its RCF twin b_rcf) in lockstep until the
// first repetition of b, matching the C++ overload of trajectory that
// tracks both forms simultaneously (used by main_pullback, since going
// back and forth between forms is costly).
func trajectoryPair[P comparable, F any](eng element.Engine[P, F], k factor.Kind[P, F], b, bRCF *element.Element[P, F]) (t, tRCF []*element.Element[P, F]) {
	seen := newSet(k)
	cur, curRCF := b, bRCF
	for !seen.has(cur) {
		t = append(t, cur)
		tRCF = append(tRCF, curRCF)
		seen.add(cur)
		ini := eng.Initial(cur)
		curRCF = eng.ConjugateByFactor(curRCF, ini)
		cur = eng.Cycling(cur)
	}
	return t, tRCF
}

// SendToUSS sends b into its Ultra Summit Set: the SSS representative's
// cycling trajectory, cycled once more past its own period.
func SendToUSS[P comparable, F any](eng element.Engine[P, F], k factor.Kind[P, F], b *element.Element[P, F]) *element.Element[P, F] {
	bSSS := SendToSSS(eng, k, b)
	t := Trajectory(eng, k, bSSS)
	return eng.Cycling(t[len(t)-1])
}

// SendToUSSConjugator is SendToUSS, additionally returning a conjugator
// c with c^-1*b*c equal to the returned element.
func SendToUSSConjugator[P comparable, F any](eng element.Engine[P, F], k factor.Kind[P, F], b *element.Element[P, F]) (*element.Element[P, F], *element.Element[P, F]) {
	bSSS, c := SendToSSSConjugator(eng, k, b)
	t := Trajectory(eng, k, bSSS)
	bUSS := eng.Cycling(t[len(t)-1])

	for _, x := range t {
		if element.Equal(k, x, bUSS) {
			break
		}
		eng.RightMultiplyFactor(c, eng.Initial(x))
	}
	return bUSS, c
}

// Transport computes the transport of f at b for cycling, per
// Gebhardt's "A New Approach to the Conjugacy Problem in Garside
// Groups" (2003).
func Transport[P comparable, F any](eng element.Engine[P, F], k factor.Kind[P, F], b *element.Element[P, F], f F) F {
	p := b.Parameter
	b2 := eng.ConjugateByFactor(b, f)

	notBFirst := eng.Invert(eng.FromFactor(eng.First(b), b.Form))
	b3 := notBFirst
	eng.RightMultiplyFactor(b3, f)
	eng.RightMultiplyElement(b3, eng.FromFactor(eng.First(b2), b2.Form))

	if b3.CanonicalLength() == 0 {
		if b3.Inf > 0 {
			return k.Delta(p)
		}
		return k.Identity(p)
	}
	return eng.First(b3)
}

// TransportsSendingToTrajectory iterates Transport starting from f until
// a repetition occurs, then drops the prefix before the repeated value
// first appeared. b is assumed to be in its ultra summit set; f is
// assumed to conjugate b to its super summit set.
func TransportsSendingToTrajectory[P comparable, F any](eng element.Engine[P, F], k factor.Kind[P, F], b *element.Element[P, F], f F) []F {
	n := len(Trajectory(eng, k, b))

	c1 := eng.Identity(b.Parameter, element.LCF)
	b1 := b
	for i := 0; i < n; i++ {
		eng.RightMultiplyFactor(c1, k.DeltaConjugate(eng.First(b1), b1.Inf))
		b1 = eng.Cycling(b1)
	}
	c1Inv := eng.Invert(c1)

	var ret []F
	seen := newFactorSet(k)
	f1 := f
	for !seen.has(f1) {
		ret = append(ret, f1)
		seen.add(f1, len(ret)-1)

		b1 = eng.ConjugateByFactor(b, f1)
		c2 := eng.Identity(b.Parameter, element.LCF)
		for i := 0; i < n; i++ {
			eng.RightMultiplyFactor(c2, k.DeltaConjugate(eng.First(b1), b1.Inf))
			b1 = eng.Cycling(b1)
		}

		acc := c1Inv.Clone()
		eng.RightMultiplyFactor(acc, f1)
		eng.RightMultiplyElement(acc, c2)

		switch {
		case acc.CanonicalLength() == 0 && acc.Inf > 0:
			f1 = k.Delta(b.Parameter)
		case acc.CanonicalLength() == 0:
			f1 = k.Identity(b.Parameter)
		default:
			f1 = eng.First(acc)
		}
	}

	idx := seen.index(f1)
	return ret[idx:]
}

// Pullback computes the pullback for cycling of f at b. b_rcf must be b
// in RCF.
func Pullback[P comparable, F any](eng element.Engine[P, F], k factor.Kind[P, F], b, bRCF *element.Element[P, F], f F) F {
	p := b.Parameter
	f1 := k.DeltaConjugate(eng.First(b), b.Inf+1)
	f2 := k.DeltaConjugate(f, 1)

	acc := eng.FromFactor(f1, element.LCF)
	eng.RightMultiplyFactor(acc, f2)

	delta := k.Delta(p)
	rem := remainder(eng, k, acc, delta)
	eng.RightMultiplyFactor(acc, rem)
	acc.Inf--

	var f0 F
	switch {
	case acc.CanonicalLength() == 0 && acc.Inf > 0:
		f0 = k.Delta(p)
	case acc.CanonicalLength() == 0:
		f0 = k.Identity(p)
	default:
		f0 = eng.First(acc)
	}

	fi := k.DeltaConjugate(f, b.Inf)
	if len(b.Factors) > 1 {
		fi = foldRemainder(k, b.Factors[1:], fi)
	}

	return MinSuperSummit(eng, k, b, bRCF, factor.LeftJoin(k, f0, fi))
}

// MainPullback iterates Pullback down the trajectory of b until a
// periodic value appears, then returns the representative aligned with
// the discovered period.
func MainPullback[P comparable, F any](eng element.Engine[P, F], k factor.Kind[P, F], b, bRCF *element.Element[P, F], f F) F {
	t, tRCF := trajectoryPair(eng, k, b, bRCF)

	var ret []F
	seen := newFactorSet(k)
	f2 := f
	index := 0
	for !seen.has(f2) {
		ret = append(ret, f2)
		seen.add(f2, index)
		for i := len(t) - 1; i >= 0; i-- {
			f2 = Pullback(eng, k, t[i], tRCF[i], f2)
		}
		index++
	}

	found := seen.index(f2)
	l := len(ret) - found
	if found%l == 0 {
		return f2
	}
	return ret[(found/l+1)*l]
}

// above reports whether a left-divides f (f is "above" a in the
// ordering used by the minimal-conjugator search).
func above[P comparable, F any](k factor.Kind[P, F], f, candidate F) bool {
	return k.Equal(k.LeftMeet(f, candidate), f)
}

// MinUltraSummit computes the smallest factor above f that conjugates b
// to an element of its ultra summit set. b is assumed to already be in
// its ultra summit set; bRCF is b in RCF.
func MinUltraSummit[P comparable, F any](eng element.Engine[P, F], k factor.Kind[P, F], b, bRCF *element.Element[P, F], f F) (F, error) {
	var zero F

	f2 := MinSuperSummit(eng, k, b, bRCF, f)
	for _, cand := range TransportsSendingToTrajectory(eng, k, b, f2) {
		if above(k, f, cand) {
			return cand, nil
		}
	}

	f2 = MainPullback(eng, k, b, bRCF, f)
	for _, cand := range TransportsSendingToTrajectory(eng, k, b, f2) {
		if above(k, f, cand) {
			return cand, nil
		}
	}

	return zero, &NotUltraSummitError[P, F]{NotUltraSummit: b}
}

// MinUltraSummitAll computes the ultra summit indecomposable conjugators
// at b: the minimal non-trivial simple factors that conjugate b to its
// ultra summit set, mapped over every atom and deduplicated.
func MinUltraSummitAll[P comparable, F any](eng element.Engine[P, F], k factor.Kind[P, F], b, bRCF *element.Element[P, F]) ([]F, error) {
	atoms := k.Atoms(b.Parameter)
	factors := make([]F, len(atoms))
	for i, a := range atoms {
		f, err := MinUltraSummit(eng, k, b, bRCF, a)
		if err != nil {
			return nil, err
		}
		factors[i] = f
	}
	return dedupMinimal(k, atoms, factors), nil
}

// USS is the Ultra Summit Set of a conjugacy class: a disjoint union of
// cycling orbits. Immutable once built.
type USS[P comparable, F any] struct {
	k      factor.Kind[P, F]
	orbits [][]*element.Element[P, F]
	index  map[uint64][]ussEntry[P, F]
}

type ussEntry[P comparable, F any] struct {
	el    *element.Element[P, F]
	orbit int
}

func newUSS[P comparable, F any](k factor.Kind[P, F]) *USS[P, F] {
	return &USS[P, F]{k: k, index: make(map[uint64][]ussEntry[P, F])}
}

// insert appends an orbit, registering each of its elements for
// membership lookup.
func (u *USS[P, F]) insert(orbit []*element.Element[P, F]) {
	idx := len(u.orbits)
	u.orbits = append(u.orbits, orbit)
	for _, el := range orbit {
		h := element.Hash(u.k, el)
		u.index[h] = append(u.index[h], ussEntry[P, F]{el: el, orbit: idx})
	}
}

// Mem reports whether b is a member of u.
func (u *USS[P, F]) Mem(b *element.Element[P, F]) bool {
	_, ok := u.find(b)
	return ok
}

func (u *USS[P, F]) find(b *element.Element[P, F]) (ussEntry[P, F], bool) {
	h := element.Hash(u.k, b)
	for _, e := range u.index[h] {
		if element.Equal(u.k, e.el, b) {
			return e, true
		}
	}
	return ussEntry[P, F]{}, false
}

// FindOrbit returns the orbit index b belongs to.
func (u *USS[P, F]) FindOrbit(b *element.Element[P, F]) int {
	e, _ := u.find(b)
	return e.orbit
}

// At returns the element at (orbitIndex, shift).
func (u *USS[P, F]) At(orbitIndex, shift int) *element.Element[P, F] {
	return u.orbits[orbitIndex][shift]
}

// NumberOfOrbits returns the number of cycling orbits.
func (u *USS[P, F]) NumberOfOrbits() int { return len(u.orbits) }

// OrbitSize returns the size (period) of the orbit at orbitIndex.
func (u *USS[P, F]) OrbitSize(orbitIndex int) int { return len(u.orbits[orbitIndex]) }

// Card returns the total number of elements in u.
func (u *USS[P, F]) Card() int {
	n := 0
	for _, o := range u.orbits {
		n += len(o)
	}
	return n
}

// All returns every element of u, orbit by orbit.
func (u *USS[P, F]) All() []*element.Element[P, F] {
	out := make([]*element.Element[P, F], 0, u.Card())
	for _, o := range u.orbits {
		out = append(out, o...)
	}
	return out
}

// BuildUSS constructs the Ultra Summit Set of b by BFS over
// MinUltraSummitAll-generated conjugates, additionally inserting the
// Delta-twin of every newly discovered orbit (spec.md §4.3.6; the
// original's non-bookkeeping `USS(b)`, garsideuss.h, conjugates every
// freshly inserted element by Delta and adds the result as its own
// orbit when new). Cycling alone does not always connect an orbit to
// its Delta-conjugate orbit, so this step is required for completeness
// of enumeration — it is why the `uss` REPL command and the Thurston
// classification go through this path rather than BuildUSSBookkeeping.
// See BuildSSS for ctx's role.
func BuildUSS[P comparable, F any](ctx context.Context, eng element.Engine[P, F], k factor.Kind[P, F], b *element.Element[P, F]) (*USS[P, F], error) {
	uss := newUSS[P, F](k)
	delta := k.Delta(b.Parameter)

	insertWithTwin := func(el, elRCF *element.Element[P, F], queue, queueRCF *[]*element.Element[P, F]) {
		uss.insert(Trajectory(eng, k, el))
		*queue = append(*queue, el)
		*queueRCF = append(*queueRCF, elRCF)

		twin := eng.ConjugateByFactor(el, delta)
		if uss.Mem(twin) {
			return
		}
		twinRCF := eng.ConjugateByFactor(elRCF, delta)
		uss.insert(Trajectory(eng, k, twin))
		*queue = append(*queue, twin)
		*queueRCF = append(*queueRCF, twinRCF)
	}

	b2 := SendToUSS(eng, k, b)
	b2RCF := eng.ToRCF(b2)
	var queue, queueRCF []*element.Element[P, F]
	insertWithTwin(b2, b2RCF, &queue, &queueRCF)

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cur, curRCF := queue[0], queueRCF[0]
		queue, queueRCF = queue[1:], queueRCF[1:]

		factors, err := MinUltraSummitAll(eng, k, cur, curRCF)
		if err != nil {
			return nil, err
		}
		for _, f := range factors {
			next := eng.ConjugateByFactor(cur, f)
			if uss.Mem(next) {
				continue
			}
			nextRCF := eng.ConjugateByFactor(curRCF, f)
			insertWithTwin(next, nextRCF, &queue, &queueRCF)
		}
	}
	return uss, nil
}

// BuildUSSBookkeeping is the bookkeeping twin of BuildUSS: it constructs
// the Ultra Summit Set by BFS over MinUltraSummitAll-generated
// conjugates only, additionally returning the BFS tree (mins, prev)
// consumed by TreePath. It deliberately omits BuildUSS's Delta-twin
// insertion step, matching the original's own bookkeeping overload
// (garsideuss.h's `USS(b, mins, prev)`, as opposed to its plain `USS(b)`
// above it): a `prev`/`mins` spanning tree has no slot for a non-tree
// edge like "this orbit's twin is that orbit", so the two concerns are
// split exactly as upstream splits them. This is safe for package
// conjugacy's centralizer computation, which only needs a tree that
// reaches every orbit MinUltraSummitAll conjugation reaches, not
// necessarily the twin orbits a Delta-conjugation edge would add. See
// DESIGN.md for the full justification.
func BuildUSSBookkeeping[P comparable, F any](ctx context.Context, eng element.Engine[P, F], k factor.Kind[P, F], b *element.Element[P, F]) (*USS[P, F], []F, []int, error) {
	return buildUSSBookkeeping(ctx, eng, k, b)
}

// buildUSSBookkeeping is BuildUSSBookkeeping, additionally returning the
// BFS tree (mins, prev) used to reconstruct conjugators.
// prev[i] is the orbit that discovered orbit i; mins[i] is the simple
// factor realizing that discovery conjugation. The root has prev[0]=0,
// mins[0]=identity.
func buildUSSBookkeeping[P comparable, F any](ctx context.Context, eng element.Engine[P, F], k factor.Kind[P, F], b *element.Element[P, F]) (*USS[P, F], []F, []int, error) {
	uss := newUSS[P, F](k)
	var mins []F
	var prev []int

	b2 := SendToUSS(eng, k, b)
	b2RCF := eng.ToRCF(b2)

	mins = append(mins, k.Identity(b.Parameter))
	prev = append(prev, 0)
	uss.insert(Trajectory(eng, k, b2))

	queue := []*element.Element[P, F]{b2}
	queueRCF := []*element.Element[P, F]{b2RCF}
	current := 0

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, nil, nil, err
		}
		cur, curRCF := queue[0], queueRCF[0]
		queue, queueRCF = queue[1:], queueRCF[1:]

		factors, err := MinUltraSummitAll(eng, k, cur, curRCF)
		if err != nil {
			return nil, nil, nil, err
		}
		for _, f := range factors {
			next := eng.ConjugateByFactor(cur, f)
			if uss.Mem(next) {
				continue
			}
			nextRCF := eng.ConjugateByFactor(curRCF, f)
			uss.insert(Trajectory(eng, k, next))
			queue = append(queue, next)
			queueRCF = append(queueRCF, nextRCF)
			mins = append(mins, f)
			prev = append(prev, current)
		}
		current++
	}
	return uss, mins, prev, nil
}

// TreePath reconstructs a conjugator from the root of uss's BFS tree to
// b, assumed to be a member of uss: the chain of Initial factors from
// the start of b's orbit up to b, preceded by mins[i] at each step
// walking back to the root.
func TreePath[P comparable, F any](eng element.Engine[P, F], k factor.Kind[P, F], uss *USS[P, F], mins []F, prev []int, b *element.Element[P, F]) *element.Element[P, F] {
	c := eng.Identity(b.Parameter, element.LCF)
	if b.CanonicalLength() == 0 {
		return c
	}

	current := uss.FindOrbit(b)
	for shift := 0; shift < uss.OrbitSize(current) && !element.Equal(k, uss.At(current, shift), b); shift++ {
		eng.RightMultiplyFactor(c, eng.Initial(uss.At(current, shift)))
	}

	for current != 0 {
		eng.LeftMultiplyFactor(c, mins[current])
		current = prev[current]
	}
	return c
}
