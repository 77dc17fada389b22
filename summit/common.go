package summit

import (
	"github.com/go-garcide/garcide/element"
	"github.com/go-garcide/garcide/factor"
)

// set is a hash-bucketed membership set of LCF elements, used by every
// summit BFS to detect when a newly-conjugated element has already been
// discovered.
type set[P comparable, F any] struct {
	k       factor.Kind[P, F]
	buckets map[uint64][]*element.Element[P, F]
}

func newSet[P comparable, F any](k factor.Kind[P, F]) *set[P, F] {
	return &set[P, F]{k: k, buckets: make(map[uint64][]*element.Element[P, F])}
}

func (s *set[P, F]) has(x *element.Element[P, F]) bool {
	h := element.Hash(s.k, x)
	for _, y := range s.buckets[h] {
		if element.Equal(s.k, x, y) {
			return true
		}
	}
	return false
}

func (s *set[P, F]) add(x *element.Element[P, F]) {
	h := element.Hash(s.k, x)
	s.buckets[h] = append(s.buckets[h], x)
}

func (s *set[P, F]) len() int {
	n := 0
	for _, b := range s.buckets {
		n += len(b)
	}
	return n
}

func (s *set[P, F]) all() []*element.Element[P, F] {
	out := make([]*element.Element[P, F], 0, s.len())
	for _, b := range s.buckets {
		out = append(out, b...)
	}
	return out
}

// divides reports whether a left-divides f: a ∧ᴸ f == a.
func divides[P comparable, F any](k factor.Kind[P, F], a, f F) bool {
	return k.Equal(k.LeftMeet(a, f), a)
}

// dedupMinimal implements the atom-divisibility dedup pass shared by
// every min_*_summit computation: given the per-atom results, discard
// any factor that is above (a divisor of which is) a smaller atom's own
// result already retained.
func dedupMinimal[P comparable, F any](k factor.Kind[P, F], atoms, factors []F) []F {
	table := make([]bool, len(atoms))
	var out []F
	for i, f := range factors {
		should := true
		for j := 0; j < i && should; j++ {
			should = !(table[j] && divides(k, atoms[j], f))
		}
		for j := i + 1; j < len(atoms) && should; j++ {
			should = !divides(k, atoms[j], f)
		}
		if should {
			out = append(out, f)
			table[i] = true
		}
	}
	return out
}

// remainder computes, for a positive element w (Inf must be 0) and
// factor a, the simple factor s such that w*s is the left lcm of w and
// the element wrapping a (BraidTemplate::remainder).
func remainder[P comparable, F any](eng element.Engine[P, F], k factor.Kind[P, F], w *element.Element[P, F], a F) F {
	if w.Inf != 0 {
		return k.Identity(w.Parameter)
	}
	return foldRemainder(k, w.Factors, a)
}

// foldRemainder is the inner loop shared by remainder and pullback: fold
// a (left_join, right_complement) reduction of a factor list into an
// accumulator, starting from init.
func foldRemainder[P comparable, F any](k factor.Kind[P, F], factors []F, init F) F {
	fi := init
	for _, u := range factors {
		fi = k.RightComplement(u, factor.LeftJoin(k, u, fi))
	}
	return fi
}

// factorSet is a hash-bucketed membership set of factors, used to detect
// repetition in the transport/pullback fixpoint iterations.
type factorSet[P comparable, F any] struct {
	k       factor.Kind[P, F]
	buckets map[uint64][]F
	at      map[uint64][]int
}

func newFactorSet[P comparable, F any](k factor.Kind[P, F]) *factorSet[P, F] {
	return &factorSet[P, F]{k: k, buckets: make(map[uint64][]F), at: make(map[uint64][]int)}
}

func (s *factorSet[P, F]) has(f F) bool {
	h := s.k.Hash(f)
	for _, g := range s.buckets[h] {
		if s.k.Equal(f, g) {
			return true
		}
	}
	return false
}

// index returns the insertion index of f, or -1 if absent.
func (s *factorSet[P, F]) index(f F) int {
	h := s.k.Hash(f)
	for i, g := range s.buckets[h] {
		if s.k.Equal(f, g) {
			return s.at[h][i]
		}
	}
	return -1
}

func (s *factorSet[P, F]) add(f F, idx int) {
	h := s.k.Hash(f)
	s.buckets[h] = append(s.buckets[h], f)
	s.at[h] = append(s.at[h], idx)
}
