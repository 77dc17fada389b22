package artin

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/go-garcide/garcide/factor"
)

// MaxStrands bounds the number of strands a Factor may carry, mirroring
// the compile-time scratch-buffer bound of the original C++ library.
const MaxStrands = 256

// Factor is a simple element of B_n: the positive permutation braid
// associated with a permutation of {1,...,n}. Perm is 1-indexed; Perm[0]
// is unused. Perm[i] is the strand position that the strand starting at
// position i ends at.
type Factor struct {
	N    int
	Perm []int
}

// Kind is the factor.Kind[int, Factor] implementation for classical
// braid groups. The zero value is ready to use.
type Kind struct{}

var _ factor.Kind[int, Factor] = Kind{}

func newFactor(n int) Factor {
	return Factor{N: n, Perm: make([]int, n+1)}
}

func (Kind) Parameter(f Factor) int { return f.N }

func (Kind) ParameterOfString(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer strand count", factor.ErrInvalidString, s)
	}
	if n < 2 || n > MaxStrands {
		return 0, fmt.Errorf("%w: strand count %d must be in [2, %d]", factor.ErrInvalidString, n, MaxStrands)
	}
	return n, nil
}

func (Kind) Identity(p int) Factor {
	f := newFactor(p)
	for i := 1; i <= p; i++ {
		f.Perm[i] = i
	}
	return f
}

func (Kind) Delta(p int) Factor {
	f := newFactor(p)
	for i := 1; i <= p; i++ {
		f.Perm[i] = p + 1 - i
	}
	return f
}

func (Kind) LatticeHeight(p int) int { return p * (p - 1) / 2 }

func (Kind) Equal(a, b Factor) bool {
	if a.N != b.N {
		return false
	}
	for i := 1; i <= a.N; i++ {
		if a.Perm[i] != b.Perm[i] {
			return false
		}
	}
	return true
}

// Hash matches Underlying::hash from the reference implementation.
func (Kind) Hash(f Factor) uint64 {
	var h uint64
	for i := 1; i <= f.N; i++ {
		h = h*31 + uint64(f.Perm[i])
	}
	return h
}

func invertPerm(f Factor) Factor {
	g := newFactor(f.N)
	for i := 1; i <= f.N; i++ {
		g.Perm[f.Perm[i]] = i
	}
	return g
}

// Product computes a*b as permutation composition: apply a's permutation
// then b's, matching Underlying::product.
func (Kind) Product(a, b Factor) Factor {
	f := newFactor(a.N)
	for i := 1; i <= a.N; i++ {
		f.Perm[i] = b.Perm[a.Perm[i]]
	}
	return f
}

// LeftComplement returns c with c*a = b, computed as b*a^-1 (Underlying::left_complement).
func (k Kind) LeftComplement(a, b Factor) Factor {
	return k.Product(b, invertPerm(a))
}

// RightComplement returns c with a*c = b, computed as a^-1*b (Underlying::right_complement).
func (k Kind) RightComplement(a, b Factor) Factor {
	return k.Product(invertPerm(a), b)
}

// DeltaConjugate returns Delta^-k * f * Delta^k. Delta squared is central
// in B_n, so only the parity of k matters (Underlying::delta_conjugate_mut).
func (Kind) DeltaConjugate(f Factor, k int) Factor {
	n := f.N
	if k%2 == 0 {
		out := newFactor(n)
		copy(out.Perm, f.Perm)
		return out
	}
	out := newFactor(n)
	copy(out.Perm, f.Perm)
	for i := 1; i <= n/2; i++ {
		u := f.Perm[i]
		out.Perm[i] = n - f.Perm[n-i+1] + 1
		out.Perm[n-i+1] = n - u + 1
	}
	if n%2 != 0 {
		out.Perm[n/2+1] = n - f.Perm[n/2+1] + 1
	}
	return out
}

func (Kind) Atoms(p int) []Factor {
	atoms := make([]Factor, 0, p-1)
	for i := 1; i <= p-1; i++ {
		a := newFactor(p)
		for j := 1; j <= p; j++ {
			a.Perm[j] = j
		}
		a.Perm[i], a.Perm[i+1] = i+1, i
		atoms = append(atoms, a)
	}
	return atoms
}

// Randomize draws a uniformly random permutation via a Knuth shuffle
// (Underlying::randomize).
func (Kind) Randomize(p int, rng *rand.Rand) (Factor, error) {
	f := newFactor(p)
	for i := 1; i <= p; i++ {
		f.Perm[i] = i
	}
	for i := 1; i < p; i++ {
		j := i + rng.Intn(p-i+1)
		f.Perm[i], f.Perm[j] = f.Perm[j], f.Perm[i]
	}
	return f, nil
}

// Parse extracts one factor matching ('s' '_'?)? INT | 'D' (Underlying::of_string).
func (Kind) Parse(str string, pos *int, p int) (Factor, error) {
	i := *pos
	if i < len(str) && str[i] == 'D' {
		*pos = i + 1
		return Kind{}.Delta(p), nil
	}
	if i < len(str) && str[i] == 's' {
		i++
		if i < len(str) && str[i] == '_' {
			i++
		}
	}
	start := i
	for i < len(str) && str[i] >= '0' && str[i] <= '9' {
		i++
	}
	if start == i {
		return Factor{}, fmt.Errorf("%w: no generator or 'D' found at position %d", factor.ErrInvalidString, *pos)
	}
	idx, err := strconv.Atoi(str[start:i])
	if err != nil {
		return Factor{}, fmt.Errorf("%w: %v", factor.ErrInvalidString, err)
	}
	if idx < 1 || idx >= p {
		return Factor{}, fmt.Errorf("%w: generator index %d is not in [1, %d)", factor.ErrInvalidString, idx, p)
	}
	*pos = i
	f := Kind{}.Identity(p)
	f.Perm[idx], f.Perm[idx+1] = idx+1, idx
	return f, nil
}

// Print renders f as a word of generators by insertion-sorting the
// permutation table, exactly as Underlying::print does.
func (Kind) Print(f Factor) string {
	perm := make([]int, len(f.Perm))
	copy(perm, f.Perm)
	var sb strings.Builder
	first := true
	for i := 2; i <= f.N; i++ {
		for j := i; j > 1 && perm[j] < perm[j-1]; j-- {
			if !first {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "s%d", j-1)
			first = false
			perm[j], perm[j-1] = perm[j-1], perm[j]
		}
	}
	return sb.String()
}
