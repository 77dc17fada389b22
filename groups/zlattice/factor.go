package zlattice

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/go-garcide/garcide/factor"
)

// MaxElements bounds n to the width of Mask.
const MaxElements = 63

// Factor is a subset of {1,...,N}, stored as a bitmask (bit i-1 set
// means i is in the subset).
type Factor struct {
	N    int
	Mask uint64
}

// Kind is the factor.Kind[int, Factor] implementation. The zero value is
// ready to use.
type Kind struct{}

var _ factor.Kind[int, Factor] = Kind{}

func (Kind) Parameter(f Factor) int { return f.N }

func (Kind) ParameterOfString(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", factor.ErrInvalidString, s)
	}
	if n < 1 || n > MaxElements {
		return 0, fmt.Errorf("%w: n=%d must be in [1, %d]", factor.ErrInvalidString, n, MaxElements)
	}
	return n, nil
}

func (Kind) Identity(p int) Factor { return Factor{N: p} }

func (Kind) Delta(p int) Factor {
	return Factor{N: p, Mask: (uint64(1) << uint(p)) - 1}
}

func (Kind) LatticeHeight(p int) int { return p }

func (Kind) Equal(a, b Factor) bool { return a.N == b.N && a.Mask == b.Mask }

func (Kind) Hash(f Factor) uint64 { return f.Mask*1099511628211 + uint64(f.N) }

// LeftMeet and RightMeet coincide: set intersection is commutative.
func (Kind) LeftMeet(a, b Factor) Factor  { return Factor{N: a.N, Mask: a.Mask & b.Mask} }
func (Kind) RightMeet(a, b Factor) Factor { return Factor{N: a.N, Mask: a.Mask & b.Mask} }

// Product is disjoint union; a*b assumes a.Mask & b.Mask == 0.
func (Kind) Product(a, b Factor) Factor { return Factor{N: a.N, Mask: a.Mask | b.Mask} }

// LeftComplement and RightComplement both reduce to set difference since
// the monoid is commutative: c = b \ a, with either c*a = b or a*c = b
// holding identically.
func (Kind) LeftComplement(a, b Factor) Factor {
	return Factor{N: a.N, Mask: b.Mask &^ a.Mask}
}
func (Kind) RightComplement(a, b Factor) Factor {
	return Factor{N: a.N, Mask: b.Mask &^ a.Mask}
}

// DeltaConjugate is the identity map: the group is abelian.
func (Kind) DeltaConjugate(f Factor, _ int) Factor { return f }

func (Kind) Atoms(p int) []Factor {
	atoms := make([]Factor, p)
	for i := 0; i < p; i++ {
		atoms[i] = Factor{N: p, Mask: uint64(1) << uint(i)}
	}
	return atoms
}

// Randomize includes each element independently with probability 1/2.
func (Kind) Randomize(p int, rng *rand.Rand) (Factor, error) {
	var mask uint64
	for i := 0; i < p; i++ {
		if rng.Intn(2) == 1 {
			mask |= uint64(1) << uint(i)
		}
	}
	return Factor{N: p, Mask: mask}, nil
}

// Parse extracts one factor: 'D' (full set), '0' (empty set), a bare
// integer i (the singleton {i}), or a brace-delimited list '{i,j,...}'.
func (Kind) Parse(str string, pos *int, p int) (Factor, error) {
	i := *pos
	if i < len(str) && str[i] == 'D' {
		*pos = i + 1
		return Kind{}.Delta(p), nil
	}
	if i < len(str) && str[i] == '0' && (i+1 >= len(str) || !isDigit(str[i+1])) {
		*pos = i + 1
		return Factor{N: p}, nil
	}
	if i < len(str) && str[i] == '{' {
		end := strings.IndexByte(str[i:], '}')
		if end < 0 {
			return Factor{}, fmt.Errorf("%w: unterminated '{' at position %d", factor.ErrInvalidString, i)
		}
		body := str[i+1 : i+end]
		var mask uint64
		if strings.TrimSpace(body) != "" {
			for _, tok := range strings.Split(body, ",") {
				idx, err := strconv.Atoi(strings.TrimSpace(tok))
				if err != nil || idx < 1 || idx > p {
					return Factor{}, fmt.Errorf("%w: bad subset element %q", factor.ErrInvalidString, tok)
				}
				mask |= uint64(1) << uint(idx-1)
			}
		}
		*pos = i + end + 1
		return Factor{N: p, Mask: mask}, nil
	}
	start := i
	for i < len(str) && isDigit(str[i]) {
		i++
	}
	if start == i {
		return Factor{}, fmt.Errorf("%w: no factor found at position %d", factor.ErrInvalidString, *pos)
	}
	idx, err := strconv.Atoi(str[start:i])
	if err != nil || idx < 1 || idx > p {
		return Factor{}, fmt.Errorf("%w: element %d is not in [1, %d]", factor.ErrInvalidString, idx, p)
	}
	*pos = i
	return Factor{N: p, Mask: uint64(1) << uint(idx-1)}, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// Print renders the subset as "D", "0", a bare index for singletons, or
// a brace-delimited sorted list.
func (Kind) Print(f Factor) string {
	if f.Mask == (Kind{}).Delta(f.N).Mask {
		return "D"
	}
	if f.Mask == 0 {
		return "0"
	}
	var elems []int
	for i := 0; i < f.N; i++ {
		if f.Mask&(uint64(1)<<uint(i)) != 0 {
			elems = append(elems, i+1)
		}
	}
	sort.Ints(elems)
	if len(elems) == 1 {
		return strconv.Itoa(elems[0])
	}
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = strconv.Itoa(e)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
