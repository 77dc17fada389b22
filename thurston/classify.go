package thurston

import (
	"github.com/go-garcide/garcide/element"
	"github.com/go-garcide/garcide/groups/artin"
)

// Type is a braid's Nielsen-Thurston classification.
type Type int

const (
	Periodic Type = iota
	Reducible
	PseudoAnosov
)

func (t Type) String() string {
	switch t {
	case Periodic:
		return "periodic"
	case Reducible:
		return "reducible"
	default:
		return "pseudo-Anosov"
	}
}

// Tableau builds the permutation tableau of f (Underlying::tableau): an
// n x n table whose diagonal is f's one-line permutation, upper-right
// triangle holds running maxima, and lower-left triangle running minima.
// These are used by PreservesCircles to detect "band generator" circle
// systems (the González-Meneses reducibility test).
func Tableau(f artin.Factor) [][]int {
	n := f.N
	tab := make([][]int, n)
	for i := range tab {
		tab[i] = make([]int, n)
	}
	for i := 0; i < n; i++ {
		tab[i][i] = f.Perm[i+1]
	}
	for j := 1; j <= n-1; j++ {
		for i := 0; i <= n-1-j; i++ {
			tab[i][i+j] = max(tab[i][i+j-1], tab[i+1][i+j])
		}
	}
	for j := 1; j <= n-1; j++ {
		for i := j; i <= n-1; i++ {
			tab[i][i-j] = min(tab[i-1][i-j], tab[i][i-j+1])
		}
	}
	return tab
}

// PreservesCircles reports whether b, in LCF, preserves some essential
// system of circles — the reducibility test of
// Underlying::preserves_circles / preserves_circles(Braid).
func PreservesCircles(k artin.Kind, b *element.Element[int, artin.Factor]) bool {
	n := b.Parameter
	delta := 0
	if b.Inf%2 != 0 {
		delta = 1
	}
	cl := b.CanonicalLength()

	tabarray := make([][][]int, cl+delta)
	idx := 0
	if delta == 1 {
		tabarray[0] = Tableau(k.Delta(n))
		idx = 1
	}
	for _, f := range b.Factors {
		tabarray[idx] = Tableau(f)
		idx++
	}

	bkmove := make([]int, n+1)
	disj := make([]int, n+1)
	itype := false

outer:
	for j := 2; j < n; j++ {
		for kk := 1; kk <= n-j+1; kk++ {
			bk := kk
			for t := 0; t < len(tabarray); t++ {
				if tabarray[t][bk-1][j+bk-2]-tabarray[t][j+bk-2][bk-1] == j-1 {
					bk = tabarray[t][j+bk-2][bk-1]
				} else {
					bk = 0
					break
				}
			}
			if bk == kk {
				itype = true
				break outer
			} else if bk-kk < j && kk-bk < j {
				bk = 0
			}
			bkmove[kk] = bk
		}

		for kk := 1; kk <= n-j+1; kk++ {
			for d := 1; d <= n; d++ {
				disj[d] = 1
			}
			bk := kk
			for bk != 0 {
				if bkmove[bk] == kk {
					itype = true
					break outer
				}
				for d := bk - j + 1; d <= bk+j-1; d++ {
					if d >= 1 && d <= n && d != kk {
						disj[d] = 0
					}
				}
				bk = bkmove[bk]
				if bk != 0 && disj[bk] == 0 {
					bk = 0
				}
			}
		}
	}

	return itype
}

// Classify determines b's Nielsen-Thurston type (thurston_type). orbit
// lists representative braids of b's ultra summit set's orbits (or
// sliding circuits); any one preserving a circle system marks b
// reducible. b and every element of orbit must be in LCF.
func Classify(k artin.Kind, eng element.Engine[int, artin.Factor], b *element.Element[int, artin.Factor], orbit []*element.Element[int, artin.Factor]) Type {
	n := b.Parameter
	pow := b.Clone()
	for i := 0; i < n; i++ {
		if pow.CanonicalLength() == 0 {
			return Periodic
		}
		eng.RightMultiplyElement(pow, b)
	}

	for _, rep := range orbit {
		if PreservesCircles(k, rep) {
			return Reducible
		}
	}

	return PseudoAnosov
}
