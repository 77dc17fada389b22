package thurston_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-garcide/garcide/element"
	"github.com/go-garcide/garcide/groups/artin"
	"github.com/go-garcide/garcide/thurston"
)

func artinElement(n int, atomIndices ...int) *element.Element[int, artin.Factor] {
	k := artin.Kind{}
	e := element.New[int, artin.Factor](k)
	atoms := k.Atoms(n)
	b := e.Identity(n, element.LCF)
	for _, i := range atomIndices {
		e.RightMultiplyFactor(b, atoms[i])
	}
	return b
}

func TestTableauDiagonalMatchesPermutation(t *testing.T) {
	k := artin.Kind{}
	delta := k.Delta(4)
	tab := thurston.Tableau(delta)
	require.Len(t, tab, 4)
	for i := 0; i < 4; i++ {
		require.Equal(t, delta.Perm[i+1], tab[i][i])
	}
}

// (s1*s2)^3 = Delta^2 in B_3 (direct permutation composition: s1*s2 is
// the 3-cycle 1->3->2->1, whose cube is the identity permutation, and
// Delta^2 is central with trivial permutation image), so s1*s2 is a
// periodic braid: Classify must detect this from the power alone,
// before ever consulting the orbit argument.
func TestClassifyPeriodicBraid(t *testing.T) {
	k := artin.Kind{}
	e := element.New[int, artin.Factor](k)
	const n = 3

	b := artinElement(n, 0, 1)
	got := thurston.Classify(k, e, b, nil)
	require.Equal(t, thurston.Periodic, got)
}

// A braid generator touching only a proper subset of the strands (here
// s1 in B_4, which only braids strands 1 and 2) always preserves the
// circle separating its support from the untouched strands, so it is
// reducible by definition; the orbit slice here is a (trivial)
// single-element orbit containing the braid itself.
func TestClassifyReducibleBraid(t *testing.T) {
	k := artin.Kind{}
	e := element.New[int, artin.Factor](k)
	const n = 4

	b := artinElement(n, 0)
	got := thurston.Classify(k, e, b, []*element.Element[int, artin.Factor]{b})
	require.Equal(t, thurston.Reducible, got)
}

// With an empty orbit slice, PreservesCircles is never consulted (there
// is nothing to range over), so Classify can only return Periodic or
// PseudoAnosov — never Reducible. This holds for any b, by construction
// of Classify's control flow, independent of which of the two a given
// braid actually is.
func TestClassifyNeverReportsReducibleWithEmptyOrbit(t *testing.T) {
	k := artin.Kind{}
	e := element.New[int, artin.Factor](k)
	const n = 4

	b := artinElement(n, 0, 1, 2)
	got := thurston.Classify(k, e, b, nil)
	require.NotEqual(t, thurston.Reducible, got)
}
