package factor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-garcide/garcide/factor"
	"github.com/go-garcide/garcide/groups/zlattice"
)

// The boolean-subset lattice (zlattice.Kind) makes an easy ground truth
// for the kind-agnostic helpers in package factor: meet is intersection,
// join is union, and complement-to-Delta is set difference, so every
// law below can be checked by hand against the bitmask arithmetic.

func TestComplementToDeltaIsSetDifference(t *testing.T) {
	k := zlattice.Kind{}
	const n = 4
	for mask := uint64(0); mask < 1<<n; mask++ {
		a := zlattice.Factor{N: n, Mask: mask}

		rc := factor.RightComplementToDelta[int, zlattice.Factor](k, a)
		require.Equal(t, k.Delta(n).Mask, a.Mask|rc.Mask, "a union its right complement must be Delta")
		require.Equal(t, uint64(0), a.Mask&rc.Mask, "a and its right complement must be disjoint")

		lc := factor.LeftComplementToDelta[int, zlattice.Factor](k, a)
		require.Equal(t, rc.Mask, lc.Mask, "left/right complement to Delta coincide in an abelian lattice")
	}
}

func TestLeftJoinIsUnion(t *testing.T) {
	k := zlattice.Kind{}
	const n = 4
	for a := uint64(0); a < 1<<n; a++ {
		for b := uint64(0); b < 1<<n; b++ {
			fa := zlattice.Factor{N: n, Mask: a}
			fb := zlattice.Factor{N: n, Mask: b}

			join := factor.LeftJoin[int, zlattice.Factor](k, fa, fb)
			require.Equal(t, a|b, join.Mask)

			rjoin := factor.RightJoin[int, zlattice.Factor](k, fa, fb)
			require.Equal(t, a|b, rjoin.Mask)
		}
	}
}

func TestIsIdentityIsDelta(t *testing.T) {
	k := zlattice.Kind{}
	const n = 3
	require.True(t, factor.IsIdentity[int, zlattice.Factor](k, zlattice.Factor{N: n}))
	require.False(t, factor.IsIdentity[int, zlattice.Factor](k, zlattice.Factor{N: n, Mask: 1}))
	require.True(t, factor.IsDelta[int, zlattice.Factor](k, k.Delta(n)))
	require.False(t, factor.IsDelta[int, zlattice.Factor](k, zlattice.Factor{N: n, Mask: 1}))
}

func TestMapAtomsOrderedPreservesOrder(t *testing.T) {
	k := zlattice.Kind{}
	atoms := k.Atoms(5)
	out := factor.MapAtomsOrdered(atoms, func(f zlattice.Factor) uint64 { return f.Mask })
	for i, m := range out {
		require.Equal(t, atoms[i].Mask, m)
	}
}

func TestMapAtomsParallelMatchesOrderedOnLargeInput(t *testing.T) {
	k := zlattice.Kind{}
	atoms := k.Atoms(63)
	ordered := factor.MapAtomsOrdered(atoms, func(f zlattice.Factor) uint64 { return f.Mask })
	parallel := factor.MapAtomsParallel(atoms, func(f zlattice.Factor) uint64 { return f.Mask })
	require.Equal(t, ordered, parallel)
}
