package summit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-garcide/garcide/element"
	"github.com/go-garcide/garcide/groups/artin"
	"github.com/go-garcide/garcide/groups/zlattice"
	"github.com/go-garcide/garcide/summit"
)

// The Z-lattice kind is commutative, so conjugation is trivial: every
// element is its own super/ultra/sliding summit set. This gives a cheap,
// hand-verifiable ground truth for the BFS plumbing in this package
// without needing to predict a nontrivial summit set by hand.

func zlatticeElement(n int, masks ...uint64) *element.Element[int, zlattice.Factor] {
	k := zlattice.Kind{}
	e := element.New[int, zlattice.Factor](k)
	b := e.Identity(n, element.LCF)
	for _, m := range masks {
		e.RightMultiplyFactor(b, zlattice.Factor{N: n, Mask: m})
	}
	return b
}

func TestSendToSSSIsIdempotentOnAbelianGroup(t *testing.T) {
	k := zlattice.Kind{}
	e := element.New[int, zlattice.Factor](k)
	b := zlatticeElement(6, 0b0011, 0b0100)

	once := summit.SendToSSS(e, k, b)
	twice := summit.SendToSSS(e, k, once)
	require.True(t, element.Equal[int, zlattice.Factor](k, once, twice))
}

func TestBuildSSSIsSingletonOnAbelianGroup(t *testing.T) {
	k := zlattice.Kind{}
	e := element.New[int, zlattice.Factor](k)
	b := zlatticeElement(6, 0b0011, 0b0100)

	s, err := summit.BuildSSS(context.Background(), e, k, b)
	require.NoError(t, err)
	require.Len(t, s, 1)
}

func TestBuildUSSIsSingletonOrbitOnAbelianGroup(t *testing.T) {
	k := zlattice.Kind{}
	e := element.New[int, zlattice.Factor](k)
	b := zlatticeElement(5, 0b00011, 0b01000)

	u, err := summit.BuildUSS(context.Background(), e, k, b)
	require.NoError(t, err)
	require.Equal(t, 1, u.NumberOfOrbits())
	require.Equal(t, 1, u.Card())
}

func TestBuildSCSIsSingletonOnAbelianGroup(t *testing.T) {
	k := zlattice.Kind{}
	e := element.New[int, zlattice.Factor](k)
	b := zlatticeElement(5, 0b00011, 0b01000)

	s, err := summit.BuildSCS(context.Background(), e, k, b)
	require.NoError(t, err)
	require.Equal(t, 1, s.Card())
}

// In the Artin kind, SendToSSSConjugator/SendToUSSConjugator must return
// a conjugator that actually realizes the claimed conjugation: this is
// checked algebraically rather than by predicting the summit
// representative's exact factors by hand.

func TestSendToSSSConjugatorReconstructsResult(t *testing.T) {
	k := artin.Kind{}
	e := element.New[int, artin.Factor](k)
	const n = 3

	atoms := k.Atoms(n)
	b := e.Identity(n, element.LCF)
	e.RightMultiplyFactor(b, atoms[0])
	e.RightMultiplyFactor(b, atoms[0])
	e.RightMultiplyFactor(b, atoms[1])

	got, c := summit.SendToSSSConjugator(e, k, b)
	reconstructed := e.ConjugateByElement(b, c)
	require.True(t, element.Equal[int, artin.Factor](k, got, reconstructed))
}

func TestSendToUSSConjugatorReconstructsResult(t *testing.T) {
	k := artin.Kind{}
	e := element.New[int, artin.Factor](k)
	const n = 3

	atoms := k.Atoms(n)
	b := e.Identity(n, element.LCF)
	e.RightMultiplyFactor(b, atoms[0])
	e.RightMultiplyFactor(b, atoms[0])
	e.RightMultiplyFactor(b, atoms[1])

	got, c := summit.SendToUSSConjugator(e, k, b)
	reconstructed := e.ConjugateByElement(b, c)
	require.True(t, element.Equal[int, artin.Factor](k, got, reconstructed))
}

func TestBuildSSSContainsSendToSSSResult(t *testing.T) {
	k := artin.Kind{}
	e := element.New[int, artin.Factor](k)
	const n = 3

	atoms := k.Atoms(n)
	b := e.Identity(n, element.LCF)
	e.RightMultiplyFactor(b, atoms[0])
	e.RightMultiplyFactor(b, atoms[1])

	rep := summit.SendToSSS(e, k, b)
	s, err := summit.BuildSSS(context.Background(), e, k, b)
	require.NoError(t, err)

	found := false
	for _, x := range s {
		if element.Equal[int, artin.Factor](k, x, rep) {
			found = true
			break
		}
	}
	require.True(t, found, "SendToSSS's representative must be a member of BuildSSS's result")
}

func TestUSSIsSubsetOfSSSByCardinality(t *testing.T) {
	k := artin.Kind{}
	e := element.New[int, artin.Factor](k)
	const n = 3

	atoms := k.Atoms(n)
	b := e.Identity(n, element.LCF)
	e.RightMultiplyFactor(b, atoms[0])
	e.RightMultiplyFactor(b, atoms[0])
	e.RightMultiplyFactor(b, atoms[1])

	sss, err := summit.BuildSSS(context.Background(), e, k, b)
	require.NoError(t, err)
	uss, err := summit.BuildUSS(context.Background(), e, k, b)
	require.NoError(t, err)
	scs, err := summit.BuildSCS(context.Background(), e, k, b)
	require.NoError(t, err)

	require.LessOrEqual(t, scs.Card(), uss.Card())
	require.LessOrEqual(t, uss.Card(), len(sss))

	for _, x := range uss.All() {
		found := false
		for _, y := range sss {
			if element.Equal[int, artin.Factor](k, x, y) {
				found = true
				break
			}
		}
		require.True(t, found, "every USS element must also be an SSS element")
	}
}
