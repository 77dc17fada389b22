package conjugacy_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-garcide/garcide/conjugacy"
	"github.com/go-garcide/garcide/element"
	"github.com/go-garcide/garcide/groups/artin"
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

// s1*s2 and s2*s1 are conjugate in B_3: each is a 3-cycle permutation
// and Delta conjugates s1 to s2, so Delta also conjugates s1*s2 to
// s2*s1's image under the same generator swap.
func TestAreConjugateFindsWitnessForPermutedWord(t *testing.T) {
	k := artin.Kind{}
	e := element.New[int, artin.Factor](k)
	const n = 3

	b1 := artinElement(n, 0, 1)
	b2 := artinElement(n, 1, 0)

	ok, witness, err := conjugacy.AreConjugate(context.Background(), e, k, b1, b2)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, witness)

	reconstructed := e.ConjugateByElement(b1, witness)
	require.True(t, element.Equal[int, artin.Factor](k, reconstructed, b2))
}

// Every element is conjugate to itself via the identity conjugator.
func TestAreConjugateReflexive(t *testing.T) {
	k := artin.Kind{}
	e := element.New[int, artin.Factor](k)
	const n = 4

	b := artinElement(n, 0, 1, 2)
	ok, witness, err := conjugacy.AreConjugate(context.Background(), e, k, b, b)
	require.NoError(t, err)
	require.True(t, ok)
	reconstructed := e.ConjugateByElement(b, witness)
	require.True(t, element.Equal[int, artin.Factor](k, reconstructed, b))
}

// The identity and a single generator have different canonical lengths
// (and supremums), so they can never be conjugate.
func TestAreConjugateRejectsDifferentSupremum(t *testing.T) {
	k := artin.Kind{}
	e := element.New[int, artin.Factor](k)
	const n = 3

	id := e.Identity(n, element.LCF)
	s1 := artinElement(n, 0)

	ok, witness, err := conjugacy.AreConjugate(context.Background(), e, k, id, s1)
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, witness)
}

// Every generator Centralizer returns for Delta must actually commute
// with Delta: g^-1 * Delta * g == Delta.
func TestCentralizerGeneratorsCommuteWithTarget(t *testing.T) {
	k := artin.Kind{}
	e := element.New[int, artin.Factor](k)
	const n = 4

	delta := e.FromFactor(k.Delta(n), element.LCF)
	gens, err := conjugacy.Centralizer(context.Background(), e, k, delta)
	require.NoError(t, err)

	for _, g := range gens {
		got := e.ConjugateByElement(delta, g)
		require.True(t, element.Equal[int, artin.Factor](k, got, delta), "centralizer generator must commute with the target element")
	}
}

// The centralizer of the identity is the whole group; every generator
// returned for it must commute with the identity.
func TestCentralizerOfIdentityGeneratorsCommute(t *testing.T) {
	k := artin.Kind{}
	e := element.New[int, artin.Factor](k)
	const n = 4

	id := e.Identity(n, element.LCF)
	gens, err := conjugacy.Centralizer(context.Background(), e, k, id)
	require.NoError(t, err)
	for _, g := range gens {
		got := e.ConjugateByElement(id, g)
		require.True(t, element.Equal[int, artin.Factor](k, got, id))
	}
}
