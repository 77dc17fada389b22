package zlattice_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-garcide/garcide/factor"
	"github.com/go-garcide/garcide/groups/zlattice"
)

func TestIdentityIsLatticeMinimum(t *testing.T) {
	k := zlattice.Kind{}
	id := k.Identity(5)
	require.Equal(t, uint64(0), id.Mask)
	for mask := uint64(0); mask < 1<<5; mask++ {
		f := zlattice.Factor{N: 5, Mask: mask}
		require.True(t, k.Equal(k.LeftMeet(id, f), id))
	}
}

func TestDeltaIsLatticeMaximum(t *testing.T) {
	k := zlattice.Kind{}
	delta := k.Delta(5)
	require.Equal(t, uint64(0b11111), delta.Mask)
	for mask := uint64(0); mask < 1<<5; mask++ {
		f := zlattice.Factor{N: 5, Mask: mask}
		require.True(t, k.Equal(k.LeftMeet(delta, f), f))
	}
}

func TestMeetIsIdempotentCommutativeAssociative(t *testing.T) {
	k := zlattice.Kind{}
	const n = 4
	for a := uint64(0); a < 1<<n; a++ {
		fa := zlattice.Factor{N: n, Mask: a}
		require.True(t, k.Equal(k.LeftMeet(fa, fa), fa), "idempotent")
		for b := uint64(0); b < 1<<n; b++ {
			fb := zlattice.Factor{N: n, Mask: b}
			require.True(t, k.Equal(k.LeftMeet(fa, fb), k.LeftMeet(fb, fa)), "commutative")
			for c := uint64(0); c < 1<<n; c++ {
				fc := zlattice.Factor{N: n, Mask: c}
				lhs := k.LeftMeet(k.LeftMeet(fa, fb), fc)
				rhs := k.LeftMeet(fa, k.LeftMeet(fb, fc))
				require.True(t, k.Equal(lhs, rhs), "associative")
			}
		}
	}
}

func TestAtomsAreNeitherIdentityNorDelta(t *testing.T) {
	k := zlattice.Kind{}
	for _, a := range k.Atoms(6) {
		require.False(t, factor.IsIdentity[int, zlattice.Factor](k, a))
		require.False(t, factor.IsDelta[int, zlattice.Factor](k, a))
	}
}

func TestRandomizeIsDeterministicGivenSeed(t *testing.T) {
	k := zlattice.Kind{}
	r1 := rand.New(rand.NewSource(42))
	r2 := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		f1, err := k.Randomize(10, r1)
		require.NoError(t, err)
		f2, err := k.Randomize(10, r2)
		require.NoError(t, err)
		require.Equal(t, f1, f2)
	}
}

func TestParsePrintRoundTrip(t *testing.T) {
	k := zlattice.Kind{}
	cases := []string{"D", "0", "3", "{1,3,5}"}
	for _, s := range cases {
		pos := 0
		f, err := k.Parse(s, &pos, 6)
		require.NoError(t, err)
		require.Equal(t, len(s), pos)
		require.Equal(t, s, k.Print(f))
	}
}

func TestParseOfStringRejectsGarbage(t *testing.T) {
	k := zlattice.Kind{}
	pos := 0
	_, err := k.Parse("xyz", &pos, 6)
	require.ErrorIs(t, err, factor.ErrInvalidString)
}

func TestParameterOfStringBounds(t *testing.T) {
	k := zlattice.Kind{}
	_, err := k.ParameterOfString("0")
	require.ErrorIs(t, err, factor.ErrInvalidString)
	_, err = k.ParameterOfString("abc")
	require.ErrorIs(t, err, factor.ErrInvalidString)
	n, err := k.ParameterOfString("7")
	require.NoError(t, err)
	require.Equal(t, 7, n)
}
