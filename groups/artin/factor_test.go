package artin_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-garcide/garcide/factor"
	"github.com/go-garcide/garcide/groups/artin"
)

// allFactors enumerates every permutation of {1,...,n} as an artin.Factor,
// small enough (n<=5) to brute-force the lattice laws exhaustively rather
// than spot-checking with randomized samples.
func allFactors(n int) []artin.Factor {
	perm := make([]int, n+1)
	for i := 1; i <= n; i++ {
		perm[i] = i
	}
	var out []artin.Factor
	used := make([]bool, n+1)
	var rec func(i int)
	rec = func(i int) {
		if i > n {
			f := artin.Factor{N: n, Perm: append([]int(nil), perm...)}
			out = append(out, f)
			return
		}
		for v := 1; v <= n; v++ {
			if used[v] {
				continue
			}
			used[v] = true
			perm[i] = v
			rec(i + 1)
			used[v] = false
		}
	}
	rec(1)
	return out
}

func TestIdentityAndDeltaAreLatticeBounds(t *testing.T) {
	k := artin.Kind{}
	const n = 4
	id := k.Identity(n)
	delta := k.Delta(n)
	for _, f := range allFactors(n) {
		require.True(t, k.Equal(k.LeftMeet(id, f), id), "identity is the meet-minimum")
		require.True(t, k.Equal(k.LeftMeet(delta, f), f), "Delta is the meet-maximum")
		require.True(t, k.Equal(k.RightMeet(id, f), id))
		require.True(t, k.Equal(k.RightMeet(delta, f), f))
	}
}

func TestMeetIsIdempotentAndCommutative(t *testing.T) {
	k := artin.Kind{}
	factors := allFactors(4)
	for _, a := range factors {
		require.True(t, k.Equal(k.LeftMeet(a, a), a))
		require.True(t, k.Equal(k.RightMeet(a, a), a))
	}
	for _, a := range factors {
		for _, b := range factors {
			require.True(t, k.Equal(k.LeftMeet(a, b), k.LeftMeet(b, a)))
			require.True(t, k.Equal(k.RightMeet(a, b), k.RightMeet(b, a)))
		}
	}
}

func TestMeetIsAssociative(t *testing.T) {
	k := artin.Kind{}
	factors := allFactors(4)
	rng := rand.New(rand.NewSource(1))
	// n=4 has 24 factors; spot-check a large random sample of the 24^3
	// triples rather than all of them, to keep the test fast.
	for i := 0; i < 2000; i++ {
		a := factors[rng.Intn(len(factors))]
		b := factors[rng.Intn(len(factors))]
		c := factors[rng.Intn(len(factors))]
		lhs := k.LeftMeet(k.LeftMeet(a, b), c)
		rhs := k.LeftMeet(a, k.LeftMeet(b, c))
		require.True(t, k.Equal(lhs, rhs))
	}
}

func TestComplementDuality(t *testing.T) {
	k := artin.Kind{}
	for _, a := range allFactors(4) {
		rc := factor.RightComplementToDelta[int, artin.Factor](k, a)
		lc := factor.LeftComplementToDelta[int, artin.Factor](k, a)
		require.True(t, k.Equal(k.Product(a, rc), k.Delta(4)), "a * ~a = Delta")
		require.True(t, k.Equal(k.Product(lc, a), k.Delta(4)), "~a * a = Delta")

		rcOfLc := factor.RightComplementToDelta[int, artin.Factor](k, lc)
		require.True(t, k.Equal(rcOfLc, a), "right complement of the left complement round-trips")
	}
}

func TestDeltaConjugateParity(t *testing.T) {
	k := artin.Kind{}
	n := 5
	for _, a := range allFactors(n) {
		require.True(t, k.Equal(k.DeltaConjugate(a, 0), a))
		require.True(t, k.Equal(k.DeltaConjugate(a, 2), a), "Delta^2 is central")
		require.True(t, k.Equal(k.DeltaConjugate(a, 4), a))
		require.True(t, k.Equal(k.DeltaConjugate(a, 1), k.DeltaConjugate(a, 3)), "only parity of k matters")
	}
}

func TestAtomsAreNeitherIdentityNorDelta(t *testing.T) {
	k := artin.Kind{}
	atoms := k.Atoms(4)
	require.Len(t, atoms, 3)
	for _, a := range atoms {
		require.False(t, factor.IsIdentity[int, artin.Factor](k, a))
		require.False(t, factor.IsDelta[int, artin.Factor](k, a))
	}
}

func TestLatticeHeightMatchesAtomProductLength(t *testing.T) {
	k := artin.Kind{}
	for n := 2; n <= 6; n++ {
		require.Equal(t, n*(n-1)/2, k.LatticeHeight(n))
	}
}

func TestParsePrintRoundTrip(t *testing.T) {
	k := artin.Kind{}
	cases := []string{"D", "s1", "s_2"}
	for _, s := range cases {
		pos := 0
		_, err := k.Parse(s, &pos, 4)
		require.NoError(t, err)
		require.Equal(t, len(s), pos)
	}
	// Print always emits the bare "s<i>" spelling, regardless of which
	// spelling Parse accepted.
	pos := 0
	f, err := k.Parse("s_2", &pos, 4)
	require.NoError(t, err)
	require.Equal(t, "s2", k.Print(f))
}

func TestParseRejectsOutOfRangeGenerator(t *testing.T) {
	k := artin.Kind{}
	pos := 0
	_, err := k.Parse("s9", &pos, 4)
	require.ErrorIs(t, err, factor.ErrInvalidString)
}

func TestRandomizeProducesAValidPermutation(t *testing.T) {
	k := artin.Kind{}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		f, err := k.Randomize(6, rng)
		require.NoError(t, err)
		seen := make([]bool, 7)
		for j := 1; j <= 6; j++ {
			require.False(t, seen[f.Perm[j]], "Randomize must produce a permutation, no repeats")
			seen[f.Perm[j]] = true
		}
	}
}
