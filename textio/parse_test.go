package textio_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-garcide/garcide/element"
	"github.com/go-garcide/garcide/factor"
	"github.com/go-garcide/garcide/groups/artin"
	"github.com/go-garcide/garcide/groups/zlattice"
	"github.com/go-garcide/garcide/textio"
)

func TestParseElementRoundTripsWithPrintElement(t *testing.T) {
	k := zlattice.Kind{}
	e := element.New[int, zlattice.Factor](k)
	const n = 6

	b := e.Identity(n, element.LCF)
	e.RightMultiplyFactor(b, zlattice.Factor{N: n, Mask: 0b000101})

	s := textio.PrintElement[int, zlattice.Factor](k, b)
	parsed, err := textio.ParseElement(e, k, n, s)
	require.NoError(t, err)
	require.True(t, element.Equal[int, zlattice.Factor](k, parsed, b))
}

func TestParseElementEmptyStringIsIdentity(t *testing.T) {
	k := zlattice.Kind{}
	e := element.New[int, zlattice.Factor](k)
	const n = 5

	parsed, err := textio.ParseElement(e, k, n, "   ")
	require.NoError(t, err)
	require.True(t, element.Equal[int, zlattice.Factor](k, parsed, e.Identity(n, element.LCF)))
}

func TestParseElementPositiveExponentRepeatsFactor(t *testing.T) {
	k := artin.Kind{}
	e := element.New[int, artin.Factor](k)
	const n = 4

	parsed, err := textio.ParseElement(e, k, n, "s1^3")
	require.NoError(t, err)

	expected := e.Identity(n, element.LCF)
	atoms := k.Atoms(n)
	for i := 0; i < 3; i++ {
		e.RightMultiplyFactor(expected, atoms[0])
	}
	require.True(t, element.Equal[int, artin.Factor](k, parsed, expected))
}

// s1^-1 must parse to the same element as explicitly inverting s1.
func TestParseElementNegativeExponentInverts(t *testing.T) {
	k := artin.Kind{}
	e := element.New[int, artin.Factor](k)
	const n = 4

	parsed, err := textio.ParseElement(e, k, n, "s1 ^ -1")
	require.NoError(t, err)

	s1 := e.FromFactor(k.Atoms(n)[0], element.LCF)
	expected := e.Invert(s1)
	require.True(t, element.Equal[int, artin.Factor](k, parsed, expected))
}

func TestParseElementRejectsMissingExponentDigits(t *testing.T) {
	k := artin.Kind{}
	e := element.New[int, artin.Factor](k)
	const n = 4

	_, err := textio.ParseElement(e, k, n, "s1^")
	require.ErrorIs(t, err, factor.ErrInvalidString)
}

func TestParseElementRejectsInvalidFactor(t *testing.T) {
	k := artin.Kind{}
	e := element.New[int, artin.Factor](k)
	const n = 4

	_, err := textio.ParseElement(e, k, n, "s99")
	require.ErrorIs(t, err, factor.ErrInvalidString)
}
