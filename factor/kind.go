package factor

import (
	"errors"
	"math/rand"
)

// ErrInvalidString is returned by parameter and factor parsers when the
// input does not match the kind's grammar.
var ErrInvalidString = errors.New("factor: invalid string")

// ErrNonRandomizable is returned by Kind.Randomize when the kind has no
// uniform-sampling procedure defined over its factors.
var ErrNonRandomizable = errors.New("factor: kind does not support randomization")

// Kind is the contract a Garside group's canonical-factor type must
// satisfy. P is the group's parameter (e.g. the number of strands); F is
// the factor representation.
//
// Implementations MUST guarantee, for every value of P they accept:
//
//  1. Identity(p) is the lattice minimum.
//  2. Delta(p) is the lattice maximum.
//  3. Every atom a returned by Atoms(p) satisfies a != Identity(p) and
//     a != Delta(p), unless LatticeHeight(p) == 1.
//  4. LeftComplement and RightComplement (taken against Delta) are mutual
//     inverses: for all f, RightComplement(f, Delta) composed with
//     LeftComplement(., Delta) round-trips to f.
//  5. LeftMeet and RightMeet are idempotent, commutative, and associative.
//
// Kind implementations are never required to be safe for concurrent use
// by multiple goroutines on a shared scratch buffer; the shipped kinds
// allocate any scratch space per call rather than relying on
// thread-local state the way the C++ original did.
type Kind[P comparable, F any] interface {
	// Parameter returns the parameter shared by f.
	Parameter(f F) P

	// ParameterOfString parses a Parameter from s. Returns ErrInvalidString
	// wrapped with a diagnostic on failure.
	ParameterOfString(s string) (P, error)

	// Identity returns the identity factor (lattice minimum) for p.
	Identity(p P) F

	// Delta returns the Garside element's factor (lattice maximum) for p.
	Delta(p P) F

	// LatticeHeight returns the length of Delta as a product of atoms.
	LatticeHeight(p P) int

	// Equal reports whether a and b represent the same factor.
	Equal(a, b F) bool

	// Hash returns a stable hash of f, consistent with Equal.
	Hash(f F) uint64

	// LeftMeet returns the left meet (greatest common left divisor) of a
	// and b.
	LeftMeet(a, b F) F

	// RightMeet returns the right meet (greatest common right divisor) of
	// a and b.
	RightMeet(a, b F) F

	// Product returns a*b, assuming a*b <= Delta. Producing a result that
	// exceeds Delta is a contract violation and yields an unspecified
	// factor.
	Product(a, b F) F

	// LeftComplement returns the factor c such that c*a = b.
	// Precondition: a right-divides b.
	LeftComplement(a, b F) F

	// RightComplement returns the factor c such that b = a*c, assuming a
	// left-divides b. Precondition: a left-divides b.
	RightComplement(a, b F) F

	// DeltaConjugate returns Delta^-k * f * Delta^k, i.e. f conjugated by
	// Delta^k.
	DeltaConjugate(f F, k int) F

	// Atoms returns the ordered list of atoms (join-irreducibles covering
	// the identity) for parameter p.
	Atoms(p P) []F

	// Randomize draws a factor uniformly at random for parameter p, using
	// rng as the source of randomness. Returns ErrNonRandomizable if the
	// kind has no sampling procedure.
	Randomize(p P, rng *rand.Rand) (F, error)

	// Parse extracts one factor from str starting at *pos, advancing *pos
	// past the consumed substring. p supplies the parameter context.
	Parse(str string, pos *int, p P) (F, error)

	// Print renders f in the kind's canonical textual form.
	Print(f F) string
}
