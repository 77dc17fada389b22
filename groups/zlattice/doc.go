// Package zlattice implements the factor.Kind for the free abelian
// Garside structure on the Boolean lattice of subsets of {1,...,n}: the
// simplest possible second instantiation of the engine, used to prove
// the factor kind abstraction is not secretly artin-specific. Delta is
// the full set, atoms are singletons, and the monoid product is disjoint
// union, so every Kind method reduces to a bitmask operation.
package zlattice
