// Package factor defines the abstract contract every Garside group's
// canonical-factor kind must satisfy, plus the lattice utilities (join,
// general complement) that are derivable from that contract alone.
//
// A Kind is a record of pure functions over an opaque factor type F and a
// parameter type P (number of strands, lattice dimension, ...); it carries
// no state of its own. The element engine (package element) and the summit
// family (package summit) are written purely in terms of Kind, never
// against a concrete group, so a new Garside group is added by implementing
// Kind once — see groups/artin and groups/zlattice for worked examples.
package factor
