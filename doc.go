// Package garcide computes with Garside groups: braid groups under
// Garside's classical structure and the euclidean lattice Z^n under its
// coordinate-subset structure, both pluggable through the same generic
// engine.
//
// The module is organized as:
//
//	factor/    — the factor.Kind contract every Garside group plugs in
//	element/   — the element engine: LCF/RCF, multiply, meet/join, cycling
//	summit/    — Super/Ultra/Sliding summit sets and their conjugators
//	conjugacy/ — conjugacy testing and centralizer generators built on summit
//	thurston/  — Thurston classification (periodic/reducible/pseudo-Anosov)
//	groups/    — concrete factor.Kind implementations (artin, zlattice)
//	textio/    — the shared element text format
//	repl/      — the interactive menu session
//	cmd/garcide — the REPL's entry point
package garcide
