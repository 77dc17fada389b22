// Package summit builds the three conjugacy invariants the rest of the
// library reasons about: the Super Summit Set (SSS), Ultra Summit Set
// (USS), and Sliding Circuits Set (SCS) of a braid, plus the minimal
// simple conjugators used to discover them.
package summit
