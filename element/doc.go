// Package element implements the Garside group element engine: the
// signed-Delta-plus-factor-list representation, its Left and Right
// Canonical Forms, and the operations built directly on them —
// multiplication, inversion, LCF/RCF conversion, meet/join, and the
// cycling/decycling/sliding family that the summit sets (package summit)
// are built from.
//
// Every operation is a method on Engine[P, F], generic over a
// factor.Kind[P, F]; there is no concrete group baked into this package.
// Elements are value-ish objects: Engine methods that multiply mutate
// their Element argument in place, and Clone is provided for
// callers — chiefly package summit — that need an independent copy
// before mutating.
package element
