// Package thurston classifies classical braids by Nielsen-Thurston type
// (periodic, reducible, or pseudo-Anosov), specific to the artin factor
// kind: it needs the permutation tableau, which only makes sense for
// permutation-braid factors.
package thurston
