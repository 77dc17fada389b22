// Package artin implements the factor.Kind for the classical (Artin)
// braid groups B_n, with simple elements represented as permutations of
// the n strands (the "permutation braids" of Elrifai-Morton). This is the
// kind exercised by the package's end-to-end scenarios.
package artin
