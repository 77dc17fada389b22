// Package textio implements the text format shared by every Garside
// group element: `(whitespace | '.')* ( FACTOR (whitespace '^' whitespace
// INT)? (whitespace | '.')* )*`, with FACTOR delegated to the bound
// factor.Kind's own grammar. Negative exponents invoke right-division.
package textio
