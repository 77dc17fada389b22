// Package conjugacy decides conjugacy between two elements and computes
// the centralizer of an element, both built on top of package summit's
// Sliding Circuits Set and Ultra Summit Set machinery.
package conjugacy
