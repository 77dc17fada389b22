// Command garcide is the interactive braiding/braid-adjacent session:
// it picks a Garside group factor kind and parameter at startup, then
// hands off to package repl for the menu loop. This replaces the
// original's BRAIDING_CLASS compile-time switch with a runtime flag.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-garcide/garcide/repl"
)

func main() {
	kind := flag.String("kind", "artin", "factor kind to use: \"artin\" (classical braid group) or \"zlattice\" (euclidean lattice Z^n)")
	n := flag.Int("n", 5, "the group parameter: number of strands for artin, dimension for zlattice")
	flag.Parse()

	session, err := newSession(*kind, *n)
	if err != nil {
		fmt.Fprintln(os.Stderr, "garcide:", err)
		os.Exit(1)
	}

	if err := repl.New(session, os.Stdin, os.Stdout).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "garcide:", err)
		os.Exit(1)
	}
}

func newSession(kind string, n int) (repl.Session, error) {
	switch kind {
	case "artin":
		return repl.NewArtinSession(n)
	case "zlattice":
		return repl.NewZLatticeSession(n)
	default:
		return nil, fmt.Errorf("unknown factor kind %q (want \"artin\" or \"zlattice\")", kind)
	}
}
