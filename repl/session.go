package repl

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-garcide/garcide/conjugacy"
	"github.com/go-garcide/garcide/element"
	"github.com/go-garcide/garcide/factor"
	"github.com/go-garcide/garcide/groups/artin"
	"github.com/go-garcide/garcide/groups/zlattice"
	"github.com/go-garcide/garcide/summit"
	"github.com/go-garcide/garcide/textio"
	"github.com/go-garcide/garcide/thurston"
)

// Session is a factor kind bound to a fixed group parameter, exposing
// every menu case as a plain string-in/string-out method so the REPL
// loop never needs to know which factor kind is live. Build one with
// NewArtinSession or NewZLatticeSession; the choice of kind, made once
// at startup, is this port's runtime replacement for the original's
// BRAIDING_CLASS compile-time switch.
type Session interface {
	LeftNormalForm(input string) (string, error)
	RightNormalForm(input string) (string, error)
	LeftGCD(a, b string) (string, error)
	RightGCD(a, b string) (string, error)
	LeftLCM(a, b string) (string, error)
	RightLCM(a, b string) (string, error)
	SSS(input string) ([]string, error)
	USS(input string) ([]string, error)
	SCS(input string) ([]string, error)
	Centralizer(input string) ([]string, error)
	ConjugacyTest(a, b string) (bool, string, error)
	ThurstonType(input string) (string, error)
	Header() string
	GarsideStructure() string
}

// garcideSession is the one Session implementation, generic over the
// bound factor kind. thurstonFn is non-nil only for the classical braid
// kind, the sole factor kind with a Thurston classification defined.
type garcideSession[P comparable, F any] struct {
	eng        element.Engine[P, F]
	k          factor.Kind[P, F]
	p          P
	header     string
	structure  string
	thurstonFn func(b *element.Element[P, F]) (string, error)
}

func (s *garcideSession[P, F]) parse(input string) (*element.Element[P, F], error) {
	return textio.ParseElement(s.eng, s.k, s.p, input)
}

func (s *garcideSession[P, F]) print(b *element.Element[P, F]) string {
	return textio.PrintElement[P, F](s.k, b)
}

func (s *garcideSession[P, F]) printAll(bs []*element.Element[P, F]) []string {
	out := make([]string, len(bs))
	for i, b := range bs {
		out[i] = s.print(b)
	}
	return out
}

func (s *garcideSession[P, F]) LeftNormalForm(input string) (string, error) {
	b, err := s.parse(input)
	if err != nil {
		return "", err
	}
	return s.print(s.eng.ToLCF(b)), nil
}

func (s *garcideSession[P, F]) RightNormalForm(input string) (string, error) {
	b, err := s.parse(input)
	if err != nil {
		return "", err
	}
	return s.print(s.eng.ToRCF(b)), nil
}

func (s *garcideSession[P, F]) parsePair(a, b string, form element.Form) (*element.Element[P, F], *element.Element[P, F], error) {
	ba, err := s.parse(a)
	if err != nil {
		return nil, nil, err
	}
	bb, err := s.parse(b)
	if err != nil {
		return nil, nil, err
	}
	return s.eng.ToForm(ba, form), s.eng.ToForm(bb, form), nil
}

func (s *garcideSession[P, F]) LeftGCD(a, b string) (string, error) {
	ba, bb, err := s.parsePair(a, b, element.LCF)
	if err != nil {
		return "", err
	}
	return s.print(s.eng.LeftMeet(ba, bb)), nil
}

func (s *garcideSession[P, F]) RightGCD(a, b string) (string, error) {
	ba, bb, err := s.parsePair(a, b, element.RCF)
	if err != nil {
		return "", err
	}
	return s.print(s.eng.RightMeet(ba, bb)), nil
}

func (s *garcideSession[P, F]) LeftLCM(a, b string) (string, error) {
	ba, bb, err := s.parsePair(a, b, element.LCF)
	if err != nil {
		return "", err
	}
	return s.print(s.eng.LeftJoin(ba, bb)), nil
}

func (s *garcideSession[P, F]) RightLCM(a, b string) (string, error) {
	ba, bb, err := s.parsePair(a, b, element.RCF)
	if err != nil {
		return "", err
	}
	return s.print(s.eng.RightJoin(ba, bb)), nil
}

func (s *garcideSession[P, F]) SSS(input string) ([]string, error) {
	b, err := s.parse(input)
	if err != nil {
		return nil, err
	}
	sss, err := summit.BuildSSS(context.Background(), s.eng, s.k, b)
	if err != nil {
		return nil, err
	}
	return s.printAll(sss), nil
}

func (s *garcideSession[P, F]) USS(input string) ([]string, error) {
	b, err := s.parse(input)
	if err != nil {
		return nil, err
	}
	uss, err := summit.BuildUSS(context.Background(), s.eng, s.k, b)
	if err != nil {
		return nil, err
	}
	return s.printAll(uss.All()), nil
}

func (s *garcideSession[P, F]) SCS(input string) ([]string, error) {
	b, err := s.parse(input)
	if err != nil {
		return nil, err
	}
	scs, err := summit.BuildSCS(context.Background(), s.eng, s.k, b)
	if err != nil {
		return nil, err
	}
	return s.printAll(scs.All()), nil
}

func (s *garcideSession[P, F]) Centralizer(input string) ([]string, error) {
	b, err := s.parse(input)
	if err != nil {
		return nil, err
	}
	gens, err := conjugacy.Centralizer(context.Background(), s.eng, s.k, b)
	if err != nil {
		return nil, err
	}
	return s.printAll(gens), nil
}

func (s *garcideSession[P, F]) ConjugacyTest(a, b string) (bool, string, error) {
	ba, err := s.parse(a)
	if err != nil {
		return false, "", err
	}
	bb, err := s.parse(b)
	if err != nil {
		return false, "", err
	}
	ok, witness, err := conjugacy.AreConjugate(context.Background(), s.eng, s.k, ba, bb)
	if err != nil {
		return false, "", err
	}
	if !ok {
		return false, "", nil
	}
	return true, s.print(witness), nil
}

func (s *garcideSession[P, F]) ThurstonType(input string) (string, error) {
	if s.thurstonFn == nil {
		return "", ErrThurstonUnsupported
	}
	b, err := s.parse(input)
	if err != nil {
		return "", err
	}
	return s.thurstonFn(b)
}

func (s *garcideSession[P, F]) Header() string           { return s.header }
func (s *garcideSession[P, F]) GarsideStructure() string { return s.structure }

// NewArtinSession builds a Session bound to the classical braid group on
// p strands, using Garside's original factor structure.
func NewArtinSession(p int) (Session, error) {
	k := artin.Kind{}
	p, err := k.ParameterOfString(strconv.Itoa(p))
	if err != nil {
		return nil, err
	}
	eng := element.New[int, artin.Factor](k)
	s := &garcideSession[int, artin.Factor]{
		eng:       eng,
		k:         k,
		p:         p,
		header:    fmt.Sprintf("Using Garside's classic structure for Artin braids, on %d strands.", p),
		structure: artinGarsideStructure,
	}
	s.thurstonFn = func(b *element.Element[int, artin.Factor]) (string, error) {
		bUSS, err := summit.BuildUSS(context.Background(), eng, k, b)
		if err != nil {
			return "", err
		}
		return thurston.Classify(k, eng, b, bUSS.All()).String(), nil
	}
	return s, nil
}

// NewZLatticeSession builds a Session bound to the free abelian group
// Z^p, presented with the Garside structure whose canonical factors are
// the subsets of coordinates.
func NewZLatticeSession(p int) (Session, error) {
	k := zlattice.Kind{}
	p, err := k.ParameterOfString(strconv.Itoa(p))
	if err != nil {
		return nil, err
	}
	eng := element.New[int, zlattice.Factor](k)
	return &garcideSession[int, zlattice.Factor]{
		eng:       eng,
		k:         k,
		p:         p,
		header:    fmt.Sprintf("Using the Garside structure for the euclidean lattice Z^%d.", p),
		structure: zlatticeGarsideStructure,
	}, nil
}

const artinGarsideStructure = `The classical braid group B_n is the Garside group generated by the
Artin generators s_1 .. s_{n-1}, subject to the braid relations, with
Garside element Delta the half-twist and canonical factors the
divisors of Delta in the lattice of simple elements (permutation
braids).`

const zlatticeGarsideStructure = `The free abelian group Z^n, presented with generating set the standard
basis vectors, carries a (trivial but genuine) Garside structure: every
element commutes with every other, Delta is the sum of all basis
vectors, and the canonical factors are the 2^n subsets of coordinates.`
