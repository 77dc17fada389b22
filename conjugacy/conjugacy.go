package conjugacy

import (
	"context"

	"github.com/go-garcide/garcide/element"
	"github.com/go-garcide/garcide/factor"
	"github.com/go-garcide/garcide/summit"
)

// AreConjugate decides whether b1 and b2 are conjugate, and if so
// returns a witness c with c^-1*b1*c = b2. SCS is used rather than USS
// or SSS since it is always the smallest of the three summit sets for a
// conjugacy class. ctx is forwarded to the SCS construction BFS; see
// summit.BuildSCS.
func AreConjugate[P comparable, F any](ctx context.Context, eng element.Engine[P, F], k factor.Kind[P, F], b1, b2 *element.Element[P, F]) (bool, *element.Element[P, F], error) {
	bt1, c1 := summit.SendToSCSConjugator(eng, k, b1)
	bt2, c2 := summit.SendToSCSConjugator(eng, k, b2)

	if bt1.CanonicalLength() != bt2.CanonicalLength() || bt1.Supremum() != bt2.Supremum() {
		return false, nil, nil
	}

	scs, mins, prev, err := summit.BuildSCSBookkeeping(ctx, eng, k, bt1)
	if err != nil {
		return false, nil, err
	}
	if !scs.Mem(bt2) {
		return false, nil, nil
	}

	d := summit.TreePath(eng, k, scs, mins, prev, bt2)

	witness := c1.Clone()
	eng.RightMultiplyElement(witness, d)
	eng.RightMultiplyElement(witness, eng.Invert(c2))
	return true, witness, nil
}
