package summit

import (
	"errors"
	"fmt"

	"github.com/go-garcide/garcide/element"
)

// ErrNotUltraSummit is returned by MinUltraSummit when invoked on a
// braid that is not actually a member of its own ultra summit set: a
// contract violation the engine does not expect to see in ordinary use,
// since every public entry point first sends its argument to the USS
// before calling the minimal-conjugator machinery.
var ErrNotUltraSummit = errors.New("summit: braid is not in its ultra summit set")

// NotUltraSummitError carries the offending braid alongside
// ErrNotUltraSummit.
type NotUltraSummitError[P comparable, F any] struct {
	NotUltraSummit *element.Element[P, F]
}

func (e *NotUltraSummitError[P, F]) Error() string {
	return fmt.Sprintf("summit: braid %+v is not in its ultra summit set", e.NotUltraSummit)
}

func (e *NotUltraSummitError[P, F]) Unwrap() error { return ErrNotUltraSummit }
