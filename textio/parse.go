package textio

import (
	"fmt"
	"strconv"

	"github.com/go-garcide/garcide/element"
	"github.com/go-garcide/garcide/factor"
)

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }
func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// skipSeparators advances pos past whitespace and '.' separators.
func skipSeparators(s string, pos *int) {
	for *pos < len(s) && (isSpace(s[*pos]) || s[*pos] == '.') {
		*pos++
	}
}

func skipSpace(s string, pos *int) {
	for *pos < len(s) && isSpace(s[*pos]) {
		*pos++
	}
}

// ParseElement parses an element matching `(whitespace | '.')* ( FACTOR
// (whitespace '^' whitespace INT)? (whitespace | '.')* )*`. FACTOR is
// delegated to k.Parse; the framework consumes separators and exponents
// only. A negative exponent right-divides the accumulator by the factor
// that many times.
func ParseElement[P comparable, F any](eng element.Engine[P, F], k factor.Kind[P, F], p P, s string) (*element.Element[P, F], error) {
	acc := eng.Identity(p, element.LCF)
	pos := 0
	for {
		skipSeparators(s, &pos)
		if pos >= len(s) {
			break
		}

		f, err := k.Parse(s, &pos, p)
		if err != nil {
			return nil, fmt.Errorf("textio: %w", err)
		}

		exp := 1
		save := pos
		skipSpace(s, &pos)
		if pos < len(s) && s[pos] == '^' {
			pos++
			skipSpace(s, &pos)
			start := pos
			neg := false
			if pos < len(s) && (s[pos] == '-' || s[pos] == '+') {
				neg = s[pos] == '-'
				pos++
			}
			digitStart := pos
			for pos < len(s) && isDigit(s[pos]) {
				pos++
			}
			if digitStart == pos {
				return nil, fmt.Errorf("%w: expected an integer exponent at position %d", factor.ErrInvalidString, start)
			}
			n, err := strconv.Atoi(s[digitStart:pos])
			if err != nil {
				return nil, fmt.Errorf("%w: %v", factor.ErrInvalidString, err)
			}
			if neg {
				n = -n
			}
			exp = n
		} else {
			pos = save
		}

		if exp >= 0 {
			for i := 0; i < exp; i++ {
				eng.RightMultiplyFactor(acc, f)
			}
		} else {
			inv := eng.Invert(eng.FromFactor(f, acc.Form))
			for i := 0; i < -exp; i++ {
				eng.RightMultiplyElement(acc, inv)
			}
		}
	}
	return acc, nil
}
