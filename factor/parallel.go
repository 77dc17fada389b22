package factor

import (
	"runtime"
	"sync"
)

// MapAtomsParallel runs fn over atoms across worker goroutines while
// preserving input order in the result, falling back to a plain
// sequential loop when the atom count is too small for the fan-out to
// pay for itself.
//
// It is used by summit.MinSuperSummitAll; small atom counts (the common case — classical braids on a
// handful of strands) fall back to the sequential path since goroutine
// overhead would dominate.
func MapAtomsParallel[F any, R any](atoms []F, fn func(F) R) []R {
	n := len(atoms)
	out := make([]R, n)
	if n < 2*runtime.GOMAXPROCS(0) {
		for i, a := range atoms {
			out[i] = fn(a)
		}
		return out
	}

	var wg sync.WaitGroup
	workers := runtime.GOMAXPROCS(0)
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if start >= n {
			break
		}
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				out[i] = fn(atoms[i])
			}
		}(start, end)
	}
	wg.Wait()
	return out
}
