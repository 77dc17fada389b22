package artin

// meetSub is the Cha-Ko-Lee-Han-Cheon divide-and-conquer merge that
// computes the meet of two permutations restricted to the index range
// [s,t] of r, in place. a and b are the two permutation tables being
// compared; r holds (and is rewritten to hold) the index permutation
// being merged. u, v, w are scratch buffers sized like a/b, reused
// across the whole recursion (Underlying::MeetSub).
func meetSub(a, b, r, u, v, w []int, s, t int) {
	if s >= t {
		return
	}
	m := (s + t) / 2
	meetSub(a, b, r, u, v, w, s, m)
	meetSub(a, b, r, u, v, w, m+1, t)

	u[m] = a[r[m]]
	v[m] = b[r[m]]
	if s < m {
		for i := m - 1; i >= s; i-- {
			u[i] = min(a[r[i]], u[i+1])
			v[i] = min(b[r[i]], v[i+1])
		}
	}
	u[m+1] = a[r[m+1]]
	v[m+1] = b[r[m+1]]
	if t > m+1 {
		for i := m + 2; i <= t; i++ {
			u[i] = max(a[r[i]], u[i-1])
			v[i] = max(b[r[i]], v[i-1])
		}
	}

	p, q := s, m+1
	for i := s; i <= t; i++ {
		if p > m || (q <= t && u[p] > u[q] && v[p] > v[q]) {
			w[i] = r[q]
			q++
		} else {
			w[i] = r[p]
			p++
		}
	}
	copy(r[s:t+1], w[s:t+1])
}

// LeftMeet computes the left meet of a and b (Underlying::left_meet).
func (Kind) LeftMeet(a, b Factor) Factor {
	n := a.N
	r := make([]int, n+1)
	for i := 1; i <= n; i++ {
		r[i] = i
	}
	u, v, w := make([]int, n+1), make([]int, n+1), make([]int, n+1)
	meetSub(a.Perm, b.Perm, r, u, v, w, 1, n)

	f := newFactor(n)
	for i := 1; i <= n; i++ {
		f.Perm[r[i]] = i
	}
	return f
}

// RightMeet computes the right meet of a and b (Underlying::right_meet).
func (Kind) RightMeet(a, b Factor) Factor {
	n := a.N
	au, bu := make([]int, n+1), make([]int, n+1)
	for i := 1; i <= n; i++ {
		au[a.Perm[i]] = i
		bu[b.Perm[i]] = i
	}
	f := newFactor(n)
	for i := 1; i <= n; i++ {
		f.Perm[i] = i
	}
	u, v, w := make([]int, n+1), make([]int, n+1), make([]int, n+1)
	meetSub(au, bu, f.Perm, u, v, w, 1, n)
	return f
}
