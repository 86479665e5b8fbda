package cycles

// forEachCombination calls fn with every k-subset of {0..n-1} as an
// increasing index slice, in lexicographic order. fn must not retain idx.
// Returning false from fn stops the iteration. k ≤ 0 or k > n yields nothing.
func forEachCombination(n, k int, fn func(idx []int) bool) {
	if k <= 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		if !fn(idx) {
			return
		}
		// Find the rightmost position that can still move right.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// forEachProduct calls fn with every tuple t where 1 ≤ t[i] < radix[i], the
// last position varying fastest. A radix below 2 yields nothing. fn must not
// retain t; returning false stops the iteration.
func forEachProduct(radix []int, fn func(t []int) bool) {
	for _, r := range radix {
		if r < 2 {
			return
		}
	}
	t := make([]int, len(radix))
	for i := range t {
		t[i] = 1
	}
	for {
		if !fn(t) {
			return
		}
		i := len(t) - 1
		for i >= 0 {
			t[i]++
			if t[i] < radix[i] {
				break
			}
			t[i] = 1
			i--
		}
		if i < 0 {
			return
		}
	}
}
