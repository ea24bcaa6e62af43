package keyed

// Permutation returns the sample order for a generator seeded with seed.
func Permutation(seed uint64, n int) []int {
	return Permute(NewRand(seed), n)
}

// Permute shuffles the identity sequence [0, n) with r and returns it.
// The generator is left positioned after the shuffle so callers can keep drawing
// from the same stream.
func Permute(r *Rand, n int) []int {
	if n <= 0 {
		return []int{}
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	for i := n - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		order[i], order[j] = order[j], order[i]
	}

	return order
}
