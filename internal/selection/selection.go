// Package selection holds the random sampling primitives the generator is
// built on. Both primitives draw from an injected *rand.Rand so a fixed seed
// reproduces the same picks.
package selection

import "math/rand"

// PickOne returns a uniformly random element of pool. The second return is
// false when the pool is empty.
func PickOne[T any](rng *rand.Rand, pool []T) (T, bool) {
	if len(pool) == 0 {
		var zero T
		return zero, false
	}
	return pool[rng.Intn(len(pool))], true
}

// PickUnique draws up to n distinct elements from pool without replacement,
// in random order. When n exceeds the pool size every element is returned;
// an empty pool or non-positive n yields an empty result. The shortfall is
// never an error.
func PickUnique[T any](rng *rand.Rand, pool []T, n int) []T {
	if len(pool) == 0 || n <= 0 {
		return nil
	}
	if n > len(pool) {
		n = len(pool)
	}

	picked := make([]T, 0, n)
	for _, idx := range rng.Perm(len(pool))[:n] {
		picked = append(picked, pool[idx])
	}
	return picked
}
