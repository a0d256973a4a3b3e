package game

import "math/rand"

// ShuffledBag deals every integer of [lo, hi] once, in random order, before
// any value repeats.
type ShuffledBag struct {
	values []int
	next   int
	rng    *rand.Rand
}

func NewShuffledBag(lo, hi int, rng *rand.Rand) *ShuffledBag {
	if hi < lo {
		lo, hi = hi, lo
	}
	values := make([]int, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		values = append(values, v)
	}

	b := &ShuffledBag{values: values, rng: rng}
	b.shuffle()
	return b
}

func (b *ShuffledBag) shuffle() {
	b.rng.Shuffle(len(b.values), func(i, j int) {
		b.values[i], b.values[j] = b.values[j], b.values[i]
	})
	b.next = 0
}

func (b *ShuffledBag) Next() int {
	if b.next >= len(b.values) {
		b.shuffle()
	}
	v := b.values[b.next]
	b.next++
	return v
}

// Len returns how many distinct values the bag deals per round.
func (b *ShuffledBag) Len() int {
	return len(b.values)
}
