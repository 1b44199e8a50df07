package engine

import "math/rand"

// Bag is the 7-bag randomizer: every refill is a random permutation of all
// seven kinds, drawn without replacement.
type Bag struct {
	rng   *rand.Rand
	kinds []Kind
}

// NewBag creates a bag driven by rng. The bag starts empty and refills on
// the first draw.
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{rng: rng}
}

// Draw pops one kind, refilling first if the bag is empty.
func (b *Bag) Draw() Kind {
	if len(b.kinds) == 0 {
		b.refill()
	}
	k := b.kinds[len(b.kinds)-1]
	b.kinds = b.kinds[:len(b.kinds)-1]
	return k
}

// Remaining returns how many kinds are left before the next refill.
func (b *Bag) Remaining() int {
	return len(b.kinds)
}

func (b *Bag) refill() {
	b.kinds = append(b.kinds[:0], Kinds[:]...)
	b.rng.Shuffle(len(b.kinds), func(i, j int) {
		b.kinds[i], b.kinds[j] = b.kinds[j], b.kinds[i]
	})
}
