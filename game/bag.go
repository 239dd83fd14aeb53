package game

import "math/rand/v2"

// Bag hands out piece types in shuffled batches of seven: every batch holds
// each type exactly once.
type Bag struct {
	order  [PieceCount]PieceType
	cursor int
	rng    *rand.Rand
}

// NewBag returns a bag with a freshly shuffled first batch.
func NewBag(rng *rand.Rand) Bag {
	bag := Bag{rng: rng}
	for i := range bag.order {
		bag.order[i] = PieceType(i)
	}
	bag.shuffle()
	return bag
}

// Next returns the next piece type. Once the batch is used up the bag
// reshuffles before anything else is drawn.
func (b *Bag) Next() PieceType {
	t := b.order[b.cursor]
	b.cursor++
	if b.cursor == len(b.order) {
		b.shuffle()
		b.cursor = 0
	}
	return t
}

// Remaining returns how many draws are left before the next reshuffle.
func (b *Bag) Remaining() int {
	return len(b.order) - b.cursor
}

func (b *Bag) shuffle() {
	b.rng.Shuffle(len(b.order), func(i, j int) {
		b.order[i], b.order[j] = b.order[j], b.order[i]
	})
}
