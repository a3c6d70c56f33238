package exam

import "math/rand/v2"

// Shuffler produces uniformly random permutations for answer and question
// ordering.
type Shuffler struct {
	rng *rand.Rand
}

// NewShuffler returns a shuffler with a non-deterministic seed.
func NewShuffler() *Shuffler {
	return &Shuffler{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededShuffler returns a shuffler with a fixed seed so builds can be
// reproduced.
func NewSeededShuffler(seed uint64) *Shuffler {
	return &Shuffler{rng: rand.New(rand.NewPCG(seed, 0))}
}

func (s *Shuffler) shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}
