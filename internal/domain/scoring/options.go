package scoring

import "math/rand/v2"

// Option applies a configuration option to the Lottery.
type Option func(*Lottery)

// WithSeed makes draws reproducible by seeding a PCG source.
func WithSeed(seed uint64) Option {
	return func(l *Lottery) {
		l.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithSource draws luck from src.
func WithSource(src rand.Source) Option {
	return func(l *Lottery) {
		if src != nil {
			l.rng = rand.New(src)
		}
	}
}
