package round

import (
	"math/rand"

	"github.com/vovakirdan/word-moles/internal/vocab"
)

// Generator builds rounds from a seeded random source.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator seeded with seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate picks a random direction and builds a round from pool.
func (g *Generator) Generate(pool []vocab.Entry) (Round, error) {
	if len(pool) == 0 {
		return Round{}, ErrEmptyPool
	}
	dir := Direction(g.rng.Intn(2))
	return g.GenerateDirected(pool, dir)
}

// GenerateDirected builds a round from pool in the given direction.
//
// The answer term is drawn uniformly. Up to MaxDecoys authored decoys are
// taken in list order; missing ones are backfilled from other pool terms
// drawn without replacement. Pools with fewer than four distinct terms yield
// fewer options. Options are shuffled and placed in distinct holes.
func (g *Generator) GenerateDirected(pool []vocab.Entry, dir Direction) (Round, error) {
	if len(pool) == 0 {
		return Round{}, ErrEmptyPool
	}

	idx := g.rng.Intn(len(pool))
	entry := pool[idx]
	answer := dir.answer(entry)

	seen := map[string]bool{answer: true}
	options := []Option{{Text: answer, IsCorrect: true, Source: entry}}

	for _, text := range dir.decoys(entry) {
		if len(options) > MaxDecoys {
			break
		}
		if text == "" || seen[text] {
			continue
		}
		seen[text] = true
		options = append(options, Option{Text: text, Source: entry})
	}

	if len(options) <= MaxDecoys {
		for _, i := range g.rng.Perm(len(pool)) {
			if len(options) > MaxDecoys {
				break
			}
			if i == idx {
				continue
			}
			text := dir.answer(pool[i])
			if text == "" || seen[text] {
				continue
			}
			seen[text] = true
			options = append(options, Option{Text: text, Source: pool[i]})
		}
	}

	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	holes := g.rng.Perm(HoleCount)
	for i := range options {
		options[i].Hole = holes[i]
	}

	return Round{
		Prompt:    dir.prompt(entry),
		Direction: dir,
		Entry:     entry,
		Options:   options,
	}, nil
}
