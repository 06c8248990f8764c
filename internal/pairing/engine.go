// Package pairing implements the randomized pairing search engine.
//
// The engine partitions an even-sized population into two-person pairs where
// both members belong to different groups and different teams. It is a
// feasibility search, not an optimal matcher: each attempt shuffles the
// population and pairs it greedily, and a failed attempt is discarded wholesale
// before the next shuffle. The attempt ceiling bounds the worst case at the
// cost of possible false negatives on tightly constrained populations.
package pairing

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/ryosuke-horie/group-generator/internal/entities"
)

// DefaultMaxAttempts is the attempt budget used when none is given.
const DefaultMaxAttempts = 1000

// Result is the outcome of a single search. An exhausted budget is a normal
// outcome, not an error: Found is false and Pairs is empty.
type Result struct {
	Pairs    entities.Pairing
	Found    bool
	Attempts int
}

// Engine runs pairing searches with its own random source. Engines with
// distinct sources are safe to use concurrently; a single Engine is not.
type Engine struct {
	log *zap.SugaredLogger
	rng *rand.Rand
}

// New constructs an engine seeded from the wall clock.
func New(log *zap.SugaredLogger) *Engine {
	return NewWithRand(log, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand constructs an engine with an explicit random source, which lets
// tests pin the permutation sequence.
func NewWithRand(log *zap.SugaredLogger, rng *rand.Rand) *Engine {
	return &Engine{log: log.Named("pairing"), rng: rng}
}

// Search attempts to partition the population into valid pairs within the
// attempt budget. An odd population is a precondition failure reported before
// any attempt is made. maxAttempts <= 0 falls back to DefaultMaxAttempts.
func (e *Engine) Search(population []entities.Person, maxAttempts int) (Result, error) {
	if len(population)%2 != 0 {
		return Result{}, fmt.Errorf("%w: %d people", entities.ErrOddPopulation, len(population))
	}
	if len(population) == 0 {
		return Result{Found: true, Pairs: entities.Pairing{}}, nil
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	order := make([]entities.Person, len(population))
	copy(order, population)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		e.rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})

		pairs, ok := pairGreedy(order)
		if !ok {
			continue
		}

		e.log.Infow("pairing found", "pairs", len(pairs), "attempts", attempt)
		return Result{Pairs: pairs, Found: true, Attempts: attempt}, nil
	}

	e.log.Infow("no pairing within budget", "population", len(population), "attempts", maxAttempts)
	return Result{Attempts: maxAttempts}, nil
}

// pairGreedy scans the permutation front to back. The first still-unpaired
// person is matched with the first later unpaired person satisfying both
// constraints; if none exists the whole attempt is abandoned.
func pairGreedy(order []entities.Person) (entities.Pairing, bool) {
	paired := make([]bool, len(order))
	pairs := make(entities.Pairing, 0, len(order)/2)

	for i := range order {
		if paired[i] {
			continue
		}
		matched := false
		for j := i + 1; j < len(order); j++ {
			if paired[j] || !CanPair(order[i], order[j]) {
				continue
			}
			pairs = append(pairs, entities.Pair{First: order[i].Name, Second: order[j].Name})
			paired[i], paired[j] = true, true
			matched = true
			break
		}
		if !matched {
			return nil, false
		}
	}

	return pairs, true
}

// CanPair reports whether two people may form a pair: different group and
// different team. Two people without a team assignment share the unassigned
// sentinel and are rejected.
func CanPair(a, b entities.Person) bool {
	return a.Group != b.Group && a.Team != b.Team
}
