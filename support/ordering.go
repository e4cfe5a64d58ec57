package support

import (
	"math/rand"
	"slices"
	"time"

	"github.com/kilianp07/plugkit/core/registry"
	"github.com/kilianp07/plugkit/core/strategy"
)

// Ordering decides the processing order of a ticket queue. Implementations
// return a fresh slice and never reorder the input in place.
type Ordering = strategy.Strategy[[]Ticket, []Ticket]

// Builtin ordering keys.
const (
	OrderingFIFO   = "fifo"
	OrderingLIFO   = "lifo"
	OrderingRandom = "random"
)

// FIFOOrdering processes tickets oldest first.
type FIFOOrdering struct{}

func (FIFOOrdering) Execute(tickets []Ticket) ([]Ticket, error) {
	return slices.Clone(tickets), nil
}

// LIFOOrdering processes tickets newest first.
type LIFOOrdering struct{}

func (LIFOOrdering) Execute(tickets []Ticket) ([]Ticket, error) {
	out := slices.Clone(tickets)
	slices.Reverse(out)
	return out, nil
}

// RandomOrdering shuffles the queue. The seed is fixed at construction; a
// zero seed draws one from the clock.
type RandomOrdering struct {
	rng *rand.Rand
}

func NewRandomOrdering(seed int64) *RandomOrdering {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomOrdering{rng: rand.New(rand.NewSource(seed))}
}

func (o *RandomOrdering) Execute(tickets []Ticket) ([]Ticket, error) {
	out := slices.Clone(tickets)
	o.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out, nil
}

// NewRegistry returns a registry with the builtin orderings bound. The random
// ordering accepts an optional "seed" setting.
func NewRegistry() *registry.Registry[Ordering] {
	r := registry.New[Ordering]()
	r.MustRegister(OrderingFIFO, func(map[string]any) (Ordering, error) {
		return FIFOOrdering{}, nil
	})
	r.MustRegister(OrderingLIFO, func(map[string]any) (Ordering, error) {
		return LIFOOrdering{}, nil
	})
	r.MustRegister(OrderingRandom, func(conf map[string]any) (Ordering, error) {
		var c struct {
			Seed int64 `json:"seed"`
		}
		if err := registry.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewRandomOrdering(c.Seed), nil
	})
	return r
}
