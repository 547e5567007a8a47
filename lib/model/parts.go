package model

import (
	"fmt"

	"github.com/samber/lo"
)

// Parts is an ordered, read-only collection of Part role players. It is a
// thin wrapper instead of a general-purpose list so that only the
// operations below leak out.
type Parts struct {
	items []Part
}

func NewParts(items []Part) (*Parts, error) {
	if items == nil {
		return nil, &InvalidArgumentError{Reason: "parts must be built from a sequence of parts"}
	}

	for i, p := range items {
		if p == nil {
			return nil, &InvalidArgumentError{Reason: fmt.Sprintf("nil part at position %v", i)}
		}
	}

	return &Parts{items: items}, nil
}

func (ps *Parts) Len() int {
	return len(ps.items)
}

// Spares returns a fresh slice with the parts that need a spare, in
// insertion order.
func (ps *Parts) Spares() []Part {
	return lo.Filter(ps.items, func(p Part, _ int) bool { return p.NeedsSpare() })
}

func (ps *Parts) List() []Part {
	result := make([]Part, len(ps.items))
	copy(result, ps.items)
	return result
}

// Each calls f for each part in insertion order, stopping early when f
// returns false.
func (ps *Parts) Each(f func(Part) bool) {
	for _, p := range ps.items {
		if !f(p) {
			return
		}
	}
}
