package catalog

import (
	"fmt"

	"github.com/hashicorp/go-set/v2"
	"github.com/pkg/errors"

	"github.com/pescuma/bikeshop/lib/model"
)

type PartCtor func(name string, description string, needsSpare bool) (model.Part, error)

type CollectionCtor func(items []model.Part) (*model.Parts, error)

type Option func(*builder)

// WithPartCtor replaces the part type built from each row. The factory
// logic does not change: any part-like ctor fits.
func WithPartCtor(f PartCtor) Option {
	return func(b *builder) {
		b.newPart = f
	}
}

// WithCollectionCtor replaces the collection the parts end up in.
func WithCollectionCtor(f CollectionCtor) Option {
	return func(b *builder) {
		b.newCollection = f
	}
}

type builder struct {
	newPart       PartCtor
	newCollection CollectionCtor
}

// Build assembles one part per config row, preserving row order, and hands
// the result to the collection ctor.
func Build(cfg Config, opts ...Option) (*model.Parts, error) {
	b := &builder{
		newPart: func(name string, description string, needsSpare bool) (model.Part, error) {
			return model.NewPartSpec(name, description, needsSpare)
		},
		newCollection: model.NewParts,
	}

	for _, opt := range opts {
		opt(b)
	}

	names := set.New[string](len(cfg))
	items := make([]model.Part, 0, len(cfg))

	for i, row := range cfg {
		name, description, needsSpare, err := parseRow(i, row)
		if err != nil {
			return nil, err
		}

		if !names.Insert(name) {
			return nil, &MalformedRowError{
				Index:  i,
				Reason: fmt.Sprintf("duplicate part name: %v", name),
			}
		}

		part, err := b.newPart(name, description, needsSpare)
		if err != nil {
			return nil, errors.Wrapf(err, "row %v", i)
		}

		items = append(items, part)
	}

	return b.newCollection(items)
}
