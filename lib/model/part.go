package model

import (
	"fmt"
)

// Part is the role played by any replaceable component: the rest of the
// model only ever asks for these three things.
type Part interface {
	Name() string
	Description() string
	NeedsSpare() bool
}

type PartSpec struct {
	name        string
	description string
	needsSpare  bool
}

func NewPartSpec(name string, description string, needsSpare bool) (*PartSpec, error) {
	if name == "" {
		return nil, &MissingFieldError{Field: "name"}
	}
	if description == "" {
		return nil, &MissingFieldError{Field: "description"}
	}

	return &PartSpec{
		name:        name,
		description: description,
		needsSpare:  needsSpare,
	}, nil
}

func (p *PartSpec) Name() string {
	return p.name
}

func (p *PartSpec) Description() string {
	return p.description
}

func (p *PartSpec) NeedsSpare() bool {
	return p.needsSpare
}

func (p *PartSpec) String() string {
	return fmt.Sprintf("%v[%v]", p.name, p.description)
}
