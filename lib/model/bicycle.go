package model

import "fmt"

// Bicycle never assembles its own parts: the caller builds the collection
// and injects it.
type Bicycle struct {
	size  string
	parts *Parts
}

func NewBicycle(size string, parts *Parts) (*Bicycle, error) {
	if size == "" {
		return nil, &MissingFieldError{Field: "size"}
	}
	if parts == nil {
		return nil, &MissingFieldError{Field: "parts"}
	}

	return &Bicycle{
		size:  size,
		parts: parts,
	}, nil
}

func (b *Bicycle) SizeLabel() string {
	return b.size
}

func (b *Bicycle) Parts() *Parts {
	return b.parts
}

func (b *Bicycle) Spares() []Part {
	return b.parts.Spares()
}

func (b *Bicycle) String() string {
	return fmt.Sprintf("bicycle[%v]", b.size)
}
