package model

import "math"

type Wheel struct {
	rim  float64
	tire float64
}

func NewWheel(rim float64, tire float64) (*Wheel, error) {
	if rim <= 0 {
		return nil, &InvalidArgumentError{Reason: "rim must be positive"}
	}
	if tire < 0 {
		return nil, &InvalidArgumentError{Reason: "tire must not be negative"}
	}

	return &Wheel{
		rim:  rim,
		tire: tire,
	}, nil
}

func (w *Wheel) Diameter() float64 {
	return w.rim + 2*w.tire
}

func (w *Wheel) Circumference() float64 {
	return w.Diameter() * math.Pi
}
