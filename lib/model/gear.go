package model

// Diameterizable is the role a Gear needs from its wheel: nothing beyond
// a diameter.
type Diameterizable interface {
	Diameter() float64
}

type Gear struct {
	chainring float64
	cog       float64
	wheel     Diameterizable
}

func NewGear(chainring float64, cog float64, wheel Diameterizable) (*Gear, error) {
	if chainring <= 0 {
		return nil, &InvalidArgumentError{Reason: "chainring must be positive"}
	}
	if cog <= 0 {
		return nil, &InvalidArgumentError{Reason: "cog must be positive"}
	}
	if wheel == nil {
		return nil, &InvalidArgumentError{Reason: "gear needs a wheel"}
	}

	return &Gear{
		chainring: chainring,
		cog:       cog,
		wheel:     wheel,
	}, nil
}

func (g *Gear) Ratio() float64 {
	return g.chainring / g.cog
}

func (g *Gear) GearInches() float64 {
	return g.Ratio() * g.wheel.Diameter()
}
