package main

import (
	"github.com/pescuma/bikeshop/lib/model"
)

type GearCmd struct {
	Chainring float64 `default:"52" help:"Number of chainring teeth."`
	Cog       float64 `default:"11" help:"Number of cog teeth."`
	Rim       float64 `default:"26" help:"Rim diameter in inches."`
	Tire      float64 `default:"1.5" help:"Tire height in inches."`
}

func (c *GearCmd) Run(ctx *context) error {
	wheel, err := model.NewWheel(c.Rim, c.Tire)
	if err != nil {
		return err
	}

	gear, err := model.NewGear(c.Chainring, c.Cog, wheel)
	if err != nil {
		return err
	}

	ctx.console.Printf("Ratio: %.2f\n", gear.Ratio())
	ctx.console.Printf("Gear inches: %.2f\n", gear.GearInches())
	ctx.console.Printf("Wheel circumference: %.2f\n", wheel.Circumference())

	return nil
}
