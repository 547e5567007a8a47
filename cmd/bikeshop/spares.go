package main

import (
	"github.com/gertd/go-pluralize"

	"github.com/pescuma/bikeshop/lib/catalog"
	"github.com/pescuma/bikeshop/lib/model"
)

type SparesCmd struct {
	Catalog string `arg:"" help:"Catalog name: road, mountain or recumbent."`

	Size string `short:"s" default:"M" help:"Frame size label."`
}

func (c *SparesCmd) Run(ctx *context) error {
	cfg, err := catalog.Default(c.Catalog)
	if err != nil {
		return err
	}

	parts, err := catalog.Build(cfg)
	if err != nil {
		return err
	}

	bike, err := model.NewBicycle(c.Size, parts)
	if err != nil {
		return err
	}

	spares := bike.Spares()

	ctx.console.Printf("%v bike, size %v: pack %v %v\n",
		c.Catalog, bike.SizeLabel(), len(spares),
		pluralize.NewClient().Pluralize("spare", len(spares), false))

	for _, p := range spares {
		ctx.console.Printf("   %v (%v)\n", p.Name(), p.Description())
	}

	return nil
}
