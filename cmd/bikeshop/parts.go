package main

import (
	"github.com/aquilax/truncate"
	"github.com/gosuri/uitable"

	"github.com/pescuma/bikeshop/lib/catalog"
	"github.com/pescuma/bikeshop/lib/model"
	"github.com/pescuma/bikeshop/lib/utils"
)

type PartsCmd struct {
	Catalog string `arg:"" help:"Catalog name: road, mountain or recumbent."`

	Width int `short:"w" default:"40" help:"Max width of the description column."`
}

func (c *PartsCmd) Run(ctx *context) error {
	cfg, err := catalog.Default(c.Catalog)
	if err != nil {
		return err
	}

	parts, err := catalog.Build(cfg)
	if err != nil {
		return err
	}

	table := uitable.New()
	table.AddRow("PART", "DESCRIPTION", "SPARE")

	parts.Each(func(p model.Part) bool {
		table.AddRow(p.Name(),
			truncate.Truncate(p.Description(), c.Width, "...", truncate.PositionEnd),
			utils.IIf(p.NeedsSpare(), "yes", ""))
		return true
	})

	ctx.console.Printf("%v\n", table)

	return nil
}
