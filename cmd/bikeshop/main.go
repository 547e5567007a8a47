package main

import (
	"github.com/alecthomas/kong"

	"github.com/pescuma/bikeshop/lib/consoles"
)

var cli struct {
	Parts  PartsCmd  `cmd:"" help:"Show the parts of a catalog."`
	Spares SparesCmd `cmd:"" help:"Assemble a bike from a catalog and list the spares to pack."`
	Gear   GearCmd   `cmd:"" help:"Compute gear ratio and gear inches."`

	Trip struct {
		Plan TripPlanCmd `cmd:"" help:"Plan a trip using bikes from a catalog."`
	} `cmd:""`
}

type context struct {
	console consoles.Console
}

func main() {
	ctx := kong.Parse(&cli, kong.ShortUsageOnError())

	err := ctx.Run(&context{
		console: consoles.NewStdOutConsole(),
	})
	ctx.FatalIfErrorf(err)
}
