package main

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gertd/go-pluralize"

	"github.com/pescuma/bikeshop/lib/catalog"
	"github.com/pescuma/bikeshop/lib/model"
	"github.com/pescuma/bikeshop/lib/trip"
)

type TripPlanCmd struct {
	Catalog string `arg:"" help:"Catalog name: road, mountain or recumbent."`

	Riders int    `short:"r" default:"2" help:"How many riders join the trip."`
	Days   int    `short:"d" default:"3" help:"Trip length in days."`
	Start  string `help:"Start date (2006-01-02). Default is a week from today."`
}

var frameSizes = []string{"S", "M", "L"}

func (c *TripPlanCmd) Run(ctx *context) error {
	cfg, err := catalog.Default(c.Catalog)
	if err != nil {
		return err
	}

	parts, err := catalog.Build(cfg)
	if err != nil {
		return err
	}

	bikes := make([]*model.Bicycle, 0, c.Riders)
	for i := 0; i < c.Riders; i++ {
		bike, err := model.NewBicycle(frameSizes[i%len(frameSizes)], parts)
		if err != nil {
			return err
		}

		bikes = append(bikes, bike)
	}

	start := time.Now().AddDate(0, 0, 7)
	if c.Start != "" {
		start, err = time.Parse("2006-01-02", c.Start)
		if err != nil {
			return err
		}
	}
	end := start.AddDate(0, 0, c.Days-1)

	t, err := trip.NewTrip(start, end, c.Riders, bikes)
	if err != nil {
		return err
	}

	ctx.console.Printf("Planning a %v-day %v trip for %v %v, leaving %v\n",
		t.Days(), c.Catalog, t.Riders(),
		pluralize.NewClient().Pluralize("rider", t.Riders(), false),
		humanize.Time(start))

	mechanic := trip.NewMechanic(ctx.console)
	driver := trip.NewDriver(ctx.console)

	err = t.Prepare([]trip.Preparer{
		mechanic,
		trip.NewTripCoordinator(ctx.console),
		driver,
	})
	if err != nil {
		return err
	}

	ctx.console.Printf("Spare manifest: %v\n", mechanic.SpareManifest(t))

	bicycles, err := trip.NewResource("bicycles", trip.BicycleLeadDays)
	if err != nil {
		return err
	}

	for _, s := range []trip.Schedulable{mechanic, driver, bicycles} {
		ctx.console.Printf("Book the %v by %v\n",
			s.Name(), humanize.Time(start.AddDate(0, 0, -s.LeadDays())))
	}

	return nil
}
