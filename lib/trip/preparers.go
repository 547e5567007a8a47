package trip

import (
	"sort"
	"strings"

	"github.com/hashicorp/go-set/v2"
	"github.com/samber/lo"

	"github.com/pescuma/bikeshop/lib/consoles"
	"github.com/pescuma/bikeshop/lib/model"
)

type Mechanic struct {
	console consoles.Console
}

func NewMechanic(console consoles.Console) *Mechanic {
	return &Mechanic{console: console}
}

func (m *Mechanic) Name() string {
	return "mechanic"
}

func (m *Mechanic) LeadDays() int {
	return 4
}

func (m *Mechanic) PrepareTrip(t *Trip) error {
	for _, b := range t.Bicycles() {
		m.PrepareBicycle(b)
	}

	return nil
}

func (m *Mechanic) PrepareBicycle(b *model.Bicycle) {
	spares := b.Spares()
	names := lo.Map(spares, func(p model.Part, _ int) string { return p.Name() })

	m.console.Printf("Checking size %v bike and packing %v\n",
		b.SizeLabel(), strings.Join(names, ", "))
}

// SpareManifest lists the distinct spare part names needed across all
// bicycles of a trip, sorted.
func (m *Mechanic) SpareManifest(t *Trip) []string {
	names := set.New[string](10)

	for _, b := range t.Bicycles() {
		for _, p := range b.Spares() {
			names.Insert(p.Name())
		}
	}

	result := names.Slice()
	sort.Strings(result)

	return result
}

type TripCoordinator struct {
	console consoles.Console
}

func NewTripCoordinator(console consoles.Console) *TripCoordinator {
	return &TripCoordinator{console: console}
}

func (c *TripCoordinator) Name() string {
	return "coordinator"
}

func (c *TripCoordinator) PrepareTrip(t *Trip) error {
	c.console.Printf("Buying food for %v riders for %v days\n", t.Riders(), t.Days())
	return nil
}

type Driver struct {
	console consoles.Console
}

func NewDriver(console consoles.Console) *Driver {
	return &Driver{console: console}
}

func (d *Driver) Name() string {
	return "driver"
}

func (d *Driver) LeadDays() int {
	return 3
}

func (d *Driver) PrepareTrip(t *Trip) error {
	d.console.Printf("Gassing up the support vehicle and filling water tanks\n")
	return nil
}
