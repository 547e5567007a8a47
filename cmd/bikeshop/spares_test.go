package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pescuma/bikeshop/lib/consoles"
)

func TestSparesCmdRoad(t *testing.T) {
	t.Parallel()

	console := consoles.NewMemoryConsole()

	cmd := SparesCmd{Catalog: "road", Size: "M"}
	err := cmd.Run(&context{console: console})
	assert.Nil(t, err)

	text := console.Text()
	assert.Contains(t, text, "pack 3 spares")
	assert.Contains(t, text, "chain (10-speed)")
	assert.Contains(t, text, "tape_color (red)")
}

func TestSparesCmdMountainSkipsFrontShock(t *testing.T) {
	t.Parallel()

	console := consoles.NewMemoryConsole()

	cmd := SparesCmd{Catalog: "mountain", Size: "L"}
	err := cmd.Run(&context{console: console})
	assert.Nil(t, err)

	text := console.Text()
	assert.Contains(t, text, "pack 3 spares")
	assert.NotContains(t, text, "front_shock")
	assert.Contains(t, text, "rear_shock (Fox)")
}

func TestSparesCmdUnknownCatalog(t *testing.T) {
	t.Parallel()

	cmd := SparesCmd{Catalog: "unicycle", Size: "M"}
	err := cmd.Run(&context{console: consoles.NewMemoryConsole()})

	assert.ErrorContains(t, err, "unknown catalog")
}

func TestGearCmd(t *testing.T) {
	t.Parallel()

	console := consoles.NewMemoryConsole()

	cmd := GearCmd{Chainring: 52, Cog: 11, Rim: 26, Tire: 1.5}
	err := cmd.Run(&context{console: console})
	assert.Nil(t, err)

	text := console.Text()
	assert.Contains(t, text, "Ratio: 4.73")
	assert.Contains(t, text, "Gear inches: 137.09")
}
