package model_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/pescuma/bikeshop/lib/model"
)

func newTestParts(t *testing.T) *model.Parts {
	chain, err := model.NewPartSpec("chain", "10-speed", true)
	assert.Nil(t, err)
	shock, err := model.NewPartSpec("front_shock", "Manitou", false)
	assert.Nil(t, err)
	tire, err := model.NewPartSpec("tire_size", "2.1", true)
	assert.Nil(t, err)

	parts, err := model.NewParts([]model.Part{chain, shock, tire})
	assert.Nil(t, err)

	return parts
}

func TestPartsLen(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, newTestParts(t).Len())
}

func TestPartsSparesFiltersAndKeepsOrder(t *testing.T) {
	t.Parallel()

	spares := newTestParts(t).Spares()

	names := lo.Map(spares, func(p model.Part, _ int) string { return p.Name() })
	assert.Equal(t, []string{"chain", "tire_size"}, names)
}

func TestPartsSparesReturnsFreshSlice(t *testing.T) {
	t.Parallel()

	parts := newTestParts(t)

	first := parts.Spares()
	first[0] = nil

	second := parts.Spares()
	assert.NotNil(t, second[0])
	assert.Equal(t, "chain", second[0].Name())
}

func TestPartsSparesIdempotent(t *testing.T) {
	t.Parallel()

	parts := newTestParts(t)

	assert.Equal(t, parts.Spares(), parts.Spares())
}

func TestPartsEachVisitsInOrder(t *testing.T) {
	t.Parallel()

	parts := newTestParts(t)

	var names []string
	parts.Each(func(p model.Part) bool {
		names = append(names, p.Name())
		return true
	})

	assert.Equal(t, []string{"chain", "front_shock", "tire_size"}, names)

	// restartable: a second traversal starts fresh
	count := 0
	parts.Each(func(p model.Part) bool {
		count++
		return true
	})
	assert.Equal(t, 3, count)
}

func TestPartsEachStopsEarly(t *testing.T) {
	t.Parallel()

	count := 0
	newTestParts(t).Each(func(p model.Part) bool {
		count++
		return false
	})

	assert.Equal(t, 1, count)
}

func TestPartsListIsACopy(t *testing.T) {
	t.Parallel()

	parts := newTestParts(t)

	list := parts.List()
	list[0] = nil

	assert.Equal(t, "chain", parts.List()[0].Name())
}

func TestNewPartsNilSlice(t *testing.T) {
	t.Parallel()

	_, err := model.NewParts(nil)

	var invalid *model.InvalidArgumentError
	assert.ErrorAs(t, err, &invalid)
}

func TestNewPartsNilElement(t *testing.T) {
	t.Parallel()

	chain, err := model.NewPartSpec("chain", "10-speed", true)
	assert.Nil(t, err)

	_, err = model.NewParts([]model.Part{chain, nil})

	var invalid *model.InvalidArgumentError
	assert.ErrorAs(t, err, &invalid)
}
