package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pescuma/bikeshop/lib/model"
)

func TestNewPartSpec(t *testing.T) {
	t.Parallel()

	p, err := model.NewPartSpec("chain", "10-speed", true)
	assert.Nil(t, err)
	assert.Equal(t, "chain", p.Name())
	assert.Equal(t, "10-speed", p.Description())
	assert.True(t, p.NeedsSpare())
}

func TestNewPartSpecNoSpare(t *testing.T) {
	t.Parallel()

	p, err := model.NewPartSpec("front_shock", "Manitou", false)
	assert.Nil(t, err)
	assert.False(t, p.NeedsSpare())
}

func TestNewPartSpecMissingName(t *testing.T) {
	t.Parallel()

	_, err := model.NewPartSpec("", "10-speed", true)

	var missing *model.MissingFieldError
	assert.ErrorAs(t, err, &missing)
	assert.Equal(t, "name", missing.Field)
}

func TestNewPartSpecMissingDescription(t *testing.T) {
	t.Parallel()

	_, err := model.NewPartSpec("chain", "", true)

	var missing *model.MissingFieldError
	assert.ErrorAs(t, err, &missing)
	assert.Equal(t, "description", missing.Field)
}
