package catalog

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

var Road = Config{
	{"chain", "10-speed"},
	{"tire_size", "23"},
	{"tape_color", "red"},
}

var Mountain = Config{
	{"chain", "10-speed"},
	{"tire_size", "2.1"},
	{"front_shock", "Manitou", false},
	{"rear_shock", "Fox"},
}

var Recumbent = Config{
	{"chain", "9-speed"},
	{"tire_size", "28"},
	{"flag", "tall and orange"},
}

var defaults = map[string]Config{
	"road":      Road,
	"mountain":  Mountain,
	"recumbent": Recumbent,
}

func Default(name string) (Config, error) {
	result, ok := defaults[name]
	if !ok {
		return nil, errors.Errorf("unknown catalog: %v (available: %v)", name, Names())
	}

	return result, nil
}

func Names() []string {
	result := lo.Keys(defaults)
	sort.Strings(result)
	return result
}
