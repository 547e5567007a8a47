package trip

import (
	"fmt"
	"time"

	"github.com/pescuma/bikeshop/lib/model"
)

// Preparer is the role played by anyone who gets a trip ready. The trip
// hands itself over and each preparer takes what it needs from it.
type Preparer interface {
	PrepareTrip(t *Trip) error
}

type Trip struct {
	start    time.Time
	end      time.Time
	riders   int
	bicycles []*model.Bicycle
}

func NewTrip(start time.Time, end time.Time, riders int, bicycles []*model.Bicycle) (*Trip, error) {
	if end.Before(start) {
		return nil, &model.InvalidArgumentError{Reason: "trip ends before it starts"}
	}
	if riders <= 0 {
		return nil, &model.InvalidArgumentError{Reason: "trip needs at least one rider"}
	}
	if len(bicycles) == 0 {
		return nil, &model.InvalidArgumentError{Reason: "trip needs at least one bicycle"}
	}
	for i, b := range bicycles {
		if b == nil {
			return nil, &model.InvalidArgumentError{Reason: fmt.Sprintf("nil bicycle at position %v", i)}
		}
	}

	return &Trip{
		start:    start,
		end:      end,
		riders:   riders,
		bicycles: bicycles,
	}, nil
}

func (t *Trip) Start() time.Time {
	return t.start
}

func (t *Trip) End() time.Time {
	return t.end
}

func (t *Trip) Riders() int {
	return t.riders
}

func (t *Trip) Bicycles() []*model.Bicycle {
	result := make([]*model.Bicycle, len(t.bicycles))
	copy(result, t.bicycles)
	return result
}

func (t *Trip) Days() int {
	return int(t.end.Sub(t.start).Hours()/24) + 1
}

func (t *Trip) Prepare(preparers []Preparer) error {
	for _, p := range preparers {
		if err := p.PrepareTrip(t); err != nil {
			return err
		}
	}

	return nil
}
