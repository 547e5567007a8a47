package trip

import (
	"time"

	"github.com/pescuma/bikeshop/lib/model"
)

// Schedulable is the role played by anything that can be booked: it has an
// identity and needs some days of preparation before a trip starts.
type Schedulable interface {
	Name() string
	LeadDays() int
}

// Resource is a plain Schedulable for things that are not preparers, like
// the bicycles themselves.
type Resource struct {
	name     string
	leadDays int
}

func NewResource(name string, leadDays int) (*Resource, error) {
	if name == "" {
		return nil, &model.MissingFieldError{Field: "name"}
	}
	if leadDays < 0 {
		return nil, &model.InvalidArgumentError{Reason: "lead days must not be negative"}
	}

	return &Resource{
		name:     name,
		leadDays: leadDays,
	}, nil
}

func (r *Resource) Name() string {
	return r.name
}

func (r *Resource) LeadDays() int {
	return r.leadDays
}

const BicycleLeadDays = 1

type interval struct {
	start time.Time
	end   time.Time
}

func (iv interval) overlaps(start, end time.Time) bool {
	return !start.After(iv.end) && !iv.start.After(end)
}

// Schedule tracks busy intervals per target, keyed by name. Dates are
// inclusive on both ends.
type Schedule struct {
	busy map[string][]interval
}

func NewSchedule() *Schedule {
	return &Schedule{
		busy: map[string][]interval{},
	}
}

func (s *Schedule) Add(target string, start, end time.Time) error {
	if target == "" {
		return &model.MissingFieldError{Field: "target"}
	}
	if end.Before(start) {
		return &model.InvalidArgumentError{Reason: "interval ends before it starts"}
	}

	s.busy[target] = append(s.busy[target], interval{start: start, end: end})

	return nil
}

func (s *Schedule) IsScheduled(target string, start, end time.Time) bool {
	for _, iv := range s.busy[target] {
		if iv.overlaps(start, end) {
			return true
		}
	}

	return false
}

// IsAvailable extends the requested window backwards by the target's lead
// days before checking for conflicts.
func (s *Schedule) IsAvailable(target Schedulable, start, end time.Time) bool {
	return !s.IsScheduled(target.Name(), start.AddDate(0, 0, -target.LeadDays()), end)
}
