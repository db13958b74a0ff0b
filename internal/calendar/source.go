package calendar

import (
	"context"
	"time"

	"github.com/nikmy/meetslot/internal/meeting"
	"github.com/nikmy/meetslot/pkg/errors"
	"github.com/nikmy/meetslot/pkg/logger"
)

// Source supplies events of a single day.
type Source interface {
	// Events returns events on the date of day which involve any of
	// attendees, or all events of that date if attendees is empty.
	Events(ctx context.Context, day time.Time, attendees []string) ([]meeting.Event, error)

	Close(ctx context.Context) error
}

func New(ctx context.Context, log logger.Logger, cfg Config) (Source, error) {
	loc, err := loadLocation(cfg.Location)
	if err != nil {
		return nil, err
	}

	switch cfg.Kind {
	case KindMongo:
		return newMongoSource(ctx, log, cfg.Mongo, loc)
	case KindICS:
		return newICSSource(log, cfg.ICS, loc), nil
	default:
		return nil, errors.Errorf("unknown calendar kind %q", cfg.Kind)
	}
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(name)
	return loc, errors.WrapFailf(err, "load location %q", name)
}

// dayBounds returns [00:00, 24:00) in loc of the date of t, the
// location of t itself is ignored.
func dayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// project clips [start, end) to the day and turns it into minute offsets,
// rounding outwards. ok is false when nothing of the range is left.
func project(dayStart, dayEnd, start, end time.Time) (r meeting.TimeRange, ok bool) {
	if !start.Before(dayEnd) || !end.After(dayStart) {
		return r, false
	}

	if start.Before(dayStart) {
		start = dayStart
	}
	if end.After(dayEnd) {
		end = dayEnd
	}

	from := int(start.Sub(dayStart) / time.Minute)
	to := int((end.Sub(dayStart) + time.Minute - 1) / time.Minute)
	to = min(to, meeting.EndOfDay+1)

	if to <= from {
		return r, false
	}

	return meeting.FromStartEnd(from, to, false), true
}

func involves(event []string, attendees []string) bool {
	if len(attendees) == 0 {
		return true
	}

	for _, a := range event {
		for _, b := range attendees {
			if a == b {
				return true
			}
		}
	}
	return false
}
