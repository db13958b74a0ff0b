package finder

import (
	"context"
	"slices"

	"github.com/nikmy/meetslot/internal/meeting"
	"github.com/nikmy/meetslot/pkg/errors"
	"github.com/nikmy/meetslot/pkg/logger"
)

var (
	ErrInvalidRequest = errors.Error("invalid meeting request")
	ErrSearchBudget   = errors.Error("search budget exhausted")
)

type Result struct {
	Slots []meeting.TimeRange `json:"slots"`

	// Optional lists optional attendees free during every slot.
	Optional []string `json:"optional_attendees"`
	Dropped  []string `json:"dropped"`
}

// Finder resolves meeting requests against a day of events. It keeps no
// state between calls and may be shared by goroutines.
type Finder struct {
	cfg Config
	log logger.Logger
}

func New(log logger.Logger, cfg Config) *Finder {
	return &Finder{
		cfg: cfg,
		log: log.With("finder"),
	}
}

// Query returns all slots of the day that fit the request. An empty list
// means nothing fits.
func (f *Finder) Query(ctx context.Context, events []meeting.Event, req meeting.Request) ([]meeting.TimeRange, error) {
	res, err := f.Resolve(ctx, events, req)
	if err != nil {
		return nil, err
	}
	return res.Slots, nil
}

// Resolve is Query which also reports who of the optional attendees is in.
func (f *Finder) Resolve(ctx context.Context, events []meeting.Event, req meeting.Request) (Result, error) {
	err := validate(events, req)
	if err != nil {
		return Result{}, err
	}

	mandatory, optional := req.Normalize()
	busy := buildBusyIndex(events, mandatory, optional)

	s := &search{
		ctx:       ctx,
		mandatory: busy.mandatory,
		optional:  busy.optional,
		duration:  req.Duration,
		maxChecks: f.cfg.MaxChecks,
	}

	var res Result
	if len(mandatory) == 0 && f.cfg.NoMandatory == PolicyIncludeAll {
		all := make([][]meeting.TimeRange, 0, len(optional))
		for _, name := range optional {
			all = append(all, busy.optional[name])
		}
		s.mandatory = sortedUnion(all...)

		res.Slots, err = s.slotsWith(nil)
		res.Optional = optional
	} else {
		res.Slots, res.Optional, err = s.maximize(optional)
	}

	if err != nil {
		return Result{}, errors.WrapFail(err, "find meeting slots")
	}

	if len(res.Slots) == 0 {
		res.Optional = nil
	}
	res.Optional = append(make([]string, 0, len(res.Optional)), res.Optional...)
	res.Dropped = slices.DeleteFunc(slices.Clone(optional), func(name string) bool {
		_, found := slices.BinarySearch(res.Optional, name)
		return found
	})
	if res.Dropped == nil {
		res.Dropped = make([]string, 0)
	}

	f.log.Debugf(
		"%d slots of %d min for %d mandatory and %d/%d optional attendees, %d checks",
		len(res.Slots), req.Duration, len(mandatory), len(res.Optional), len(optional), s.checks,
	)

	return res, nil
}

func validate(events []meeting.Event, req meeting.Request) error {
	if req.Duration <= 0 {
		return errors.Wrapf(ErrInvalidRequest, "duration %d", req.Duration)
	}

	for i, e := range events {
		if !e.When.Valid() {
			return errors.Wrapf(ErrInvalidRequest, "event #%d at %s", i, e.When)
		}
	}

	return nil
}
