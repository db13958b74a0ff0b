package calendar

import (
	"bytes"
	"context"
	"os"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"github.com/nikmy/meetslot/internal/meeting"
	"github.com/nikmy/meetslot/pkg/errors"
	"github.com/nikmy/meetslot/pkg/logger"
)

const defaultMaxOccurrences = 500

// icsEvent is a VEVENT reduced to what is needed to block time.
type icsEvent struct {
	uid       string
	title     string
	attendees []string

	start  time.Time
	end    time.Time
	allDay bool

	rrule   string
	exDates []time.Time
}

func newICSSource(log logger.Logger, cfg ICSConfig, loc *time.Location) *icsSource {
	if cfg.MaxOccurrences <= 0 {
		cfg.MaxOccurrences = defaultMaxOccurrences
	}

	return &icsSource{
		files: cfg.Files,
		limit: cfg.MaxOccurrences,
		loc:   loc,
		log:   log.With("ics_events"),
	}
}

// icsSource reads its files on every call, so edits are picked up
// without a restart.
type icsSource struct {
	files []string
	limit int
	loc   *time.Location
	log   logger.Logger
}

func (s *icsSource) Events(ctx context.Context, day time.Time, attendees []string) ([]meeting.Event, error) {
	dayStart, dayEnd := dayBounds(day, s.loc)

	var events []meeting.Event
	for _, file := range s.files {
		err := ctx.Err()
		if err != nil {
			return nil, errors.WrapFail(err, "read calendars")
		}

		body, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.WrapFailf(err, "read %s", file)
		}

		parsed, err := parseICS(body, s.loc, s.log)
		if err != nil {
			return nil, errors.WrapFailf(err, "parse %s", file)
		}

		for _, ev := range parsed {
			if !involves(ev.attendees, attendees) {
				continue
			}
			events = append(events, expand(ev, dayStart, dayEnd, s.limit, s.log)...)
		}
	}

	return events, nil
}

func (s *icsSource) Close(context.Context) error {
	return nil
}

func parseICS(body []byte, loc *time.Location, log logger.Logger) ([]icsEvent, error) {
	if len(body) == 0 {
		return nil, errors.Error("empty calendar")
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, errors.WrapFail(err, "parse calendar")
	}

	var events []icsEvent
	for _, ve := range cal.Events() {
		if blocksNoTime(ve) {
			continue
		}

		ev, err := parseVEvent(ve, loc)
		if err != nil {
			log.Warn(errors.WrapFail(err, "parse event"))
			continue
		}
		events = append(events, ev)
	}

	return events, nil
}

// blocksNoTime reports cancelled and transparent events.
func blocksNoTime(ve *ical.VEvent) bool {
	if p := ve.GetProperty("STATUS"); p != nil && strings.EqualFold(p.Value, "CANCELLED") {
		return true
	}
	if p := ve.GetProperty("TRANSP"); p != nil && strings.EqualFold(p.Value, "TRANSPARENT") {
		return true
	}
	return false
}

func parseVEvent(ve *ical.VEvent, loc *time.Location) (icsEvent, error) {
	var ev icsEvent

	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		ev.uid = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		ev.title = p.Value
	}

	for _, a := range ve.Attendees() {
		if addr := address(a.Value); addr != "" {
			ev.attendees = append(ev.attendees, addr)
		}
	}
	if p := ve.GetProperty(ical.ComponentPropertyOrganizer); p != nil {
		if addr := address(p.Value); addr != "" {
			ev.attendees = append(ev.attendees, addr)
		}
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return ev, errors.WrapFailf(err, "get start of %q", ev.uid)
	}

	if p := ve.GetProperty(ical.ComponentPropertyDtStart); p != nil && isDate(p) {
		ev.allDay = true
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	}

	end, err := ve.GetEndAt()
	switch {
	case err != nil || !end.After(start):
		end = start
		if ev.allDay {
			end = start.AddDate(0, 0, 1)
		}
	case ev.allDay:
		end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, loc)
	}

	ev.start, ev.end = start, end

	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		ev.rrule = p.Value
	}

	for _, p := range ve.GetProperties(ical.ComponentPropertyExdate) {
		for _, part := range strings.Split(p.Value, ",") {
			t, err := parseICSTime(strings.TrimSpace(part), loc)
			if err == nil {
				ev.exDates = append(ev.exDates, t)
			}
		}
	}

	return ev, nil
}

// expand returns occurrences of ev that touch the day.
func expand(ev icsEvent, dayStart, dayEnd time.Time, limit int, log logger.Logger) []meeting.Event {
	starts := []time.Time{ev.start}

	if ev.rrule != "" {
		r, err := rrule.StrToRRule(ev.rrule)
		if err != nil {
			log.Warn(errors.WrapFailf(err, "parse rrule of %q", ev.uid))
			return nil
		}
		r.DTStart(ev.start)

		var set rrule.Set
		set.RRule(r)
		for _, ex := range ev.exDates {
			set.ExDate(ex.In(ev.start.Location()))
		}

		// occurrences started the day before may still run into this day
		from := dayStart.Add(-ev.end.Sub(ev.start))
		starts = set.Between(from, dayEnd, true)
		if len(starts) > limit {
			log.Warnf("event %q has %d occurrences in a day, keeping %d", ev.uid, len(starts), limit)
			starts = starts[:limit]
		}
	}

	var events []meeting.Event
	for _, start := range starts {
		when, ok := project(dayStart, dayEnd, start, start.Add(ev.end.Sub(ev.start)))
		if !ok {
			continue
		}

		events = append(events, meeting.Event{
			Title:     ev.title,
			Attendees: ev.attendees,
			When:      when,
		})
	}
	return events
}

func address(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= len("mailto:") && strings.EqualFold(v[:len("mailto:")], "mailto:") {
		v = v[len("mailto:"):]
	}
	return v
}

func isDate(p *ical.IANAProperty) bool {
	if vs, ok := p.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		return true
	}
	return !strings.Contains(p.Value, "T")
}

func parseICSTime(v string, loc *time.Location) (time.Time, error) {
	switch {
	case v == "":
		return time.Time{}, errors.Error("empty time value")
	case strings.HasSuffix(v, "Z"):
		return time.Parse("20060102T150405Z", v)
	case strings.Contains(v, "T"):
		return time.ParseInLocation("20060102T150405", v, loc)
	default:
		return time.ParseInLocation("20060102", v, loc)
	}
}
