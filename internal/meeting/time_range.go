package meeting

import (
	"cmp"
	"encoding/json"
	"fmt"

	"github.com/nikmy/meetslot/pkg/errors"
)

// Times are minute offsets from the beginning of a single day.
const (
	StartOfDay = 0
	EndOfDay   = 23*60 + 59

	minutesInDay = EndOfDay + 1
)

// WholeDay spans [StartOfDay, EndOfDay] including the last minute.
var WholeDay = FromStartEnd(StartOfDay, EndOfDay, true)

// TimeRange is a half-open interval [start, start+duration) of a day.
// The zero value is an empty range at the start of the day.
type TimeRange struct {
	start    int
	duration int
}

func FromStartDuration(start, duration int) TimeRange {
	return TimeRange{start: start, duration: duration}
}

// FromStartEnd builds [start, end), or [start, end] when inclusive is set.
func FromStartEnd(start, end int, inclusive bool) TimeRange {
	if inclusive {
		end++
	}
	return TimeRange{start: start, duration: end - start}
}

func (r TimeRange) Start() int    { return r.start }
func (r TimeRange) End() int      { return r.start + r.duration }
func (r TimeRange) Duration() int { return r.duration }

// Valid reports whether r is a non-empty range inside the day.
func (r TimeRange) Valid() bool {
	return r.start >= StartOfDay && r.duration > 0 && r.End() <= minutesInDay
}

func (r TimeRange) Overlaps(other TimeRange) bool {
	// empty ranges overlap nothing
	if r.duration <= 0 || other.duration <= 0 {
		return false
	}
	return r.start < other.End() && other.start < r.End()
}

func (r TimeRange) Contains(other TimeRange) bool {
	if other.duration <= 0 {
		return r.ContainsPoint(other.start)
	}
	return r.start <= other.start && other.End() <= r.End()
}

func (r TimeRange) ContainsPoint(minute int) bool {
	return r.start <= minute && minute < r.End()
}

func (r TimeRange) String() string {
	return fmt.Sprintf("[%d, %d)", r.start, r.End())
}

// OrderByStart is a slices.SortFunc comparator, ties are broken by end.
func OrderByStart(a, b TimeRange) int {
	return cmpOr(cmp.Compare(a.start, b.start), cmp.Compare(a.End(), b.End()))
}

// OrderByEnd is a slices.SortFunc comparator, ties are broken by start.
func OrderByEnd(a, b TimeRange) int {
	return cmpOr(cmp.Compare(a.End(), b.End()), cmp.Compare(a.start, b.start))
}

// cmpOr mirrors cmp.Or (Go 1.22+) for ints: it returns the first non-zero value.
func cmpOr(vals ...int) int {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}
	return 0
}

type timeRangeJSON struct {
	Start    int  `json:"start"`
	End      *int `json:"end,omitempty"`
	Duration *int `json:"duration,omitempty"`
}

func (r TimeRange) MarshalJSON() ([]byte, error) {
	end, duration := r.End(), r.duration
	return json.Marshal(timeRangeJSON{Start: r.start, End: &end, Duration: &duration})
}

// UnmarshalJSON accepts a start together with either an end or a duration.
func (r *TimeRange) UnmarshalJSON(data []byte) error {
	var raw timeRangeJSON
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return errors.WrapFail(err, "decode time range")
	}

	switch {
	case raw.End != nil && raw.Duration != nil:
		if *raw.End-raw.Start != *raw.Duration {
			return errors.Errorf("time range end %d does not match duration %d", *raw.End, *raw.Duration)
		}
		*r = FromStartDuration(raw.Start, *raw.Duration)
	case raw.End != nil:
		*r = FromStartEnd(raw.Start, *raw.End, false)
	case raw.Duration != nil:
		*r = FromStartDuration(raw.Start, *raw.Duration)
	default:
		return errors.Error("time range needs either \"end\" or \"duration\"")
	}

	return nil
}
