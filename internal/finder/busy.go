package finder

import (
	"slices"

	"github.com/nikmy/meetslot/internal/meeting"
)

// busyIndex splits the day's busy time by who is busy.
type busyIndex struct {
	// mandatory may repeat ranges, overlaps are resolved by freeSlots
	mandatory []meeting.TimeRange

	// optional has no key for attendees without events
	optional map[string][]meeting.TimeRange
}

// buildBusyIndex expects mandatory and optional sorted, see meeting.Request.Normalize.
func buildBusyIndex(events []meeting.Event, mandatory, optional []string) busyIndex {
	idx := busyIndex{optional: make(map[string][]meeting.TimeRange)}

	for _, e := range events {
		for _, name := range e.Attendees {
			if _, found := slices.BinarySearch(mandatory, name); found {
				idx.mandatory = append(idx.mandatory, e.When)
			}

			if _, found := slices.BinarySearch(optional, name); found {
				idx.optional[name] = append(idx.optional[name], e.When)
			}
		}
	}

	return idx
}

// sortedUnion concatenates lists into a fresh slice ordered by start.
func sortedUnion(lists ...[]meeting.TimeRange) []meeting.TimeRange {
	var n int
	for _, l := range lists {
		n += len(l)
	}

	union := make([]meeting.TimeRange, 0, n)
	for _, l := range lists {
		union = append(union, l...)
	}

	slices.SortFunc(union, meeting.OrderByStart)
	return union
}
