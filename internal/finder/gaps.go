package finder

import "github.com/nikmy/meetslot/internal/meeting"

// freeSlots returns every gap between busy ranges that fits duration.
// busy must be sorted by start; it may contain overlapping ranges.
func freeSlots(busy []meeting.TimeRange, duration int) []meeting.TimeRange {
	slots := make([]meeting.TimeRange, 0)
	lastEnd := meeting.StartOfDay

	for _, r := range busy {
		if r.Start() <= lastEnd {
			// nested ranges must not move lastEnd back
			lastEnd = max(lastEnd, r.End())
			continue
		}

		if r.Start()-lastEnd >= duration {
			slots = append(slots, meeting.FromStartEnd(lastEnd, r.Start(), false))
		}
		lastEnd = r.End()
	}

	if meeting.EndOfDay+1-lastEnd >= duration {
		slots = append(slots, meeting.FromStartEnd(lastEnd, meeting.EndOfDay, true))
	}

	return slots
}
