package meeting

import (
	"slices"
)

// Event is a block of time during which all of its attendees are busy.
type Event struct {
	Title     string    `json:"title,omitempty"`
	Attendees []string  `json:"attendees"`
	When      TimeRange `json:"when"`
}

// Request describes a meeting to fit into the day. Duration is in minutes.
type Request struct {
	Attendees         []string `json:"attendees"`
	OptionalAttendees []string `json:"optional_attendees"`
	Duration          int      `json:"duration"`
}

// Normalize returns sorted attendee lists without duplicates and blank
// names. Somebody listed as both mandatory and optional stays mandatory.
func (r Request) Normalize() (mandatory []string, optional []string) {
	mandatory = uniqueNames(r.Attendees)
	optional = slices.DeleteFunc(uniqueNames(r.OptionalAttendees), func(name string) bool {
		_, found := slices.BinarySearch(mandatory, name)
		return found
	})
	return mandatory, optional
}

func uniqueNames(names []string) []string {
	unique := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		unique = append(unique, name)
	}

	slices.Sort(unique)
	return slices.Compact(unique)
}
