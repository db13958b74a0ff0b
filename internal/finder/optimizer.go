package finder

import (
	"context"
	"slices"

	"github.com/nikmy/meetslot/internal/meeting"
	"github.com/nikmy/meetslot/pkg/errors"
)

// search holds the working state of one query. It is never shared
// between queries.
type search struct {
	ctx       context.Context
	mandatory []meeting.TimeRange
	optional  map[string][]meeting.TimeRange
	duration  int
	maxChecks int
	checks    int
}

// slotsWith returns free slots for the mandatory attendees together with group.
func (s *search) slotsWith(group []string) ([]meeting.TimeRange, error) {
	if s.maxChecks > 0 && s.checks >= s.maxChecks {
		return nil, errors.Wrapf(ErrSearchBudget, "%d checks done", s.checks)
	}

	err := s.ctx.Err()
	if err != nil {
		return nil, errors.WrapFail(err, "continue search")
	}
	s.checks++

	lists := make([][]meeting.TimeRange, 0, len(group)+1)
	lists = append(lists, s.mandatory)
	for _, name := range group {
		lists = append(lists, s.optional[name])
	}

	return freeSlots(sortedUnion(lists...), s.duration), nil
}

// maximize finds the largest group of attendees that still leaves a slot
// and returns the slots along with that group. Among groups of the same
// size the first one in lexicographic order of attendees wins.
func (s *search) maximize(attendees []string) ([]meeting.TimeRange, []string, error) {
	base, err := s.slotsWith(nil)
	if err != nil {
		return nil, nil, err
	}

	// extra busy time only shrinks gaps
	if len(base) == 0 {
		return base, nil, nil
	}

	// Attendees without busy time fit into any group, so every largest
	// group has all of them and only the rest is worth enumerating.
	var free, busy []string
	for _, name := range attendees {
		if len(s.optional[name]) == 0 {
			free = append(free, name)
		} else {
			busy = append(busy, name)
		}
	}

	for k := len(busy); k > 0; k-- {
		var (
			group    = make([]string, k)
			slots    []meeting.TimeRange
			checkErr error
		)

		combinations(len(busy), k, func(idx []int) bool {
			for i, j := range idx {
				group[i] = busy[j]
			}

			slots, checkErr = s.slotsWith(group)
			return checkErr == nil && len(slots) == 0
		})

		if checkErr != nil {
			return nil, nil, errors.WrapFailf(checkErr, "check groups of %d", k)
		}

		if len(slots) != 0 {
			return slots, mergeSorted(free, group), nil
		}
	}

	return base, free, nil
}

// combinations calls yield with every k-subset of [0, n) in lexicographic
// order until yield returns false. The idx slice is reused between calls.
func combinations(n, k int, yield func(idx []int) bool) {
	if k <= 0 || k > n {
		return
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		if !yield(idx) {
			return
		}

		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}

		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

func mergeSorted(a, b []string) []string {
	merged := make([]string, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	slices.Sort(merged)
	return merged
}
