// Package interval maintains sets of disjoint half-open integer intervals.
//
// A Set always holds the minimal representation of its contents: inserting an
// interval that overlaps or touches stored intervals merges them into one,
// and removing a range truncates or splits the intervals it cuts through.
package interval

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidInterval is returned by Insert and Remove when start >= end. The
// set is left unmodified.
var ErrInvalidInterval = errors.New("invalid interval: start must be less than end")

// An Interval is a half-open integer range [Start, End) with Start < End.
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"` // exclusive
}

func (i Interval) String() string {
	return fmt.Sprintf("(%d, %d)", i.Start, i.End)
}

// A Set is an ordered collection of disjoint intervals. The zero value is the
// empty set, ready for use. A Set is not safe for concurrent use; callers
// embedding it in a concurrent program must serialize access themselves.
type Set struct {
	// endpoints stores the intervals flattened into a single strictly
	// increasing sequence: endpoints[0] starts the first interval,
	// endpoints[1] ends it, and so on. An endpoint at an even index is
	// always the start of an interval, one at an odd index always an end.
	endpoints []int

	// Debug, when non-nil, receives diagnostic messages about the boundary
	// decisions taken during Insert and Remove. Point it at log.Printf to
	// trace a misbehaving sequence of operations.
	Debug func(format string, args ...interface{})
}

func (s *Set) debugf(format string, args ...interface{}) {
	if s.Debug != nil {
		s.Debug(format, args...)
	}
}

// searchBounds returns the index of the first endpoint >= start and the index
// of the first endpoint >= end. Since start < end, j >= i always holds.
func (s *Set) searchBounds(start, end int) (i, j int) {
	i = sort.SearchInts(s.endpoints, start)
	j = i + sort.SearchInts(s.endpoints[i:], end)

	return i, j
}

func (s *Set) insertAt(idx, v int) {
	s.endpoints = append(s.endpoints, 0)
	copy(s.endpoints[idx+1:], s.endpoints[idx:])
	s.endpoints[idx] = v
}

func (s *Set) removeAt(idx int) {
	s.endpoints = append(s.endpoints[:idx], s.endpoints[idx+1:]...)
}

// Insert unions the interval [start, end) into the set. Stored intervals that
// overlap or touch the new one are merged into it.
func (s *Set) Insert(start, end int) error {
	if start >= end {
		return ErrInvalidInterval
	}

	// The new interval lies entirely beyond one edge of the stored
	// sequence: splice it in whole, no boundary resolution needed.
	if len(s.endpoints) == 0 || s.endpoints[len(s.endpoints)-1] < start {
		s.endpoints = append(s.endpoints, start, end)
		return nil
	}
	if s.endpoints[0] > end {
		s.endpoints = append([]int{start, end}, s.endpoints...)
		return nil
	}

	i, j := s.searchBounds(start, end)

	// The parity of an index tells whether it denotes the start (even) or
	// the end (odd) of a stored interval.
	startAtEnd := i%2 == 1
	endAtEnd := j%2 == 1

	s.debugf("insert [%d, %d): bounds %d, %d of %d endpoints", start, end, i, j, len(s.endpoints))

	cur := i
	if start < s.endpoints[cur] {
		// start is a new boundary value. Between two intervals it opens
		// the merged interval; inside one it is already covered.
		if !startAtEnd {
			s.insertAt(cur, start)
			cur++
		}
	} else if startAtEnd {
		// start coincides with a stored interval's end. The merge
		// swallows that boundary.
		s.removeAt(cur)
	} else {
		// start is already a stored interval's start, keep it.
		cur++
	}

	// Every endpoint up to end now lies strictly inside the merged
	// interval.
	for cur < len(s.endpoints) && s.endpoints[cur] < end {
		s.removeAt(cur)
	}

	switch {
	case end > s.endpoints[len(s.endpoints)-1]:
		s.endpoints = append(s.endpoints, end)
	case end < s.endpoints[cur]:
		// end sits between two stored intervals and closes the merged
		// one; inside an interval it is already covered.
		if !endAtEnd {
			s.insertAt(cur, end)
		}
	default:
		// end coincides with a stored boundary. A stored start is
		// swallowed by the merge, a stored end keeps closing it.
		if !endAtEnd {
			s.removeAt(cur)
		}
	}

	return nil
}

// Remove subtracts the interval [start, end) from the set, truncating,
// splitting or deleting the intervals it overlaps. Removing a range the set
// does not cover is a valid no-op.
func (s *Set) Remove(start, end int) error {
	if start >= end {
		return ErrInvalidInterval
	}

	// Nothing is stored at or after start.
	if len(s.endpoints) == 0 || s.endpoints[len(s.endpoints)-1] < start {
		return nil
	}

	i, j := s.searchBounds(start, end)

	startAtEnd := i%2 == 1
	endAtEnd := j%2 == 1

	s.debugf("remove [%d, %d): bounds %d, %d of %d endpoints", start, end, i, j, len(s.endpoints))

	cur := i
	if start < s.endpoints[cur] {
		// A new boundary only matters inside an interval, where it
		// becomes the truncated interval's new end.
		if startAtEnd {
			s.insertAt(cur, start)
			cur++
		}
	} else if !startAtEnd {
		// start coincides with a stored interval's start. That opening
		// boundary falls inside the removed range.
		s.removeAt(cur)
	} else {
		// start coincides with a stored interval's end, which removing
		// [start, ...) leaves untouched.
		cur++
	}

	// Every endpoint up to end lies strictly inside the removed range.
	for cur < len(s.endpoints) && s.endpoints[cur] < end {
		s.removeAt(cur)
	}

	switch {
	case cur >= len(s.endpoints):
		// The removal ran past the last stored endpoint.
	case end < s.endpoints[cur]:
		// end falls inside a stored interval and becomes the start of
		// the surviving remainder; between intervals there is nothing
		// to reopen.
		if endAtEnd {
			s.insertAt(cur, end)
		}
	default:
		// end coincides with a stored boundary. A stored end has been
		// fully consumed, a stored start belongs to an untouched
		// interval.
		if endAtEnd {
			s.removeAt(cur)
		}
	}

	return nil
}

// Clear empties the set.
func (s *Set) Clear() {
	s.endpoints = s.endpoints[:0]
}

// Len returns the number of stored intervals.
func (s *Set) Len() int {
	return len(s.endpoints) / 2
}

// Intervals returns the stored intervals in ascending order. The returned
// slice is a copy, mutating it does not affect the set.
func (s *Set) Intervals() []Interval {
	if len(s.endpoints) == 0 {
		return nil
	}

	out := make([]Interval, 0, len(s.endpoints)/2)
	for i := 0; i < len(s.endpoints); i += 2 {
		out = append(out, Interval{Start: s.endpoints[i], End: s.endpoints[i+1]})
	}

	return out
}

// String renders the set in the form "[(1, 3), (5, 8)]", with "[]" for the
// empty set.
func (s *Set) String() string {
	var b strings.Builder

	b.WriteByte('[')
	for i := 0; i < len(s.endpoints); i += 2 {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "(%d, %d)", s.endpoints[i], s.endpoints[i+1])
	}
	b.WriteByte(']')

	return b.String()
}
