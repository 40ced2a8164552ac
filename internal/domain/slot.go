package domain

// Interval is an occupied time range in minutes from midnight.
// End is the start plus the service duration plus BufferMinutes, so two
// appointments may touch at a boundary but never share a buffered minute.
type Interval struct {
	Start int
	End   int
}

// BufferedInterval builds the occupied interval for an appointment or
// candidate slot starting at start with the given service duration.
func BufferedInterval(start, durationMinutes int) Interval {
	return Interval{
		Start: start,
		End:   start + durationMinutes + BufferMinutes,
	}
}

// Intersects reports whether two buffered intervals collide.
//
// The three clauses check containment of the start, containment of the
// end, and full envelopment. The form is intentionally redundant with the
// half-open overlap test (i.Start < other.End && other.Start < i.End) and
// is kept bit-for-bit as the documented contract; the equivalence for all
// integer endpoints is pinned by the test suite. Intervals that only touch
// at a boundary do not intersect.
func (i Interval) Intersects(other Interval) bool {
	return (i.Start >= other.Start && i.Start < other.End) ||
		(i.End > other.Start && i.End <= other.End) ||
		(i.Start <= other.Start && i.End >= other.End)
}
