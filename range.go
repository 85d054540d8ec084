package segtree

import (
	"fmt"
	"math"
)

// BoundKind tells how a Bound limits a range.
type BoundKind int8

const (
	// Unbounded is the zero value: no limit, i.e. start or end of the sequence.
	Unbounded BoundKind = iota
	// Included bounds contain their index.
	Included
	// Excluded bounds do not contain their index.
	Excluded
)

// Bound is one end of a Range.
type Bound struct {
	Kind  BoundKind
	Index int
}

// Incl returns an inclusive bound at index i.
func Incl(i int) Bound { return Bound{Kind: Included, Index: i} }

// Excl returns an exclusive bound at index i.
func Excl(i int) Bound { return Bound{Kind: Excluded, Index: i} }

// Range is an expression over sequence indices. Each of its bounds may be
// inclusive, exclusive or missing. The zero value ranges over the complete
// sequence.
type Range struct {
	Start, End Bound
}

// Between creates a range from two arbitrary bounds.
func Between(start, end Bound) Range {
	return Range{Start: start, End: end}
}

// Span is the half-open range [start, end).
func Span(start, end int) Range {
	return Range{Start: Incl(start), End: Excl(end)}
}

// Closed is the range [start, end], including both ends.
func Closed(start, end int) Range {
	return Range{Start: Incl(start), End: Incl(end)}
}

// From ranges from start to the end of the sequence.
func From(start int) Range {
	return Range{Start: Incl(start)}
}

// To ranges from the start of the sequence up to, but excluding, end.
func To(end int) Range {
	return Range{End: Excl(end)}
}

// Through ranges from the start of the sequence up to and including end.
func Through(end int) Range {
	return Range{End: Incl(end)}
}

// All ranges over the complete sequence.
func All() Range {
	return Range{}
}

// Index is the range containing index i only.
func Index(i int) Range {
	return Closed(i, i)
}

// Normalize maps r to a half-open interval [start, end) over a sequence of
// length n. Missing bounds default to 0 and n respectively. The result may be
// empty or exceed n; see Valid.
func (r Range) Normalize(n int) (start, end int) {
	switch r.Start.Kind {
	case Included:
		start = r.Start.Index
	case Excluded:
		start = saturatingInc(r.Start.Index)
	default:
		start = 0
	}
	switch r.End.Kind {
	case Included:
		end = saturatingInc(r.End.Index)
	case Excluded:
		end = r.End.Index
	default:
		end = n
	}
	return
}

// Valid reports whether r, normalized over a sequence of length n, is a
// non-empty interval within [0, n). Empty and out-of-bounds ranges are not
// distinguished.
func (r Range) Valid(n int) bool {
	start, end := r.Normalize(n)
	return validSpan(start, end, n)
}

func validSpan(start, end, n int) bool {
	return start >= 0 && start < end && end <= n
}

// saturatingInc avoids wrapping around for bounds at math.MaxInt; such a
// bound is out of range for every sequence anyway.
func saturatingInc(i int) int {
	if i == math.MaxInt {
		return i
	}
	return i + 1
}

// String renders r in interval notation, e.g. "[2, 5)" or "(…, 7]".
func (r Range) String() string {
	var lower, upper string
	switch r.Start.Kind {
	case Included:
		lower = fmt.Sprintf("[%d", r.Start.Index)
	case Excluded:
		lower = fmt.Sprintf("(%d", r.Start.Index)
	default:
		lower = "(…"
	}
	switch r.End.Kind {
	case Included:
		upper = fmt.Sprintf("%d]", r.End.Index)
	case Excluded:
		upper = fmt.Sprintf("%d)", r.End.Index)
	default:
		upper = "…)"
	}
	return lower + ", " + upper
}
