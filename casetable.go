package main

type Ordering int8

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	}
	return "Ordering(" + itoa(int(o)) + ")"
}

func _compare(a, b int64) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	}
	return Equal
}

// Bound names one end of an interval.
type Bound int8

const (
	LowerBound Bound = iota
	UpperBound
)

// SplitSide tells which of the two overlapping regions gets cut.
type SplitSide int8

const (
	SplitSettled SplitSide = iota
	SplitIncoming
)

func (s SplitSide) String() string {
	if s == SplitSettled {
		return "settled"
	}
	return "incoming"
}

// Comparisons holds the settled-vs-incoming ordering of each bound, in
// priority order: x.low, x.high, y.low, y.high, z.low, z.high.
type Comparisons [6]Ordering

func _compareBounds(settled, incoming Region) (c Comparisons) {
	for a := AxisX; a <= AxisZ; a++ {
		s, r := settled.Axis(a), incoming.Axis(a)
		c[2*int(a)] = _compare(s.Low, r.Low)
		c[2*int(a)+1] = _compare(s.High, r.High)
	}
	return
}

// SplitCase is one row of the decision table. When component Component of
// the comparison vector equals Order, the region on Side is cut on Axis at
// Bound of the other region (Low for LowerBound, High+1 for UpperBound).
type SplitCase struct {
	Component int
	Order     Ordering
	Side      SplitSide
	Axis      Axis
	Bound     Bound
}

// Boundary returns the coordinate at which the chosen side is cut.
func (c SplitCase) Boundary(settled, incoming Region) int64 {
	other := incoming
	if c.Side == SplitIncoming {
		other = settled
	}
	i := other.Axis(c.Axis)
	if c.Bound == LowerBound {
		return i.Low
	}
	return i.High + 1
}

// Split cuts the chosen side and returns both halves.
func (c SplitCase) Split(settled, incoming Region) (below, atOrAfter Region, ok bool) {
	victim := settled
	if c.Side == SplitIncoming {
		victim = incoming
	}
	return victim.SplitOnAxis(c.Axis, c.Boundary(settled, incoming))
}

// The region that sticks out past the other one is the one that gets cut:
// on a lower bound that is the smaller one, on an upper bound the larger.
var _splitCases = [12]SplitCase{
	{0, Less, SplitSettled, AxisX, LowerBound},
	{0, Greater, SplitIncoming, AxisX, LowerBound},
	{1, Less, SplitIncoming, AxisX, UpperBound},
	{1, Greater, SplitSettled, AxisX, UpperBound},
	{2, Less, SplitSettled, AxisY, LowerBound},
	{2, Greater, SplitIncoming, AxisY, LowerBound},
	{3, Less, SplitIncoming, AxisY, UpperBound},
	{3, Greater, SplitSettled, AxisY, UpperBound},
	{4, Less, SplitSettled, AxisZ, LowerBound},
	{4, Greater, SplitIncoming, AxisZ, LowerBound},
	{5, Less, SplitIncoming, AxisZ, UpperBound},
	{5, Greater, SplitSettled, AxisZ, UpperBound},
}

// _classify picks the first table row matching the comparison vector of
// settled against incoming. ok is false only when all six bounds are
// equal, which for overlapping regions means settled == incoming.
func _classify(settled, incoming Region) (c SplitCase, ok bool) {
	cmp := _compareBounds(settled, incoming)
	for _, row := range _splitCases {
		if cmp[row.Component] == row.Order {
			return row, true
		}
	}
	return
}
