package main

import (
	"fmt"
)

type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "Axis(" + itoa(int(a)) + ")"
}

// Interval is a closed range of integers, Low and High both included.
type Interval struct {
	Low, High int64
}

func (i Interval) Len() int64 {
	return i.High - i.Low + 1
}

func (i Interval) Overlaps(j Interval) bool {
	return i.Low <= j.High && j.Low <= i.High
}

func (i Interval) Contains(j Interval) bool {
	return i.Low <= j.Low && j.High <= i.High
}

// Region is an axis-aligned box of closed intervals. It is a value type;
// operations that change a Region return a new one.
type Region struct {
	X, Y, Z Interval
}

func (r Region) Axis(a Axis) Interval {
	switch a {
	case AxisX:
		return r.X
	case AxisY:
		return r.Y
	case AxisZ:
		return r.Z
	}
	panic("invalid axis " + a.String())
}

func (r Region) WithAxis(a Axis, i Interval) Region {
	switch a {
	case AxisX:
		r.X = i
	case AxisY:
		r.Y = i
	case AxisZ:
		r.Z = i
	default:
		panic("invalid axis " + a.String())
	}
	return r
}

func (r Region) Valid() bool {
	return r.X.Low <= r.X.High && r.Y.Low <= r.Y.High && r.Z.Low <= r.Z.High
}

// Overlaps reports whether r and s share at least one voxel.
func (r Region) Overlaps(s Region) bool {
	return r.X.Overlaps(s.X) && r.Y.Overlaps(s.Y) && r.Z.Overlaps(s.Z)
}

func (r Region) Contains(s Region) bool {
	return r.X.Contains(s.X) && r.Y.Contains(s.Y) && r.Z.Contains(s.Z)
}

func (r Region) Volume() int64 {
	return r.X.Len() * r.Y.Len() * r.Z.Len()
}

// Intersect returns the voxels shared by r and s.
func (r Region) Intersect(s Region) (Region, bool) {
	if !r.Overlaps(s) {
		return Region{}, false
	}
	clip := func(i, j Interval) Interval {
		return Interval{max(i.Low, j.Low), min(i.High, j.High)}
	}
	return Region{clip(r.X, s.X), clip(r.Y, s.Y), clip(r.Z, s.Z)}, true
}

// SplitOnAxis cuts r into the part below boundary and the part at or after
// boundary along axis. ok is false unless boundary lies strictly inside
// r's extent on that axis, i.e. both halves are non-empty.
func (r Region) SplitOnAxis(a Axis, boundary int64) (below, atOrAfter Region, ok bool) {
	i := r.Axis(a)
	if boundary <= i.Low || boundary > i.High {
		return
	}
	below = r.WithAxis(a, Interval{i.Low, boundary - 1})
	atOrAfter = r.WithAxis(a, Interval{boundary, i.High})
	return below, atOrAfter, true
}

func (r Region) String() string {
	return fmt.Sprintf("x=%d..%d,y=%d..%d,z=%d..%d",
		r.X.Low, r.X.High, r.Y.Low, r.Y.High, r.Z.Low, r.Z.High)
}

// InitRegion returns the cube [-radius, radius] on every axis.
func InitRegion(radius int64) Region {
	i := Interval{-radius, radius}
	return Region{i, i, i}
}
