package main

import (
	"github.com/b97tsk/rangeset"
	"golang.org/x/exp/slices"
)

// SweepVolume computes the lit volume independently of Partition. The x
// and y axes are cut at every command boundary; inside each resulting slab
// every command either covers it fully or misses it, so the commands can be
// replayed on a one-dimensional set of z ranges.
//
// It runs in O(X·Y·n) for X and Y distinct cuts and is used to cross-check
// the partition.
func SweepVolume(cmds []ToggleCommand, bounds *Region) (total int64) {
	cmds = _clipCommands(cmds, bounds)
	xs := _axisCuts(cmds, AxisX)
	ys := _axisCuts(cmds, AxisY)

	var covering []ToggleCommand
	for i := 0; i+1 < len(xs); i++ {
		x := Interval{xs[i], xs[i+1] - 1}

		covering = covering[:0]
		for _, cmd := range cmds {
			if cmd.Region.X.Contains(x) {
				covering = append(covering, cmd)
			}
		}
		if len(covering) == 0 {
			continue
		}

		for j := 0; j+1 < len(ys); j++ {
			y := Interval{ys[j], ys[j+1] - 1}

			var z rangeset.RangeSet[int64]
			for _, cmd := range covering {
				if !cmd.Region.Y.Contains(y) {
					continue
				}
				if cmd.TurnOn {
					z.AddRange(cmd.Region.Z.Low, cmd.Region.Z.High+1)
				} else {
					z.DeleteRange(cmd.Region.Z.Low, cmd.Region.Z.High+1)
				}
			}

			var lit int64
			for _, r := range z {
				lit += r.High - r.Low
			}
			total += lit * x.Len() * y.Len()
		}
	}
	return
}

// _axisCuts returns the sorted distinct half-open boundaries of cmds on a.
func _axisCuts(cmds []ToggleCommand, a Axis) []int64 {
	cuts := make([]int64, 0, 2*len(cmds))
	for _, cmd := range cmds {
		i := cmd.Region.Axis(a)
		cuts = append(cuts, i.Low, i.High+1)
	}
	slices.Sort(cuts)
	return slices.Compact(cuts)
}
