package main

import (
	"golang.org/x/exp/slices"
)

var ErrInvariantViolation = enew("invariant violation")

// Stats counts what the resolver did while applying commands.
type Stats struct {
	Commands       int `yaml:"commands"`
	SettledSplits  int `yaml:"settled_splits"`
	IncomingSplits int `yaml:"incoming_splits"`
	ExactMatches   int `yaml:"exact_matches"`
	PeakFragments  int `yaml:"peak_fragments"`
}

// Partition is a set of pairwise disjoint regions covering every voxel
// that is currently on. The zero value is empty and ready to use.
type Partition struct {
	regions []Region
	stats   Stats
}

func (p *Partition) Len() int {
	return len(p.regions)
}

// Regions returns a copy of the current fragments, in no particular order.
func (p *Partition) Regions() []Region {
	return slices.Clone(p.regions)
}

func (p *Partition) Stats() Stats {
	return p.stats
}

func (p *Partition) Reset() {
	p.regions = nil
	p.stats = Stats{}
}

// Apply turns every voxel of cmd.Region on or off.
//
// Overlaps are removed by cutting whichever of the two regions sticks out
// along the first differing bound, until the incoming pieces either match
// a settled fragment exactly or overlap nothing. Cut settled fragments go
// straight back into the settled set; cut incoming pieces are queued again
// since each may still overlap other fragments.
//
// On error the partition is left as it was before the call.
func (p *Partition) Apply(cmd ToggleCommand) error {
	if !cmd.Region.Valid() {
		return errorf("%w: empty region %v", ErrMalformedCommand, cmd.Region)
	}

	settled := slices.Clone(p.regions)
	pending := []Region{cmd.Region}
	stats := p.stats

next:
	for len(pending) > 0 {
		r := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		match := -1
	rescan:
		for {
			for i := len(settled) - 1; i >= 0; i-- {
				c := settled[i]
				if !c.Overlaps(r) {
					continue
				}
				if c == r {
					match = i
					break rescan
				}

				row, ok := _classify(c, r)
				if !ok {
					return errorf("%w: %v and %v overlap but compare equal", ErrInvariantViolation, c, r)
				}
				below, atOrAfter, ok := row.Split(c, r)
				if !ok {
					return errorf("%w: cannot split %v side of %v / %v on %v at %d",
						ErrInvariantViolation, row.Side, c, r, row.Axis, row.Boundary(c, r))
				}

				if row.Side == SplitSettled {
					settled = _swapRemove(settled, i)
					settled = append(settled, below, atOrAfter)
					stats.SettledSplits++
					continue rescan
				}

				pending = append(pending, below, atOrAfter)
				stats.IncomingSplits++
				continue next
			}
			break
		}

		if match >= 0 {
			stats.ExactMatches++
			if !cmd.TurnOn {
				settled = _swapRemove(settled, match)
			}
		} else if cmd.TurnOn {
			settled = append(settled, r)
		}

		if len(settled) > stats.PeakFragments {
			stats.PeakFragments = len(settled)
		}
	}

	stats.Commands++
	p.regions = settled
	p.stats = stats
	return nil
}

// Validate checks every pair of fragments for overlap. It is quadratic and
// meant for verification runs and tests.
func (p *Partition) Validate() error {
	for i, a := range p.regions {
		if !a.Valid() {
			return errorf("%w: fragment %v is empty", ErrInvariantViolation, a)
		}
		for _, b := range p.regions[i+1:] {
			if a.Overlaps(b) {
				return errorf("%w: fragments %v and %v overlap", ErrInvariantViolation, a, b)
			}
		}
	}
	return nil
}

func _swapRemove(s []Region, i int) []Region {
	last := len(s) - 1
	s[i] = s[last]
	return s[:last]
}
