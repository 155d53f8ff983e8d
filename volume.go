package main

// TotalVolume sums the volumes of regions. Regions are assumed disjoint.
func TotalVolume(regions []Region) (total int64) {
	for _, r := range regions {
		total += r.Volume()
	}
	return
}

func (p *Partition) TotalVolume() int64 {
	return TotalVolume(p.regions)
}
