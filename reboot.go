package main

// Result is the outcome of running a command list through a Partition.
type Result struct {
	Volume    int64 `yaml:"volume"`
	Fragments int   `yaml:"fragments"`
	Stats     Stats `yaml:"stats"`
}

// Reboot applies cmds in order to an empty partition. When bounds is not
// nil every command is first clipped to it, and commands falling entirely
// outside are ignored.
func Reboot(cmds []ToggleCommand, bounds *Region) (res Result, err error) {
	p, err := RebootPartition(cmds, bounds)
	if err != nil {
		return
	}
	res.Volume = p.TotalVolume()
	res.Fragments = p.Len()
	res.Stats = p.Stats()
	return res, nil
}

// RebootPartition is Reboot but returns the final partition itself.
func RebootPartition(cmds []ToggleCommand, bounds *Region) (*Partition, error) {
	p := new(Partition)
	for _, cmd := range _clipCommands(cmds, bounds) {
		if err := p.Apply(cmd); err != nil {
			return nil, errorf("applying %q: %w", cmd, err)
		}
	}
	return p, nil
}

func _clipCommands(cmds []ToggleCommand, bounds *Region) []ToggleCommand {
	if bounds == nil {
		return cmds
	}
	clipped := make([]ToggleCommand, 0, len(cmds))
	for _, cmd := range cmds {
		r, ok := cmd.Region.Intersect(*bounds)
		if !ok {
			continue
		}
		clipped = append(clipped, ToggleCommand{Region: r, TurnOn: cmd.TurnOn})
	}
	return clipped
}
