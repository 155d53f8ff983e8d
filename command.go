package main

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var ErrMalformedCommand = enew("malformed command")

// ToggleCommand turns every voxel of Region on or off.
type ToggleCommand struct {
	Region Region
	TurnOn bool
}

func (c ToggleCommand) String() string {
	if c.TurnOn {
		return "on " + c.Region.String()
	}
	return "off " + c.Region.String()
}

var _commandPattern = regexp.MustCompile(
	`^(on|off) x=(-?\d+)\.\.(-?\d+),y=(-?\d+)\.\.(-?\d+),z=(-?\d+)\.\.(-?\d+)$`,
)

// ParseCommand parses a record such as "on x=-20..26,y=-36..17,z=-47..7".
func ParseCommand(line string) (cmd ToggleCommand, err error) {
	line = strings.TrimSpace(line)
	m := _commandPattern.FindStringSubmatch(line)
	if m == nil {
		return cmd, errorf("%w: %q", ErrMalformedCommand, line)
	}

	var bounds [6]int64
	for i := range bounds {
		bounds[i], err = strconv.ParseInt(m[i+2], 10, 64)
		if err != nil {
			return cmd, errorf("%w: %q: %v", ErrMalformedCommand, line, err)
		}
	}

	cmd.TurnOn = m[1] == "on"
	cmd.Region = Region{
		X: Interval{bounds[0], bounds[1]},
		Y: Interval{bounds[2], bounds[3]},
		Z: Interval{bounds[4], bounds[5]},
	}
	if !cmd.Region.Valid() {
		return cmd, errorf("%w: %q: low bound above high bound", ErrMalformedCommand, line)
	}
	return cmd, nil
}

// ReadCommands parses one command per line, skipping blank lines. The first
// malformed line aborts the whole read.
func ReadCommands(r io.Reader) (cmds []ToggleCommand, err error) {
	s := bufio.NewScanner(r)
	lineNo := 0
	for s.Scan() {
		lineNo++
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		cmd, err := ParseCommand(line)
		if err != nil {
			return nil, errorf("line %d: %w", lineNo, err)
		}
		cmds = append(cmds, cmd)
	}
	if err = s.Err(); err != nil {
		return nil, err
	}
	return cmds, nil
}
