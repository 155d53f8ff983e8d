package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want ToggleCommand
	}{
		{"on x=10..12,y=10..12,z=10..12", _on(_cube(10, 12, 10, 12, 10, 12))},
		{"off x=9..11,y=9..11,z=9..11", _off(_cube(9, 11, 9, 11, 9, 11))},
		{"on x=-20..26,y=-36..17,z=-47..7", _on(_cube(-20, 26, -36, 17, -47, 7))},
		{"  off x=-54112..-39298,y=-85059..-49293,z=-27449..7877\r", _off(_cube(-54112, -39298, -85059, -49293, -27449, 7877))},
		{"on x=5..5,y=0..0,z=-1..-1", _on(_cube(5, 5, 0, 0, -1, -1))},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseCommand(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, strings.TrimSpace(tt.line), got.String())
		})
	}
}

func TestParseCommandMalformed(t *testing.T) {
	for _, line := range []string{
		"",
		"toggle x=1..2,y=1..2,z=1..2",
		"on x=1..2,y=1..2",
		"on x=1..2,z=1..2,y=1..2",
		"on x=1...2,y=1..2,z=1..2",
		"on x=a..2,y=1..2,z=1..2",
		"on x=3..2,y=1..2,z=1..2",
		"on x=1..2,y=1..2,z=1..99999999999999999999",
		"ON x=1..2,y=1..2,z=1..2",
	} {
		t.Run(line, func(t *testing.T) {
			_, err := ParseCommand(line)
			assert.ErrorIs(t, err, ErrMalformedCommand)
		})
	}
}

func TestReadCommands(t *testing.T) {
	input := `on x=10..12,y=10..12,z=10..12
on x=11..13,y=11..13,z=11..13

off x=9..11,y=9..11,z=9..11
on x=10..10,y=10..10,z=10..10
`
	cmds, err := ReadCommands(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, _exampleCommands, cmds)
}

func TestReadCommandsAbortsOnMalformedLine(t *testing.T) {
	input := "on x=1..2,y=1..2,z=1..2\n\noff x=1..2,y=1..2\non x=1..2,y=1..2,z=1..2\n"
	cmds, err := ReadCommands(strings.NewReader(input))
	require.ErrorIs(t, err, ErrMalformedCommand)
	assert.Contains(t, err.Error(), "line 3")
	assert.Nil(t, cmds)
}
