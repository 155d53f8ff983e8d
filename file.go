package main

import (
	"os"
)

func _loadCommands(name string) (cmds []ToggleCommand, err error) {
	file, err := os.Open(name)
	if err != nil {
		return
	}
	defer file.Close()

	cmds, err = ReadCommands(file)
	if err != nil {
		err = errorf("%s: %w", name, err)
	}
	return
}
