package main

import (
	"io"

	"gopkg.in/yaml.v3"
)

const (
	_formatText = "text"
	_formatYAML = "yaml"
)

type _Report struct {
	Input    string `yaml:"input"`
	Commands int    `yaml:"commands"`
	Radius   int64  `yaml:"radius"`
	Init     Result `yaml:"init"`
	Full     Result `yaml:"full"`
	Verified bool   `yaml:"verified"`
}

// _writeReport prints the initialization-region volume and the full volume,
// one per line, or the whole report as YAML.
func _writeReport(w io.Writer, format string, rep _Report) error {
	if format == _formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&rep); err != nil {
			return err
		}
		return enc.Close()
	}
	fprintln(w, rep.Init.Volume)
	fprintln(w, rep.Full.Volume)
	return nil
}
