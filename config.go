package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	_defaultInput  = "input.txt"
	_defaultRadius = 50
	_defaultFormat = _formatText
)

type _Config struct {
	Input   string `mapstructure:"input"`
	Radius  int64  `mapstructure:"radius"`
	Verify  bool   `mapstructure:"verify"`
	Format  string `mapstructure:"format"`
	Verbose bool   `mapstructure:"verbose"`
}

// _loadConfig merges, from lowest to highest priority, flag defaults, the
// optional config file, flags set on the command line and the positional
// input argument.
func _loadConfig(cmd *cobra.Command, configFile string, args []string) (cfg _Config, err error) {
	v := viper.New()

	if err = v.BindPFlags(cmd.Flags()); err != nil {
		return
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err = v.ReadInConfig(); err != nil {
			return cfg, errorf("reading config %s: %w", configFile, err)
		}
	}

	if len(args) > 0 {
		v.Set("input", args[0])
	}

	if err = v.Unmarshal(&cfg); err != nil {
		return cfg, errorf("decoding config: %w", err)
	}

	switch {
	case cfg.Input == "":
		err = enew("no input file")
	case cfg.Radius < 0:
		err = errorf("radius must not be negative, got %d", cfg.Radius)
	case cfg.Format != _formatText && cfg.Format != _formatYAML:
		err = errorf("unknown format %q", cfg.Format)
	}
	return
}
