package main

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("reboot: ")

	if err := _newRootCommand().Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func _newRootCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "reboot [input]",
		Short: "Count the cubes left on after a reactor reboot sequence",
		Long: `reboot reads one toggle command per line, such as

  on x=10..12,y=10..12,z=10..12
  off x=9..11,y=9..11,z=9..11

and prints two numbers: how many cubes are on inside the initialization
region, and how many are on in total.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := _loadConfig(cmd, configFile, args)
			if err != nil {
				return err
			}
			return _run(cmd.OutOrStdout(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "config file (yaml, toml or json)")
	flags.String("input", _defaultInput, "input file")
	flags.Int64("radius", _defaultRadius, "initialization region radius")
	flags.Bool("verify", false, "cross-check the answers with an independent sweep")
	flags.String("format", _defaultFormat, "output format: text or yaml")
	flags.BoolP("verbose", "v", false, "log resolver statistics")

	return cmd
}

func _run(w io.Writer, cfg _Config) error {
	cmds, err := _loadCommands(cfg.Input)
	if err != nil {
		return err
	}

	initRegion := InitRegion(cfg.Radius)
	rep := _Report{
		Input:    cfg.Input,
		Commands: len(cmds),
		Radius:   cfg.Radius,
	}

	rep.Init, err = Reboot(cmds, &initRegion)
	if err != nil {
		return err
	}
	rep.Full, err = Reboot(cmds, nil)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		for _, x := range []struct {
			name string
			res  Result
		}{{"init", rep.Init}, {"full", rep.Full}} {
			s := x.res.Stats
			log.Printf(
				"%v: %v commands, %v fragments (peak %v), %v settled splits, %v incoming splits, %v exact matches",
				x.name, s.Commands, x.res.Fragments, s.PeakFragments,
				s.SettledSplits, s.IncomingSplits, s.ExactMatches,
			)
		}
	}

	if cfg.Verify {
		if err := _verify(cmds, &initRegion, rep.Init); err != nil {
			return err
		}
		if err := _verify(cmds, nil, rep.Full); err != nil {
			return err
		}
		rep.Verified = true
		if cfg.Verbose {
			log.Println("verified against slab sweep")
		}
	}

	return _writeReport(w, cfg.Format, rep)
}

// _verify rebuilds the partition, checks it is pairwise disjoint, and
// compares its volume with SweepVolume.
func _verify(cmds []ToggleCommand, bounds *Region, res Result) error {
	p, err := RebootPartition(cmds, bounds)
	if err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if want := SweepVolume(cmds, bounds); want != res.Volume {
		return errorf("%w: partition volume %d, sweep volume %d", ErrInvariantViolation, res.Volume, want)
	}
	return nil
}
