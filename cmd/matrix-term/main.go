package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"matrix-bg/internal/matrix"

	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("override %q is not key=value", value)
	}
	*l = append(*l, value)
	return nil
}

func (l kvList) Map() map[string]string {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		m[parts[0]] = parts[1]
	}
	return m
}

// commonFlags are shared by every subcommand.
type commonFlags struct {
	configFile string
	seed       int64
	overrides  kvList
	fs         *flag.FlagSet
}

func (c *commonFlags) bind(fs *flag.FlagSet) {
	c.fs = fs
	fs.StringVar(&c.configFile, "config", "", "optional TOML file with background tunables")
	fs.Int64Var(&c.seed, "seed", 0, "seed for the background (overrides -config and -set when given)")
	fs.Var(&c.overrides, "set", "tunable override in key=value form (repeatable)")
}

func (c *commonFlags) matrixConfig() (matrix.Config, error) {
	cfg, err := matrix.LoadConfigFile(c.configFile)
	if err != nil {
		return cfg, err
	}
	cfg = cfg.Apply(c.overrides.Map())
	c.fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.Seed = c.seed
		}
	})
	return cfg, nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	return buildCLI().ParseAndRun(context.Background(), args)
}

func buildCLI() *ffcli.Command {
	envOpts := []ff.Option{ff.WithEnvVarPrefix("MATRIX")}

	var runCommon commonFlags
	runFlagSet := flag.NewFlagSet("matrix-term run", flag.ExitOnError)
	runCommon.bind(runFlagSet)
	runFPS := runFlagSet.Int("fps", 30, "frames per second")
	runLog := runFlagSet.String("log", "", "append log output to this file")

	runCmd := &ffcli.Command{
		Name:       "run",
		ShortUsage: "matrix-term run [flags]",
		ShortHelp:  "Run the background in this terminal (mouse drag spawns ripples)",
		FlagSet:    runFlagSet,
		Options:    envOpts,
		Exec: func(ctx context.Context, _ []string) error {
			cfg, err := runCommon.matrixConfig()
			if err != nil {
				return err
			}
			return execRun(ctx, cfg, runOptions{fps: *runFPS, logPath: *runLog})
		},
	}

	var benchCommon commonFlags
	benchFlagSet := flag.NewFlagSet("matrix-term bench", flag.ExitOnError)
	benchCommon.bind(benchFlagSet)
	benchFrames := benchFlagSet.Int("frames", 600, "frames to render per seed")
	benchWidth := benchFlagSet.Int("width", 1280, "container width in pixels")
	benchHeight := benchFlagSet.Int("height", 720, "container height in pixels")
	benchSeeds := benchFlagSet.Int("seeds", 1, "number of consecutive seeds to run")
	benchWorkers := benchFlagSet.Int("workers", 1, "parallel runs")
	benchNoDrag := benchFlagSet.Bool("no-drag", false, "move the pointer without pressing")
	benchPNG := benchFlagSet.String("png", "", "write the first run's final frame as a one-pixel-per-cell PNG")

	benchCmd := &ffcli.Command{
		Name:       "bench",
		ShortUsage: "matrix-term bench [flags]",
		ShortHelp:  "Render frames headless with a scripted gesture and report statistics",
		FlagSet:    benchFlagSet,
		Options:    envOpts,
		Exec: func(_ context.Context, _ []string) error {
			cfg, err := benchCommon.matrixConfig()
			if err != nil {
				return err
			}
			return execBench(os.Stdout, cfg, benchOptions{
				frames:  *benchFrames,
				width:   *benchWidth,
				height:  *benchHeight,
				seeds:   *benchSeeds,
				workers: *benchWorkers,
				drag:    !*benchNoDrag,
				pngPath: *benchPNG,
			})
		},
	}

	rootFlagSet := flag.NewFlagSet("matrix-term", flag.ExitOnError)
	return &ffcli.Command{
		ShortUsage:  "matrix-term <subcommand> [flags]",
		FlagSet:     rootFlagSet,
		Subcommands: []*ffcli.Command{runCmd, benchCmd},
		Exec: func(context.Context, []string) error {
			return flag.ErrHelp
		},
	}
}
