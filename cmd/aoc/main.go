// Command aoc solves the packet ordering and sand pouring puzzles from an
// input file and prints both answers.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"aoc-ca/internal/app"
	"aoc-ca/internal/packet"
	"aoc-ca/internal/sims/cave"
)

var log = logrus.New()

var errUsage = errors.New("usage")

func main() {
	log.SetOutput(os.Stderr)
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Error(err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

type options struct {
	day     int
	input   string
	print   bool
	verbose bool
	set     app.KVList
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("aoc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&opts.day, "day", 13, "puzzle day: 13 (packets) or 14 (sand)")
	fs.StringVar(&opts.input, "input", "", "puzzle input file")
	fs.BoolVar(&opts.print, "print", false, "print the cave after each part (day 14)")
	fs.BoolVar(&opts.verbose, "v", false, "debug logging")
	fs.Var(&opts.set, "set", "cave parameter override in key=value form (repeatable)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, err
		}
		return opts, fmt.Errorf("%w: %v", errUsage, err)
	}
	if opts.input == "" {
		return opts, fmt.Errorf("%w: -input is required", errUsage)
	}
	if opts.day != 13 && opts.day != 14 {
		return opts, fmt.Errorf("%w: unsupported day %d", errUsage, opts.day)
	}
	return opts, nil
}

func run(out io.Writer, args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	if opts.verbose {
		log.SetLevel(logrus.DebugLevel)
		cave.Log.SetLevel(logrus.DebugLevel)
	}
	log.WithFields(logrus.Fields{
		"day":   opts.day,
		"input": opts.input,
		"set":   opts.set.String(),
	}).Info("solving")

	if opts.day == 13 {
		return solvePackets(out, opts)
	}
	return solveCave(out, opts)
}

func solvePackets(out io.Writer, opts options) error {
	f, err := os.Open(opts.input)
	if err != nil {
		return err
	}
	defer f.Close()

	pairs, err := packet.ReadPairs(f)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.input, err)
	}
	log.WithField("pairs", len(pairs)).Debug("packets read")
	fmt.Fprintf(out, "part1: %d\n", packet.OrderedPairSum(pairs))
	fmt.Fprintf(out, "part2: %d\n", packet.DecoderKey(packet.Flatten(pairs)))
	return nil
}

func solveCave(out io.Writer, opts options) error {
	viewer := app.Config{Set: opts.set}
	params, err := viewer.SimConfig()
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	cfg, err := cave.FromMap(params)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	for part, floor := range [2]bool{false, true} {
		cfg.Floor = floor
		c, err := cave.Load(opts.input, cfg)
		if err != nil {
			return err
		}
		n := c.PourUntilDone()
		b := c.Bounds()
		log.WithFields(logrus.Fields{
			"floor": floor,
			"width": b.Dx(),
			"last":  c.Last().Kind.String(),
		}).Debug("pour finished")
		fmt.Fprintf(out, "part%d: %d\n", part+1, n)
		if opts.print {
			if err := c.Render(out); err != nil {
				return err
			}
		}
	}
	return nil
}
