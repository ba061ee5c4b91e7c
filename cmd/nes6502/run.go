package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/n-ulricksen/nes6502/bus"
	"github.com/n-ulricksen/nes6502/cpu"
	"github.com/n-ulricksen/nes6502/ines"
	"github.com/n-ulricksen/nes6502/mapper"
	"github.com/n-ulricksen/nes6502/trace"
)

func runCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "step a ROM and optionally emit or diff a trace",
		ArgsUsage: "<rom.nes>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "entry", Usage: "force PC at reset, e.g. 0xC000"},
			&cli.BoolFlag{Name: "trace", Usage: "print a nestest-format trace line per instruction"},
			&cli.StringFlag{Name: "compare", Usage: "diff the emitted trace against a reference log"},
			&cli.IntFlag{Name: "max-instructions", Value: 1, Usage: "stop after N instructions"},
		},
		Action: runAction,
	}
}

func runAction(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return cli.Exit("run: missing ROM path", 1)
	}

	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("run: %v", err)
	}
	defer f.Close()

	rom, err := ines.Load(f)
	if err != nil {
		log.Fatalf("run: %v", err)
	}

	m := mapper.NewMapper000(rom.PRGBytes())
	b := bus.New(m)
	machine := cpu.New(b)

	if entry := c.String("entry"); entry != "" {
		pc, err := strconv.ParseUint(entry, 0, 16)
		if err != nil {
			log.Fatalf("run: bad --entry %q: %v", entry, err)
		}
		machine.ResetTo(uint16(pc))
	} else {
		machine.Reset()
	}

	showTrace := c.Bool("trace")
	compareTo := c.String("compare")

	var traceBuf bytes.Buffer

	max := c.Int("max-instructions")
	for count := 1; count <= max; count++ {
		snap, op := machine.Step()
		line := trace.Format(count, snap, op)
		if showTrace {
			fmt.Fprintln(os.Stdout, line)
		}
		if compareTo != "" {
			traceBuf.WriteString(line)
			traceBuf.WriteByte('\n')
		}
	}

	if n := machine.UnknownOpcodeCount(); n > 0 {
		fmt.Fprintf(os.Stderr, "run: %d unknown opcode(s) encountered\n", n)
	}

	if compareTo != "" {
		ref, err := os.Open(compareTo)
		if err != nil {
			log.Fatalf("run: %v", err)
		}
		defer ref.Close()

		mismatch, err := trace.Compare(&traceBuf, ref)
		if err != nil {
			log.Fatalf("run: %v", err)
		}
		if mismatch != nil {
			return cli.Exit(fmt.Sprintf("run: trace diverges at line %d\n  got:  %s\n  want: %s",
				mismatch.Line, mismatch.Got, mismatch.Want), 1)
		}
	}

	return nil
}
