// Command nes6502 drives the CPU core against an iNES ROM: stepping it
// with an optional nestest-style trace, or dumping CHR-ROM pattern tables
// to a PNG sheet for inspection.
package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "nes6502",
		Usage: "step a 2A03 CPU core against an iNES ROM",
		Commands: []*cli.Command{
			runCommand(),
			dumpchrCommand(),
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatalf("nes6502: %v", err)
	}
}
