package main

import (
	"image/png"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/n-ulricksen/nes6502/ines"
	"github.com/n-ulricksen/nes6502/palette"
)

func dumpchrCommand() *cli.Command {
	return &cli.Command{
		Name:      "dumpchr",
		Usage:     "decode a ROM's CHR-ROM pattern tables to a PNG sheet",
		ArgsUsage: "<rom.nes>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Value: "chr.png", Usage: "output PNG path"},
		},
		Action: dumpchrAction,
	}
}

func dumpchrAction(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return cli.Exit("dumpchr: missing ROM path", 1)
	}

	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("dumpchr: %v", err)
	}
	defer f.Close()

	rom, err := ines.Load(f)
	if err != nil {
		log.Fatalf("dumpchr: %v", err)
	}

	if len(rom.CHR) == 0 {
		return cli.Exit("dumpchr: ROM has no CHR-ROM banks", 1)
	}

	img := palette.Decode(rom.CHRBytes(), palette.Default)

	out, err := os.Create(c.String("out"))
	if err != nil {
		log.Fatalf("dumpchr: %v", err)
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		log.Fatalf("dumpchr: %v", err)
	}

	return nil
}
