// Package palette decodes NES CHR-ROM pattern tables (two bitplanes per
// 8x8 tile) into a viewable image, for the dumpchr debug command. It
// never runs during CPU execution.
package palette

import (
	"image"
	"image/color"
	"math/bits"

	"golang.org/x/image/colornames"
)

const (
	tileSize    = 8
	tileBytes   = 16 // 8 bytes per bitplane, two bitplanes
	tilesPerRow = 16
)

// Default is the four-shade palette applied to a tile's 2-bit pixel
// values when the caller has no game-specific NES palette to map
// through. It exists for previewing raw pattern-table contents, not for
// faithful in-game color reproduction.
var Default = color.Palette{
	colornames.Black,
	colornames.Dimgray,
	colornames.Silver,
	colornames.White,
}

// Decode renders every tile in chr (the concatenated CHR-ROM of a
// cartridge, one or more 8 KiB banks) into a sheet tilesPerRow tiles
// wide, as many rows tall as needed.
func Decode(chr []byte, pal color.Palette) *image.Paletted {
	numTiles := len(chr) / tileBytes
	rows := (numTiles + tilesPerRow - 1) / tilesPerRow
	img := image.NewPaletted(image.Rect(0, 0, tilesPerRow*tileSize, rows*tileSize), pal)

	for tile := 0; tile < numTiles; tile++ {
		base := tile * tileBytes
		tx := (tile % tilesPerRow) * tileSize
		ty := (tile / tilesPerRow) * tileSize
		drawTile(img, tx, ty, chr[base:base+tileBytes])
	}

	return img
}

// drawTile decodes one tile's 16 bytes (low bitplane then high bitplane,
// 8 bytes each) into 2-bit-per-pixel indices and plots them at (ox, oy).
func drawTile(img *image.Paletted, ox, oy int, data []byte) {
	for y := 0; y < tileSize; y++ {
		lo := bits.Reverse8(data[y])
		hi := bits.Reverse8(data[y+tileSize])
		for x := 0; x < tileSize; x++ {
			bit := uint(x)
			idx := (lo>>bit)&0x1 | (hi>>bit)&0x1<<1
			img.SetColorIndex(ox+x, oy+y, idx)
		}
	}
}
