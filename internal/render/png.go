package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/hailam/bitframe/internal/board"
)

// RenderPNG rasterizes the SVG diagram of f and draws the piece letters
// on top of it.
func RenderPNG(f board.Frame, opts Options) (*image.RGBA, error) {
	opts = opts.withDefaults()
	size := 8 * opts.SquareSize

	var buf bytes.Buffer
	if err := writeSVG(&buf, f, opts, false); err != nil {
		return nil, err
	}

	icon, err := oksvg.ReadIconStream(&buf)
	if err != nil {
		return nil, fmt.Errorf("parse diagram: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	drawLabels(rgba, f, opts)
	return rgba, nil
}

// drawLabels centers each piece letter on its disc.
func drawLabels(dst *image.RGBA, f board.Frame, opts Options) {
	face := basicfont.Face7x13
	half := opts.SquareSize / 2

	for _, c := range cells(f, opts) {
		if c.symbol == '.' || c.symbol == board.OverlaySymbol {
			continue
		}
		ink := opts.Theme.MoverInk
		if c.symbol >= 'a' && c.symbol <= 'z' {
			ink = opts.Theme.OpponentInk
		}
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(ink),
			Face: face,
			Dot:  fixed.P(c.x+half-face.Width/2, c.y+half+face.Ascent/2),
		}
		d.DrawString(string(c.symbol))
	}
}

// WritePNG encodes the PNG diagram of f to w.
func WritePNG(w io.Writer, f board.Frame, opts Options) error {
	img, err := RenderPNG(f, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
