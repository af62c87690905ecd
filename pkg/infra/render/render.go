package render

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/cardgen/pkg/domain/interfaces"
)

// Canvas size of a generated card. Fixed regardless of input.
const (
	CanvasWidth  = 1200
	CanvasHeight = 630
)

// Client is a placeholder card renderer. It draws the title, author and date
// as rows of glyph blocks on a fixed canvas. Output is deterministic:
// identical input produces byte-identical PNG data, which the on-demand path
// relies on for idempotent overwrites.
type Client struct{}

var _ interfaces.CardRenderer = (*Client)(nil)

func New() *Client {
	return &Client{}
}

var (
	background = color.RGBA{R: 0x1f, G: 0x26, B: 0x37, A: 0xff}
	accent     = color.RGBA{R: 0x4f, G: 0x97, B: 0xd1, A: 0xff}
	titleInk   = color.RGBA{R: 0xf0, G: 0xf2, B: 0xf5, A: 0xff}
	metaInk    = color.RGBA{R: 0x9a, G: 0xa5, B: 0xb5, A: 0xff}
)

func (x *Client) Render(ctx context.Context, input *interfaces.RenderInput) ([]byte, error) {
	if input == nil {
		return nil, goerr.New("render input is nil")
	}

	canvas := image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(0, CanvasHeight-24, CanvasWidth, CanvasHeight), image.NewUniform(accent), image.Point{}, draw.Src)

	drawTextRow(canvas, input.Title, 80, 160, 24, titleInk)
	drawTextRow(canvas, input.Author, 80, 420, 12, metaInk)
	drawTextRow(canvas, input.DateLabel, 80, 480, 12, metaInk)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, goerr.Wrap(err, "failed to encode card image")
	}

	return buf.Bytes(), nil
}

// drawTextRow paints one block per rune, toned by the rune value. It is not
// typography, just a stable visual fingerprint of the text.
func drawTextRow(canvas *image.RGBA, text string, x, y, size int, ink color.RGBA) {
	for _, r := range text {
		if x+size > CanvasWidth-80 {
			break
		}
		tone := uint8(64 + (uint32(r)*37)%128)
		c := color.RGBA{
			R: mix(ink.R, tone),
			G: mix(ink.G, tone),
			B: mix(ink.B, tone),
			A: 0xff,
		}
		draw.Draw(canvas, image.Rect(x, y, x+size-2, y+size*2), image.NewUniform(c), image.Point{}, draw.Src)
		x += size
	}
}

func mix(base, tone uint8) uint8 {
	return uint8((uint16(base)*3 + uint16(tone)) / 4)
}
