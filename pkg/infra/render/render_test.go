package render_test

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/cardgen/pkg/domain/interfaces"
	"github.com/m-mizutani/cardgen/pkg/infra/render"
)

func TestRender(t *testing.T) {
	ctx := context.Background()
	r := render.New()

	t.Run("output is a fixed-size PNG", func(t *testing.T) {
		data := gt.R1(r.Render(ctx, &interfaces.RenderInput{
			Title:  "Hello, World",
			Author: "alice",
		})).NoError(t)

		img := gt.R1(png.Decode(bytes.NewReader(data))).NoError(t)
		gt.V(t, img.Bounds().Dx()).Equal(render.CanvasWidth)
		gt.V(t, img.Bounds().Dy()).Equal(render.CanvasHeight)
	})

	t.Run("identical input yields byte-identical output", func(t *testing.T) {
		input := &interfaces.RenderInput{Title: "Same", Author: "bob", DateLabel: "2020-01-01"}
		a := gt.R1(r.Render(ctx, input)).NoError(t)
		b := gt.R1(r.Render(ctx, input)).NoError(t)
		gt.True(t, bytes.Equal(a, b))
	})

	t.Run("empty title still renders", func(t *testing.T) {
		data := gt.R1(r.Render(ctx, &interfaces.RenderInput{})).NoError(t)
		gt.V(t, len(data) > 0).Equal(true)
	})

	t.Run("different titles yield different output", func(t *testing.T) {
		a := gt.R1(r.Render(ctx, &interfaces.RenderInput{Title: "one"})).NoError(t)
		b := gt.R1(r.Render(ctx, &interfaces.RenderInput{Title: "two"})).NoError(t)
		gt.V(t, bytes.Equal(a, b)).Equal(false)
	})
}
