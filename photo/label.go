package photo

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	labelWhite = image.NewUniform(color.RGBA{255, 255, 255, 255})
	labelGrey  = image.NewUniform(color.RGBA{200, 200, 200, 255})
)

// Annotate draws identification lines in the top-left corner so fixtures
// can be told apart visually. The first line is the title and renders
// white; subsequent lines render grey.
func Annotate(img *image.RGBA, lines []string) {
	d := font.Drawer{
		Dst:  img,
		Face: basicfont.Face7x13,
	}
	for i, line := range lines {
		d.Src = labelGrey
		if i == 0 {
			d.Src = labelWhite
		}
		d.Dot = fixed.P(10, 20+i*20)
		d.DrawString(line)
	}
}
