package render

import "image/color"

var (
	Background = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Food       = color.RGBA{R: 0, G: 0xe0, B: 0, A: 255}
	Message    = color.RGBA{R: 0xb0, G: 0xa0, B: 0xb0, A: 255}
)

// ActorColors holds the head and body colors of one player.
type ActorColors struct {
	Head color.RGBA
	Body color.RGBA
}

var actorPalette = []ActorColors{
	{Head: color.RGBA{R: 0xff, A: 255}, Body: color.RGBA{R: 0xd0, A: 255}},
	{Head: color.RGBA{R: 0x40, G: 0x80, B: 0xff, A: 255}, Body: color.RGBA{R: 0x20, G: 0x50, B: 0xd0, A: 255}},
	{Head: color.RGBA{R: 0xff, G: 0xd0, A: 255}, Body: color.RGBA{R: 0xc0, G: 0xa0, A: 255}},
}

// ColorsFor returns the colors of the i-th actor, cycling the palette.
func ColorsFor(i int) ActorColors {
	if i < 0 {
		i = -i
	}
	return actorPalette[i%len(actorPalette)]
}
