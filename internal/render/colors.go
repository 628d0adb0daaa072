package render

import (
	"image/color"

	"github.com/stardrift/stardrift/internal/game"
)

// Fixed scene colors.
var (
	BackgroundColor = color.RGBA{20, 20, 30, 255} // dark blue-gray
	PlayerColor     = color.RGBA{0, 255, 0, 255}
	HullFillColor   = color.RGBA{0, 0, 0, 255}
	HUDTextColor    = color.RGBA{255, 255, 255, 255}
)

// StarPalette maps categorical star-color tags to their base RGB values.
// Read-only after init; twinkle shading derives per-frame colors from it.
var StarPalette = [...]color.RGBA{
	game.StarWhite:       {255, 255, 255, 255},
	game.StarLightBlue:   {173, 216, 230, 255},
	game.StarCyan:        {0, 255, 255, 255},
	game.StarLightPurple: {221, 160, 221, 255},
	game.StarPink:        {255, 182, 193, 255},
	game.StarPaleYellow:  {238, 232, 170, 255},
}
