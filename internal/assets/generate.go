package assets

import (
	"image"
	"image/color"
	"math"
)

// GeneratedSize is the edge length of generated textures
const GeneratedSize = 256

var generators = map[string]func() image.Image{
	Metal:     metal,
	Marble:    marble,
	Container: container,
	Grass:     grass,
	Window:    window,

	SkyboxFaces[0]: skySide,
	SkyboxFaces[1]: skySide,
	SkyboxFaces[2]: skyTop,
	SkyboxFaces[3]: skyBottom,
	SkyboxFaces[4]: skySide,
	SkyboxFaces[5]: skySide,
}

// Generated reports whether name has a procedural stand-in
func Generated(name string) bool {
	_, ok := generators[name]
	return ok
}

func newSquare() *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, GeneratedSize, GeneratedSize))
}

func metal() image.Image {
	img := newSquare()
	const cell = GeneratedSize / 8
	for y := range GeneratedSize {
		for x := range GeneratedSize {
			v := uint8(96)
			if (x/cell+y/cell)%2 == 0 {
				v = 160
			}
			// brushed streaks
			v += uint8((x * 7 % 13))
			img.SetNRGBA(x, y, color.NRGBA{v, v, v + 8, 255})
		}
	}
	return img
}

func marble() image.Image {
	img := newSquare()
	for y := range GeneratedSize {
		for x := range GeneratedSize {
			fx, fy := float64(x), float64(y)
			turbulence := math.Sin(fx*0.031)*math.Cos(fy*0.027) + 0.5*math.Sin((fx+fy)*0.06)
			vein := 0.5 + 0.5*math.Sin(fx*0.04+fy*0.02+4*turbulence)
			v := uint8(150 + 100*vein)
			img.SetNRGBA(x, y, color.NRGBA{v, v, uint8(float64(v) * 0.95), 255})
		}
	}
	return img
}

func container() image.Image {
	img := newSquare()
	const border = 16
	const plank = GeneratedSize / 6
	for y := range GeneratedSize {
		for x := range GeneratedSize {
			c := color.NRGBA{150, 100, 50, 255}
			if y%plank < 2 {
				c = color.NRGBA{90, 60, 30, 255}
			}
			if x < border || y < border || x >= GeneratedSize-border || y >= GeneratedSize-border {
				c = color.NRGBA{110, 110, 120, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// grass draws opaque blades over a fully transparent background
func grass() image.Image {
	img := newSquare()
	for x := range GeneratedSize {
		fx := float64(x)
		height := int(GeneratedSize * (0.45 + 0.35*math.Abs(math.Sin(fx*0.21)*math.Cos(fx*0.047))))
		for y := GeneratedSize - height; y < GeneratedSize; y++ {
			shade := uint8(90 + 120*(y-(GeneratedSize-height))/max(height, 1))
			img.SetNRGBA(x, y, color.NRGBA{30, shade, 20, 255})
		}
	}
	return img
}

// window is a translucent red pane inside an opaque frame
func window() image.Image {
	img := newSquare()
	const frame = 12
	for y := range GeneratedSize {
		for x := range GeneratedSize {
			c := color.NRGBA{200, 40, 40, 100}
			if x < frame || y < frame || x >= GeneratedSize-frame || y >= GeneratedSize-frame {
				c = color.NRGBA{60, 30, 30, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func gradient(top, bottom color.NRGBA) image.Image {
	img := newSquare()
	for y := range GeneratedSize {
		t := float64(y) / float64(GeneratedSize-1)
		c := color.NRGBA{
			lerp(top.R, bottom.R, t),
			lerp(top.G, bottom.G, t),
			lerp(top.B, bottom.B, t),
			255,
		}
		for x := range GeneratedSize {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

var (
	zenith  = color.NRGBA{40, 90, 180, 255}
	horizon = color.NRGBA{190, 215, 240, 255}
	ground  = color.NRGBA{70, 60, 50, 255}
)

func skySide() image.Image { return gradient(zenith, horizon) }

func skyTop() image.Image { return gradient(zenith, zenith) }

func skyBottom() image.Image { return gradient(ground, ground) }
