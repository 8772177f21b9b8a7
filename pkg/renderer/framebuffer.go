package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-sphere-raycaster/pkg/core"
)

// Framebuffer holds unclamped linear colors in row-major order.
// Pixel (i, j) lives at index i + j*Width. It is never resized.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFramebuffer allocates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// Set stores the color of pixel (i, j)
func (fb *Framebuffer) Set(i, j int, c core.Vec3) {
	fb.Pixels[i+j*fb.Width] = c
}

// At returns the color of pixel (i, j)
func (fb *Framebuffer) At(i, j int) core.Vec3 {
	return fb.Pixels[i+j*fb.Width]
}

// RGB8 returns the 8-bit channels of pixel (i, j)
func (fb *Framebuffer) RGB8(i, j int) (r, g, b uint8) {
	return core.ToRGB8(fb.At(i, j))
}

// Bytes returns the packed RGB bytes, three per pixel in row-major order
func (fb *Framebuffer) Bytes() []byte {
	out := make([]byte, 0, len(fb.Pixels)*3)
	for _, c := range fb.Pixels {
		r, g, b := core.ToRGB8(c)
		out = append(out, r, g, b)
	}
	return out
}

// ToRGBA converts the framebuffer to an opaque image for the standard encoders
func (fb *Framebuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for j := 0; j < fb.Height; j++ {
		for i := 0; i < fb.Width; i++ {
			r, g, b := fb.RGB8(i, j)
			img.SetRGBA(i, j, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}
