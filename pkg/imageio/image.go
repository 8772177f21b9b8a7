package imageio

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/df07/go-sphere-raycaster/pkg/core"
	"github.com/df07/go-sphere-raycaster/pkg/renderer"
)

// Format identifies an output image encoding
type Format string

const (
	FormatPPM Format = "ppm"
	FormatPNG Format = "png"
	FormatBMP Format = "bmp"
	FormatGIF Format = "gif" // Quantized to the Plan 9 palette, so not lossless
)

// Formats lists the supported formats
var Formats = []Format{FormatPPM, FormatPNG, FormatBMP, FormatGIF}

// Lossless reports whether the format stores the serialized bytes exactly
func (f Format) Lossless() bool {
	return f != FormatGIF
}

// ParseFormat validates a format name; the empty string means PPM
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(name, "."))); f {
	case "":
		return FormatPPM, nil
	case FormatPPM, FormatPNG, FormatBMP, FormatGIF:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported image format %q (supported: %v)", name, Formats)
	}
}

// FormatFromPath picks a format from the file extension, defaulting to PPM
func FormatFromPath(path string) Format {
	if f, err := ParseFormat(filepath.Ext(path)); err == nil {
		return f
	}
	return FormatPPM
}

// Encode writes the framebuffer in the given format
func Encode(w io.Writer, format Format, fb *renderer.Framebuffer) error {
	switch format {
	case FormatPPM, "":
		return EncodePPM(w, fb)
	case FormatPNG:
		if err := png.Encode(w, fb.ToRGBA()); err != nil {
			return fmt.Errorf("failed to encode PNG: %w", err)
		}
		return nil
	case FormatBMP:
		if err := bmp.Encode(w, fb.ToRGBA()); err != nil {
			return fmt.Errorf("failed to encode BMP: %w", err)
		}
		return nil
	case FormatGIF:
		rgba := fb.ToRGBA()
		paletted := image.NewPaletted(rgba.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(paletted, paletted.Bounds(), rgba, image.Point{})
		if err := gif.Encode(w, paletted, nil); err != nil {
			return fmt.Errorf("failed to encode GIF: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
}

// Save writes the framebuffer to path atomically. The image is encoded into a
// temporary file in the same directory, synced and renamed into place, so a
// failed write never leaves a truncated image at path.
func Save(path string, format Format, fb *renderer.Framebuffer) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create output file in %s: %w", dir, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, format, fb); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move image into place at %s: %w", path, err)
	}
	return nil
}

// LoadImage reads a PPM, PNG, BMP or GIF file back into a framebuffer
func LoadImage(filename string) (*renderer.Framebuffer, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	if FormatFromPath(filename) == FormatPPM {
		return DecodePPM(file)
	}

	// Decode image (auto-detects PNG/BMP/GIF from file header)
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	data := make([]byte, 0, width*height*3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			data = append(data, uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
	}
	return framebufferFromBytes(width, height, data), nil
}

// framebufferFromBytes maps packed 8-bit RGB back to linear colors.
// Values are taken at the middle of each byte's interval so that encoding
// the framebuffer again reproduces the same bytes.
func framebufferFromBytes(width, height int, data []byte) *renderer.Framebuffer {
	fb := renderer.NewFramebuffer(width, height)
	channel := func(b byte) float64 { return (float64(b) + 0.5) / 255.0 }
	for k := range fb.Pixels {
		fb.Pixels[k] = core.NewVec3(channel(data[3*k]), channel(data[3*k+1]), channel(data[3*k+2]))
	}
	return fb
}
