package imageio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-sphere-raycaster/pkg/renderer"
)

// EncodePPM writes the framebuffer as a binary PPM (P6) image:
// the header "P6\n<width> <height>\n255\n" followed by width*height*3 bytes.
func EncodePPM(w io.Writer, fb *renderer.Framebuffer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}
	if _, err := bw.Write(fb.Bytes()); err != nil {
		return fmt.Errorf("failed to write PPM pixels: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush PPM data: %w", err)
	}
	return nil
}

// DecodePPM reads a binary PPM (P6) image with maxval 255.
func DecodePPM(r io.Reader) (*renderer.Framebuffer, error) {
	br := bufio.NewReader(r)

	var magic string
	var width, height, maxVal int
	if _, err := fmt.Fscan(br, &magic, &width, &height, &maxVal); err != nil {
		return nil, fmt.Errorf("failed to read PPM header: %w", err)
	}
	if magic != "P6" {
		return nil, fmt.Errorf("unsupported PPM magic %q", magic)
	}
	if maxVal != 255 {
		return nil, fmt.Errorf("unsupported PPM maxval %d", maxVal)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid PPM size %dx%d", width, height)
	}
	// Exactly one whitespace byte separates the header from the pixels
	if _, err := br.ReadByte(); err != nil {
		return nil, fmt.Errorf("failed to read PPM header: %w", err)
	}

	data := make([]byte, width*height*3)
	if _, err := io.ReadFull(br, data); err != nil {
		return nil, fmt.Errorf("failed to read PPM pixels: %w", err)
	}
	return framebufferFromBytes(width, height, data), nil
}
