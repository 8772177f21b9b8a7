package renderer

import (
	"image"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	Hits             int           // Pixels whose ray hit a sphere
	Misses           int           // Pixels that got the background color
	Bands            int           // Number of row bands rendered
	Workers          int           // Number of workers used
	Duration         time.Duration // Wall time of the render
	AverageLuminance float64       // Mean Rec. 709 luminance of the serialized image
}

// HitRatio returns the fraction of pixels that hit a sphere
func (s RenderStats) HitRatio() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.TotalPixels)
}

// merge adds the counts of a single band
func (s *RenderStats) merge(band bandResult) {
	s.Hits += band.hits
	s.Misses += band.misses
	s.TotalPixels += band.hits + band.misses
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of img in [0,1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	n := bounds.Dx() * bounds.Dy()
	if n == 0 {
		return 0
	}

	var sum float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			sum += 0.2126*float64(r)/0xffff + 0.7152*float64(g)/0xffff + 0.0722*float64(b)/0xffff
		}
	}
	return sum / float64(n)
}
