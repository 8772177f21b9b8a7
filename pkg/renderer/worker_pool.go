package renderer

import (
	"context"
	"image"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Band is a horizontal strip of whole rows rendered as one task
type Band struct {
	ID     int             // Index in top-to-bottom order
	Bounds image.Rectangle // Pixel bounds (full width, rows Min.Y to Max.Y-1)
}

// bandResult carries the counts of one finished band
type bandResult struct {
	hits   int
	misses int
}

// NewBandGrid splits the image into bands of at most bandHeight rows
func NewBandGrid(width, height, bandHeight int) []Band {
	if bandHeight <= 0 {
		bandHeight = DefaultBandHeight
	}

	var bands []Band
	for y0 := 0; y0 < height; y0 += bandHeight {
		y1 := min(y0+bandHeight, height) // Don't exceed image bounds
		bands = append(bands, Band{
			ID:     len(bands),
			Bounds: image.Rect(0, y0, width, y1),
		})
	}
	return bands
}

// WorkerPool renders bands in parallel with a bounded number of goroutines.
// Bands never overlap, so workers write disjoint framebuffer slots and
// need no locking; the scene is read-only.
type WorkerPool struct {
	numWorkers int
	logger     *zap.Logger
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(numWorkers int, logger *zap.Logger) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers, logger: logger}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run renders every band with renderBand and returns the per-band results
// in band order. It returns only after all started bands have finished.
func (wp *WorkerPool) Run(ctx context.Context, bands []Band, renderBand func(ctx context.Context, b Band) (bandResult, error)) ([]bandResult, error) {
	results := make([]bandResult, len(bands))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(wp.numWorkers)

	for _, band := range bands {
		band := band // per-iteration copy (go directive < 1.22)
		g.Go(func() error {
			res, err := renderBand(ctx, band)
			if err != nil {
				return err
			}
			results[band.ID] = res
			wp.logger.Debug("band complete",
				zap.Int("band", band.ID),
				zap.Int("y0", band.Bounds.Min.Y),
				zap.Int("y1", band.Bounds.Max.Y))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
