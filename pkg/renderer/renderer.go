package renderer

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/whitted-dev/go-raytracer/log"
	"github.com/whitted-dev/go-raytracer/pkg/canvas"
	"github.com/whitted-dev/go-raytracer/pkg/core"
	"github.com/whitted-dev/go-raytracer/pkg/scene"
)

var logger = log.New("renderer")

// Options configures a render run.
type Options struct {
	// Workers is the number of parallel render goroutines. Must be
	// positive.
	Workers int
	// Samples is the number of antialiasing rays per pixel: 1, 2, 4, 8
	// or 16.
	Samples int
}

// DefaultOptions renders with one worker per CPU and no antialiasing.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.NumCPU(),
		Samples: 1,
	}
}

// rowBand is the contiguous run of canvas rows assigned to one worker,
// together with the colors it produced.
type rowBand struct {
	start  int
	end    int
	colors []core.Color
}

// Render draws the world through the camera and returns the finished canvas
// along with timing statistics. Rows are split evenly across the workers,
// the remainder going to the last one; each worker writes into a private
// buffer, so the world and camera are only ever read concurrently.
func Render(camera *Camera, world *scene.World, opts Options) (*canvas.Canvas, RenderStats) {
	if opts.Workers <= 0 {
		panic(fmt.Sprintf("renderer: worker count must be positive, got %d", opts.Workers))
	}
	// Validate the sample count up front rather than in every worker.
	sampleOffsets(opts.Samples)

	workers := opts.Workers
	if workers > camera.VSize() {
		workers = camera.VSize()
	}

	logger.Infof("rendering %dx%d with %d workers, %d samples per pixel",
		camera.HSize(), camera.VSize(), workers, opts.Samples)

	start := time.Now()
	rowsPerWorker := camera.VSize() / workers

	results := make(chan rowBand, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		startRow := i * rowsPerWorker
		endRow := startRow + rowsPerWorker
		if i == workers-1 {
			endRow = camera.VSize()
		}

		wg.Add(1)
		go func(startRow, endRow int) {
			defer wg.Done()
			results <- renderRows(camera, world, opts.Samples, startRow, endRow)
		}(startRow, endRow)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	image := canvas.NewCanvas(camera.HSize(), camera.VSize())
	for band := range results {
		i := 0
		for y := band.start; y < band.end; y++ {
			for x := 0; x < camera.HSize(); x++ {
				image.SetPixel(x, y, band.colors[i])
				i++
			}
		}
		logger.Debugf("collected rows %d..%d", band.start, band.end-1)
	}

	stats := RenderStats{
		Width:    camera.HSize(),
		Height:   camera.VSize(),
		Workers:  workers,
		Samples:  opts.Samples,
		Duration: time.Since(start),
	}
	logger.Infof("rendered %d pixels in %s (%.0f px/s)",
		stats.PixelCount(), stats.Duration.Round(time.Millisecond), stats.PixelsPerSecond())

	return image, stats
}

// renderRows renders the half-open row range [start, end) into a private
// buffer.
func renderRows(camera *Camera, world *scene.World, samples, start, end int) rowBand {
	band := rowBand{
		start:  start,
		end:    end,
		colors: make([]core.Color, 0, (end-start)*camera.HSize()),
	}

	sampleColors := make([]core.Color, 0, samples)
	for y := start; y < end; y++ {
		for x := 0; x < camera.HSize(); x++ {
			sampleColors = sampleColors[:0]
			for _, ray := range camera.RaysForPixel(x, y, samples) {
				sampleColors = append(sampleColors, world.ColorAt(ray, scene.MaxRecursionDepth))
			}
			band.colors = append(band.colors, core.AverageColors(sampleColors))
		}
	}
	return band
}
