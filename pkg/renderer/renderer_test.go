package renderer

import (
	"math"
	"testing"
	"time"

	"github.com/whitted-dev/go-raytracer/pkg/core"
	"github.com/whitted-dev/go-raytracer/pkg/scene"
)

func testCamera() *Camera {
	c := NewCamera(11, 11, math.Pi/2)
	c.SetTransform(core.ViewTransform(
		core.NewPoint(0, 0, -5),
		core.Origin(),
		core.NewVector(0, 1, 0),
	))
	return c
}

func colorsEqual(a, b core.Color) bool {
	return floatsEqual(a.R, b.R) && floatsEqual(a.G, b.G) && floatsEqual(a.B, b.B)
}

func TestRenderDefaultWorld(t *testing.T) {
	world := scene.DefaultWorld()
	image, stats := Render(testCamera(), world, Options{Workers: 1, Samples: 1})

	want := core.NewColor(0.38066, 0.47583, 0.2855)
	if got := image.PixelAt(5, 5); !colorsEqual(got, want) {
		t.Errorf("center pixel = %v, want %v", got, want)
	}
	if stats.Width != 11 || stats.Height != 11 || stats.Workers != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestRenderIsDeterministicAcrossWorkerCounts(t *testing.T) {
	world := scene.DefaultWorld()
	camera := testCamera()

	single, _ := Render(camera, world, Options{Workers: 1, Samples: 1})
	parallel, _ := Render(camera, world, Options{Workers: 4, Samples: 1})

	for y := 0; y < camera.VSize(); y++ {
		for x := 0; x < camera.HSize(); x++ {
			if !colorsEqual(single.PixelAt(x, y), parallel.PixelAt(x, y)) {
				t.Fatalf("pixel (%d, %d) differs between worker counts", x, y)
			}
		}
	}
}

func TestRenderAntialiased(t *testing.T) {
	world := scene.DefaultWorld()
	image, stats := Render(testCamera(), world, Options{Workers: 2, Samples: 4})

	if stats.Samples != 4 {
		t.Errorf("stats.Samples = %d, want 4", stats.Samples)
	}
	if stats.RayCount() != 11*11*4 {
		t.Errorf("ray count = %d, want %d", stats.RayCount(), 11*11*4)
	}

	// Supersampling only refines edges; the center pixel stays on the
	// sphere for every sample.
	want := core.NewColor(0.38066, 0.47583, 0.2855)
	if got := image.PixelAt(5, 5); math.Abs(got.R-want.R) > 0.05 {
		t.Errorf("center pixel = %v, want about %v", got, want)
	}
}

func TestRenderCapsWorkersAtRowCount(t *testing.T) {
	world := scene.DefaultWorld()
	camera := NewCamera(4, 2, math.Pi/2)

	_, stats := Render(camera, world, Options{Workers: 16, Samples: 1})
	if stats.Workers != 2 {
		t.Errorf("stats.Workers = %d, want the row-capped 2", stats.Workers)
	}
}

func TestRenderRejectsNonPositiveWorkers(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a non-positive worker count")
		}
	}()
	Render(testCamera(), scene.DefaultWorld(), Options{Workers: 0, Samples: 1})
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.Workers < 1 {
		t.Errorf("default workers = %d, want at least 1", opts.Workers)
	}
	if opts.Samples != 1 {
		t.Errorf("default samples = %d, want 1", opts.Samples)
	}
}

func TestRenderStats(t *testing.T) {
	stats := RenderStats{Width: 100, Height: 50, Samples: 4, Duration: 2 * time.Second}

	if stats.PixelCount() != 5000 {
		t.Errorf("pixel count = %d, want 5000", stats.PixelCount())
	}
	if stats.RayCount() != 20000 {
		t.Errorf("ray count = %d, want 20000", stats.RayCount())
	}
	if stats.PixelsPerSecond() != 2500 {
		t.Errorf("throughput = %v, want 2500", stats.PixelsPerSecond())
	}
}
