package renderer

import (
	"math"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"pathtracer/pkg/core"
	"pathtracer/pkg/geometry"
	"pathtracer/pkg/integrator"
)

// Renderer drives the per-pixel sampling loop across a fixed-size worker
// pool. The scene is shared read-only by every worker; the only per-worker
// mutable state is its random generator, so no locks are needed.
type Renderer struct {
	camera     *Camera
	numWorkers int
	seed       int64
	logger     core.Logger
}

// Option configures a Renderer
type Option func(*Renderer)

// WithWorkers sets the worker count; values below 1 fall back to NumCPU
func WithWorkers(n int) Option {
	return func(r *Renderer) { r.numWorkers = n }
}

// WithSeed sets the base seed for the per-row random streams
func WithSeed(seed int64) Option {
	return func(r *Renderer) { r.seed = seed }
}

// WithLogger sets the progress logger; nil silences progress output
func WithLogger(logger core.Logger) Option {
	return func(r *Renderer) { r.logger = logger }
}

// NewRenderer creates a renderer for the given camera
func NewRenderer(camera *Camera, opts ...Option) *Renderer {
	r := &Renderer{
		camera:     camera,
		numWorkers: runtime.NumCPU(),
		seed:       42,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.numWorkers < 1 {
		r.numWorkers = runtime.NumCPU()
	}
	return r
}

// Render traces the whole image and returns the pixel buffer: one RGB byte
// triple per pixel, row-major, top-to-bottom, left-to-right. A render runs
// to completion; there is no cancellation.
func (r *Renderer) Render(world geometry.Hittable, lights geometry.Light) []byte {
	width, height := r.camera.ImageWidth, r.camera.ImageHeight
	buffer := make([]byte, width*height*3)

	pt := integrator.NewPathTracer(r.camera.Background)

	// Rows are disjoint chunks of the buffer, so workers write without
	// synchronization. Each row gets its own seed-derived random stream,
	// making output deterministic per seed regardless of scheduling.
	rows := make(chan int, height)
	for j := 0; j < height; j++ {
		rows <- j
	}
	close(rows)

	var rowsDone atomic.Int64
	var wg sync.WaitGroup
	for worker := 0; worker < r.numWorkers; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				rng := rand.New(rand.NewSource(r.seed + int64(j)))
				r.renderRow(j, buffer[j*width*3:(j+1)*width*3], world, lights, pt, rng)

				if done := rowsDone.Add(1); r.logger != nil && done%32 == 0 {
					r.logger.Printf("rendered %d/%d rows", done, height)
				}
			}
		}()
	}
	wg.Wait()

	return buffer
}

// renderRow traces every pixel of one row into its slice of the buffer
func (r *Renderer) renderRow(j int, row []byte, world geometry.Hittable, lights geometry.Light, pt *integrator.PathTracer, rng *rand.Rand) {
	grid := r.camera.StratumGrid()
	scale := 1.0 / float64(r.camera.SamplesPerPixel())

	for i := 0; i < r.camera.ImageWidth; i++ {
		var color core.Vec3
		for si := 0; si < grid; si++ {
			for sj := 0; sj < grid; sj++ {
				ray := r.camera.GetRay(i, j, si, sj, rng)
				color = color.Add(pt.RayColor(ray, world, lights, r.camera.MaxDepth, rng))
			}
		}
		writePixel(row[i*3:i*3+3], color.Multiply(scale))
	}
}

// intensity clamps each channel below 1.0 so quantization stays in range
var intensity = core.NewInterval(0.000, 0.999)

// writePixel gamma-corrects (gamma 2), clamps and quantizes one pixel
func writePixel(out []byte, color core.Vec3) {
	out[0] = byte(256.0 * intensity.Clamp(linearToGamma(color.X)))
	out[1] = byte(256.0 * intensity.Clamp(linearToGamma(color.Y)))
	out[2] = byte(256.0 * intensity.Clamp(linearToGamma(color.Z)))
}

// linearToGamma converts a linear component to gamma space with sqrt
func linearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}
