package renderer

import (
	"math"
	"math/rand"
	"testing"

	"pathtracer/pkg/core"
)

func TestNewCamera_ImageHeight(t *testing.T) {
	tests := []struct {
		name        string
		width       int
		aspectRatio float64
		wantHeight  int
	}{
		{"square", 100, 1.0, 100},
		{"widescreen", 400, 16.0 / 9.0, 225},
		{"flooring", 100, 3.0, 33},
		{"clamped to one", 10, 100.0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultCameraConfig()
			config.ImageWidth = tt.width
			config.AspectRatio = tt.aspectRatio
			camera := NewCamera(config)
			if camera.ImageHeight != tt.wantHeight {
				t.Errorf("ImageHeight = %d, want %d", camera.ImageHeight, tt.wantHeight)
			}
		})
	}
}

func TestNewCamera_SamplesRoundedToSquare(t *testing.T) {
	tests := []struct {
		name    string
		spp     int
		grid    int
		samples int
	}{
		{"perfect square", 100, 10, 100},
		{"rounded down", 500, 22, 484},
		{"one sample", 1, 1, 1},
		{"zero clamped", 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultCameraConfig()
			config.SamplesPerPixel = tt.spp
			camera := NewCamera(config)
			if camera.StratumGrid() != tt.grid {
				t.Errorf("StratumGrid = %d, want %d", camera.StratumGrid(), tt.grid)
			}
			if camera.SamplesPerPixel() != tt.samples {
				t.Errorf("SamplesPerPixel = %d, want %d", camera.SamplesPerPixel(), tt.samples)
			}
		})
	}
}

func TestCamera_GetRay_CenterPixelLooksForward(t *testing.T) {
	config := DefaultCameraConfig()
	config.ImageWidth = 101 // odd, so a pixel center sits on the axis
	config.SamplesPerPixel = 1
	camera := NewCamera(config)
	rng := rand.New(rand.NewSource(42))

	ray := camera.GetRay(50, 50, 0, 0, rng)
	if ray.Origin != config.LookFrom {
		t.Errorf("Pinhole ray origin = %v, want %v", ray.Origin, config.LookFrom)
	}

	// Jitter moves the target by at most one pixel, so the direction is
	// within a pixel's angle of the view axis
	dir := ray.Direction.Normalize()
	if dir.Z > -0.99 {
		t.Errorf("Center ray direction %v not looking down -z", dir)
	}
}

func TestCamera_GetRay_StratifiedSamplesStayInPixel(t *testing.T) {
	config := DefaultCameraConfig()
	config.ImageWidth = 10
	config.SamplesPerPixel = 16
	camera := NewCamera(config)
	rng := rand.New(rand.NewSource(42))

	grid := camera.StratumGrid()
	for si := 0; si < grid; si++ {
		for sj := 0; sj < grid; sj++ {
			ray := camera.GetRay(5, 5, si, sj, rng)
			target := ray.Origin.Add(ray.Direction)

			// Reconstruct the pixel offset from the sampled point
			fromPixel := target.Subtract(camera.pixel00).
				Subtract(camera.pixelDeltaU.Multiply(5)).
				Subtract(camera.pixelDeltaV.Multiply(5))
			du := fromPixel.Dot(camera.pixelDeltaU) / camera.pixelDeltaU.Dot(camera.pixelDeltaU)
			dv := fromPixel.Dot(camera.pixelDeltaV) / camera.pixelDeltaV.Dot(camera.pixelDeltaV)

			if du < -0.5 || du > 0.5 || dv < -0.5 || dv > 0.5 {
				t.Fatalf("Stratum (%d,%d) sample offset (%v, %v) outside the pixel", si, sj, du, dv)
			}

			// And inside its own stratum cell
			cellMin := float64(si)/float64(grid) - 0.5
			cellMax := float64(si+1)/float64(grid) - 0.5
			if du < cellMin-1e-9 || du > cellMax+1e-9 {
				t.Fatalf("Stratum (%d,%d) u offset %v outside cell [%v, %v]", si, sj, du, cellMin, cellMax)
			}
		}
	}
}

func TestCamera_GetRay_DefocusOriginsOnDisk(t *testing.T) {
	config := DefaultCameraConfig()
	config.DefocusAngle = 2.0
	config.FocusDistance = 5.0
	camera := NewCamera(config)
	rng := rand.New(rand.NewSource(42))

	maxRadius := config.FocusDistance * math.Tan(config.DefocusAngle/2.0*math.Pi/180.0)
	sawOffCenter := false
	for i := 0; i < 1000; i++ {
		ray := camera.GetRay(50, 50, 0, 0, rng)
		offset := ray.Origin.Subtract(config.LookFrom)
		if offset.Length() > maxRadius+1e-9 {
			t.Fatalf("Lens origin offset %v exceeds disk radius %v", offset.Length(), maxRadius)
		}
		if offset.Length() > 1e-12 {
			sawOffCenter = true
		}
	}
	if !sawOffCenter {
		t.Error("Defocus disk sampling never left the camera center")
	}
}

func TestCamera_GetRay_PinholeOriginFixed(t *testing.T) {
	config := DefaultCameraConfig()
	config.LookFrom = core.NewVec3(3, 2, 1)
	config.LookAt = core.NewVec3(0, 0, 0)
	camera := NewCamera(config)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		ray := camera.GetRay(10, 10, 0, 0, rng)
		if ray.Origin != config.LookFrom {
			t.Fatalf("Pinhole origin %v, want %v", ray.Origin, config.LookFrom)
		}
	}
}
