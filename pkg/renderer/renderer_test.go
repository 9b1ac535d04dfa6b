package renderer

import (
	"bytes"
	"testing"

	"pathtracer/pkg/core"
	"pathtracer/pkg/geometry"
	"pathtracer/pkg/material"
)

func testWorld() *geometry.ObjectList {
	return geometry.NewObjectList(
		geometry.NewSphere(core.NewVec3(0, 0, -3), 1.0, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	)
}

func testCameraConfig() CameraConfig {
	config := DefaultCameraConfig()
	config.ImageWidth = 16
	config.SamplesPerPixel = 4
	config.MaxDepth = 4
	config.Background = core.NewVec3(0.7, 0.8, 1.0)
	return config
}

func TestWritePixel(t *testing.T) {
	tests := []struct {
		name  string
		color core.Vec3
		want  [3]byte
	}{
		{"black", core.NewVec3(0, 0, 0), [3]byte{0, 0, 0}},
		// Gamma of 0.25 is 0.5, quantized to floor(256*0.5)
		{"quarter gray", core.NewVec3(0.25, 0.25, 0.25), [3]byte{128, 128, 128}},
		// Full white clamps to 0.999 before quantization
		{"white", core.NewVec3(1, 1, 1), [3]byte{255, 255, 255}},
		{"over-bright clamps", core.NewVec3(10, 10, 10), [3]byte{255, 255, 255}},
		{"negative clamps to zero", core.NewVec3(-1, -1, -1), [3]byte{0, 0, 0}},
		{"mixed channels", core.NewVec3(0.25, 0, 1), [3]byte{128, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := make([]byte, 3)
			writePixel(out, tt.color)
			if out[0] != tt.want[0] || out[1] != tt.want[1] || out[2] != tt.want[2] {
				t.Errorf("writePixel(%v) = %v, want %v", tt.color, out, tt.want)
			}
		})
	}
}

func TestRenderer_BufferLayout(t *testing.T) {
	camera := NewCamera(testCameraConfig())
	r := NewRenderer(camera, WithWorkers(2))

	buffer := r.Render(testWorld(), nil)
	want := camera.ImageWidth * camera.ImageHeight * 3
	if len(buffer) != want {
		t.Errorf("Buffer length = %d, want %d", len(buffer), want)
	}
}

func TestRenderer_DeterministicPerSeed(t *testing.T) {
	camera := NewCamera(testCameraConfig())

	first := NewRenderer(camera, WithWorkers(1), WithSeed(7)).Render(testWorld(), nil)
	second := NewRenderer(camera, WithWorkers(4), WithSeed(7)).Render(testWorld(), nil)
	if !bytes.Equal(first, second) {
		t.Error("Same seed produced different images across worker counts")
	}

	third := NewRenderer(camera, WithWorkers(4), WithSeed(8)).Render(testWorld(), nil)
	if bytes.Equal(first, third) {
		t.Error("Different seeds produced identical images")
	}
}

func TestRenderer_BackgroundPixels(t *testing.T) {
	// Empty-ish world: every ray hits nothing but a sphere far behind the
	// camera, so all pixels are the gamma-corrected background
	config := testCameraConfig()
	config.Background = core.NewVec3(0.25, 0.25, 0.25)
	camera := NewCamera(config)

	world := geometry.NewObjectList(
		geometry.NewSphere(core.NewVec3(0, 0, 100), 1.0, material.Dummy{}),
	)
	buffer := NewRenderer(camera, WithWorkers(2)).Render(world, nil)

	for i, b := range buffer {
		if b != 128 {
			t.Fatalf("Pixel byte %d = %d, want 128", i, b)
		}
	}
}

func TestRenderer_SphereCoversCenterNotCorner(t *testing.T) {
	config := testCameraConfig()
	config.Background = core.NewVec3(0, 0, 0)
	camera := NewCamera(config)

	world := geometry.NewObjectList(
		geometry.NewSphere(core.NewVec3(0, 0, -3), 1.0, material.NewDiffuseLight(core.NewVec3(1, 1, 1))),
	)
	buffer := NewRenderer(camera, WithWorkers(2)).Render(world, nil)

	width, height := camera.ImageWidth, camera.ImageHeight
	centerIdx := ((height/2)*width + width/2) * 3
	if buffer[centerIdx] == 0 {
		t.Error("Center pixel is black; the emissive sphere should cover it")
	}
	if buffer[0] != 0 || buffer[1] != 0 || buffer[2] != 0 {
		t.Errorf("Corner pixel = %v, want black background", buffer[0:3])
	}
}
