package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"pathtracer/pkg/renderer"
	"pathtracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "balls", "Scene type: 'balls', 'quads', 'simple-light' or 'cornell'")
	output := flag.String("output", "", "Output PNG path (default output/<scene>_<timestamp>.png)")
	seed := flag.Int64("seed", 42, "Base seed for the per-row sample streams")
	workers := flag.Int("workers", 0, "Worker count (0 = number of CPUs)")
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)

	s, err := createScene(*sceneType)
	if err != nil {
		logger.Fatalf("Error: %v", err)
	}

	logger.Printf("Rendering %q scene...", *sceneType)

	start := time.Now()
	buffer := s.Render(
		renderer.WithLogger(logger),
		renderer.WithSeed(*seed),
		renderer.WithWorkers(*workers),
	)
	elapsed := time.Since(start)

	width := s.Camera.ImageWidth
	height := len(buffer) / (width * 3)
	logger.Printf("Done! Elapsed: %v (%.2fµs per pixel)",
		elapsed, float64(elapsed.Microseconds())/float64(width*height))

	path := *output
	if path == "" {
		path = filepath.Join("output", fmt.Sprintf("%s_%d.png", *sceneType, time.Now().Unix()))
	}
	if err := writePNG(path, buffer, width, height); err != nil {
		logger.Fatalf("Error writing image: %v", err)
	}
	logger.Printf("Saved %s", path)
}

func createScene(sceneType string) (*scene.Scene, error) {
	switch sceneType {
	case "balls":
		return scene.NewBallsScene(), nil
	case "quads":
		return scene.NewQuadsScene(), nil
	case "simple-light":
		return scene.NewSimpleLightScene(), nil
	case "cornell":
		return scene.NewCornellBoxScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

// writePNG encodes the RGB pixel buffer into a PNG file. File-system
// failures here are ordinary recoverable errors, unlike the renderer's
// construction panics.
func writePNG(path string, buffer []byte, width, height int) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			src := (j*width + i) * 3
			dst := img.PixOffset(i, j)
			img.Pix[dst+0] = buffer[src+0]
			img.Pix[dst+1] = buffer[src+1]
			img.Pix[dst+2] = buffer[src+2]
			img.Pix[dst+3] = 255
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}
