package renderer

import (
	"math"
	"math/rand"

	"pathtracer/pkg/core"
)

// CameraConfig contains the user-facing camera and render parameters
type CameraConfig struct {
	AspectRatio     float64   // Ratio of image width over height
	ImageWidth      int       // Rendered image width in pixels
	SamplesPerPixel int       // Rays per pixel (rounded down to a square)
	MaxDepth        int       // Maximum ray bounce depth
	VFov            float64   // Vertical view angle in degrees
	LookFrom        core.Vec3 // Camera position
	LookAt          core.Vec3 // Point the camera looks at
	VUp             core.Vec3 // Camera-relative up direction
	DefocusAngle    float64   // Variation angle of rays through each pixel, degrees
	FocusDistance   float64   // Distance to the plane of perfect focus
	Background      core.Vec3 // Radiance for rays that miss the scene
}

// DefaultCameraConfig returns sensible default values
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     1.0,
		ImageWidth:      100,
		SamplesPerPixel: 10,
		MaxDepth:        10,
		VFov:            90.0,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		VUp:             core.NewVec3(0, 1, 0),
		DefocusAngle:    0.0,
		FocusDistance:   10.0,
		Background:      core.NewVec3(0, 0, 0),
	}
}

// Camera holds geometry derived once from a CameraConfig and is read-only
// for the lifetime of one render
type Camera struct {
	ImageWidth  int
	ImageHeight int
	Background  core.Vec3
	MaxDepth    int

	center       core.Vec3
	pixel00      core.Vec3 // World position of the top-left pixel center
	pixelDeltaU  core.Vec3 // Offset to the pixel to the right
	pixelDeltaV  core.Vec3 // Offset to the pixel below
	defocusAngle float64
	defocusDiskU core.Vec3
	defocusDiskV core.Vec3
	sqrtSPP      int     // Stratification grid side: floor(sqrt(spp))
	recipSqrtSPP float64 // 1 / sqrtSPP
}

// NewCamera derives the camera geometry from the given configuration
func NewCamera(config CameraConfig) *Camera {
	imageHeight := int(float64(config.ImageWidth) / config.AspectRatio)
	if imageHeight < 1 {
		imageHeight = 1
	}

	sqrtSPP := int(math.Sqrt(float64(config.SamplesPerPixel)))
	if sqrtSPP < 1 {
		sqrtSPP = 1
	}

	theta := config.VFov * math.Pi / 180.0
	h := math.Tan(theta / 2.0)
	viewportHeight := 2.0 * h * config.FocusDistance
	viewportWidth := viewportHeight * (float64(config.ImageWidth) / float64(imageHeight))
	center := config.LookFrom

	// Orthonormal camera frame
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.VUp.Cross(w).Normalize()
	v := w.Cross(u)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Multiply(1.0 / float64(config.ImageWidth))
	pixelDeltaV := viewportV.Multiply(1.0 / float64(imageHeight))

	viewportUpperLeft := center.
		Subtract(w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDistance * math.Tan(config.DefocusAngle/2.0*math.Pi/180.0)

	return &Camera{
		ImageWidth:   config.ImageWidth,
		ImageHeight:  imageHeight,
		Background:   config.Background,
		MaxDepth:     config.MaxDepth,
		center:       center,
		pixel00:      pixel00,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		defocusAngle: config.DefocusAngle,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
		sqrtSPP:      sqrtSPP,
		recipSqrtSPP: 1.0 / float64(sqrtSPP),
	}
}

// SamplesPerPixel returns the effective sample count, sqrtSPP squared
func (c *Camera) SamplesPerPixel() int {
	return c.sqrtSPP * c.sqrtSPP
}

// StratumGrid returns the side length of the per-pixel stratification grid
func (c *Camera) StratumGrid() int {
	return c.sqrtSPP
}

// GetRay generates a ray through pixel (i, j) for stratified sub-sample
// (si, sj), jittered uniformly within its sub-cell. The origin is the
// camera center for a pinhole, or a random point on the defocus disk for a
// thin lens.
func (c *Camera) GetRay(i, j, si, sj int, rng *rand.Rand) core.Ray {
	offsetX := (float64(si)+rng.Float64())*c.recipSqrtSPP - 0.5
	offsetY := (float64(sj)+rng.Float64())*c.recipSqrtSPP - 0.5

	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offsetX)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offsetY))

	origin := c.center
	if c.defocusAngle > 0 {
		origin = c.defocusDiskSample(rng)
	}

	return core.NewRay(origin, pixelSample.Subtract(origin))
}

// defocusDiskSample returns a random origin on the camera's defocus disk
func (c *Camera) defocusDiskSample(rng *rand.Rand) core.Vec3 {
	p := core.RandomInUnitDisk(rng)
	return c.center.
		Add(c.defocusDiskU.Multiply(p.X)).
		Add(c.defocusDiskV.Multiply(p.Y))
}
