package cubemap_test

import (
	"math/rand"
	"testing"

	"github.com/rotorliu/PanoramaToCubemap/cubemap"
	"github.com/rotorliu/PanoramaToCubemap/libio"
)

func pixelAt(img *libio.Rgba, x, y int) [3]uint8 {
	i := img.PixOffset(x, y)
	return [3]uint8{img.Pix[i+0], img.Pix[i+1], img.Pix[i+2]}
}

func TestSampleNearestExact(t *testing.T) {
	var dst [4]uint8
	for _, p := range [][2]int{{0, 0}, {5, 3}, {63, 31}, {17, 0}} {
		cubemap.SampleNearest(testdata.noise, dst[:], float64(p[0]), float64(p[1]), 0)
		want := pixelAt(testdata.noise, p[0], p[1])
		if dst[0] != want[0] || dst[1] != want[1] || dst[2] != want[2] {
			t.Errorf("nearest at (%d,%d) should be %v but is %v", p[0], p[1], want, dst[:3])
		}
	}
}

func TestSampleNearestRoundsAndClamps(t *testing.T) {
	var got, want [4]uint8

	// far outside coordinates clamp to the border pixel
	cubemap.SampleNearest(testdata.noise, got[:], -3.7, -100, 0)
	cubemap.SampleNearest(testdata.noise, want[:], 0, 0, 0)
	if got != want {
		t.Errorf("out of bounds sample should clamp to (0,0)")
	}

	cubemap.SampleNearest(testdata.noise, got[:], 1e9, 31.4, 0)
	cubemap.SampleNearest(testdata.noise, want[:], 63, 31, 0)
	if got != want {
		t.Errorf("out of bounds sample should clamp to (63,31)")
	}

	cubemap.SampleNearest(testdata.noise, got[:], 1.5, 2.4, 0)
	cubemap.SampleNearest(testdata.noise, want[:], 2, 2, 0)
	if got != want {
		t.Errorf("fractional coordinates should round to the nearest pixel")
	}
}

func TestSampleBilinearIntegerExact(t *testing.T) {
	var dst [4]uint8
	for _, p := range [][2]int{{0, 0}, {5, 3}, {63, 31}} {
		cubemap.SampleBilinear(testdata.noise, dst[:], float64(p[0]), float64(p[1]), 0)
		want := pixelAt(testdata.noise, p[0], p[1])
		if dst[0] != want[0] || dst[1] != want[1] || dst[2] != want[2] {
			t.Errorf("bilinear at (%d,%d) should degenerate to %v but is %v", p[0], p[1], want, dst[:3])
		}
	}
}

func TestSampleBilinearEdgeClamp(t *testing.T) {
	var dst [4]uint8

	// xl and xr both clamp to column 0, the x weight must cancel out
	cubemap.SampleBilinear(testdata.noise, dst[:], -0.5, 0, 0)
	want := pixelAt(testdata.noise, 0, 0)
	if dst[0] != want[0] || dst[1] != want[1] || dst[2] != want[2] {
		t.Errorf("clamped edge sample should be %v but is %v", want, dst[:3])
	}

	cubemap.SampleBilinear(testdata.noise, dst[:], 63.5, 31.5, 0)
	want = pixelAt(testdata.noise, 63, 31)
	if dst[0] != want[0] || dst[1] != want[1] || dst[2] != want[2] {
		t.Errorf("clamped corner sample should be %v but is %v", want, dst[:3])
	}
}

func TestSampleBilinearRoundsUp(t *testing.T) {
	img, err := libio.WrapRgba([]uint8{
		10, 20, 30, 255,
		11, 21, 31, 255,
	}, 2, 1)
	if err != nil {
		t.Fatal(err)
	}

	var dst [4]uint8

	// the blend yields 10.5, 20.5, 30.5; the filter rounds up, not to nearest
	cubemap.SampleBilinear(img, dst[:], 0.5, 0, 0)
	if dst[0] != 11 || dst[1] != 21 || dst[2] != 31 {
		t.Errorf("blend at x=0.5 should round up to [11 21 31] but is %v", dst[:3])
	}

	// even a quarter step picks up the ceiling
	cubemap.SampleBilinear(img, dst[:], 0.25, 0, 0)
	if dst[0] != 11 || dst[1] != 21 || dst[2] != 31 {
		t.Errorf("blend at x=0.25 should round up to [11 21 31] but is %v", dst[:3])
	}
}

// The float blend of four equal corners can come out infinitesimally above
// the corner value; the ceiling must then saturate at 255 instead of
// wrapping the stored byte to 0.
func TestSampleBilinearSaturatesAtWhite(t *testing.T) {
	img := libio.NewRgba(4, 4)
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}

	rng := rand.New(rand.NewSource(1))
	var dst [4]uint8
	for i := 0; i < 100000; i++ {
		x := rng.Float64() * 3
		y := rng.Float64() * 3
		cubemap.SampleBilinear(img, dst[:], x, y, 0)
		if dst[0] != 0xff || dst[1] != 0xff || dst[2] != 0xff {
			t.Fatalf("white blend at (%v,%v) should stay white but is %v", x, y, dst[:3])
		}
	}
}

func TestSampleUnknownModeFallsBack(t *testing.T) {
	var got, want [4]uint8
	cubemap.Sample(testdata.noise, got[:], 7.3, 12.8, 0, cubemap.Interpolation(99))
	cubemap.SampleNearest(testdata.noise, want[:], 7.3, 12.8, 0)
	if got != want {
		t.Errorf("unknown interpolation mode should sample nearest-neighbor")
	}
}
