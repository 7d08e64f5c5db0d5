package cubemap_test

import (
	"math"
	"testing"

	"github.com/rotorliu/PanoramaToCubemap/cubemap"
)

func TestDirectionToFaceInvertsOrientation(t *testing.T) {
	points := [][2]float64{{-0.5, 0.25}, {0.3, -0.7}, {0.9, 0.9}, {-0.1, 0}, {0, 0}}

	for i := 0; i < 6; i++ {
		face := cubemap.Face(i)
		orient, err := cubemap.Orientation(face)
		if err != nil {
			t.Fatal(err)
		}
		for _, p := range points {
			dir := orient(p[0], p[1]).Normalize()
			got, u, v := cubemap.DirectionToFace(dir)
			if got != face {
				t.Fatalf("direction %v from face %v resolved to face %v", dir, face, got)
			}
			wantU := (p[0] + 1) / 2
			wantV := (p[1] + 1) / 2
			if math.Abs(u-wantU) > 1e-12 || math.Abs(v-wantV) > 1e-12 {
				t.Errorf("face %v point %v should map back to (%f,%f) but is (%f,%f)", face, p, wantU, wantV, u, v)
			}
		}
	}
}

func TestRenderEquirectSize(t *testing.T) {
	cube := renderTestCube(t)

	pano, err := cubemap.RenderEquirect(cube, 0, cubemap.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if pano.Rect.Dx() != cube.Size*4 || pano.Rect.Dy() != cube.Size*2 {
		t.Errorf("natural panorama should be %dx%d but is %dx%d", cube.Size*4, cube.Size*2, pano.Rect.Dx(), pano.Rect.Dy())
	}

	pano, err = cubemap.RenderEquirect(cube, 100, cubemap.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if pano.Rect.Dx() != 100 || pano.Rect.Dy() != 50 {
		t.Errorf("explicit panorama should be 100x50 but is %dx%d", pano.Rect.Dx(), pano.Rect.Dy())
	}
}

// Rendering a smooth panorama to a cube map and back must reproduce the
// mid-latitude band within the interpolation error of the two resamplings.
func TestEquirectRoundTrip(t *testing.T) {
	src := gradientPano(256, 128)
	opts := cubemap.Options{Filter: cubemap.InterpLinear}

	cube, err := cubemap.Render(src, opts)
	if err != nil {
		t.Fatal(err)
	}

	pano, err := cubemap.RenderEquirect(cube, 256, opts)
	if err != nil {
		t.Fatal(err)
	}

	const tolerance = 20
	h := src.Rect.Dy()
	for y := h / 4; y < 3*h/4; y++ {
		for x := 0; x < src.Rect.Dx(); x++ {
			i := src.PixOffset(x, y)
			if pano.Pix[i+3] != 0xff {
				t.Fatalf("alpha at (%d,%d) should be opaque", x, y)
			}
			for c := 0; c < 3; c++ {
				diff := int(pano.Pix[i+c]) - int(src.Pix[i+c])
				if diff < -tolerance || diff > tolerance {
					t.Fatalf("pixel (%d,%d) channel %d drifted by %d", x, y, c, diff)
				}
			}
		}
	}
}
