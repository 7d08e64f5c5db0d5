package cubemap

import (
	"math"

	"github.com/rotorliu/PanoramaToCubemap/libio"
)

// Interpolation selects the filter used to resolve fractional source
// coordinates.
type Interpolation int

const (
	InterpNearest = Interpolation(iota)
	InterpLinear
	// InterpCubic and InterpLanczos are reserved and not implemented; they
	// sample as nearest-neighbor.
	InterpCubic
	InterpLanczos
)

// ParseInterpolation maps "linear" to InterpLinear. Every other name,
// including "nearest", selects nearest-neighbor sampling.
func ParseInterpolation(name string) Interpolation {
	if name == "linear" {
		return InterpLinear
	}
	return InterpNearest
}

func (m Interpolation) String() string {
	switch m {
	case InterpLinear:
		return "linear"
	case InterpCubic:
		return "cubic"
	case InterpLanczos:
		return "lanczos"
	}
	return "nearest"
}

// sample writes the 3 color channels at the continuous source coordinate
// (srcX, srcY) into dst at offset. Modes without an implementation fall back
// to nearest-neighbor on purpose; unknown faces are a hard error but unknown
// filters are not.
func sample(src *libio.Rgba, dst []uint8, srcX, srcY float64, offset int, mode Interpolation) {
	switch mode {
	case InterpLinear:
		sampleBilinear(src, dst, srcX, srcY, offset)
	default:
		sampleNearest(src, dst, srcX, srcY, offset)
	}
}

func sampleNearest(src *libio.Rgba, dst []uint8, srcX, srcY float64, offset int) {
	x := clampInt(int(math.Round(srcX)), 0, src.Rect.Dx()-1)
	y := clampInt(int(math.Round(srcY)), 0, src.Rect.Dy()-1)
	i := y*src.Stride + x*4
	copy(dst[offset:offset+3], src.Pix[i:i+3])
}

func sampleBilinear(src *libio.Rgba, dst []uint8, srcX, srcY float64, offset int) {
	w, h := src.Rect.Dx(), src.Rect.Dy()

	xl := math.Floor(srcX)
	yl := math.Floor(srcY)
	// fractional weights before clamping, so that at the image edges the
	// blend degenerates to the clamped corner instead of extrapolating
	xf := srcX - xl
	yf := srcY - yl

	x0 := clampInt(int(xl), 0, w-1)
	x1 := clampInt(int(math.Ceil(srcX)), 0, w-1)
	y0 := clampInt(int(yl), 0, h-1)
	y1 := clampInt(int(math.Ceil(srcY)), 0, h-1)

	o00 := y0*src.Stride + x0*4
	o10 := y0*src.Stride + x1*4
	o01 := y1*src.Stride + x0*4
	o11 := y1*src.Stride + x1*4

	pix := src.Pix
	for c := 0; c < 3; c++ {
		top := (1.0-xf)*float64(pix[o00+c]) + xf*float64(pix[o10+c])
		bottom := (1.0-xf)*float64(pix[o01+c]) + xf*float64(pix[o11+c])
		// rounds up, not to nearest, for output compatibility; the blend of
		// four 255 corners can land just above 255.0 and must saturate
		v := math.Ceil((1.0-yf)*top + yf*bottom)
		if v > 255 {
			v = 255
		}
		dst[offset+c] = uint8(v)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
