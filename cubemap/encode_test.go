package cubemap_test

import (
	"bytes"
	"testing"

	"github.com/rotorliu/PanoramaToCubemap/cubemap"
)

func renderTestCube(t testing.TB) *cubemap.CubeMap {
	t.Helper()
	cube, err := cubemap.Render(testdata.pano, cubemap.Options{Filter: cubemap.InterpLinear, MaxWidth: 16})
	if err != nil {
		t.Fatal(err)
	}
	return cube
}

func TestEncodeDecodeCubeMap(t *testing.T) {
	cube := renderTestCube(t)

	for _, level := range []int{-1, 0, 5} {
		buf := new(bytes.Buffer)
		if err := cubemap.EncodeCubeMap(buf, cube, cubemap.OptCompress(level)); err != nil {
			t.Fatalf("encode at level %d: %v", level, err)
		}

		decoded, err := cubemap.DecodeCubeMap(buf)
		if err != nil {
			t.Fatalf("decode at level %d: %v", level, err)
		}
		if decoded.Size != cube.Size {
			t.Errorf("decoded size should be %d but is %d", cube.Size, decoded.Size)
		}
		if !bytes.Equal(decoded.Concat(), cube.Concat()) {
			t.Errorf("decoded pixels differ at level %d", level)
		}
	}
}

func TestDecodeCorruptHeader(t *testing.T) {
	cube := renderTestCube(t)

	buf := new(bytes.Buffer)
	if err := cubemap.EncodeCubeMap(buf, cube); err != nil {
		t.Fatal(err)
	}
	enc := buf.Bytes()

	corrupt := append([]byte{}, enc...)
	corrupt[0] ^= 0xff
	if _, err := cubemap.DecodeCubeMap(bytes.NewReader(corrupt)); err == nil {
		t.Error("corrupt magic number should be rejected")
	}

	future := append([]byte{}, enc...)
	future[4] = 0xff
	if _, err := cubemap.DecodeCubeMap(bytes.NewReader(future)); err == nil {
		t.Error("unknown version should be rejected")
	}

	if _, err := cubemap.DecodeCubeMap(bytes.NewReader(enc[:len(enc)/2])); err == nil {
		t.Error("truncated pixel data should be rejected")
	}
}
