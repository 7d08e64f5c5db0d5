package libio_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/rotorliu/PanoramaToCubemap/libio"
)

type testHeader struct {
	Check uint32
	Size  uint32
}

func TestBinaryRoundTrip(t *testing.T) {
	buf := new(bytes.Buffer)

	bw := &libio.BinaryWriter{Dst: buf, Order: binary.LittleEndian}
	in := testHeader{Check: 0xdeadbeef, Size: 128}
	if !bw.WriteRef(&in) {
		t.Fatal(bw.Err)
	}
	if !bw.WriteBytes([]byte{1, 2, 3}) {
		t.Fatal(bw.Err)
	}

	br := &libio.BinaryReader{Src: buf, Order: binary.LittleEndian}
	var out testHeader
	if !br.ReadRef(&out) {
		t.Fatal(br.Err)
	}
	if out != in {
		t.Errorf("round trip should yield %+v but yielded %+v", in, out)
	}
	if br.Index != 8 {
		t.Errorf("reader index should be 8 but is %d", br.Index)
	}
}

func TestBinaryReaderSticksOnError(t *testing.T) {
	br := &libio.BinaryReader{Src: bytes.NewReader(nil), Order: binary.LittleEndian}

	var out testHeader
	if br.ReadRef(&out) {
		t.Fatal("read from an empty source should fail")
	}
	if br.Err == nil {
		t.Fatal("the error must be recorded")
	}

	err := br.Err
	if br.ReadRef(&out) || br.Err != err {
		t.Error("further reads must keep the first error")
	}
}
