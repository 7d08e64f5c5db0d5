package cubemap

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"

	"github.com/rotorliu/PanoramaToCubemap/libio"
)

// DecodeCubeMap reads a cube map container written by EncodeCubeMap.
func DecodeCubeMap(r io.Reader) (cube *CubeMap, err error) {
	var br *libio.BinaryReader
	var ok bool

	if br, ok = r.(*libio.BinaryReader); !ok {
		br = &libio.BinaryReader{
			Src:   r,
			Order: binary.LittleEndian,
		}

		defer func() {
			if br.Err != nil {
				if err == nil {
					err = br.Err
				} else {
					err = fmt.Errorf("%v: %w", err, br.Err)
				}
			}
		}()
	}

	header := CubeMapHeader{}
	if !br.ReadRef(&header) {
		return nil, fmt.Errorf("expected cube map header; byte 0x%08x", br.LastIndex)
	}

	if header.Check != MagicNumberCUBEMAP {
		return nil, fmt.Errorf("cube map header is corrupt; byte 0x%08x", br.LastIndex)
	}

	if header.Version != CubeMapVersion1_000_000 {
		return nil, fmt.Errorf("cube map version %d unsupported; byte 0x%08x", header.Version, br.LastIndex)
	}

	if header.Size == 0 {
		return nil, fmt.Errorf("cube map face size is zero; byte 0x%08x", br.LastIndex)
	}

	pixr := br.Src
	if header.Compression == CubeMapCompressionLZ4 || header.Compression == CubeMapCompressionLZ4Fast {
		pixr = lz4.NewReader(br.Src)
	} else if header.Compression != CubeMapCompressionNone {
		return nil, fmt.Errorf("cube map compression id %d unsupported; byte 0x%08x", header.Compression, br.LastIndex)
	}

	size := int(header.Size)
	data := make([]uint8, 6*size*size*4)
	_, err = io.ReadFull(pixr, data)
	if err != nil {
		return nil, fmt.Errorf("expected %d pixel bytes: %w", len(data), err)
	}

	return NewCubeMap(data, size), nil
}
