package cubemap

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"

	"github.com/rotorliu/PanoramaToCubemap/libio"
)

type EncodeContext struct {
	Compression CubeMapCompression
	Writer      io.Writer
}

type EncodeOption func(ctx *EncodeContext) error

// OptCompress wraps the pixel stream in lz4 at the given level, 0 (fast) to
// 9 (high). Negative levels disable compression.
func OptCompress(level int) EncodeOption {
	levels := []lz4.CompressionLevel{lz4.Fast, lz4.Level1, lz4.Level2, lz4.Level3, lz4.Level4, lz4.Level5, lz4.Level6, lz4.Level7, lz4.Level8, lz4.Level9}
	if level < 0 {
		return nil
	}

	if level >= len(levels) {
		level = len(levels) - 1
	}

	return func(ctx *EncodeContext) error {
		if ctx.Compression != CubeMapCompressionNone {
			return fmt.Errorf("compression already configured")
		}
		lzw := lz4.NewWriter(ctx.Writer)
		lzw.Apply(lz4.CompressionLevelOption(levels[level]))
		if level == 0 {
			ctx.Compression = CubeMapCompressionLZ4Fast
		} else {
			ctx.Compression = CubeMapCompressionLZ4
		}
		ctx.Writer = lzw
		return nil
	}
}

// EncodeCubeMap writes the cube map container: a little-endian header
// followed by the raw face pixels, optionally lz4 compressed.
func EncodeCubeMap(w io.Writer, cube *CubeMap, options ...EncodeOption) (err error) {
	var bw *libio.BinaryWriter
	var ok bool

	if bw, ok = w.(*libio.BinaryWriter); !ok {
		bw = &libio.BinaryWriter{
			Dst:   w,
			Order: binary.LittleEndian,
		}

		defer func() {
			if bw.Err != nil {
				if err == nil {
					err = bw.Err
				} else {
					err = fmt.Errorf("%v: %w", err, bw.Err)
				}
			}
		}()
	}

	ctx := EncodeContext{
		Writer: bw.Dst,
	}

	for _, opt := range options {
		if opt != nil {
			err = opt(&ctx)
			if err != nil {
				return err
			}
		}
	}

	header := CubeMapHeader{
		Check:       MagicNumberCUBEMAP,
		Version:     CubeMapVersion1_000_000,
		Compression: ctx.Compression,
		Size:        uint32(cube.Size),
	}
	if !bw.WriteRef(&header) {
		return fmt.Errorf("could not write cube map header: %w", bw.Err)
	}

	if _, err := ctx.Writer.Write(cube.Concat()); err != nil {
		return fmt.Errorf("could not write cube map pixels: %w", err)
	}

	if closer, ok := (ctx.Writer).(io.WriteCloser); ok {
		err = closer.Close()
		if err != nil {
			return err
		}
	}

	return nil
}
