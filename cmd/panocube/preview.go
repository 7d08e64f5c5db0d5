package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chewxy/math32"

	"github.com/rotorliu/PanoramaToCubemap/cubemap"
	"github.com/rotorliu/PanoramaToCubemap/libio"
)

type previewArgs struct {
	commonArgs
	gamma float64
	scale float64
}

func createPreviewCommand() *command {

	args := previewArgs{
		commonArgs: commonArgs{
			ext: ".png",
		},
		gamma: 1.0,
		scale: 1.0,
	}

	flags := flag.NewFlagSet("preview", flag.ExitOnError)

	registerCommonFlags(flags, &args.commonArgs)

	flags.Float64Var(&args.gamma, "gamma", args.gamma, "gamma correction value")
	flags.Float64Var(&args.scale, "scale", args.scale, "brightness scale factor")

	return &command{
		Name: "preview",
		Help: "render cube map containers to a horizontal cross image",
		Run: func(self *command) {
			if self.Flags.NArg() < 1 {
				printCommandUsage(self, " file-glob...")
			}
			setCommonArgs(&args.commonArgs)

			runPreview(args, gatherInputFiles(self.Flags.Args()))
		},
		Flags: flags,
	}
}

func runPreview(args previewArgs, inputFiles []string) {
	success := 0
	start := time.Now()
	for i, p := range inputFiles {
		if !cargs.quiet {
			fmt.Printf("Processing file %d/%d %q ...\n", i+1, len(inputFiles), filepath.ToSlash(filepath.Clean(p)))
		}
		err := previewFile(args, p)
		softerr(err)
		if err == nil {
			success++
		}
	}
	if !cargs.quiet {
		took := float32(time.Since(start).Milliseconds()) / 1000
		fmt.Printf("Rendered %d/%d files in %.3f seconds\n", success, len(inputFiles), took)
	}
}

// cross holds the cell of each face in the 4x3 layout, face order
// pz, nz, px, nx, py, ny.
var cross = [6][2]int{{1, 1}, {3, 1}, {2, 1}, {0, 1}, {1, 0}, {1, 2}}

func previewFile(args previewArgs, p string) error {
	inFile, err := os.Open(p)
	if err != nil {
		return err
	}
	defer close(inFile)

	cube, err := cubemap.DecodeCubeMap(inFile)
	if err != nil {
		return err
	}

	lut := colorLut(float32(args.gamma), float32(args.scale))

	size := cube.Size
	dst := libio.NewRgba(4*size, 3*size)

	for i, face := range cube.Faces {
		ox, oy := cross[i][0]*size, cross[i][1]*size
		for y := 0; y < size; y++ {
			so := y * face.Stride
			do := (oy+y)*dst.Stride + ox*4
			for x := 0; x < size; x++ {
				dst.Pix[do+x*4+0] = lut[face.Pix[so+x*4+0]]
				dst.Pix[do+x*4+1] = lut[face.Pix[so+x*4+1]]
				dst.Pix[do+x*4+2] = lut[face.Pix[so+x*4+2]]
				dst.Pix[do+x*4+3] = 0xff
			}
		}
	}

	return saveImage(outFilename(p, cargs.suffix, cargs.ext), dst)
}

func colorLut(gamma, scale float32) (lut [256]uint8) {
	for i := range lut {
		v := math32.Pow(float32(i)/255*scale, 1/gamma)
		lut[i] = uint8(math32.Min(v, 1.0)*255 + 0.5)
	}
	return lut
}
