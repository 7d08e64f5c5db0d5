package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/rotorliu/PanoramaToCubemap/cubemap"
)

type equirectArgs struct {
	commonArgs
	size   size
	rot    float64
	filter string
}

func createEquirectCommand() *command {

	args := equirectArgs{
		commonArgs: commonArgs{
			ext:    ".png",
			suffix: "_pano",
		},
		size: size{
			unit:    unitPercent,
			percent: 100,
		},
		filter: "linear",
	}

	flags := flag.NewFlagSet("equirect", flag.ExitOnError)

	registerCommonFlags(flags, &args.commonArgs)
	flags.Var(&args.size, "size", "the panorama width, either % of the natural width (4 face sides) or absolute px")
	flags.Var(&args.size, "s", "shorthand for size")
	flags.Float64Var(&args.rot, "rot", args.rot, "rotation around the vertical axis in degrees")
	flags.StringVar(&args.filter, "filter", args.filter, "the sampling filter; linear or nearest (anything else samples nearest)")

	return &command{
		Name: "equirect",
		Help: "project cube map containers back to equirectangular panoramas",
		Run: func(self *command) {
			if self.Flags.NArg() < 1 {
				printCommandUsage(self, " file-glob...")
			}
			setCommonArgs(&args.commonArgs)

			runEquirect(args, gatherInputFiles(self.Flags.Args()))
		},
		Flags: flags,
	}
}

func runEquirect(args equirectArgs, inputFiles []string) {
	success := 0
	start := time.Now()
	for i, p := range inputFiles {
		if !cargs.quiet {
			fmt.Printf("Processing file %d/%d %q ...\n", i+1, len(inputFiles), filepath.ToSlash(filepath.Clean(p)))
		}
		err := equirectFile(args, p)
		softerr(err)
		if err == nil {
			success++
		}
	}
	if !cargs.quiet {
		took := float32(time.Since(start).Milliseconds()) / 1000
		fmt.Printf("Projected %d/%d files in %.3f seconds\n", success, len(inputFiles), took)
	}
}

func equirectFile(args equirectArgs, p string) error {
	inFile, err := os.Open(p)
	if err != nil {
		return err
	}
	defer close(inFile)

	cube, err := cubemap.DecodeCubeMap(inFile)
	if err != nil {
		return err
	}

	opts := cubemap.Options{
		Rotation: args.rot * math.Pi / 180,
		Filter:   cubemap.ParseInterpolation(args.filter),
	}

	width := args.size.Calc(cube.Size * 4)
	pano, err := cubemap.RenderEquirect(cube, width, opts)
	if err != nil {
		return err
	}

	if !cargs.quiet {
		fmt.Printf("Rendered %dx%d panorama ...\n", pano.Rect.Dx(), pano.Rect.Dy())
	}

	return saveImage(outFilename(p, cargs.suffix, cargs.ext), pano)
}
