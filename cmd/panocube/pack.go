package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rotorliu/PanoramaToCubemap/cubemap"
	"github.com/rotorliu/PanoramaToCubemap/libio"
)

type packArgs struct {
	commonArgs
	renderArgs
	compress int
}

func createPackCommand() *command {

	args := packArgs{
		commonArgs: commonArgs{
			ext: ".cubemap",
		},
		renderArgs: renderArgs{
			size: size{
				unit:    unitPercent,
				percent: 100,
			},
			filter: "linear",
		},
		compress: 2,
	}

	flags := flag.NewFlagSet("pack", flag.ExitOnError)

	registerCommonFlags(flags, &args.commonArgs)
	registerRenderFlags(flags, &args.renderArgs)
	flags.IntVar(&args.compress, "compress", args.compress, "the compression level from 0 (none) to 10 (high)")
	flags.IntVar(&args.compress, "c", args.compress, "shorthand for compress")

	return &command{
		Name: "pack",
		Help: "convert equirectangular panoramas to cube map containers",
		Run: func(self *command) {
			if self.Flags.NArg() < 1 || args.compress < 0 || args.compress > 10 {
				printCommandUsage(self, " file-glob...")
			}
			setCommonArgs(&args.commonArgs)

			runPack(args, gatherInputFiles(self.Flags.Args()))
		},
		Flags: flags,
	}
}

func runPack(args packArgs, inputFiles []string) {
	success := 0
	start := time.Now()
	for i, p := range inputFiles {
		if !cargs.quiet {
			fmt.Printf("Processing file %d/%d %q ...\n", i+1, len(inputFiles), filepath.ToSlash(filepath.Clean(p)))
		}
		err := packFile(args, p)
		softerr(err)
		if err == nil {
			success++
		}
	}
	if !cargs.quiet {
		took := float32(time.Since(start).Milliseconds()) / 1000
		fmt.Printf("Packed %d/%d files in %.3f seconds\n", success, len(inputFiles), took)
	}
}

func packFile(args packArgs, p string) error {
	inFile, err := os.Open(p)
	if err != nil {
		return err
	}
	defer close(inFile)

	src, err := libio.DecodeRgba(inFile)
	if err != nil {
		return err
	}

	opts := renderOptions(args.renderArgs, src.Rect.Dx())

	cube, err := cubemap.Render(src, opts)
	if err != nil {
		return err
	}

	if !cargs.quiet {
		fmt.Printf("Rendered %dx%d cube map ...\n", cube.Size, cube.Size)
	}

	outFilename := outFilename(p, cargs.suffix, cargs.ext)
	outFile, err := os.OpenFile(outFilename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return err
	}
	defer close(outFile)

	err = cubemap.EncodeCubeMap(outFile, cube, cubemap.OptCompress(args.compress-1))
	if err != nil {
		outFile.Close()
		os.Remove(outFilename)
		return err
	}

	return nil
}
