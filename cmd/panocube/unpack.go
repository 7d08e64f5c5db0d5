package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rotorliu/PanoramaToCubemap/cubemap"
)

type unpackArgs struct {
	commonArgs
}

func createUnpackCommand() *command {

	args := unpackArgs{
		commonArgs: commonArgs{
			ext: ".png",
		},
	}

	flags := flag.NewFlagSet("unpack", flag.ExitOnError)

	registerCommonFlags(flags, &args.commonArgs)

	return &command{
		Name: "unpack",
		Help: "extract cube map containers to face images",
		Run: func(self *command) {
			if self.Flags.NArg() < 1 {
				printCommandUsage(self, " file-glob...")
			}
			setCommonArgs(&args.commonArgs)

			runUnpack(args, gatherInputFiles(self.Flags.Args()))
		},
		Flags: flags,
	}
}

func runUnpack(args unpackArgs, inputFiles []string) {
	success := 0
	start := time.Now()
	for i, p := range inputFiles {
		if !cargs.quiet {
			fmt.Printf("Processing file %d/%d %q ...\n", i+1, len(inputFiles), filepath.ToSlash(filepath.Clean(p)))
		}
		err := unpackFile(args, p)
		softerr(err)
		if err == nil {
			success++
		}
	}
	if !cargs.quiet {
		took := float32(time.Since(start).Milliseconds()) / 1000
		fmt.Printf("Unpacked %d/%d files in %.3f seconds\n", success, len(inputFiles), took)
	}
}

func unpackFile(args unpackArgs, p string) error {
	inFile, err := os.Open(p)
	if err != nil {
		return err
	}
	defer close(inFile)

	cube, err := cubemap.DecodeCubeMap(inFile)
	if err != nil {
		return err
	}

	for i, img := range cube.Faces {
		face := cubemap.Face(i)
		outFilename := outFilename(p, "_"+face.String()+cargs.suffix, cargs.ext)
		if err := saveImage(outFilename, img); err != nil {
			return err
		}
	}

	return nil
}
