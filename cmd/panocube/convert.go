package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotorliu/PanoramaToCubemap/cubemap"
	"github.com/rotorliu/PanoramaToCubemap/libio"
)

type convertArgs struct {
	commonArgs
	renderArgs
	faces string
}

func createConvertCommand() *command {

	args := convertArgs{
		commonArgs: commonArgs{
			ext: ".png",
		},
		renderArgs: renderArgs{
			size: size{
				unit:    unitPercent,
				percent: 100,
			},
			filter: "linear",
		},
		faces: strings.Join(cubemap.FaceNames(), ","),
	}

	flags := flag.NewFlagSet("convert", flag.ExitOnError)

	registerCommonFlags(flags, &args.commonArgs)
	registerRenderFlags(flags, &args.renderArgs)
	flags.StringVar(&args.faces, "faces", args.faces, "comma-separated face names to render")

	return &command{
		Name: "convert",
		Help: "convert equirectangular panoramas to cube face images",
		Run: func(self *command) {
			if self.Flags.NArg() < 1 {
				printCommandUsage(self, " file-glob...")
			}
			setCommonArgs(&args.commonArgs)

			runConvert(args, gatherInputFiles(self.Flags.Args()))
		},
		Flags: flags,
	}
}

func parseFaceList(s string) ([]cubemap.Face, error) {
	names := strings.Split(s, ",")
	faces := make([]cubemap.Face, 0, len(names))
	for _, name := range names {
		face, err := cubemap.ParseFace(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		faces = append(faces, face)
	}
	return faces, nil
}

func runConvert(args convertArgs, inputFiles []string) {
	faces, err := parseFaceList(args.faces)
	harderr(err)

	success := 0
	start := time.Now()
	for i, p := range inputFiles {
		if !cargs.quiet {
			fmt.Printf("Processing file %d/%d %q ...\n", i+1, len(inputFiles), filepath.ToSlash(filepath.Clean(p)))
		}
		err := convertFile(args, p, faces)
		softerr(err)
		if err == nil {
			success++
		}
	}
	if !cargs.quiet {
		took := float32(time.Since(start).Milliseconds()) / 1000
		fmt.Printf("Converted %d/%d files in %.3f seconds\n", success, len(inputFiles), took)
	}
}

func convertFile(args convertArgs, p string, faces []cubemap.Face) error {
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

	for _, face := range faces {
		img, err := cubemap.RenderFace(src, face, opts)
		if err != nil {
			return err
		}

		if !cargs.quiet {
			fmt.Printf("Rendered %dx%d face %q ...\n", img.Rect.Dx(), img.Rect.Dy(), face)
		}

		outFilename := outFilename(p, "_"+face.String()+cargs.suffix, cargs.ext)
		if err := saveImage(outFilename, img); err != nil {
			return err
		}
	}

	return nil
}

func saveImage(name string, img *libio.Rgba) error {
	outFile, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return err
	}
	defer close(outFile)

	if err := libio.EncodeImage(outFile, img, filepath.Ext(name)); err != nil {
		outFile.Close()
		os.Remove(name)
		return err
	}
	return nil
}
