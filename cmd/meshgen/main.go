package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/nimbus01/meshbench"
	"github.com/nimbus01/meshbench/utils"
)

const usage = `Generate test images for profiling image processing performance.

Available presets (all 3:2 aspect ratio):
%s
Examples:
	meshgen -preset 24mp
	meshgen -preset 48mp -num 5 -quality 90
	meshgen -preset all

Options:
`

var (
	// Flags
	preset  = flag.String("preset", "", "Image size preset to generate, or \"all\"")
	output  = flag.String("out", "sample_input", "Output directory")
	num     = flag.Int("num", 10, "Number of images to generate per preset")
	quality = flag.Int("quality", 95, "JPEG quality 1-100")
	style   = flag.String("style", "mesh", "Image style: mesh or gradient")
	seed    = flag.Int64("seed", 0, "Random seed, 0 picks one from the clock")
	prefix  = flag.String("prefix", "test", "File name prefix")
)

func main() {
	flag.Usage = func() {
		var presets strings.Builder
		for _, p := range meshbench.Presets {
			fmt.Fprintf(&presets, "\t%-5s - %d x %d pixels\n", p.Label, p.Width, p.Height)
		}
		fmt.Fprintf(flag.CommandLine.Output(), usage, presets.String())
		flag.PrintDefaults()
	}
	flag.Parse()

	if len(*preset) == 0 {
		flag.Usage()
		os.Exit(2)
	}
	presets, err := meshbench.LookupPreset(*preset)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	if err := meshbench.ValidateQuality(*quality); err != nil {
		log.Fatalf("Error: %v", err)
	}
	if *style != "mesh" && *style != "gradient" {
		log.Fatalf("Error: unknown style %q", *style)
	}
	if *num < 1 {
		log.Fatalf("Error: the number of images must be positive")
	}

	g := meshbench.NewGenerator(*seed)
	for _, p := range presets {
		if err := generate(g, p); err != nil {
			log.Fatalf("Error: %v", err)
		}
		fmt.Println()
	}
}

func generate(g *meshbench.Generator, p meshbench.Preset) error {
	dir := filepath.Join(*output, p.Label)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	fmt.Printf("Generating %d images at %dx%d (%s)...\n", *num, p.Width, p.Height, p.Label)
	fmt.Printf("Output directory: %s\n", dir)

	start := time.Now()
	opts := options{dir: dir, prefix: *prefix, style: *style, quality: *quality}
	for i := 1; i <= *num; i++ {
		s := utils.NewSpinner()
		s.Start(fmt.Sprintf("  Generating image %d/%d...", i, *num))

		path, err := render(g, p, i, opts)
		s.Stop()
		if err != nil {
			return err
		}

		fs, err := os.Stat(path)
		if err != nil {
			return err
		}
		fmt.Printf("  Generating image %d/%d... saved %s (%s) %s\n",
			i, *num, filepath.Base(path), utils.FormatSize(fs.Size()), utils.Colorize("✓", utils.SuccessColor))
	}
	fmt.Printf("Done! Generated %d images in %s (%s)\n", *num, dir, utils.FormatTime(time.Since(start)))

	return nil
}

type options struct {
	dir     string
	prefix  string
	style   string
	quality int
}

// render produces the index-th captioned image of preset p and saves it as a
// JPEG inside opts.dir. It returns the path of the written file.
func render(g *meshbench.Generator, p meshbench.Preset, index int, opts options) (string, error) {
	var (
		img *image.RGBA
		err error
	)
	if opts.style == "gradient" {
		img, err = g.Gradient(p.Width, p.Height)
	} else {
		img, err = g.Generate(p.Width, p.Height)
	}
	if err != nil {
		return "", err
	}
	img = meshbench.Caption(img, index, p.Label, meshbench.DefaultFonts)

	name := meshbench.FileName(opts.prefix, p.Label, index, "jpg")
	path := filepath.Join(opts.dir, name)
	if err := imaging.Save(img, path, imaging.JPEGQuality(opts.quality)); err != nil {
		return "", fmt.Errorf("unable to save %s: %w", name, err)
	}
	return path, nil
}
