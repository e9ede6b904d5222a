package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/nimbus01/meshbench/bench"
	"github.com/nimbus01/meshbench/utils"
)

const usage = `Benchmark resizing images to thumbnail and display sizes in JPEG and WebP.

Resize parameters:
	Display:   %dpx max dimension, quality %d
	Thumbnail: %dpx max dimension, quality %d

Examples:
	imgbench -in ./sample_input/24mp
	imgbench -in ./sample_input/48mp -out ./results -v -keep

Options:
`

var (
	// Flags
	source      = flag.String("in", "", "Input directory containing images to process")
	destination = flag.String("out", "sample_output", "Output directory for resized images")
	verbose     = flag.Bool("v", false, "Show timing for each individual image")
	keepOutput  = flag.Bool("keep", false, "Keep output files after benchmarking")
	jsonPath    = flag.String("json", "", "Also write the results as JSON to this file")
	redisAddr   = flag.String("redis", "", "Publish the results to the Redis server at this address")
	stream      = flag.String("stream", bench.DefaultStream, "Redis stream the results are published to")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage,
			bench.DisplayMaxSize, bench.DisplayQuality, bench.ThumbnailMaxSize, bench.ThumbnailQuality)
		flag.PrintDefaults()
	}
	flag.Parse()

	if len(*source) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	input, err := filepath.Abs(*source)
	if err != nil {
		log.Fatalf("Unable to get absolute path: %v", err)
	}
	output, err := filepath.Abs(*destination)
	if err != nil {
		log.Fatalf("Unable to get absolute path: %v", err)
	}

	files, err := bench.EnumerateInputs(input)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	fmt.Println("Image Processing Benchmark")
	fmt.Println("==========================")
	fmt.Printf("Input directory: %s\n", input)
	fmt.Printf("Output directory: %s\n", output)
	fmt.Printf("Images to process: %d\n", len(files))
	fmt.Println("\nResize parameters:")
	for _, op := range bench.DefaultMatrix.Operations {
		fmt.Printf("  %-10s %dpx, quality %d\n", op.Name+":", op.MaxEdge, op.Quality)
	}
	fmt.Println("\nProcessing images...")

	h := bench.New(output)
	h.Verbose = *verbose

	res, err := h.Run(files)
	if err != nil {
		var cfgErr *bench.ConfigError
		if errors.As(err, &cfgErr) {
			log.Fatalf("Error: %v", err)
		}
		log.Fatalf("Benchmark aborted: %v", err)
	}

	bench.WriteReport(os.Stdout, res)
	if len(res.Errors) > 0 {
		fmt.Println(utils.Colorize(fmt.Sprintf("%d of %d images failed", len(res.Errors), len(files)), utils.ErrorColor))
	}

	publish(res)
	cleanup(output)
}

func publish(res *bench.Result) {
	rec := res.Record()

	if len(*jsonPath) > 0 {
		if err := bench.WriteJSON(*jsonPath, rec); err != nil {
			log.Printf("Unable to write %s: %v", *jsonPath, err)
		} else {
			fmt.Printf("\nResults saved as: %s\n", *jsonPath)
		}
	}

	if len(*redisAddr) > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		p, err := bench.NewRedisPublisher(ctx, *redisAddr, *stream)
		if err != nil {
			log.Printf("Unable to publish results: %v", err)
			return
		}
		defer p.Close()

		id, err := p.Publish(ctx, rec)
		if err != nil {
			log.Printf("Unable to publish results: %v", err)
			return
		}
		fmt.Printf("\nResults published to %s as %s\n", *stream, id)
	}
}

func cleanup(output string) {
	if *keepOutput {
		fmt.Printf("\nOutput files kept in: %s\n", output)
		return
	}
	fmt.Println("\nCleaning up output files...")
	if err := bench.Teardown(output, false); err != nil {
		log.Printf("Warning: %v", err)
	}
}
