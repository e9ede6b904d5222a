/*
Package meshbench synthesizes procedurally generated raster images used as
input for image processing benchmarks.

An image is built by scattering random points over the canvas, joining them
with a Delaunay triangulation and painting every triangle with a noisy color
picked from a random palette. The resulting mesh always covers the whole
canvas, and its density grows with the image size.

The package provides a command line utility to generate whole sets of images:

	$ meshgen -preset 24mp -num 5 -quality 90

Example to generate a captioned image:

	package main

	import (
		"log"

		"github.com/disintegration/imaging"
		"github.com/nimbus01/meshbench"
	)

	func main() {
		g := meshbench.NewGenerator(42)

		img, err := g.Generate(3000, 2000)
		if err != nil {
			log.Fatal(err)
		}
		img = meshbench.Caption(img, 1, "6mp", meshbench.DefaultFonts)

		if err := imaging.Save(img, "test_6mp_01.jpg", imaging.JPEGQuality(95)); err != nil {
			log.Fatal(err)
		}
	}

The timing side lives in the bench package.
*/
package meshbench
