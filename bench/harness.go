package bench

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Result collects the timings of one harness run.
type Result struct {
	RunID   string
	Started time.Time
	Elapsed time.Duration
	Matrix  Matrix
	Images  int
	Errors  []*ImageError

	series map[Key]*TimingSeries
}

// NewResult creates an empty series for every cell of m.
func NewResult(m Matrix) *Result {
	r := &Result{
		RunID:  uuid.NewString(),
		Matrix: m,
		series: make(map[Key]*TimingSeries),
	}
	for _, c := range m.Cells() {
		r.series[c.Key()] = &TimingSeries{Key: c.Key()}
	}
	return r
}

// Series returns the series of k, or nil if k is not part of the matrix.
func (r *Result) Series(k Key) *TimingSeries {
	return r.series[k]
}

// AllSeries returns every series in matrix order.
func (r *Result) AllSeries() []*TimingSeries {
	out := make([]*TimingSeries, 0, len(r.series))
	for _, c := range r.Matrix.Cells() {
		out = append(out, r.series[c.Key()])
	}
	return out
}

// Observations returns the total number of recorded timings.
func (r *Result) Observations() int {
	var n int
	for _, s := range r.series {
		n += len(s.Times)
	}
	return n
}

func (r *Result) filter(match func(Key) bool) []*TimingSeries {
	var out []*TimingSeries
	for _, s := range r.AllSeries() {
		if match(s.Key) {
			out = append(out, s)
		}
	}
	return out
}

// ByFormat aggregates all operations encoded to the named format.
func (r *Result) ByFormat(name string) Rollup {
	return rollup(name, r.filter(func(k Key) bool { return k.Format == name }))
}

// ByOperation aggregates all formats of the named operation.
func (r *Result) ByOperation(name string) Rollup {
	return rollup(name, r.filter(func(k Key) bool { return k.Operation == name }))
}

// Harness times every matrix cell over a set of source images.
type Harness struct {
	Matrix    Matrix
	OutputDir string
	Verbose   bool
	Log       io.Writer
}

// New returns a harness running DefaultMatrix and writing into outputDir.
func New(outputDir string) *Harness {
	return &Harness{
		Matrix:    DefaultMatrix,
		OutputDir: outputDir,
		Log:       os.Stdout,
	}
}

func (h *Harness) printf(format string, args ...interface{}) {
	if h.Log != nil {
		fmt.Fprintf(h.Log, format, args...)
	}
}

// Run benchmarks every file. An invalid matrix or an output directory that
// cannot be created aborts the run before any image is touched; failures of
// individual images are recorded in the result and skipped.
func (h *Harness) Run(files []string) (*Result, error) {
	if err := h.Matrix.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(h.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("unable to create output directory: %w", err)
	}

	res := NewResult(h.Matrix)
	res.Started = time.Now()

	for i, path := range files {
		name := filepath.Base(path)
		if h.Verbose {
			h.printf("\n[%d/%d] %s\n", i+1, len(files), name)
		} else {
			h.printf("  Processing %d/%d: %s... ", i+1, len(files), name)
		}

		if err := h.process(path, res); err != nil {
			res.Errors = append(res.Errors, err)
			h.printf("error: %v\n", err.Err)
			continue
		}
		res.Images++
		if !h.Verbose {
			h.printf("done\n")
		}
	}
	res.Elapsed = time.Since(res.Started)

	return res, nil
}

func (h *Harness) process(path string, res *Result) *ImageError {
	img, err := Load(path)
	if err != nil {
		return &ImageError{Path: path, Err: err}
	}
	if h.Verbose {
		h.printf("  Source: %s (%dx%d)\n", filepath.Base(path), img.Bounds().Dx(), img.Bounds().Dy())
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	times, err := h.RunMatrix(img, stem)

	// Cells finished before a failure are still valid measurements.
	for _, c := range h.Matrix.Cells() {
		if ms, ok := times[c.Key()]; ok {
			res.series[c.Key()].Add(ms)
		}
	}
	if err != nil {
		return &ImageError{Path: path, Err: err}
	}
	return nil
}

// RunMatrix resizes and encodes img for every cell, writing the outputs as
// <stem>_<operation><ext>. Each duration spans resize, encode and write. It
// stops at the first failing cell and returns the durations gathered so far.
func (h *Harness) RunMatrix(img image.Image, stem string) (map[Key]float64, error) {
	times := make(map[Key]float64)

	for _, c := range h.Matrix.Cells() {
		out := filepath.Join(h.OutputDir, stem+"_"+c.Operation.Name+c.Format.Ext)

		start := time.Now()
		if err := writeCell(img, c, out); err != nil {
			return times, fmt.Errorf("%s %s: %w", c.Operation.Name, c.Format.Name, err)
		}
		elapsed := float64(time.Since(start)) / float64(time.Millisecond)

		times[c.Key()] = elapsed
		if h.Verbose {
			h.printf("    %-10s %-5s: %8.2f ms\n", c.Operation.Name, c.Format.Name, elapsed)
		}
	}
	return times, nil
}

func writeCell(img image.Image, c Cell, path string) error {
	resized := Fit(img, c.MaxEdge)

	fq, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.Format.Encode(fq, resized, c.Quality); err != nil {
		fq.Close()
		return err
	}
	return fq.Close()
}
