package bench

import "fmt"

// Operation is a resize target: the longer edge of the output and the
// quality it is encoded at.
type Operation struct {
	Name    string `json:"name"`
	MaxEdge int    `json:"max_edge"`
	Quality int    `json:"quality"`
}

// Key identifies a timing series.
type Key struct {
	Operation string `json:"operation"`
	Format    string `json:"format"`
}

func (k Key) String() string {
	return k.Operation + "_" + k.Format
}

// Cell is one operation encoded to one format.
type Cell struct {
	Operation
	Format Format
}

// Key returns the series key of the cell.
func (c Cell) Key() Key {
	return Key{Operation: c.Operation.Name, Format: c.Format.Name}
}

// Matrix is the set of operations crossed with the set of formats.
type Matrix struct {
	Operations []Operation
	Formats    []Format
}

// Resize parameters.
const (
	ThumbnailMaxSize = 800
	ThumbnailQuality = 80
	DisplayMaxSize   = 3840
	DisplayQuality   = 85
)

// DefaultMatrix benchmarks a thumbnail and a 4K display rendition, each
// saved as JPEG and WebP.
var DefaultMatrix = Matrix{
	Operations: []Operation{
		{Name: "thumbnail", MaxEdge: ThumbnailMaxSize, Quality: ThumbnailQuality},
		{Name: "display", MaxEdge: DisplayMaxSize, Quality: DisplayQuality},
	},
	Formats: []Format{JPEG, WebP},
}

// Cells lists every cell, operations in the outer loop and formats in the inner one.
func (m Matrix) Cells() []Cell {
	cells := make([]Cell, 0, len(m.Operations)*len(m.Formats))
	for _, op := range m.Operations {
		for _, f := range m.Formats {
			cells = append(cells, Cell{Operation: op, Format: f})
		}
	}
	return cells
}

// Validate checks the matrix before any work is done.
func (m Matrix) Validate() error {
	if len(m.Operations) == 0 || len(m.Formats) == 0 {
		return &ConfigError{Field: "matrix", Msg: "no operations or formats"}
	}
	for _, op := range m.Operations {
		if op.Quality < 1 || op.Quality > 100 {
			return &ConfigError{
				Field: "quality",
				Msg:   fmt.Sprintf("%s quality %d is not between 1 and 100", op.Name, op.Quality),
			}
		}
		if op.MaxEdge <= 0 {
			return &ConfigError{
				Field: "max edge",
				Msg:   fmt.Sprintf("%s max edge must be positive, got %d", op.Name, op.MaxEdge),
			}
		}
	}
	for _, f := range m.Formats {
		if _, ok := encoders[f.Name]; !ok {
			return &ConfigError{Field: "format", Msg: fmt.Sprintf("no encoder registered for %q", f.Name)}
		}
	}
	return nil
}
