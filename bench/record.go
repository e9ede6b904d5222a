package bench

import (
	"os"
	"time"

	"github.com/goccy/go-json"
)

// CellRecord is the serialized form of one timing series.
type CellRecord struct {
	Key
	Stats
}

// Record is a machine readable summary of a run.
type Record struct {
	RunID      string       `json:"run_id"`
	Host       string       `json:"host,omitempty"`
	Timestamp  time.Time    `json:"timestamp"`
	Images     int          `json:"images"`
	Operations []Operation  `json:"operations"`
	Formats    []Format     `json:"formats"`
	Cells      []CellRecord `json:"cells"`
	ByFormat   []Rollup     `json:"by_format"`
	ByOp       []Rollup     `json:"by_operation"`
	Errors     []string     `json:"errors,omitempty"`
	ElapsedMS  float64      `json:"elapsed_ms"`
}

// Record builds the serializable summary of r. Unlike the printed report it
// keeps cells without observations.
func (r *Result) Record() *Record {
	host, _ := os.Hostname()
	rec := &Record{
		RunID:      r.RunID,
		Host:       host,
		Timestamp:  r.Started,
		Images:     r.Images,
		Operations: r.Matrix.Operations,
		Formats:    r.Matrix.Formats,
		ElapsedMS:  float64(r.Elapsed) / float64(time.Millisecond),
	}
	for _, s := range r.AllSeries() {
		rec.Cells = append(rec.Cells, CellRecord{Key: s.Key, Stats: s.Stats()})
	}
	for _, f := range r.Matrix.Formats {
		rec.ByFormat = append(rec.ByFormat, r.ByFormat(f.Name))
	}
	for _, op := range r.Matrix.Operations {
		rec.ByOp = append(rec.ByOp, r.ByOperation(op.Name))
	}
	for _, e := range r.Errors {
		rec.Errors = append(rec.Errors, e.Error())
	}
	return rec
}

// WriteJSON saves rec to path as indented JSON.
func WriteJSON(path string, rec *Record) error {
	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
