package bench

import "math"

// TimingSeries holds the durations, in milliseconds, observed for one cell.
type TimingSeries struct {
	Key
	Times []float64
}

// Add appends one observation.
func (s *TimingSeries) Add(ms float64) {
	s.Times = append(s.Times, ms)
}

// Stats summarizes a series.
type Stats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"avg_ms"`
	Min    float64 `json:"min_ms"`
	Max    float64 `json:"max_ms"`
	StdDev float64 `json:"stdev_ms"`
}

// Stats computes count, mean, min, max and the sample standard deviation.
// A series with fewer than two observations has no spread and reports 0.
func (s *TimingSeries) Stats() Stats {
	return summarize(s.Times)
}

func summarize(times []float64) Stats {
	st := Stats{Count: len(times)}
	if st.Count == 0 {
		return st
	}

	st.Min, st.Max = times[0], times[0]
	var sum float64
	for _, t := range times {
		sum += t
		st.Min = math.Min(st.Min, t)
		st.Max = math.Max(st.Max, t)
	}
	st.Mean = sum / float64(st.Count)

	if st.Count > 1 {
		var sq float64
		for _, t := range times {
			d := t - st.Mean
			sq += d * d
		}
		st.StdDev = math.Sqrt(sq / float64(st.Count-1))
	}
	return st
}

// Rollup aggregates every series sharing a format or an operation.
type Rollup struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Mean  float64 `json:"avg_ms"`
	Total float64 `json:"total_ms"`
}

func rollup(name string, series []*TimingSeries) Rollup {
	r := Rollup{Name: name}
	for _, s := range series {
		for _, t := range s.Times {
			r.Total += t
			r.Count++
		}
	}
	if r.Count > 0 {
		r.Mean = r.Total / float64(r.Count)
	}
	return r
}
