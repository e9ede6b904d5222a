package bench

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats(t *testing.T) {
	tests := []struct {
		name     string
		times    []float64
		expected Stats
	}{
		{"Empty", nil, Stats{}},
		{"Single", []float64{12.5}, Stats{Count: 1, Mean: 12.5, Min: 12.5, Max: 12.5, StdDev: 0}},
		{"Several", []float64{4, 1, 3, 2}, Stats{Count: 4, Mean: 2.5, Min: 1, Max: 4, StdDev: math.Sqrt(5.0 / 3.0)}},
		{"Constant", []float64{7, 7, 7}, Stats{Count: 3, Mean: 7, Min: 7, Max: 7, StdDev: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &TimingSeries{Times: tt.times}
			st := s.Stats()

			assert.Equal(t, tt.expected.Count, st.Count)
			assert.InDelta(t, tt.expected.Mean, st.Mean, 1e-12)
			assert.Equal(t, tt.expected.Min, st.Min)
			assert.Equal(t, tt.expected.Max, st.Max)
			assert.InDelta(t, tt.expected.StdDev, st.StdDev, 1e-12)
			assert.False(t, math.IsNaN(st.StdDev))
		})
	}
}

func TestRollupAdditivity(t *testing.T) {
	r := NewResult(DefaultMatrix)
	r.Series(Key{"thumbnail", "jpeg"}).Add(10)
	r.Series(Key{"thumbnail", "jpeg"}).Add(20)
	r.Series(Key{"display", "jpeg"}).Add(70)
	r.Series(Key{"thumbnail", "webp"}).Add(5)

	jpeg := r.ByFormat("jpeg")
	assert.Equal(t, 3, jpeg.Count)
	assert.Equal(t, 100.0, jpeg.Total)
	assert.InDelta(t, 100.0/3, jpeg.Mean, 1e-12)

	for _, f := range DefaultMatrix.Formats {
		var sum float64
		var count int
		for _, op := range DefaultMatrix.Operations {
			for _, ms := range r.Series(Key{op.Name, f.Name}).Times {
				sum += ms
				count++
			}
		}
		ru := r.ByFormat(f.Name)
		assert.Equal(t, sum, ru.Total, f.Name)
		assert.Equal(t, count, ru.Count, f.Name)
	}

	thumb := r.ByOperation("thumbnail")
	assert.Equal(t, 3, thumb.Count)
	assert.Equal(t, 35.0, thumb.Total)

	display := r.ByOperation("display")
	assert.Equal(t, 1, display.Count)

	webp := r.ByFormat("webp")
	assert.Equal(t, Rollup{Name: "webp", Count: 1, Mean: 5, Total: 5}, webp)

	assert.Equal(t, Rollup{Name: "png"}, r.ByFormat("png"))
	assert.Equal(t, 4, r.Observations())
}

func TestNewResultCreatesEverySeries(t *testing.T) {
	r := NewResult(DefaultMatrix)

	series := r.AllSeries()
	assert.Len(t, series, 4)
	assert.Equal(t, Key{"thumbnail", "jpeg"}, series[0].Key)
	assert.Equal(t, Key{"thumbnail", "webp"}, series[1].Key)
	assert.Equal(t, Key{"display", "jpeg"}, series[2].Key)
	assert.Equal(t, Key{"display", "webp"}, series[3].Key)
	for _, s := range series {
		assert.Empty(t, s.Times)
	}
	assert.Nil(t, r.Series(Key{"thumbnail", "png"}))
	assert.NotEmpty(t, r.RunID)
}
