package meshbench

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointCount(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		expected      int
	}{
		{"Tiny", 100, 100, 100},
		{"Single pixel", 1, 1, 100},
		{"Lower bound", 1000, 2000, 100},
		{"6mp", 3000, 2000, 300},
		{"24mp", 6000, 4000, 1200},
		{"96mp", 12000, 8000, 4800},
		{"Upper bound", 20000, 20000, 5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PointCount(tt.width, tt.height))
		})
	}
}

func TestGetPoints(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	points := GetPoints(r, 640, 480)

	assert.Len(t, points, PointCount(640, 480)+8)
	assert.Equal(t, Anchors(640, 480), points[:8])

	for _, p := range points {
		assert.True(t, p.X >= 0 && p.X <= 640 && p.Y >= 0 && p.Y <= 480, "point %v out of bounds", p)
	}
}

func TestAnchors(t *testing.T) {
	anchors := Anchors(6, 4)

	assert.ElementsMatch(t, []Node{
		{0, 0}, {6, 0}, {0, 4}, {6, 4},
		{3, 0}, {3, 4}, {0, 2}, {6, 2},
	}, anchors)
}
