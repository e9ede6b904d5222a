package utils

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{1500 * time.Millisecond, "1.50s"},
		{90 * time.Second, "1m:30s"},
		{2*time.Hour + 5*time.Minute + 3*time.Second, "2h:5m:3s"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatTime(tt.d))
	}
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "0.0 MB", FormatSize(0))
	assert.Equal(t, "2.5 MB", FormatSize(5*1024*1024/2))
}

func TestSpinner(t *testing.T) {
	var buf bytes.Buffer
	s := &Spinner{out: &buf, enabled: true}

	s.Start("Working...")
	time.Sleep(50 * time.Millisecond)
	s.Stop()
	s.Stop()

	assert.Contains(t, buf.String(), "Working...")
}

func TestSpinnerDisabled(t *testing.T) {
	var buf bytes.Buffer
	s := &Spinner{out: &buf}

	s.Start("Working...")
	s.Stop()

	assert.Empty(t, buf.String())
}
