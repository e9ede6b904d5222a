package meshbench

import (
	"fmt"
	"strings"
)

// Preset is a named image size. All presets use a 3:2 aspect ratio.
type Preset struct {
	Label  string
	Width  int
	Height int
}

// AllPresets selects every preset.
const AllPresets = "all"

// Presets lists the supported sizes from smallest to largest.
var Presets = []Preset{
	{"6mp", 3000, 2000},
	{"12mp", 4243, 2829},
	{"24mp", 6000, 4000},
	{"48mp", 8485, 5657},
	{"96mp", 12000, 8000},
}

// PresetLabels returns the preset labels in order.
func PresetLabels() []string {
	labels := make([]string, len(Presets))
	for i, p := range Presets {
		labels[i] = p.Label
	}
	return labels
}

// LookupPreset resolves a label, or "all", to the presets it selects.
func LookupPreset(label string) ([]Preset, error) {
	if label == AllPresets {
		return Presets, nil
	}
	for _, p := range Presets {
		if p.Label == label {
			return []Preset{p}, nil
		}
	}
	return nil, &ConfigError{
		Field: "preset",
		Msg:   fmt.Sprintf("unknown preset %q, available: %s", label, strings.Join(PresetLabels(), ", ")),
	}
}

// ValidateQuality checks that q is a valid JPEG quality.
func ValidateQuality(q int) error {
	if q < 1 || q > 100 {
		return &ConfigError{Field: "quality", Msg: fmt.Sprintf("%d is not between 1 and 100", q)}
	}
	return nil
}

// FileName returns the deterministic name of the index-th generated image,
// e.g. test_24mp_03.jpg.
func FileName(prefix, label string, index int, ext string) string {
	return fmt.Sprintf("%s_%s_%02d.%s", prefix, label, index, strings.TrimPrefix(ext, "."))
}
