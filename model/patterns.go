package model

import (
	"sort"

	"github.com/pkg/errors"
)

var patterns = map[string][]string{
	"glider": {
		"o x o",
		"o o x",
		"x x x",
	},
	"blinker": {
		"x x x",
	},
	"block": {
		"x x",
		"x x",
	},
	"beacon": {
		"x x o o",
		"x x o o",
		"o o x x",
		"o o x x",
	},
}

// Pattern returns the named seed pattern as a grid of its own bounding box.
func Pattern(name string) (*Grid, error) {
	lines, ok := patterns[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[Pattern] %q", name)
	}
	return FromText(lines)
}

// PatternNames lists the known patterns in alphabetical order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
