// Package fixture reads and writes grid search scenarios as YAML documents:
// a grid in text rows plus an origin and a destination.
//
//	name: demo
//	grid:
//	  - "_____"
//	  - "_X___"
//	origin: {row: 0, col: 0}
//	destination: {row: 1, col: 4}
package fixture

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Point is the YAML form of a gridgraph.Cell.
type Point struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Cell converts p to a gridgraph.Cell.
func (p Point) Cell() gridgraph.Cell {
	return gridgraph.Cell{Row: p.Row, Col: p.Col}
}

// PointOf converts a gridgraph.Cell to a Point.
func PointOf(c gridgraph.Cell) Point {
	return Point{Row: c.Row, Col: c.Col}
}

// Fixture is one grid search scenario.
type Fixture struct {
	Name        string   `yaml:"name,omitempty"`
	Grid        []string `yaml:"grid"`
	Origin      Point    `yaml:"origin"`
	Destination Point    `yaml:"destination"`
}

// FromGrid builds a Fixture describing g with the given endpoints.
func FromGrid(name string, g *gridgraph.Grid, origin, destination gridgraph.Cell) *Fixture {
	return &Fixture{
		Name:        name,
		Grid:        g.Strings(),
		Origin:      PointOf(origin),
		Destination: PointOf(destination),
	}
}

// Parse decodes a YAML fixture. The grid itself is validated by Build.
func Parse(data []byte) (*Fixture, error) {
	f := &Fixture{}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, errors.Wrap(err, "failed to decode fixture")
	}
	return f, nil
}

// Load reads and decodes the fixture file at path.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read fixture %s", path)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "fixture %s", path)
	}
	return f, nil
}

// Marshal encodes f as YAML.
func Marshal(f *Fixture) ([]byte, error) {
	data, err := yaml.Marshal(f)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode fixture")
	}
	return data, nil
}

// Save encodes f and writes it to path with 0644 permissions.
func Save(path string, f *Fixture) error {
	data, err := Marshal(f)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write fixture %s", path)
	}
	return nil
}

// Build validates the fixture and returns its grid and endpoints.
// Origin and destination must lie within the grid; whether they are open
// is left to the search, which reports InvalidOrigin or Unreachable.
func (f *Fixture) Build() (*gridgraph.Grid, gridgraph.Cell, gridgraph.Cell, error) {
	g, err := gridgraph.FromStrings(f.Grid)
	if err != nil {
		return nil, gridgraph.Cell{}, gridgraph.Cell{}, errors.Wrapf(err, "fixture %q: invalid grid", f.Name)
	}
	origin, dest := f.Origin.Cell(), f.Destination.Cell()
	if !g.InBounds(origin) {
		return nil, gridgraph.Cell{}, gridgraph.Cell{}, errors.Wrapf(gridgraph.ErrOutOfBounds, "fixture %q: origin %v", f.Name, origin)
	}
	if !g.InBounds(dest) {
		return nil, gridgraph.Cell{}, gridgraph.Cell{}, errors.Wrapf(gridgraph.ErrOutOfBounds, "fixture %q: destination %v", f.Name, dest)
	}
	return g, origin, dest, nil
}
