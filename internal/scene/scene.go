// Package scene loads sets of curves, and the solver settings to compare
// them with, from TOML or YAML files.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/splinekit/curve3"
	"gopkg.in/yaml.v3"
)

// Curve kinds.
const (
	KindLine       = "line"
	KindPolyline   = "polyline"
	KindCatmullRom = "catmull-rom"
	KindBezier     = "bezier"
	KindCircle     = "circle"
)

// Default solver settings.
const (
	DefaultStepsPer100Units = 100
	DefaultPrecision        = 8
)

// ErrInvalid is wrapped by all validation errors.
var ErrInvalid = errors.New("invalid scene")

type Scene struct {
	Solver Solver  `toml:"solver" yaml:"solver"`
	Curves []Curve `toml:"curve" yaml:"curves"`
}

type Solver struct {
	StepsPer100Units float32 `toml:"steps_per_100_units" yaml:"steps_per_100_units"`
	Precision        int     `toml:"precision" yaml:"precision"`
	// Workers bounds the number of pairs solved concurrently. Zero means
	// one per CPU.
	Workers int `toml:"workers" yaml:"workers"`
	// Resolution is the distance map resolution of curves that don't set
	// their own.
	Resolution float32 `toml:"resolution" yaml:"resolution"`
}

type Curve struct {
	Name string `toml:"name" yaml:"name"`
	Kind string `toml:"kind" yaml:"kind"`
	Loop bool   `toml:"loop" yaml:"loop"`
	// Points are the control points of all kinds but circles, as [x, y, z]
	// triples.
	Points [][]float32 `toml:"points" yaml:"points"`

	Center []float32 `toml:"center" yaml:"center"`
	Radius float32   `toml:"radius" yaml:"radius"`
	Normal []float32 `toml:"normal" yaml:"normal"`

	Resolution float32 `toml:"resolution" yaml:"resolution"`
}

// Load reads a scene file. The format is chosen by the file's extension:
// .toml, or .yaml and .yml. Unknown fields are rejected. Defaults are
// applied and the result is validated.
func Load(path string) (Scene, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, err
	}
	s, err := Decode(bytes.NewReader(b), filepath.Ext(path))
	if err != nil {
		return Scene{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode decodes a scene in the given format, which is a file extension
// with or without its leading dot.
func Decode(r io.Reader, format string) (Scene, error) {
	var s Scene
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "toml":
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return Scene{}, err
		}
	case "yaml", "yml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return Scene{}, err
		}
	default:
		return Scene{}, fmt.Errorf("unsupported scene format %q", format)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return Scene{}, err
	}
	return s, nil
}

func (s *Scene) applyDefaults() {
	if s.Solver.StepsPer100Units == 0 {
		s.Solver.StepsPer100Units = DefaultStepsPer100Units
	}
	if s.Solver.Precision == 0 {
		s.Solver.Precision = DefaultPrecision
	}
	if s.Solver.Resolution == 0 {
		s.Solver.Resolution = curve3.DefaultResolution
	}
}

// Validate checks the solver settings and the curves' names, kinds and
// control points. It doesn't build the curves, so degenerate geometry is
// only detected by [Scene.Handles].
func (s Scene) Validate() error {
	switch {
	case !(s.Solver.StepsPer100Units > 0):
		return fmt.Errorf("%w: steps_per_100_units %g is not positive", ErrInvalid, s.Solver.StepsPer100Units)
	case s.Solver.Precision < 1:
		return fmt.Errorf("%w: precision %d is less than 1", ErrInvalid, s.Solver.Precision)
	case s.Solver.Workers < 0:
		return fmt.Errorf("%w: workers %d is negative", ErrInvalid, s.Solver.Workers)
	case !(s.Solver.Resolution > 0 && s.Solver.Resolution <= 1):
		return fmt.Errorf("%w: resolution %g not in (0, 1]", ErrInvalid, s.Solver.Resolution)
	}
	seen := make(map[string]bool, len(s.Curves))
	for i, c := range s.Curves {
		if c.Name == "" {
			return fmt.Errorf("%w: curve %d has no name", ErrInvalid, i)
		}
		if seen[c.Name] {
			return fmt.Errorf("%w: duplicate curve name %q", ErrInvalid, c.Name)
		}
		seen[c.Name] = true
		if err := c.validate(); err != nil {
			return fmt.Errorf("%w: curve %q: %w", ErrInvalid, c.Name, err)
		}
	}
	return nil
}

func (c Curve) validate() error {
	for i, p := range c.Points {
		if len(p) != 3 {
			return fmt.Errorf("point %d has %d coordinates, want 3", i, len(p))
		}
	}
	if c.Resolution < 0 || c.Resolution > 1 {
		return fmt.Errorf("resolution %g not in (0, 1]", c.Resolution)
	}
	switch c.Kind {
	case KindLine:
		if len(c.Points) != 2 {
			return fmt.Errorf("a line needs 2 points, got %d", len(c.Points))
		}
		if c.Loop {
			return errors.New("a line can't loop")
		}
	case KindPolyline, KindCatmullRom, KindBezier:
		if len(c.Points) < 2 {
			return fmt.Errorf("a %s needs at least 2 points, got %d", c.Kind, len(c.Points))
		}
	case KindCircle:
		if len(c.Center) != 3 {
			return fmt.Errorf("circle center has %d coordinates, want 3", len(c.Center))
		}
		if c.Normal != nil && len(c.Normal) != 3 {
			return fmt.Errorf("circle normal has %d coordinates, want 3", len(c.Normal))
		}
		if !(c.Radius > 0) {
			return fmt.Errorf("circle radius %g is not positive", c.Radius)
		}
	default:
		return fmt.Errorf("unknown kind %q", c.Kind)
	}
	return nil
}

// Evaluator builds the curve's geometry. The curve must be valid.
func (c Curve) Evaluator() (curve3.Evaluator, error) {
	pts := make([]curve3.Point, len(c.Points))
	for i, p := range c.Points {
		pts[i] = curve3.Pt(p[0], p[1], p[2])
	}
	switch c.Kind {
	case KindLine:
		return curve3.Line{P0: pts[0], P1: pts[1]}, nil
	case KindPolyline:
		return curve3.Polyline(pts, c.Loop)
	case KindCatmullRom:
		return curve3.CatmullRom(pts, c.Loop)
	case KindBezier:
		return curve3.BezierSpline(pts, c.Loop)
	case KindCircle:
		circle := curve3.Circle{
			Center: curve3.Pt(c.Center[0], c.Center[1], c.Center[2]),
			Radius: c.Radius,
			Normal: curve3.Vec(0, 0, 1),
		}
		if c.Normal != nil {
			circle.Normal = curve3.Vec(c.Normal[0], c.Normal[1], c.Normal[2])
		}
		return circle, nil
	default:
		return nil, fmt.Errorf("unknown kind %q", c.Kind)
	}
}

// looping reports whether the curve is closed. Circles always are.
func (c Curve) looping() bool {
	return c.Loop || c.Kind == KindCircle
}

// Handles builds and measures all curves, in order.
func (s Scene) Handles() ([]curve3.Handle, error) {
	out := make([]curve3.Handle, len(s.Curves))
	for i, c := range s.Curves {
		e, err := c.Evaluator()
		if err != nil {
			return nil, fmt.Errorf("curve %q: %w", c.Name, err)
		}
		res := c.Resolution
		if res == 0 {
			res = s.Solver.Resolution
		}
		h, err := curve3.NewHandle(e, c.looping(), res)
		if err != nil {
			return nil, fmt.Errorf("curve %q: %w", c.Name, err)
		}
		out[i] = h
	}
	return out, nil
}

// Options returns the solver options described by the scene.
func (s Scene) Options() curve3.NearestOptions {
	return curve3.NearestOptions{
		StepsPer100Units: s.Solver.StepsPer100Units,
		Precision:        s.Solver.Precision,
	}
}

// Index returns the index of the curve with the given name, or -1.
func (s Scene) Index(name string) int {
	for i, c := range s.Curves {
		if c.Name == name {
			return i
		}
	}
	return -1
}
