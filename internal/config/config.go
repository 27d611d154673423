package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/trajopt/internal/boundary"
)

type Config struct {
	Phase       string             `yaml:"phase"`
	Constraints []ConstraintConfig `yaml:"constraints"`
}

// Bound is a constraint bound in YAML: either a bare scalar or a sequence
// of per-element values.
type Bound []float64

func (b *Bound) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v float64
		if err := node.Decode(&v); err != nil {
			return err
		}
		*b = Bound{v}
		return nil
	case yaml.SequenceNode:
		var vs []float64
		if err := node.Decode(&vs); err != nil {
			return err
		}
		*b = Bound(vs)
		return nil
	default:
		return fmt.Errorf("bound must be a number or a sequence of numbers")
	}
}

func (b Bound) MarshalYAML() (interface{}, error) {
	if len(b) == 1 {
		return b[0], nil
	}
	return []float64(b), nil
}

// ConstraintConfig is the YAML form of one boundary constraint
// declaration. Optional numeric fields are pointers or nil-able slices so
// an absent key stays distinguishable from zero.
type ConstraintConfig struct {
	Name   string    `yaml:"name"`
	Loc    string    `yaml:"loc"`
	Shape  []int     `yaml:"shape,flow,omitempty"`
	Units  string    `yaml:"units,omitempty"`
	Desc   string    `yaml:"desc,omitempty"`
	Lower  Bound     `yaml:"lower,omitempty"`
	Upper  Bound     `yaml:"upper,omitempty"`
	Equals Bound     `yaml:"equals,omitempty"`
	Scaler *float64  `yaml:"scaler,omitempty"`
	Adder  *float64  `yaml:"adder,omitempty"`
	Ref    *float64  `yaml:"ref,omitempty"`
	Ref0   *float64  `yaml:"ref0,omitempty"`
	Linear bool      `yaml:"linear,omitempty"`
	Value  []float64 `yaml:"value,flow,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Phase: "phase0",
		Constraints: []ConstraintConfig{
			{Name: "h", Loc: "final", Shape: []int{1}, Units: "m", Equals: Bound{20000}},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Phase == "" {
		cfg.Phase = "phase0"
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ToSpec converts one YAML entry into its location and constraint spec.
func (c ConstraintConfig) ToSpec() (boundary.Loc, boundary.ConstraintSpec, error) {
	loc := boundary.Loc(c.Loc)
	if !loc.Valid() {
		return "", boundary.ConstraintSpec{}, fmt.Errorf("constraint %q: %w: got %q", c.Name, boundary.ErrBadLoc, c.Loc)
	}

	spec := boundary.DefaultSpec(c.Name)
	if c.Shape != nil {
		spec.Shape = c.Shape
	}
	spec.Units = c.Units
	spec.Desc = c.Desc
	spec.Lower = []float64(c.Lower)
	spec.Upper = []float64(c.Upper)
	spec.Equals = []float64(c.Equals)
	spec.Scaler = c.Scaler
	spec.Adder = c.Adder
	if c.Ref != nil {
		spec.Ref = *c.Ref
	}
	if c.Ref0 != nil {
		spec.Ref0 = *c.Ref0
	}
	spec.Linear = c.Linear
	return loc, spec, nil
}

func f(v float64) *float64 { return &v }
