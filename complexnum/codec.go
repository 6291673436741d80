// SPDX-License-Identifier: MIT

package complexnum

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/complexible/angle"
	"github.com/katalvlaran/complexible/internal/numcodec"
)

// Serialized shapes. YAML and TOML share the same keys:
//
//	impedance: {real: 50, imaginary: -12.5}
//	phasor:    {magnitude: 230, angle: {value: -30, unit: deg}}
//
// A bare number decodes as a real value (Rectangular) or a zero-angle
// magnitude (Polar).
type rectangularTable struct {
	Real      float64 `yaml:"real"`
	Imaginary float64 `yaml:"imaginary"`
}

type polarTable struct {
	Magnitude float64     `yaml:"magnitude"`
	Angle     angle.Angle `yaml:"angle"`
}

// MarshalYAML implements [yaml.Marshaler].
//
// [yaml.Marshaler]: https://pkg.go.dev/gopkg.in/yaml.v3#Marshaler
func (z Rectangular) MarshalYAML() (any, error) {
	return rectangularTable{Real: z.re, Imaginary: z.im}, nil
}

// UnmarshalYAML implements [yaml.Unmarshaler].
//
// [yaml.Unmarshaler]: https://pkg.go.dev/gopkg.in/yaml.v3#Unmarshaler
func (z *Rectangular) UnmarshalYAML(node *yaml.Node) error {
	const tag = "UnmarshalYAML"
	if node.Kind == yaml.ScalarNode {
		var x float64
		if err := node.Decode(&x); err != nil {
			return complexErrorf(tag, err)
		}
		*z = FromReal(x)

		return nil
	}
	var t rectangularTable
	if err := node.Decode(&t); err != nil {
		return complexErrorf(tag, err)
	}
	*z = FromCartesian(t.Real, t.Imaginary)

	return nil
}

// MarshalYAML implements [yaml.Marshaler].
// The stored angle is written as is, unit included.
func (p Polar) MarshalYAML() (any, error) {
	return polarTable{Magnitude: p.mag, Angle: p.arg}, nil
}

// UnmarshalYAML implements [yaml.Unmarshaler].
// A negative magnitude is rejected with ErrDomain.
func (p *Polar) UnmarshalYAML(node *yaml.Node) error {
	const tag = "UnmarshalYAML"
	t := polarTable{}
	if node.Kind == yaml.ScalarNode {
		if err := node.Decode(&t.Magnitude); err != nil {
			return complexErrorf(tag, err)
		}
	} else if err := node.Decode(&t); err != nil {
		return complexErrorf(tag, err)
	}

	return p.setFromTable(tag, t)
}

func (p *Polar) setFromTable(tag string, t polarTable) error {
	if t.Magnitude < 0 {
		return complexErrorf(tag, fmt.Errorf("negative magnitude %v: %w", t.Magnitude, ErrDomain))
	}
	*p = FromPolar(t.Magnitude, t.Angle)

	return nil
}

// MarshalTOML renders z as an inline table { real = 3.0, imaginary = 4.0 }.
func (z Rectangular) MarshalTOML() ([]byte, error) {
	return []byte("{ real = " + numcodec.TOMLFloat(z.re) + ", imaginary = " + numcodec.TOMLFloat(z.im) + " }"), nil
}

// UnmarshalTOML implements the BurntSushi/toml Unmarshaler interface.
// Missing keys default to 0.
func (z *Rectangular) UnmarshalTOML(data any) error {
	const tag = "UnmarshalTOML"
	tbl, ok := data.(map[string]any)
	if !ok {
		x, err := numcodec.Float(data)
		if err != nil {
			return complexErrorf(tag, err)
		}
		*z = FromReal(x)

		return nil
	}
	re, err := optionalFloat(tbl, "real")
	if err != nil {
		return complexErrorf(tag, err)
	}
	im, err := optionalFloat(tbl, "imaginary")
	if err != nil {
		return complexErrorf(tag, err)
	}
	*z = FromCartesian(re, im)

	return nil
}

// MarshalTOML renders p as an inline table with a nested angle table.
func (p Polar) MarshalTOML() ([]byte, error) {
	a, err := p.arg.MarshalTOML()
	if err != nil {
		return nil, err
	}

	return []byte("{ magnitude = " + numcodec.TOMLFloat(p.mag) + ", angle = " + string(a) + " }"), nil
}

// UnmarshalTOML implements the BurntSushi/toml Unmarshaler interface.
// A negative magnitude is rejected with ErrDomain.
func (p *Polar) UnmarshalTOML(data any) error {
	const tag = "UnmarshalTOML"
	t := polarTable{}
	tbl, ok := data.(map[string]any)
	if !ok {
		x, err := numcodec.Float(data)
		if err != nil {
			return complexErrorf(tag, err)
		}
		t.Magnitude = x

		return p.setFromTable(tag, t)
	}
	mag, err := optionalFloat(tbl, "magnitude")
	if err != nil {
		return complexErrorf(tag, err)
	}
	t.Magnitude = mag
	if raw, ok := tbl["angle"]; ok {
		if err := t.Angle.UnmarshalTOML(raw); err != nil {
			return complexErrorf(tag, err)
		}
	}

	return p.setFromTable(tag, t)
}

func optionalFloat(tbl map[string]any, key string) (float64, error) {
	v, ok := tbl[key]
	if !ok {
		return 0, nil
	}
	f, err := numcodec.Float(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}

	return f, nil
}
