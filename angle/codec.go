// SPDX-License-Identifier: MIT

package angle

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/complexible/internal/numcodec"
)

// table is the serialized shape of an Angle in YAML and TOML:
//
//	angle: {value: 45, unit: deg}
//
// A bare number is accepted on decode and read as radians.
type table struct {
	Value float64 `yaml:"value"`
	Unit  string  `yaml:"unit"`
}

// MarshalYAML implements [yaml.Marshaler].
//
// [yaml.Marshaler]: https://pkg.go.dev/gopkg.in/yaml.v3#Marshaler
func (a Angle) MarshalYAML() (any, error) {
	return table{Value: a.value, Unit: a.unit.String()}, nil
}

// UnmarshalYAML implements [yaml.Unmarshaler].
//
// [yaml.Unmarshaler]: https://pkg.go.dev/gopkg.in/yaml.v3#Unmarshaler
func (a *Angle) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var r float64
		if err := node.Decode(&r); err != nil {
			return fmt.Errorf("angle: UnmarshalYAML: %w", err)
		}
		*a = FromRadians(r)

		return nil
	}
	var t table
	if err := node.Decode(&t); err != nil {
		return fmt.Errorf("angle: UnmarshalYAML: %w", err)
	}
	u, err := ParseUnit(t.Unit)
	if err != nil {
		return fmt.Errorf("angle: UnmarshalYAML: unit %q: %w", t.Unit, err)
	}
	*a = New(t.Value, u)

	return nil
}

// MarshalTOML renders the angle as an inline table,
// e.g. { value = 45.0, unit = "deg" }.
func (a Angle) MarshalTOML() ([]byte, error) {
	return []byte("{ value = " + numcodec.TOMLFloat(a.value) + ", unit = " + strconv.Quote(a.unit.String()) + " }"), nil
}

// UnmarshalTOML implements the BurntSushi/toml Unmarshaler interface.
// data is either a table with "value" and optional "unit" keys,
// or a bare number of radians.
func (a *Angle) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case map[string]any:
		value, err := numcodec.Float(v["value"])
		if err != nil {
			return fmt.Errorf("angle: UnmarshalTOML: value: %w", err)
		}
		name, ok := v["unit"].(string)
		if raw, present := v["unit"]; present && !ok {
			return fmt.Errorf("angle: UnmarshalTOML: unit %v: %w", raw, ErrUnknownUnit)
		}
		u, err := ParseUnit(name)
		if err != nil {
			return fmt.Errorf("angle: UnmarshalTOML: unit %q: %w", name, err)
		}
		*a = New(value, u)
	default:
		r, err := numcodec.Float(v)
		if err != nil {
			return fmt.Errorf("angle: UnmarshalTOML: %w", err)
		}
		*a = FromRadians(r)
	}

	return nil
}
