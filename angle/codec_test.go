// SPDX-License-Identifier: MIT

package angle_test

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/complexible/angle"
)

type heading struct {
	Bearing angle.Angle `yaml:"bearing" toml:"bearing"`
}

func TestAngle_YAML(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		out, err := yaml.Marshal(heading{Bearing: angle.FromDegrees(45)})
		require.NoError(t, err)
		assert.Equal(t, "bearing:\n    value: 45\n    unit: deg\n", string(out))
	})

	t.Run("round trip", func(t *testing.T) {
		for _, a := range []angle.Angle{angle.FromDegrees(-90), angle.FromRadians(0.25), {}} {
			out, err := yaml.Marshal(heading{Bearing: a})
			require.NoError(t, err)
			var got heading
			require.NoError(t, yaml.Unmarshal(out, &got))
			assert.Equal(t, a, got.Bearing)
		}
	})

	t.Run("bare number is radians", func(t *testing.T) {
		var got heading
		require.NoError(t, yaml.Unmarshal([]byte("bearing: 1.5\n"), &got))
		assert.Equal(t, angle.FromRadians(1.5), got.Bearing)
	})

	t.Run("missing unit is radians", func(t *testing.T) {
		var got heading
		require.NoError(t, yaml.Unmarshal([]byte("bearing: {value: 2}\n"), &got))
		assert.Equal(t, angle.FromRadians(2), got.Bearing)
	})

	t.Run("unknown unit", func(t *testing.T) {
		var got heading
		err := yaml.Unmarshal([]byte("bearing: {value: 2, unit: grad}\n"), &got)
		assert.ErrorIs(t, err, angle.ErrUnknownUnit)
	})
}

func TestAngle_TOML(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		var got heading
		_, err := toml.Decode("bearing = { value = 30, unit = \"degrees\" }\n", &got)
		require.NoError(t, err)
		assert.Equal(t, angle.FromDegrees(30), got.Bearing)
	})

	t.Run("bare number is radians", func(t *testing.T) {
		var got heading
		_, err := toml.Decode("bearing = 0.75\n", &got)
		require.NoError(t, err)
		assert.Equal(t, angle.FromRadians(0.75), got.Bearing)
	})

	t.Run("unknown unit", func(t *testing.T) {
		var got heading
		_, err := toml.Decode("bearing = { value = 1.0, unit = \"turn\" }\n", &got)
		require.Error(t, err)
		assert.Contains(t, err.Error(), angle.ErrUnknownUnit.Error())
	})

	t.Run("non-string unit", func(t *testing.T) {
		var got heading
		_, err := toml.Decode("bearing = { value = 90.0, unit = 5 }\n", &got)
		require.Error(t, err)
		assert.Contains(t, err.Error(), angle.ErrUnknownUnit.Error())

		var direct angle.Angle
		err = direct.UnmarshalTOML(map[string]any{"value": 90.0, "unit": int64(5)})
		assert.ErrorIs(t, err, angle.ErrUnknownUnit)
	})

	t.Run("marshal", func(t *testing.T) {
		out, err := angle.FromDegrees(45).MarshalTOML()
		require.NoError(t, err)
		assert.Equal(t, `{ value = 45.0, unit = "deg" }`, string(out))

		var got heading
		_, err = toml.Decode("bearing = "+string(out)+"\n", &got)
		require.NoError(t, err)
		assert.Equal(t, angle.FromDegrees(45), got.Bearing)
	})
}
