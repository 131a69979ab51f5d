package config

import (
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"
)

func TestBuiltinConfig(t *testing.T) {
	rawConfig := make(map[string]interface{})
	assert.Nil(t, yaml.Unmarshal(defaultConfigData, &rawConfig))

	knownFields := make(map[string]bool)
	rt := reflect.TypeOf(Configuration{})
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		assert.NotEmpty(t, jsonTag)
		jsonField := strings.Split(jsonTag, ",")[0]
		knownFields[jsonField] = true

		if _, ok := rawConfig[jsonField]; !ok {
			assert.False(t, true, "default config missing field: %q", jsonField)
		}
	}

	for k := range rawConfig {
		_, ok := knownFields[k]
		assert.True(t, ok, "default config contains invalid field: %q", k)
	}
}

func TestDefaultConfig(t *testing.T) {
	// Will panic() on load failure because it should never happen at runtime.
	cfg := Default()
	assert.Equal(t, "> ", cfg.Prompt)
	assert.Equal(t, slog.LevelWarn, cfg.Level())
	assert.Equal(t, ColorAuto, cfg.Color)
}

func TestParseRejects(t *testing.T) {
	cases := map[string]string{
		"unknown-field": "prompt: '> '\ncolor: auto\nlog_level: warn\nshell: bash\n",
		"bad-color":     "prompt: '> '\ncolor: sometimes\nlog_level: warn\n",
		"bad-level":     "prompt: '> '\ncolor: auto\nlog_level: loud\n",
		"no-prompt":     "color: auto\nlog_level: warn\n",
	}

	for tn, data := range cases {
		t.Run(tn, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestColorize(t *testing.T) {
	cases := []struct {
		color      string
		isTerminal bool
		expected   bool
	}{
		{ColorAlways, false, true},
		{ColorNever, true, false},
		{ColorAuto, true, true},
		{ColorAuto, false, false},
	}

	for _, tc := range cases {
		cfg := &Configuration{Color: tc.color}
		assert.Equal(t, tc.expected, cfg.Colorize(tc.isTerminal), "%s/%v", tc.color, tc.isTerminal)
	}
}
