package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDuration_UnmarshalYAML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Duration
		wantErr bool
	}{
		{"seconds", `value: 90s`, Duration(90 * time.Second), false},
		{"minutes", `value: 5m`, Duration(5 * time.Minute), false},
		{"compound", `value: 1h30m`, Duration(90 * time.Minute), false},
		{"zero", `value: 0`, Duration(0), false},
		{"missing unit", `value: 90`, 0, true},
		{"not a duration", `value: soon`, 0, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got struct {
				Value Duration `yaml:"value"`
			}
			err := yaml.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Value)
		})
	}
}

func TestDuration_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1m30s", Duration(90*time.Second).String())
	assert.Equal(t, "0s", Duration(0).String())
}
