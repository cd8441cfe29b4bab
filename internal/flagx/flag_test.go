package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-v", "personal", "-x", "other"},
			allowed: []string{"-v"},
			want:    []string{"-v", "personal"},
		},
		{
			name:    "equals form",
			args:    []string{"-config=vault.json", "-x=1"},
			allowed: []string{"-config"},
			want:    []string{"-config=vault.json"},
		},
		{
			name:    "flag without value followed by another flag",
			args:    []string{"-v", "-x"},
			allowed: []string{"-v"},
			want:    []string{"-v"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "b"},
			allowed: []string{"-z"},
			want:    []string{},
		},
		{
			name:    "empty args",
			args:    nil,
			allowed: []string{"-v"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowed)
			assert.Equal(t, tt.want, got)
		})
	}
}
