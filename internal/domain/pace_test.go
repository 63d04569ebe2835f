package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaceByName(t *testing.T) {
	tests := []struct {
		name        string
		pace        string
		wantPerDay  int
		wantKmDay   float64
		wantFactor  float64
		wantErr     bool
	}{
		{name: "fast-paced", pace: PaceFast, wantPerDay: 4, wantKmDay: 500, wantFactor: 1.2},
		{name: "balanced", pace: PaceBalanced, wantPerDay: 3, wantKmDay: 300, wantFactor: 1.1},
		{name: "relaxing", pace: PaceRelaxing, wantPerDay: 2, wantKmDay: 150, wantFactor: 1.0},
		{name: "unknown pace is a configuration error", pace: "Sprint", wantErr: true},
		{name: "empty pace is not silently defaulted", pace: "", wantErr: true},
		{name: "case sensitive", pace: "balanced", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preset, err := PaceByName(tt.pace)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownPace))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.pace, preset.Name)
			assert.Equal(t, tt.wantPerDay, preset.LocationsPerDay)
			assert.Equal(t, tt.wantKmDay, preset.DistancePerDayKm)
			assert.Equal(t, tt.wantFactor, preset.BudgetMultiplier)
		})
	}
}

func TestPaceNames(t *testing.T) {
	assert.Equal(t, []string{PaceFast, PaceBalanced, PaceRelaxing}, PaceNames())
}
