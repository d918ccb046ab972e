package vehiclefilter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autofiltro/catalog/pkg/vehiclefilter"
)

func TestValidateValueAcceptsWholeVocabulary(t *testing.T) {
	v := vehiclefilter.NewValidator()

	for dim, tokens := range vehiclefilter.AvailableFilters() {
		for _, token := range tokens {
			assert.NoError(t, v.ValidateValue(string(dim), token), "%s/%s", dim, token)
		}
	}
}

func TestValidateValue(t *testing.T) {
	v := vehiclefilter.NewValidator()

	tests := []struct {
		name    string
		dim     string
		value   string
		wantErr error
	}{
		{
			name:  "valid pair",
			dim:   "vehicle_type",
			value: "camion",
		},
		{
			name:  "sanitizes case and whitespace",
			dim:   "  Vehicle_Type ",
			value: " CAMION\t",
		},
		{
			name:    "empty value",
			dim:     "vehicle_type",
			value:   "",
			wantErr: vehiclefilter.ErrEmptyInput,
		},
		{
			name:    "empty dimension",
			dim:     "",
			value:   "camion",
			wantErr: vehiclefilter.ErrEmptyInput,
		},
		{
			name:    "injection payload sanitizes to nothing",
			dim:     "vehicle_type",
			value:   "aire'; DROP TABLE--",
			wantErr: vehiclefilter.ErrEmptyInput,
		},
		{
			name:    "unknown dimension",
			dim:     "engine_size",
			value:   "camion",
			wantErr: vehiclefilter.ErrUnknownDimension,
		},
		{
			name:    "value outside vocabulary",
			dim:     "vehicle_type",
			value:   "tractor",
			wantErr: vehiclefilter.ErrValueNotInVocabulary,
		},
		{
			name:    "value from another dimension",
			dim:     "oil_type",
			value:   "diesel",
			wantErr: vehiclefilter.ErrValueNotInVocabulary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateValue(tt.dim, tt.value)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateCombinationEmptyInput(t *testing.T) {
	v := vehiclefilter.NewValidator()

	sel, err := v.ValidateCombination(map[string]string{})
	require.NoError(t, err)
	assert.Empty(t, sel)

	sel, err = v.ValidateCombination(nil)
	require.NoError(t, err)
	assert.Empty(t, sel)
}

func TestValidateCombinationDropsBlankPairs(t *testing.T) {
	v := vehiclefilter.NewValidator()

	sel, err := v.ValidateCombination(map[string]string{
		"vehicle_type": "auto",
		"oil_type":     "   ",
		"fuel_type":    "gaso'; lina", // sanitizes to nothing, dropped
		"":             "diesel",
	})
	require.NoError(t, err)

	assert.Equal(t, vehiclefilter.Selection{
		vehiclefilter.DimensionVehicleType: "auto",
	}, sel)
}

func TestValidateCombinationRejections(t *testing.T) {
	v := vehiclefilter.NewValidator()

	tests := []struct {
		name    string
		input   map[string]string
		wantErr error
	}{
		{
			name: "unknown dimension key",
			input: map[string]string{
				"engine_size": "auto",
			},
			wantErr: vehiclefilter.ErrUnknownDimension,
		},
		{
			name: "value outside vocabulary",
			input: map[string]string{
				"vehicle_type": "tractor",
			},
			wantErr: vehiclefilter.ErrValueNotInVocabulary,
		},
		{
			name: "synthetic oil with diesel truck",
			input: map[string]string{
				"oil_type":     "sintetico",
				"fuel_type":    "diesel",
				"vehicle_type": "camion",
			},
			wantErr: vehiclefilter.ErrIncompatibleCombination,
		},
		{
			name: "synthetic oil with diesel bus",
			input: map[string]string{
				"oil_type":     "sintetico",
				"fuel_type":    "diesel",
				"vehicle_type": "bus",
			},
			wantErr: vehiclefilter.ErrIncompatibleCombination,
		},
		{
			name: "cabin filter on truck",
			input: map[string]string{
				"vehicle_type": "camion",
				"filter_type":  "habitaculo",
			},
			wantErr: vehiclefilter.ErrIncompatibleCombination,
		},
		{
			name: "fuel filter on electric vehicle",
			input: map[string]string{
				"fuel_type":   "electrico",
				"filter_type": "combustible",
			},
			wantErr: vehiclefilter.ErrIncompatibleCombination,
		},
		{
			name: "pollen filter on motorcycle",
			input: map[string]string{
				"vehicle_type": "moto",
				"filter_type":  "polen",
			},
			wantErr: vehiclefilter.ErrIncompatibleCombination,
		},
		{
			name: "cabin filter on motorcycle",
			input: map[string]string{
				"vehicle_type": "moto",
				"filter_type":  "habitaculo",
			},
			wantErr: vehiclefilter.ErrIncompatibleCombination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := v.ValidateCombination(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, sel, "rejected combinations must not return a partial selection")
		})
	}
}

func TestValidateCombinationAccepts(t *testing.T) {
	v := vehiclefilter.NewValidator()

	tests := []struct {
		name     string
		input    map[string]string
		expected vehiclefilter.Selection
	}{
		{
			name: "car with cabin filter",
			input: map[string]string{
				"vehicle_type": "auto",
				"filter_type":  "habitaculo",
			},
			expected: vehiclefilter.Selection{
				vehiclefilter.DimensionVehicleType: "auto",
				vehiclefilter.DimensionFilterType:  "habitaculo",
			},
		},
		{
			name: "bus with cabin filter",
			input: map[string]string{
				"vehicle_type": "bus",
				"filter_type":  "habitaculo",
			},
			expected: vehiclefilter.Selection{
				vehiclefilter.DimensionVehicleType: "bus",
				vehiclefilter.DimensionFilterType:  "habitaculo",
			},
		},
		{
			name: "cabin filter without vehicle type",
			input: map[string]string{
				"filter_type": "habitaculo",
				"oil_type":    "mineral",
			},
			expected: vehiclefilter.Selection{
				vehiclefilter.DimensionFilterType: "habitaculo",
				vehiclefilter.DimensionOilType:    "mineral",
			},
		},
		{
			name: "single dimension skips compatibility rules",
			input: map[string]string{
				"fuel_type": "electrico",
			},
			expected: vehiclefilter.Selection{
				vehiclefilter.DimensionFuelType: "electrico",
			},
		},
		{
			name: "full compatible selection",
			input: map[string]string{
				"vehicle_type": "camion",
				"oil_type":     "mineral",
				"fuel_type":    "diesel",
				"filter_type":  "hidraulico",
			},
			expected: vehiclefilter.Selection{
				vehiclefilter.DimensionVehicleType: "camion",
				vehiclefilter.DimensionOilType:     "mineral",
				vehiclefilter.DimensionFuelType:    "diesel",
				vehiclefilter.DimensionFilterType:  "hidraulico",
			},
		},
		{
			name: "mixed case input is normalized",
			input: map[string]string{
				"Vehicle_Type": "  AUTO ",
				"FILTER_TYPE":  "Aire",
			},
			expected: vehiclefilter.Selection{
				vehiclefilter.DimensionVehicleType: "auto",
				vehiclefilter.DimensionFilterType:  "aire",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := v.ValidateCombination(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, sel)
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{"aire", " AIRE ", "aire'; DROP TABLE--", "camión", ""}

	for _, input := range inputs {
		once := vehiclefilter.Sanitize(input)
		assert.Equal(t, once, vehiclefilter.Sanitize(once))
	}
}
