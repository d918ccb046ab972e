package vehiclefilter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autofiltro/catalog/pkg/vehiclefilter"
)

func TestAvailableFilters(t *testing.T) {
	filters := vehiclefilter.AvailableFilters()

	require.Len(t, filters, 4)
	assert.Equal(t, []string{"auto", "moto", "camion", "bus"}, filters[vehiclefilter.DimensionVehicleType])
	assert.Equal(t, []string{"sintetico", "mineral", "semi-sintetico"}, filters[vehiclefilter.DimensionOilType])
	assert.Equal(t, []string{"gasolina", "diesel", "electrico", "hibrido"}, filters[vehiclefilter.DimensionFuelType])
	assert.Equal(t, []string{"aire", "aceite", "combustible", "polen", "habitaculo", "hidraulico"}, filters[vehiclefilter.DimensionFilterType])
}

func TestAvailableFiltersStableAcrossCalls(t *testing.T) {
	first := vehiclefilter.AvailableFilters()
	second := vehiclefilter.AvailableFilters()

	assert.Equal(t, first, second)

	// Mutating a returned copy must not leak into the registry.
	first[vehiclefilter.DimensionVehicleType][0] = "tractor"
	third := vehiclefilter.AvailableFilters()
	assert.Equal(t, "auto", third[vehiclefilter.DimensionVehicleType][0])
}

func TestDimensionsOrder(t *testing.T) {
	assert.Equal(t, []vehiclefilter.Dimension{
		vehiclefilter.DimensionVehicleType,
		vehiclefilter.DimensionOilType,
		vehiclefilter.DimensionFuelType,
		vehiclefilter.DimensionFilterType,
	}, vehiclefilter.Dimensions())
}

func TestParseDimension(t *testing.T) {
	for _, dim := range vehiclefilter.Dimensions() {
		parsed, ok := vehiclefilter.ParseDimension(string(dim))
		assert.True(t, ok)
		assert.Equal(t, dim, parsed)
	}

	_, ok := vehiclefilter.ParseDimension("engine_size")
	assert.False(t, ok)
	_, ok = vehiclefilter.ParseDimension("")
	assert.False(t, ok)
}

func TestIsValidValue(t *testing.T) {
	// Every vocabulary member must be valid for its own dimension.
	for dim, tokens := range vehiclefilter.AvailableFilters() {
		for _, token := range tokens {
			assert.True(t, vehiclefilter.IsValidValue(dim, token), "%s/%s", dim, token)
		}
	}

	assert.False(t, vehiclefilter.IsValidValue(vehiclefilter.DimensionVehicleType, "tractor"))
	assert.False(t, vehiclefilter.IsValidValue(vehiclefilter.DimensionOilType, "diesel"), "token from another dimension")
	assert.False(t, vehiclefilter.IsValidValue(vehiclefilter.Dimension("engine_size"), "auto"))
}
