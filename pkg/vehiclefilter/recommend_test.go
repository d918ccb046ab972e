package vehiclefilter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autofiltro/catalog/pkg/vehiclefilter"
)

func TestRecommendationsForTruck(t *testing.T) {
	rec := vehiclefilter.Recommendations("camion")
	require.NotEmpty(t, rec)

	assert.ElementsMatch(t, []string{"mineral", "semi-sintetico"}, rec[vehiclefilter.DimensionOilType])
	assert.ElementsMatch(t, []string{"diesel", "gasolina"}, rec[vehiclefilter.DimensionFuelType])
	assert.Contains(t, rec[vehiclefilter.DimensionFilterType], "hidraulico")
}

func TestRecommendationsSanitizesInput(t *testing.T) {
	assert.Equal(t, vehiclefilter.Recommendations("camion"), vehiclefilter.Recommendations("  CAMION \t"))
}

func TestRecommendationsUnknownVehicle(t *testing.T) {
	tests := []string{"not_a_type", "", "tractor", "aire'; DROP TABLE--", "camión"}

	for _, input := range tests {
		rec := vehiclefilter.Recommendations(input)
		assert.NotNil(t, rec, "must return an empty map, not nil, for %q", input)
		assert.Empty(t, rec, "unknown vehicle %q must yield no recommendations", input)
	}
}

func TestRecommendationsCoverAllVehicleTypes(t *testing.T) {
	for _, vehicle := range vehiclefilter.AvailableFilters()[vehiclefilter.DimensionVehicleType] {
		rec := vehiclefilter.Recommendations(vehicle)
		assert.NotEmpty(t, rec, "vehicle %q has no recommendations", vehicle)
	}
}

func TestRecommendationsOnlyAdvertiseVocabularyMembers(t *testing.T) {
	for _, vehicle := range vehiclefilter.AvailableFilters()[vehiclefilter.DimensionVehicleType] {
		for dim, tokens := range vehiclefilter.Recommendations(vehicle) {
			for _, token := range tokens {
				assert.True(t, vehiclefilter.IsValidValue(dim, token),
					"recommendation %s/%s for %q is not in the vocabulary", dim, token, vehicle)
			}
		}
	}
}

func TestRecommendationsReturnsFreshCopies(t *testing.T) {
	first := vehiclefilter.Recommendations("camion")
	first[vehiclefilter.DimensionOilType][0] = "mutated"

	second := vehiclefilter.Recommendations("camion")
	assert.Equal(t, "mineral", second[vehiclefilter.DimensionOilType][0])
}

func TestDescriptionsCoverWholeVocabulary(t *testing.T) {
	desc := vehiclefilter.Descriptions()

	for dim, tokens := range vehiclefilter.AvailableFilters() {
		require.Contains(t, desc, dim)
		for _, token := range tokens {
			assert.NotEmpty(t, desc[dim][token], "missing description for %s/%s", dim, token)
		}
	}
}

func TestDescriptionsReturnsFreshCopies(t *testing.T) {
	first := vehiclefilter.Descriptions()
	first[vehiclefilter.DimensionOilType]["sintetico"] = "mutated"

	second := vehiclefilter.Descriptions()
	assert.NotEqual(t, "mutated", second[vehiclefilter.DimensionOilType]["sintetico"])
}
