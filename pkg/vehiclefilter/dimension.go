package vehiclefilter

import "slices"

// Dimension is one of the four filter axes. The set is closed: new dimensions
// require a code change, never runtime registration.
type Dimension string

const (
	DimensionVehicleType Dimension = "vehicle_type"
	DimensionOilType     Dimension = "oil_type"
	DimensionFuelType    Dimension = "fuel_type"
	DimensionFilterType  Dimension = "filter_type"
)

// Vocabulary tokens. Values are the catalog's canonical Spanish terms and
// must stay lowercase ASCII letters/digits/hyphens.
const (
	VehicleAuto   = "auto"
	VehicleMoto   = "moto"
	VehicleCamion = "camion"
	VehicleBus    = "bus"

	OilSintetico     = "sintetico"
	OilMineral       = "mineral"
	OilSemiSintetico = "semi-sintetico"

	FuelGasolina  = "gasolina"
	FuelDiesel    = "diesel"
	FuelElectrico = "electrico"
	FuelHibrido   = "hibrido"

	FilterAire        = "aire"
	FilterAceite      = "aceite"
	FilterCombustible = "combustible"
	FilterPolen       = "polen"
	FilterHabitaculo  = "habitaculo"
	FilterHidraulico  = "hidraulico"
)

// dimensions holds the four axes in their stable public order.
var dimensions = []Dimension{
	DimensionVehicleType,
	DimensionOilType,
	DimensionFuelType,
	DimensionFilterType,
}

// vocabularies maps each dimension to its allowed tokens in declaration
// order. Read-only after package load.
var vocabularies = map[Dimension][]string{
	DimensionVehicleType: {VehicleAuto, VehicleMoto, VehicleCamion, VehicleBus},
	DimensionOilType:     {OilSintetico, OilMineral, OilSemiSintetico},
	DimensionFuelType:    {FuelGasolina, FuelDiesel, FuelElectrico, FuelHibrido},
	DimensionFilterType:  {FilterAire, FilterAceite, FilterCombustible, FilterPolen, FilterHabitaculo, FilterHidraulico},
}

// Dimensions returns the four filter dimensions in their stable public order.
func Dimensions() []Dimension {
	return slices.Clone(dimensions)
}

// ParseDimension maps an already-sanitized key to a Dimension.
func ParseDimension(key string) (Dimension, bool) {
	switch Dimension(key) {
	case DimensionVehicleType, DimensionOilType, DimensionFuelType, DimensionFilterType:
		return Dimension(key), true
	}
	return "", false
}

// AvailableFilters returns each dimension's vocabulary in declaration order.
// The result is a fresh copy; mutating it does not affect the registry.
func AvailableFilters() map[Dimension][]string {
	out := make(map[Dimension][]string, len(vocabularies))
	for dim, tokens := range vocabularies {
		out[dim] = slices.Clone(tokens)
	}
	return out
}

// IsValidValue reports whether token is a member of the dimension's
// vocabulary. Unknown dimensions always report false.
func IsValidValue(dim Dimension, token string) bool {
	tokens, ok := vocabularies[dim]
	if !ok {
		return false
	}
	return slices.Contains(tokens, token)
}
