package vehiclefilter

import "slices"

// recommendationTable maps each known vehicle type to advisory values for the
// remaining dimensions. Advisory only: nothing here is enforced by the
// compatibility rules beyond what the rules themselves state.
var recommendationTable = map[string]map[Dimension][]string{
	VehicleAuto: {
		DimensionOilType:    {OilSintetico, OilSemiSintetico},
		DimensionFuelType:   {FuelGasolina, FuelHibrido},
		DimensionFilterType: {FilterAire, FilterAceite, FilterHabitaculo},
	},
	VehicleMoto: {
		DimensionOilType:    {OilSintetico, OilMineral},
		DimensionFuelType:   {FuelGasolina},
		DimensionFilterType: {FilterAire, FilterAceite},
	},
	VehicleCamion: {
		DimensionOilType:    {OilMineral, OilSemiSintetico},
		DimensionFuelType:   {FuelDiesel, FuelGasolina},
		DimensionFilterType: {FilterAire, FilterAceite, FilterCombustible, FilterHidraulico},
	},
	VehicleBus: {
		DimensionOilType:    {OilMineral, OilSemiSintetico},
		DimensionFuelType:   {FuelDiesel, FuelElectrico},
		DimensionFilterType: {FilterAire, FilterAceite, FilterCombustible, FilterHabitaculo},
	},
}

// descriptionTable maps every vocabulary token to its human description for
// documentation and UI consumption.
var descriptionTable = map[Dimension]map[string]string{
	DimensionVehicleType: {
		VehicleAuto:   "Passenger car",
		VehicleMoto:   "Motorcycle",
		VehicleCamion: "Truck / heavy transport",
		VehicleBus:    "Bus / collective transport",
	},
	DimensionOilType: {
		OilSintetico:     "Fully synthetic engine oil",
		OilMineral:       "Mineral engine oil",
		OilSemiSintetico: "Semi-synthetic engine oil blend",
	},
	DimensionFuelType: {
		FuelGasolina:  "Gasoline engine",
		FuelDiesel:    "Diesel engine",
		FuelElectrico: "Electric drivetrain",
		FuelHibrido:   "Hybrid drivetrain",
	},
	DimensionFilterType: {
		FilterAire:        "Engine air intake filter",
		FilterAceite:      "Engine oil filter",
		FilterCombustible: "Fuel line filter",
		FilterPolen:       "Pollen filter",
		FilterHabitaculo:  "Cabin air filter",
		FilterHidraulico:  "Hydraulic system filter",
	},
}

// Recommendations returns the advisory filter values for a vehicle type. The
// input is sanitized first; unknown or invalid vehicle types yield an empty
// map, never an error. The result is a fresh copy.
func Recommendations(vehicleRaw string) map[Dimension][]string {
	vehicle := Sanitize(vehicleRaw)
	if !IsValidValue(DimensionVehicleType, vehicle) {
		return map[Dimension][]string{}
	}

	table, ok := recommendationTable[vehicle]
	if !ok {
		return map[Dimension][]string{}
	}

	out := make(map[Dimension][]string, len(table))
	for dim, tokens := range table {
		out[dim] = slices.Clone(tokens)
	}
	return out
}

// Descriptions returns the full token description table. The result is a
// fresh copy safe for the caller to mutate.
func Descriptions() map[Dimension]map[string]string {
	out := make(map[Dimension]map[string]string, len(descriptionTable))
	for dim, tokens := range descriptionTable {
		inner := make(map[string]string, len(tokens))
		for token, text := range tokens {
			inner[token] = text
		}
		out[dim] = inner
	}
	return out
}
