package vehiclefilter

// compatibilityRule flags an otherwise individually-valid selection as
// jointly invalid. Rules are pure predicates over the sanitized selection;
// absent dimensions never trigger a rule on their own.
type compatibilityRule struct {
	name         string
	incompatible func(Selection) bool
}

// compatibilityRules is evaluated in order; the first rule that fires rejects
// the selection. The order is a visible contract and must not be reshuffled.
var compatibilityRules = []compatibilityRule{
	{
		// Heavy transport running diesel does not take synthetic oil.
		name: "synthetic-oil-diesel-heavy-vehicle",
		incompatible: func(s Selection) bool {
			return s.has(DimensionOilType, OilSintetico) &&
				s.has(DimensionFuelType, FuelDiesel) &&
				s.hasAny(DimensionVehicleType, VehicleCamion, VehicleBus)
		},
	},
	{
		// Cabin filters only exist for vehicles with a cabin circuit.
		// A selection without a vehicle type does not trigger this rule.
		name: "cabin-filter-vehicle-without-cabin",
		incompatible: func(s Selection) bool {
			_, hasVehicle := s.Get(DimensionVehicleType)
			return s.has(DimensionFilterType, FilterHabitaculo) &&
				hasVehicle &&
				!s.hasAny(DimensionVehicleType, VehicleAuto, VehicleBus)
		},
	},
	{
		// Electric drivetrains have no fuel circuit.
		name: "fuel-filter-electric-vehicle",
		incompatible: func(s Selection) bool {
			return s.has(DimensionFuelType, FuelElectrico) &&
				s.has(DimensionFilterType, FilterCombustible)
		},
	},
	{
		// Motorcycles carry neither pollen nor cabin filtering.
		name: "pollen-or-cabin-filter-motorcycle",
		incompatible: func(s Selection) bool {
			return s.has(DimensionVehicleType, VehicleMoto) &&
				s.hasAny(DimensionFilterType, FilterPolen, FilterHabitaculo)
		},
	},
}

// checkCompatibility runs the ordered rule set over the selection and returns
// the name of the first rule that fires. The name is for internal logging
// only and must never reach a caller-visible error.
func checkCompatibility(s Selection) (string, bool) {
	for _, rule := range compatibilityRules {
		if rule.incompatible(s) {
			return rule.name, true
		}
	}
	return "", false
}
