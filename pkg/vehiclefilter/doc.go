// Package vehiclefilter validates vehicle filter selections for the catalog
// query layer.
//
// The package owns the closed vocabulary of filter values across the four
// dimensions (vehicle type, oil type, fuel type, filter type), sanitizes
// untrusted key/value input, validates individual values against their
// vocabulary and whole selections against a fixed set of compatibility rules
// (an electric vehicle cannot take a fuel filter, a motorcycle has no cabin,
// and so on). Callers receive either a sanitized Selection safe to apply as
// ANDed equality predicates, or a typed rejection.
//
// All tables are process-wide constants initialized at package load; every
// operation is a synchronous pure function safe for unbounded concurrent use.
// The only side-effecting piece is the Auditor, which records accepted
// selections through an injected structured logger.
//
//	v := vehiclefilter.NewValidator(vehiclefilter.WithLogger(log))
//	sel, err := v.ValidateCombination(map[string]string{
//	    "vehicle_type": "camion",
//	    "fuel_type":    "diesel",
//	})
package vehiclefilter
