// Package catalog implements the automotive filter catalog: categories,
// distributors and filter products with computed pricing.
//
// The module follows a storage/service/router split. Storage is an interface
// backed by PostgreSQL in production and by fakes in tests. Services own
// input validation, pricing and pagination policy, and delegate vehicle
// filter checks to pkg/vehiclefilter. The router mounts the JSON REST
// surface on a chi router:
//
//	svc := catalog.NewProductService(storage, validator, auditor, log)
//	r.Mount("/api/v1", catalog.Router(catalog.RouterOptions{Products: svc, ...}))
package catalog
