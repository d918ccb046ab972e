package catalog

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/autofiltro/catalog/pkg/clientip"
	"github.com/autofiltro/catalog/pkg/vehiclefilter"
)

const defaultPageSize = 100

// RouterOptions carries the services the catalog module mounts. All three
// services are required.
type RouterOptions struct {
	Categories   *CategoryService
	Distributors *DistributorService
	Products     *ProductService
}

// Router assembles the catalog HTTP surface.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Mount("/api/v1", catalog.Router(catalog.RouterOptions{
//	    Categories:   categorySvc,
//	    Distributors: distributorSvc,
//	    Products:     productSvc,
//	}))
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()
	r.Use(clientip.Middleware)

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", listCategories(opts.Categories))
		r.Post("/", createCategory(opts.Categories))
		r.Get("/{id}", getCategory(opts.Categories))
		r.Put("/{id}", updateCategory(opts.Categories))
		r.Delete("/{id}", deleteCategory(opts.Categories))
	})

	r.Route("/distributors", func(r chi.Router) {
		r.Get("/", listDistributors(opts.Distributors))
		r.Post("/", createDistributor(opts.Distributors))
		r.Get("/{id}", getDistributor(opts.Distributors))
		r.Put("/{id}", updateDistributor(opts.Distributors))
		r.Delete("/{id}", deleteDistributor(opts.Distributors))
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", listProducts(opts.Products))
		r.Post("/", createProduct(opts.Products))
		r.Get("/vehicle-filter", filterProductsByVehicle(opts.Products))
		r.Get("/barcode/{barcode}", getProductByBarcode(opts.Products))
		r.Get("/{id}", getProduct(opts.Products))
		r.Patch("/{id}", updateProduct(opts.Products))
		r.Delete("/{id}", deleteProduct(opts.Products))
	})

	r.Route("/filters", func(r chi.Router) {
		r.Get("/options", getFilterOptions())
		r.Get("/recommendations/{vehicle_type}", getFilterRecommendations())
		r.Get("/descriptions", getFilterDescriptions())
	})

	return r
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: malformed id", ErrInvalidInput)
	}
	return id, nil
}

// pageParams parses skip/limit query parameters, falling back to defaults
// when absent. Range checks are left to the service layer.
func pageParams(r *http.Request) (int, int, error) {
	skip, limit := 0, defaultPageSize
	if raw := r.URL.Query().Get("skip"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: malformed skip parameter", ErrInvalidInput)
		}
		skip = v
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: malformed limit parameter", ErrInvalidInput)
		}
		limit = v
	}
	return skip, limit, nil
}

func optionalID(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed %s parameter", ErrInvalidInput, name)
	}
	return &v, nil
}

func listCategories(svc *CategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, items)
	}
}

func getCategory(svc *CategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respondError(w, err)
			return
		}
		item, err := svc.Get(r.Context(), id)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}

func createCategory(svc *CategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateCategoryRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, err)
			return
		}
		item, err := svc.Create(r.Context(), req)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, item)
	}
}

func updateCategory(svc *CategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respondError(w, err)
			return
		}
		var req CreateCategoryRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, err)
			return
		}
		item, err := svc.Update(r.Context(), id, req)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}

func deleteCategory(svc *CategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respondError(w, err)
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			respondError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func listDistributors(svc *DistributorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, items)
	}
}

func getDistributor(svc *DistributorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respondError(w, err)
			return
		}
		item, err := svc.Get(r.Context(), id)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}

func createDistributor(svc *DistributorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateDistributorRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, err)
			return
		}
		item, err := svc.Create(r.Context(), req)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, item)
	}
}

func updateDistributor(svc *DistributorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respondError(w, err)
			return
		}
		var req CreateDistributorRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, err)
			return
		}
		item, err := svc.Update(r.Context(), id, req)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}

func deleteDistributor(svc *DistributorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respondError(w, err)
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			respondError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func listProducts(svc *ProductService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit, err := pageParams(r)
		if err != nil {
			respondError(w, err)
			return
		}
		categoryID, err := optionalID(r, "category_id")
		if err != nil {
			respondError(w, err)
			return
		}
		distributorID, err := optionalID(r, "distributor_id")
		if err != nil {
			respondError(w, err)
			return
		}
		page, err := svc.List(r.Context(), skip, limit, categoryID, distributorID)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, page)
	}
}

// filterProductsByVehicle narrows products by validated vehicle attributes.
// Only the four known dimension parameters are forwarded; anything else in
// the query string is ignored.
func filterProductsByVehicle(svc *ProductService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit, err := pageParams(r)
		if err != nil {
			respondError(w, err)
			return
		}
		filters := make(map[string]string, 4)
		for _, dim := range vehiclefilter.Dimensions() {
			if v := r.URL.Query().Get(string(dim)); v != "" {
				filters[string(dim)] = v
			}
		}
		page, err := svc.FilterByVehicle(r.Context(), filters, skip, limit)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, page)
	}
}

func getProduct(svc *ProductService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respondError(w, err)
			return
		}
		item, err := svc.Get(r.Context(), id)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}

func getProductByBarcode(svc *ProductService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := svc.GetByBarcode(r.Context(), chi.URLParam(r, "barcode"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}

func createProduct(svc *ProductService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateProductRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, err)
			return
		}
		item, err := svc.Create(r.Context(), req)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, item)
	}
}

func updateProduct(svc *ProductService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respondError(w, err)
			return
		}
		var req UpdateProductRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, err)
			return
		}
		item, err := svc.Update(r.Context(), id, req)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}

func deleteProduct(svc *ProductService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respondError(w, err)
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			respondError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func getFilterOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, vehiclefilter.AvailableFilters())
	}
}

func getFilterRecommendations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, vehiclefilter.Recommendations(chi.URLParam(r, "vehicle_type")))
	}
}

func getFilterDescriptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, vehiclefilter.Descriptions())
	}
}
