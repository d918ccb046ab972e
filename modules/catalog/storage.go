package catalog

import (
	"context"

	"github.com/autofiltro/catalog/pkg/vehiclefilter"
)

// ProductQuery narrows a product listing. Zero values mean "no constraint";
// Selection entries are applied as ANDed equality predicates.
type ProductQuery struct {
	Offset        int
	Limit         int
	CategoryID    *int64
	DistributorID *int64
	Selection     vehiclefilter.Selection
}

// Storage defines the persistence operations the catalog services need.
// Implementations must exclude soft-deleted records from every read and keep
// listings ordered by id for stable pagination.
type Storage interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategory(ctx context.Context, id int64) (*Category, error)
	CreateCategory(ctx context.Context, c *Category) error
	UpdateCategory(ctx context.Context, c *Category) error
	SoftDeleteCategory(ctx context.Context, id int64) error

	ListDistributors(ctx context.Context) ([]Distributor, error)
	GetDistributor(ctx context.Context, id int64) (*Distributor, error)
	CreateDistributor(ctx context.Context, d *Distributor) error
	UpdateDistributor(ctx context.Context, d *Distributor) error
	SoftDeleteDistributor(ctx context.Context, id int64) error

	ListProducts(ctx context.Context, q ProductQuery) ([]Product, error)
	CountProducts(ctx context.Context, q ProductQuery) (int64, error)
	GetProduct(ctx context.Context, id int64) (*Product, error)
	GetProductByBarcode(ctx context.Context, barcode string) (*Product, error)
	CreateProduct(ctx context.Context, p *Product) error
	UpdateProduct(ctx context.Context, p *Product) error
	SoftDeleteProduct(ctx context.Context, id int64) error
}
