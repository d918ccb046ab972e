package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/autofiltro/catalog/pkg/pg"
	"github.com/autofiltro/catalog/pkg/vehiclefilter"
)

// PgStorage is the PostgreSQL-backed Storage implementation.
type PgStorage struct {
	pool *pgxpool.Pool
}

// NewPgStorage returns a Storage backed by the given connection pool.
func NewPgStorage(pool *pgxpool.Pool) *PgStorage {
	return &PgStorage{pool: pool}
}

// selectionColumns maps validated filter dimensions to product columns. Only
// sanitized Selection values built by pkg/vehiclefilter ever reach these
// predicates, and all values are bound as query parameters regardless.
var selectionColumns = map[vehiclefilter.Dimension]string{
	vehiclefilter.DimensionVehicleType: "vehicle_type",
	vehiclefilter.DimensionOilType:     "oil_type",
	vehiclefilter.DimensionFuelType:    "fuel_type",
	vehiclefilter.DimensionFilterType:  "filter_type",
}

const categoryColumns = "id, name, description, kind, active, created_at"

func (s *PgStorage) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE active ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Kind, &c.Active, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *PgStorage) GetCategory(ctx context.Context, id int64) (*Category, error) {
	var c Category
	err := s.pool.QueryRow(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE id = $1 AND active", id).
		Scan(&c.ID, &c.Name, &c.Description, &c.Kind, &c.Active, &c.CreatedAt)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

func (s *PgStorage) CreateCategory(ctx context.Context, c *Category) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO categories (name, description, kind)
		 VALUES ($1, $2, $3)
		 RETURNING id, active, created_at`,
		c.Name, c.Description, c.Kind).
		Scan(&c.ID, &c.Active, &c.CreatedAt)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (s *PgStorage) UpdateCategory(ctx context.Context, c *Category) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE categories SET name = $2, description = $3, kind = $4
		 WHERE id = $1 AND active`,
		c.ID, c.Name, c.Description, c.Kind)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PgStorage) SoftDeleteCategory(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx,
		"UPDATE categories SET active = FALSE WHERE id = $1 AND active", id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

const distributorColumns = "id, name, contact, phone, email, active, created_at"

func (s *PgStorage) ListDistributors(ctx context.Context) ([]Distributor, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT "+distributorColumns+" FROM distributors WHERE active ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list distributors: %w", err)
	}
	defer rows.Close()

	var out []Distributor
	for rows.Next() {
		var d Distributor
		if err := rows.Scan(&d.ID, &d.Name, &d.Contact, &d.Phone, &d.Email, &d.Active, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan distributor: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *PgStorage) GetDistributor(ctx context.Context, id int64) (*Distributor, error) {
	var d Distributor
	err := s.pool.QueryRow(ctx,
		"SELECT "+distributorColumns+" FROM distributors WHERE id = $1 AND active", id).
		Scan(&d.ID, &d.Name, &d.Contact, &d.Phone, &d.Email, &d.Active, &d.CreatedAt)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get distributor: %w", err)
	}
	return &d, nil
}

func (s *PgStorage) CreateDistributor(ctx context.Context, d *Distributor) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO distributors (name, contact, phone, email)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, active, created_at`,
		d.Name, d.Contact, d.Phone, d.Email).
		Scan(&d.ID, &d.Active, &d.CreatedAt)
	if err != nil {
		return fmt.Errorf("create distributor: %w", err)
	}
	return nil
}

func (s *PgStorage) UpdateDistributor(ctx context.Context, d *Distributor) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE distributors SET name = $2, contact = $3, phone = $4, email = $5
		 WHERE id = $1 AND active`,
		d.ID, d.Name, d.Contact, d.Phone, d.Email)
	if err != nil {
		return fmt.Errorf("update distributor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PgStorage) SoftDeleteDistributor(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx,
		"UPDATE distributors SET active = FALSE WHERE id = $1 AND active", id)
	if err != nil {
		return fmt.Errorf("delete distributor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

const productColumns = `id, barcode, name, description, brand, category_id, distributor_id,
	quantity, net_price, margin_percent, vat_percent, sale_price,
	vehicle_type, oil_type, fuel_type, filter_type, active, created_at, updated_at`

// productWhere builds the WHERE clause for a product query. Filter dimensions
// are iterated in declaration order so the generated SQL is deterministic.
func productWhere(q ProductQuery) (string, []any) {
	clauses := []string{"active"}
	var args []any

	if q.CategoryID != nil {
		args = append(args, *q.CategoryID)
		clauses = append(clauses, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if q.DistributorID != nil {
		args = append(args, *q.DistributorID)
		clauses = append(clauses, fmt.Sprintf("distributor_id = $%d", len(args)))
	}
	for _, dim := range vehiclefilter.Dimensions() {
		token, ok := q.Selection.Get(dim)
		if !ok {
			continue
		}
		args = append(args, token)
		clauses = append(clauses, fmt.Sprintf("%s = $%d", selectionColumns[dim], len(args)))
	}

	return strings.Join(clauses, " AND "), args
}

func (s *PgStorage) ListProducts(ctx context.Context, q ProductQuery) ([]Product, error) {
	where, args := productWhere(q)

	args = append(args, q.Limit, q.Offset)
	query := fmt.Sprintf(
		"SELECT %s FROM products WHERE %s ORDER BY id LIMIT $%d OFFSET $%d",
		productColumns, where, len(args)-1, len(args))

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (s *PgStorage) CountProducts(ctx context.Context, q ProductQuery) (int64, error) {
	where, args := productWhere(q)

	var total int64
	err := s.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM products WHERE "+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

func (s *PgStorage) GetProduct(ctx context.Context, id int64) (*Product, error) {
	row := s.pool.QueryRow(ctx,
		fmt.Sprintf("SELECT %s FROM products WHERE id = $1 AND active", productColumns), id)

	p, err := scanProduct(row)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (s *PgStorage) GetProductByBarcode(ctx context.Context, barcode string) (*Product, error) {
	row := s.pool.QueryRow(ctx,
		fmt.Sprintf("SELECT %s FROM products WHERE barcode = $1 AND active", productColumns), barcode)

	p, err := scanProduct(row)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get product by barcode: %w", err)
	}
	return p, nil
}

func (s *PgStorage) CreateProduct(ctx context.Context, p *Product) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO products (barcode, name, description, brand, category_id, distributor_id,
			quantity, net_price, margin_percent, vat_percent, sale_price,
			vehicle_type, oil_type, fuel_type, filter_type)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		 RETURNING id, active, created_at, updated_at`,
		p.Barcode, p.Name, p.Description, p.Brand, p.CategoryID, p.DistributorID,
		p.Quantity, p.NetPrice, p.MarginPercent, p.VATPercent, p.SalePrice,
		p.VehicleType, p.OilType, p.FuelType, p.FilterType).
		Scan(&p.ID, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return ErrAlreadyExists
		}
		if pg.IsForeignKeyViolationError(err) {
			return ErrInvalidReference
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (s *PgStorage) UpdateProduct(ctx context.Context, p *Product) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE products SET barcode = $2, name = $3, description = $4, brand = $5,
			category_id = $6, distributor_id = $7, quantity = $8,
			net_price = $9, margin_percent = $10, vat_percent = $11, sale_price = $12,
			vehicle_type = $13, oil_type = $14, fuel_type = $15, filter_type = $16,
			updated_at = NOW()
		 WHERE id = $1 AND active`,
		p.ID, p.Barcode, p.Name, p.Description, p.Brand,
		p.CategoryID, p.DistributorID, p.Quantity,
		p.NetPrice, p.MarginPercent, p.VATPercent, p.SalePrice,
		p.VehicleType, p.OilType, p.FuelType, p.FilterType)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return ErrAlreadyExists
		}
		if pg.IsForeignKeyViolationError(err) {
			return ErrInvalidReference
		}
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PgStorage) SoftDeleteProduct(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx,
		"UPDATE products SET active = FALSE, updated_at = NOW() WHERE id = $1 AND active", id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// rowScanner covers both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*Product, error) {
	var p Product
	err := row.Scan(
		&p.ID, &p.Barcode, &p.Name, &p.Description, &p.Brand, &p.CategoryID, &p.DistributorID,
		&p.Quantity, &p.NetPrice, &p.MarginPercent, &p.VATPercent, &p.SalePrice,
		&p.VehicleType, &p.OilType, &p.FuelType, &p.FilterType,
		&p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
