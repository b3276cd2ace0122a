package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stock-assistant-api/internal/domain"
	"github.com/jhoicas/stock-assistant-api/internal/domain/entity"
	"github.com/jhoicas/stock-assistant-api/internal/domain/query"
	"github.com/jhoicas/stock-assistant-api/internal/domain/repository"
	"github.com/jhoicas/stock-assistant-api/internal/domain/specification"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `p.id, p.uuid, p.sku, p.name, p.description, p.price, p.category, p.unit_of_measure, p.created_at, p.updated_at`

var productFields = columnMap{
	specification.FieldID:            "p.uuid",
	specification.FieldSKU:           "p.sku",
	specification.FieldName:          "p.name",
	specification.FieldDescription:   "p.description",
	specification.FieldPrice:         "p.price",
	specification.FieldCategory:      "p.category",
	specification.FieldUnitOfMeasure: "p.unit_of_measure",
	specification.FieldCreatedAt:     "p.created_at",
	specification.FieldUpdatedAt:     "p.updated_at",
}

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Find lista productos que cumplen el filtro, paginados. Total no depende de la paginación.
func (r *ProductRepo) Find(ctx context.Context, f entity.ProductFilter) (*query.Page[entity.Product], error) {
	spec, err := specification.Product(f)
	if err != nil {
		return nil, err
	}
	var args sqlArgs
	where, err := renderWhere(spec, productFields, &args)
	if err != nil {
		return nil, err
	}
	orderBy, err := renderOrderBy(f.Page.Sort, productFields, "p.id")
	if err != nil {
		return nil, err
	}

	var total int64
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM products p`+where, args...).Scan(&total); err != nil {
		if isInvalidText(err) {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidFilter, err)
		}
		return nil, fmt.Errorf("count products: %w", err)
	}

	limit := renderPage(f.Page, &args)
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products p`+where+orderBy+limit, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var items []entity.Product
	for rows.Next() {
		rec, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p, err := ToProduct(rec)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return query.NewPage(items, total, f.Page), nil
}

// FindByID obtiene un producto por UUID. (nil, nil) si no existe.
func (r *ProductRepo) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	rec, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products p WHERE p.uuid = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	p, err := ToProduct(rec)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Save inserta el producto si no tiene ID (genera UUID) o reemplaza sus campos mutables.
// created_at/updated_at los fija la base de datos.
func (r *ProductRepo) Save(ctx context.Context, p *entity.Product) error {
	rec := FromProduct(*p)
	var row pgx.Row
	if rec.UUID == "" {
		rec.UUID = uuid.New().String()
		row = r.q.QueryRow(ctx, `
			INSERT INTO products (uuid, sku, name, description, price, category, unit_of_measure, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
			RETURNING created_at, updated_at`,
			rec.UUID, rec.SKU, rec.Name, rec.Description, rec.Price, rec.Category, rec.UnitOfMeasure,
		)
	} else {
		row = r.q.QueryRow(ctx, `
			UPDATE products SET sku = $2, name = $3, description = $4, price = $5, category = $6,
				unit_of_measure = $7, updated_at = now()
			WHERE uuid = $1
			RETURNING created_at, updated_at`,
			rec.UUID, rec.SKU, rec.Name, rec.Description, rec.Price, rec.Category, rec.UnitOfMeasure,
		)
	}
	if err := row.Scan(&rec.CreatedAt, &rec.UpdatedAt); err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return domain.ErrNotFound
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isInvalidValue(err):
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return fmt.Errorf("save product: %w", err)
	}
	p.ID = rec.UUID
	p.CreatedAt = rec.CreatedAt
	p.UpdatedAt = rec.UpdatedAt
	return nil
}

// DeleteByID elimina un producto por UUID. Borrar un UUID inexistente no es error.
// Las filas de inventario del producto se eliminan en cascada.
func (r *ProductRepo) DeleteByID(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE uuid = $1`, id)
	if err != nil {
		if isInvalidText(err) {
			return fmt.Errorf("%w: id %q", domain.ErrInvalidInput, id)
		}
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// scanProduct lee las columnas de productColumns en ese orden.
func scanProduct(row pgx.Row) (ProductRecord, error) {
	var rec ProductRecord
	err := row.Scan(&rec.ID, &rec.UUID, &rec.SKU, &rec.Name, &rec.Description, &rec.Price,
		&rec.Category, &rec.UnitOfMeasure, &rec.CreatedAt, &rec.UpdatedAt)
	return rec, err
}
