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

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

const warehouseColumns = `w.id, w.uuid, w.name, w.location, w.capacity, w.created_at, w.updated_at`

var warehouseFields = columnMap{
	specification.FieldID:        "w.uuid",
	specification.FieldName:      "w.name",
	specification.FieldLocation:  "w.location",
	specification.FieldCapacity:  "w.capacity",
	specification.FieldCreatedAt: "w.created_at",
	specification.FieldUpdatedAt: "w.updated_at",
}

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas.
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// Find lista bodegas que cumplen el filtro, paginadas.
func (r *WarehouseRepo) Find(ctx context.Context, f entity.WarehouseFilter) (*query.Page[entity.Warehouse], error) {
	spec, err := specification.Warehouse(f)
	if err != nil {
		return nil, err
	}
	var args sqlArgs
	where, err := renderWhere(spec, warehouseFields, &args)
	if err != nil {
		return nil, err
	}
	orderBy, err := renderOrderBy(f.Page.Sort, warehouseFields, "w.id")
	if err != nil {
		return nil, err
	}

	var total int64
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM warehouses w`+where, args...).Scan(&total); err != nil {
		if isInvalidText(err) {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidFilter, err)
		}
		return nil, fmt.Errorf("count warehouses: %w", err)
	}

	limit := renderPage(f.Page, &args)
	rows, err := r.q.Query(ctx, `SELECT `+warehouseColumns+` FROM warehouses w`+where+orderBy+limit, args...)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()
	var items []entity.Warehouse
	for rows.Next() {
		rec, err := scanWarehouse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		items = append(items, ToWarehouse(rec))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	return query.NewPage(items, total, f.Page), nil
}

// FindByID obtiene una bodega por UUID. (nil, nil) si no existe.
func (r *WarehouseRepo) FindByID(ctx context.Context, id string) (*entity.Warehouse, error) {
	rec, err := scanWarehouse(r.q.QueryRow(ctx, `SELECT `+warehouseColumns+` FROM warehouses w WHERE w.uuid = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	w := ToWarehouse(rec)
	return &w, nil
}

// Save inserta (ID vacío) o reemplaza los campos mutables de la bodega.
func (r *WarehouseRepo) Save(ctx context.Context, w *entity.Warehouse) error {
	rec := FromWarehouse(*w)
	var row pgx.Row
	if rec.UUID == "" {
		rec.UUID = uuid.New().String()
		row = r.q.QueryRow(ctx, `
			INSERT INTO warehouses (uuid, name, location, capacity, created_at, updated_at)
			VALUES ($1, $2, $3, $4, now(), now())
			RETURNING created_at, updated_at`,
			rec.UUID, rec.Name, rec.Location, rec.Capacity,
		)
	} else {
		row = r.q.QueryRow(ctx, `
			UPDATE warehouses SET name = $2, location = $3, capacity = $4, updated_at = now()
			WHERE uuid = $1
			RETURNING created_at, updated_at`,
			rec.UUID, rec.Name, rec.Location, rec.Capacity,
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
		return fmt.Errorf("save warehouse: %w", err)
	}
	w.ID = rec.UUID
	w.CreatedAt = rec.CreatedAt
	w.UpdatedAt = rec.UpdatedAt
	return nil
}

// DeleteByID elimina una bodega por UUID (idempotente).
func (r *WarehouseRepo) DeleteByID(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM warehouses WHERE uuid = $1`, id)
	if err != nil {
		if isInvalidText(err) {
			return fmt.Errorf("%w: id %q", domain.ErrInvalidInput, id)
		}
		return fmt.Errorf("delete warehouse: %w", err)
	}
	return nil
}

func scanWarehouse(row pgx.Row) (WarehouseRecord, error) {
	var rec WarehouseRecord
	err := row.Scan(&rec.ID, &rec.UUID, &rec.Name, &rec.Location, &rec.Capacity, &rec.CreatedAt, &rec.UpdatedAt)
	return rec, err
}
