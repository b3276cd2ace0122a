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

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

const inventorySelect = `
	SELECT i.id, i.uuid, i.quantity, i.last_stock_update,
		` + productColumns + `,
		` + warehouseColumns + `
	FROM inventory i
	JOIN products p ON p.id = i.product_id
	JOIN warehouses w ON w.id = i.warehouse_id`

const inventoryFrom = `
	FROM inventory i
	JOIN products p ON p.id = i.product_id
	JOIN warehouses w ON w.id = i.warehouse_id`

var inventoryFields = columnMap{
	specification.FieldWarehouseID: "w.uuid",
	specification.FieldProductID:   "p.uuid",
}

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Acepta pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Find lista filas de inventario con producto y bodega resueltos, en orden de inserción.
func (r *InventoryRepo) Find(ctx context.Context, f entity.InventoryFilter) (*query.Page[entity.InventoryItem], error) {
	spec, err := specification.Inventory(f)
	if err != nil {
		return nil, err
	}
	var args sqlArgs
	where, err := renderWhere(spec, inventoryFields, &args)
	if err != nil {
		return nil, err
	}

	var total int64
	if err := r.q.QueryRow(ctx, `SELECT count(*)`+inventoryFrom+where, args...).Scan(&total); err != nil {
		if isInvalidText(err) {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidFilter, err)
		}
		return nil, fmt.Errorf("count inventory: %w", err)
	}

	limit := renderPage(f.Page, &args)
	rows, err := r.q.Query(ctx, inventorySelect+where+` ORDER BY i.id ASC`+limit, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var items []entity.InventoryItem
	for rows.Next() {
		rec, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		item, err := ToInventoryItem(rec)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	return query.NewPage(items, total, f.Page), nil
}

// FindByKey obtiene la fila de la clave compuesta. (nil, nil) si no existe.
func (r *InventoryRepo) FindByKey(ctx context.Context, warehouseID, productID string) (*entity.InventoryItem, error) {
	rec, err := scanInventoryItem(r.q.QueryRow(ctx, inventorySelect+`
	WHERE w.uuid = $1 AND p.uuid = $2`, warehouseID, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	item, err := ToInventoryItem(rec)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Save crea o sobrescribe la fila del par (producto, bodega) resolviendo ambos UUID
// a sus claves internas en la misma sentencia. Si alguno no existe no se inserta nada.
func (r *InventoryRepo) Save(ctx context.Context, item *entity.InventoryItem) error {
	rec := FromInventoryItem(*item)
	var id int64
	err := r.q.QueryRow(ctx, `
		INSERT INTO inventory (uuid, product_id, warehouse_id, quantity, last_stock_update)
		SELECT $1, p.id, w.id, $4, now()
		FROM products p, warehouses w
		WHERE p.uuid = $2 AND w.uuid = $3
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, last_stock_update = now()
		RETURNING id`,
		uuid.New().String(), rec.ProductUUID, rec.WarehouseUUID, rec.Quantity,
	).Scan(&id)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows), isInvalidText(err):
			return fmt.Errorf("%w: producto %q o bodega %q inexistente", domain.ErrInvalidInput, rec.ProductUUID, rec.WarehouseUUID)
		case isInvalidValue(err):
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return fmt.Errorf("save inventory item: %w", err)
	}
	saved, err := r.FindByKey(ctx, rec.WarehouseUUID, rec.ProductUUID)
	if err != nil {
		return err
	}
	if saved == nil {
		return domain.ErrNotFound
	}
	*item = *saved
	return nil
}

// UpdateQuantity fija la cantidad y refresca last_stock_update en una única sentencia
// condicionada por la clave compuesta. Devuelve las filas afectadas (0 = no existe la fila).
func (r *InventoryRepo) UpdateQuantity(ctx context.Context, warehouseID, productID string, quantity int) (int64, error) {
	tag, err := r.q.Exec(ctx, `
		UPDATE inventory i SET quantity = $3, last_stock_update = now()
		FROM products p, warehouses w
		WHERE i.product_id = p.id AND i.warehouse_id = w.id
		  AND w.uuid = $1 AND p.uuid = $2`,
		warehouseID, productID, quantity,
	)
	if err != nil {
		if isInvalidText(err) {
			return 0, nil
		}
		if isInvalidValue(err) {
			return 0, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return 0, fmt.Errorf("update inventory quantity: %w", err)
	}
	return tag.RowsAffected(), nil
}

// scanInventoryItem lee inventorySelect: inventario, luego productColumns y warehouseColumns.
func scanInventoryItem(row pgx.Row) (InventoryItemRecord, error) {
	var (
		rec InventoryItemRecord
		p   ProductRecord
		w   WarehouseRecord
	)
	err := row.Scan(
		&rec.ID, &rec.UUID, &rec.Quantity, &rec.LastStockUpdate,
		&p.ID, &p.UUID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.Category, &p.UnitOfMeasure, &p.CreatedAt, &p.UpdatedAt,
		&w.ID, &w.UUID, &w.Name, &w.Location, &w.Capacity, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return rec, err
	}
	rec.ProductUUID = p.UUID
	rec.WarehouseUUID = w.UUID
	rec.Product = &p
	rec.Warehouse = &w
	return rec, nil
}
