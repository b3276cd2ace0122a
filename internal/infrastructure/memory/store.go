// Package memory implementa los puertos de repositorio en memoria evaluando la misma query.Spec
// que el adaptador PostgreSQL. Seguro para uso concurrente.
package memory

import (
	"sync"
	"time"

	"github.com/jhoicas/stock-assistant-api/internal/domain/entity"
)

type productRow struct {
	id int64
	p  entity.Product
}

type warehouseRow struct {
	id int64
	w  entity.Warehouse
}

type inventoryKey struct {
	productID   string
	warehouseID string
}

type inventoryRow struct {
	id              int64
	quantity        int
	lastStockUpdate time.Time
}

// Store almacenamiento compartido por los tres repositorios (el inventario referencia
// productos y bodegas). seq emula la clave interna autoincremental.
type Store struct {
	mu         sync.RWMutex
	now        func() time.Time
	last       time.Time
	seq        int64
	products   map[string]*productRow
	warehouses map[string]*warehouseRow
	inventory  map[inventoryKey]*inventoryRow
}

// Option configura el Store.
type Option func(*Store)

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore crea un almacenamiento vacío.
func NewStore(opts ...Option) *Store {
	s := &Store{
		now:        time.Now,
		products:   make(map[string]*productRow),
		warehouses: make(map[string]*warehouseRow),
		inventory:  make(map[inventoryKey]*inventoryRow),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Products devuelve el repositorio de productos.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// Warehouses devuelve el repositorio de bodegas.
func (s *Store) Warehouses() *WarehouseRepo { return &WarehouseRepo{s: s} }

// Inventory devuelve el repositorio de inventario.
func (s *Store) Inventory() *InventoryRepo { return &InventoryRepo{s: s} }

// tick devuelve un instante estrictamente posterior al anterior, con precisión de microsegundos
// como TIMESTAMPTZ. Requiere s.mu tomado en escritura.
func (s *Store) tick() time.Time {
	t := s.now().UTC().Truncate(time.Microsecond)
	if !t.After(s.last) {
		t = s.last.Add(time.Microsecond)
	}
	s.last = t
	return t
}

func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}
