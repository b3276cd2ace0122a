package usecase

import (
	"context"

	"github.com/jhoicas/stock-assistant-api/internal/domain"
	"github.com/jhoicas/stock-assistant-api/internal/domain/entity"
	"github.com/jhoicas/stock-assistant-api/internal/domain/query"
	"github.com/jhoicas/stock-assistant-api/internal/domain/repository"
	"github.com/jhoicas/stock-assistant-api/pkg/logger"
)

// WarehouseUseCase casos de uso CRUD para bodegas.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
	log  *logger.Logger
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository, log *logger.Logger) *WarehouseUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &WarehouseUseCase{repo: repo, log: log.Component("warehouse_usecase")}
}

func (uc *WarehouseUseCase) Fetch(ctx context.Context, f entity.WarehouseFilter) (*query.Page[entity.Warehouse], error) {
	page, err := uc.repo.Find(ctx, f)
	if err != nil {
		return nil, err
	}
	uc.log.Debug().Int("page", f.Page.Page).Int("page_size", f.Page.PageSize).
		Int64("total", page.Total).Msg("bodegas consultadas")
	return page, nil
}

// Get obtiene una bodega por ID.
func (uc *WarehouseUseCase) Get(ctx context.Context, id string) (*entity.Warehouse, error) {
	w, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	return w, nil
}

// Create crea una nueva bodega.
func (uc *WarehouseUseCase) Create(ctx context.Context, in entity.WarehouseRequest) (*entity.Warehouse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	w := entity.NewWarehouse(in)
	if err := uc.repo.Save(ctx, w); err != nil {
		return nil, err
	}
	uc.log.Info().Str("warehouse_id", w.ID).Msg("bodega creada")
	return w, nil
}

// Update reemplaza nombre, ubicación y capacidad.
func (uc *WarehouseUseCase) Update(ctx context.Context, id string, in entity.WarehouseRequest) (*entity.Warehouse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	w, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	w.Apply(in)
	if err := uc.repo.Save(ctx, w); err != nil {
		return nil, err
	}
	uc.log.Info().Str("warehouse_id", w.ID).Msg("bodega actualizada")
	return w, nil
}

// Delete elimina una bodega por ID junto con su inventario.
func (uc *WarehouseUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("warehouse_id", id).Msg("bodega eliminada")
	return nil
}
