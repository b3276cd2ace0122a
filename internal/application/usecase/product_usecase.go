package usecase

import (
	"context"

	"github.com/jhoicas/stock-assistant-api/internal/domain"
	"github.com/jhoicas/stock-assistant-api/internal/domain/entity"
	"github.com/jhoicas/stock-assistant-api/internal/domain/query"
	"github.com/jhoicas/stock-assistant-api/internal/domain/repository"
	"github.com/jhoicas/stock-assistant-api/pkg/logger"
)

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	repo repository.ProductRepository
	log  *logger.Logger
}

// NewProductUseCase construye el caso de uso. log nil equivale a logger.Nop().
func NewProductUseCase(repo repository.ProductRepository, log *logger.Logger) *ProductUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ProductUseCase{repo: repo, log: log.Component("product_usecase")}
}

// Fetch delega en el repositorio.
func (uc *ProductUseCase) Fetch(ctx context.Context, f entity.ProductFilter) (*query.Page[entity.Product], error) {
	page, err := uc.repo.Find(ctx, f)
	if err != nil {
		return nil, err
	}
	uc.log.Debug().Int("page", f.Page.Page).Int("page_size", f.Page.PageSize).
		Int64("total", page.Total).Msg("productos consultados")
	return page, nil
}

// Get obtiene un producto por ID; si no existe devuelve domain.ErrNotFound.
func (uc *ProductUseCase) Get(ctx context.Context, id string) (*entity.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// Create valida y persiste un producto nuevo.
func (uc *ProductUseCase) Create(ctx context.Context, in entity.ProductRequest) (*entity.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	p := entity.NewProduct(in)
	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", p.ID).Str("sku", p.SKU).Msg("producto creado")
	return p, nil
}

// Update reemplaza todos los campos mutables de un producto existente.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in entity.ProductRequest) (*entity.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	p.Apply(in)
	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", p.ID).Msg("producto actualizado")
	return p, nil
}

// Delete elimina un producto. No falla si no existe.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("product_id", id).Msg("producto eliminado")
	return nil
}
