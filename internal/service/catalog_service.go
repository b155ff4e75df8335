package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/dto"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/ledger"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/model"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/repository"
)

type CatalogService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	List(ctx context.Context) ([]dto.ProductResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type catalogService struct {
	repo     repository.ProductRepository
	txRepo   repository.TransactionRepository
	settings repository.SettingsRepository
}

func NewCatalogService(repo repository.ProductRepository, txRepo repository.TransactionRepository, settings repository.SettingsRepository) CatalogService {
	return &catalogService{repo: repo, txRepo: txRepo, settings: settings}
}

// entryPriceToEUR converts a submitted price to the canonical EUR value.
// Prices are entered in GBP when the vessel's purchase invoices are in GBP;
// stored data stays EUR so toggling the flag never rewrites the catalog.
func (s *catalogService) entryPriceToEUR(ctx context.Context, price decimal.Decimal) (decimal.Decimal, error) {
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	if cfg.UseGbpForPurchases {
		return ledger.GBPToEUR(price, cfg.GbpExchangeRate), nil
	}
	return price, nil
}

func (s *catalogService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	price, err := s.entryPriceToEUR(ctx, req.Price)
	if err != nil {
		return nil, err
	}

	unitType := req.UnitType
	if unitType == "" {
		unitType = "pcs"
	}
	packSize := req.PackSize
	if packSize < 1 {
		packSize = 1
	}

	p := &model.Product{
		ID:           uuid.New(),
		Name:         req.Name,
		Category:     req.Category,
		Price:        price,
		UnitType:     unitType,
		PackSize:     packSize,
		InitialStock: req.InitialStock,
		AddedStock1:  req.AddedStock1,
		AddedStock2:  req.AddedStock2,
		AddedStock3:  req.AddedStock3,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return s.withStock(ctx, p)
}

func (s *catalogService) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	txs, err := s.txRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	sorted := ledger.SortProducts(products)
	out := make([]dto.ProductResponse, 0, len(sorted))
	for _, p := range sorted {
		out = append(out, dto.ProductResponse{Product: p, CurrentStock: ledger.CurrentStock(p, txs)})
	}
	return out, nil
}

func (s *catalogService) Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.withStock(ctx, p)
}

func (s *catalogService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	price, err := s.entryPriceToEUR(ctx, req.Price)
	if err != nil {
		return nil, err
	}

	p.Name = req.Name
	p.Category = req.Category
	p.Price = price
	if req.UnitType != "" {
		p.UnitType = req.UnitType
	}
	if req.PackSize >= 1 {
		p.PackSize = req.PackSize
	}
	p.InitialStock = req.InitialStock
	p.AddedStock1 = req.AddedStock1
	p.AddedStock2 = req.AddedStock2
	p.AddedStock3 = req.AddedStock3

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return s.withStock(ctx, p)
}

func (s *catalogService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrNotFound
	}
	// Journal entries referencing the product are kept — aggregators treat
	// the dangling reference as a zero-contribution row.
	return s.repo.Delete(ctx, id)
}

func (s *catalogService) withStock(ctx context.Context, p *model.Product) (*dto.ProductResponse, error) {
	txs, err := s.txRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ProductResponse{Product: *p, CurrentStock: ledger.CurrentStock(*p, txs)}, nil
}
