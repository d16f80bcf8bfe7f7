package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/rso-shop/stock-service/internal/domain"
)

// SeedLoader produces demo catalog and stock records, either from an
// external catalog API or a bundled fixture.
type SeedLoader interface {
	LoadSeedData(ctx context.Context) ([]domain.ProductRecord, []domain.StockRecord, error)
}

// SeedService populates a tenant's collections with demo data. Seeding
// is not idempotent: running it twice duplicates records.
type SeedService struct {
	loader      SeedLoader
	stockRepo   StockRepository
	productRepo ProductRepository
	logger      *zap.Logger
}

func NewSeedService(loader SeedLoader, stockRepo StockRepository, productRepo ProductRepository, logger *zap.Logger) *SeedService {
	return &SeedService{
		loader:      loader,
		stockRepo:   stockRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

func (s *SeedService) Generate(ctx context.Context, tenant string) error {
	products, stocks, err := s.loader.LoadSeedData(ctx)
	if err != nil {
		return err
	}

	if err := s.productRepo.InsertMany(ctx, tenant, products); err != nil {
		return err
	}
	if err := s.stockRepo.InsertMany(ctx, tenant, stocks); err != nil {
		return err
	}

	s.logger.Info("Seed data generated",
		zap.Int("products", len(products)),
		zap.Int("stock_records", len(stocks)))

	return nil
}
