package service

import (
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"

	"github.com/rso-shop/stock-service/internal/domain"
	"github.com/rso-shop/stock-service/internal/repository"
)

// StockService implements reads and absolute-value writes of stock
// records keyed by product id.
type StockService struct {
	stockRepo   StockRepository
	productRepo ProductRepository
	publisher   EventPublisher
	logger      *zap.Logger
}

// NewStockService builds a stock service. publisher may be nil when no
// event broker is configured.
func NewStockService(stockRepo StockRepository, productRepo ProductRepository, publisher EventPublisher, logger *zap.Logger) *StockService {
	return &StockService{
		stockRepo:   stockRepo,
		productRepo: productRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// GetStock returns the stock record for productID. A product with no
// stored record has a stock amount of zero; the zero record is
// synthesized for the response, never persisted.
func (s *StockService) GetStock(ctx context.Context, tenant, productID string) (*domain.StockRecord, error) {
	rec, err := s.stockRepo.Get(ctx, tenant, productID)
	if err != nil {
		if errors.Is(err, repository.ErrStockNotFound) {
			return &domain.StockRecord{ProductID: productID, StockAmount: 0}, nil
		}
		return nil, err
	}
	return rec, nil
}

// SetStock overwrites the stock amount for productID with rawValue,
// inserting the record if none exists. rawValue must parse as a
// non-negative integer, and the product must exist in the catalog.
func (s *StockService) SetStock(ctx context.Context, tenant, productID, rawValue string) (*domain.StockRecord, error) {
	amount, err := strconv.Atoi(rawValue)
	if err != nil || amount < 0 {
		s.logger.Warn("Rejected stock value",
			zap.String("product_id", productID),
			zap.String("value", rawValue))
		return nil, ErrInvalidStockValue
	}

	// Stock can only be written for a known product. The check holds at
	// write time only; products and stock mutate independently afterwards.
	if _, err := s.productRepo.Get(ctx, tenant, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			s.logger.Warn("Stock write for unknown product",
				zap.String("product_id", productID))
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if err := s.stockRepo.Upsert(ctx, tenant, productID, amount); err != nil {
		s.logger.Error("Failed to upsert stock record",
			zap.String("product_id", productID),
			zap.Error(err))
		return nil, err
	}

	rec := &domain.StockRecord{ProductID: productID, StockAmount: amount}

	s.logger.Info("Stock updated",
		zap.String("product_id", productID),
		zap.Int("stock_amount", amount))

	if s.publisher != nil {
		if err := s.publisher.PublishStockUpdated(ctx, tenant, *rec); err != nil {
			s.logger.Error("Failed to publish stock update event",
				zap.String("product_id", productID),
				zap.Error(err))
		}
	}

	return rec, nil
}

// ListProductIDs returns every product id present in the tenant's stock
// collection.
func (s *StockService) ListProductIDs(ctx context.Context, tenant string) ([]string, error) {
	return s.stockRepo.DistinctProductIDs(ctx, tenant)
}
