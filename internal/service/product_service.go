package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/rso-shop/stock-service/internal/domain"
	"github.com/rso-shop/stock-service/internal/repository"
)

// ProductService implements catalog lookups and insert-only catalog
// writes. Unlike stock, a missing product is an error, not a default.
type ProductService struct {
	productRepo ProductRepository
	publisher   EventPublisher
	logger      *zap.Logger
}

func NewProductService(productRepo ProductRepository, publisher EventPublisher, logger *zap.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

func (s *ProductService) GetProduct(ctx context.Context, tenant, productID string) (*domain.ProductRecord, error) {
	rec, err := s.productRepo.Get(ctx, tenant, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return rec, nil
}

// AddProduct inserts a new catalog record. Duplicate product ids are
// rejected; the stored record from the first insert is left untouched.
func (s *ProductService) AddProduct(ctx context.Context, tenant string, rec domain.ProductRecord) (*domain.ProductRecord, error) {
	_, err := s.productRepo.Get(ctx, tenant, rec.ProductID)
	if err == nil {
		s.logger.Warn("Product already exists",
			zap.String("product_id", rec.ProductID))
		return nil, ErrProductExists
	}
	if !errors.Is(err, repository.ErrProductNotFound) {
		return nil, err
	}

	if err := s.productRepo.Insert(ctx, tenant, &rec); err != nil {
		s.logger.Error("Failed to insert product",
			zap.String("product_id", rec.ProductID),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Product created",
		zap.String("product_id", rec.ProductID),
		zap.String("seller_id", rec.SellerID))

	if s.publisher != nil {
		if err := s.publisher.PublishProductCreated(ctx, tenant, rec); err != nil {
			s.logger.Error("Failed to publish product created event",
				zap.String("product_id", rec.ProductID),
				zap.Error(err))
		}
	}

	return &rec, nil
}
