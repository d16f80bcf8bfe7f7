package service

import (
	"context"
	"errors"

	"github.com/rso-shop/stock-service/internal/domain"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrProductExists     = errors.New("product already exists")
	ErrInvalidStockValue = errors.New("stock value must be a non-negative integer")
)

// StockRepository is the persistence surface the stock service needs.
type StockRepository interface {
	Get(ctx context.Context, tenant, productID string) (*domain.StockRecord, error)
	Upsert(ctx context.Context, tenant, productID string, amount int) error
	DistinctProductIDs(ctx context.Context, tenant string) ([]string, error)
	InsertMany(ctx context.Context, tenant string, recs []domain.StockRecord) error
}

// ProductRepository is the persistence surface the product service needs.
type ProductRepository interface {
	Get(ctx context.Context, tenant, productID string) (*domain.ProductRecord, error)
	Insert(ctx context.Context, tenant string, rec *domain.ProductRecord) error
	InsertMany(ctx context.Context, tenant string, recs []domain.ProductRecord) error
}

// EventPublisher notifies downstream consumers of catalog and stock
// changes. Publishing is best-effort: failures are logged by the
// services and never fail the originating request.
type EventPublisher interface {
	PublishProductCreated(ctx context.Context, tenant string, rec domain.ProductRecord) error
	PublishStockUpdated(ctx context.Context, tenant string, rec domain.StockRecord) error
}
