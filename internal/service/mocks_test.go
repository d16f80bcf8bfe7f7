package service

import (
	"context"

	"github.com/rso-shop/stock-service/internal/domain"
	"github.com/rso-shop/stock-service/internal/repository"
)

// Mock repositories for testing, keyed by tenant and product id.

type mockStockRepository struct {
	records map[string]map[string]domain.StockRecord
	err     error
}

func newMockStockRepository() *mockStockRepository {
	return &mockStockRepository{records: make(map[string]map[string]domain.StockRecord)}
}

func (m *mockStockRepository) Get(_ context.Context, tenant, productID string) (*domain.StockRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	rec, ok := m.records[tenant][productID]
	if !ok {
		return nil, repository.ErrStockNotFound
	}
	return &rec, nil
}

func (m *mockStockRepository) Upsert(_ context.Context, tenant, productID string, amount int) error {
	if m.err != nil {
		return m.err
	}
	if m.records[tenant] == nil {
		m.records[tenant] = make(map[string]domain.StockRecord)
	}
	m.records[tenant][productID] = domain.StockRecord{ProductID: productID, StockAmount: amount}
	return nil
}

func (m *mockStockRepository) DistinctProductIDs(_ context.Context, tenant string) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	ids := make([]string, 0, len(m.records[tenant]))
	for id := range m.records[tenant] {
		ids = append(ids, id)
	}
	return ids, nil
}

func (m *mockStockRepository) InsertMany(_ context.Context, tenant string, recs []domain.StockRecord) error {
	if m.err != nil {
		return m.err
	}
	if m.records[tenant] == nil {
		m.records[tenant] = make(map[string]domain.StockRecord)
	}
	for _, rec := range recs {
		m.records[tenant][rec.ProductID] = rec
	}
	return nil
}

type mockProductRepository struct {
	records map[string]map[string]domain.ProductRecord
	inserts int
	err     error
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{records: make(map[string]map[string]domain.ProductRecord)}
}

func (m *mockProductRepository) Get(_ context.Context, tenant, productID string) (*domain.ProductRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	rec, ok := m.records[tenant][productID]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return &rec, nil
}

func (m *mockProductRepository) Insert(_ context.Context, tenant string, rec *domain.ProductRecord) error {
	if m.err != nil {
		return m.err
	}
	m.inserts++
	if m.records[tenant] == nil {
		m.records[tenant] = make(map[string]domain.ProductRecord)
	}
	m.records[tenant][rec.ProductID] = *rec
	return nil
}

func (m *mockProductRepository) InsertMany(_ context.Context, tenant string, recs []domain.ProductRecord) error {
	if m.err != nil {
		return m.err
	}
	if m.records[tenant] == nil {
		m.records[tenant] = make(map[string]domain.ProductRecord)
	}
	for _, rec := range recs {
		m.inserts++
		m.records[tenant][rec.ProductID] = rec
	}
	return nil
}

type capturingPublisher struct {
	productEvents []domain.ProductRecord
	stockEvents   []domain.StockRecord
	err           error
}

func (p *capturingPublisher) PublishProductCreated(_ context.Context, _ string, rec domain.ProductRecord) error {
	if p.err != nil {
		return p.err
	}
	p.productEvents = append(p.productEvents, rec)
	return nil
}

func (p *capturingPublisher) PublishStockUpdated(_ context.Context, _ string, rec domain.StockRecord) error {
	if p.err != nil {
		return p.err
	}
	p.stockEvents = append(p.stockEvents, rec)
	return nil
}
