package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rso-shop/stock-service/internal/domain"
	"github.com/rso-shop/stock-service/internal/store"
)

var (
	ErrStockNotFound   = errors.New("stock record not found")
	ErrProductNotFound = errors.New("product not found")
)

// StockRepository persists stock records in a tenant's "stock"
// collection. Every operation resolves the tenant database and runs the
// schema bootstrap before touching the collection.
type StockRepository struct {
	router    *store.Router
	bootstrap *store.Bootstrapper
}

func NewStockRepository(router *store.Router, bootstrap *store.Bootstrapper) *StockRepository {
	return &StockRepository{
		router:    router,
		bootstrap: bootstrap,
	}
}

func (r *StockRepository) collection(ctx context.Context, tenant string) (*mongo.Collection, error) {
	db, err := r.router.Resolve(tenant)
	if err != nil {
		return nil, err
	}
	if err := r.bootstrap.EnsureCollection(ctx, db, store.KindStock); err != nil {
		return nil, err
	}
	return db.Collection(string(store.KindStock)), nil
}

func (r *StockRepository) Get(ctx context.Context, tenant, productID string) (*domain.StockRecord, error) {
	coll, err := r.collection(ctx, tenant)
	if err != nil {
		return nil, err
	}

	var rec domain.StockRecord
	err = coll.FindOne(ctx, bson.M{"product_id": productID}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrStockNotFound
		}
		return nil, fmt.Errorf("failed to find stock record: %w", err)
	}

	return &rec, nil
}

// Upsert sets the stock amount for productID, inserting the record if it
// does not exist yet. The write is a single atomic upsert keyed on
// product_id; concurrent writers race last-write-wins.
func (r *StockRepository) Upsert(ctx context.Context, tenant, productID string, amount int) error {
	coll, err := r.collection(ctx, tenant)
	if err != nil {
		return err
	}

	_, err = coll.UpdateOne(ctx,
		bson.M{"product_id": productID},
		bson.M{"$set": bson.M{"stock_amount": amount}},
		options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert stock record: %w", err)
	}

	return nil
}

// DistinctProductIDs returns every product_id that has a stock record.
func (r *StockRepository) DistinctProductIDs(ctx context.Context, tenant string) ([]string, error) {
	coll, err := r.collection(ctx, tenant)
	if err != nil {
		return nil, err
	}

	values, err := coll.Distinct(ctx, "product_id", bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list product ids: %w", err)
	}

	ids := make([]string, 0, len(values))
	for _, v := range values {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *StockRepository) InsertMany(ctx context.Context, tenant string, recs []domain.StockRecord) error {
	if len(recs) == 0 {
		return nil
	}

	coll, err := r.collection(ctx, tenant)
	if err != nil {
		return err
	}

	docs := make([]interface{}, 0, len(recs))
	for _, rec := range recs {
		docs = append(docs, rec)
	}

	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert stock records: %w", err)
	}
	return nil
}
