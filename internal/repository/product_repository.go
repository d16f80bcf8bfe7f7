package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rso-shop/stock-service/internal/domain"
	"github.com/rso-shop/stock-service/internal/store"
)

// ProductRepository persists catalog records in a tenant's "products"
// collection.
type ProductRepository struct {
	router    *store.Router
	bootstrap *store.Bootstrapper
}

func NewProductRepository(router *store.Router, bootstrap *store.Bootstrapper) *ProductRepository {
	return &ProductRepository{
		router:    router,
		bootstrap: bootstrap,
	}
}

func (r *ProductRepository) collection(ctx context.Context, tenant string) (*mongo.Collection, error) {
	db, err := r.router.Resolve(tenant)
	if err != nil {
		return nil, err
	}
	if err := r.bootstrap.EnsureCollection(ctx, db, store.KindProducts); err != nil {
		return nil, err
	}
	return db.Collection(string(store.KindProducts)), nil
}

func (r *ProductRepository) Get(ctx context.Context, tenant, productID string) (*domain.ProductRecord, error) {
	coll, err := r.collection(ctx, tenant)
	if err != nil {
		return nil, err
	}

	var rec domain.ProductRecord
	err = coll.FindOne(ctx, bson.M{"product_id": productID}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product record: %w", err)
	}

	return &rec, nil
}

func (r *ProductRepository) Insert(ctx context.Context, tenant string, rec *domain.ProductRecord) error {
	coll, err := r.collection(ctx, tenant)
	if err != nil {
		return err
	}

	if _, err := coll.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("failed to insert product record: %w", err)
	}
	return nil
}

func (r *ProductRepository) InsertMany(ctx context.Context, tenant string, recs []domain.ProductRecord) error {
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
		return fmt.Errorf("failed to insert product records: %w", err)
	}
	return nil
}
