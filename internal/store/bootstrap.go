package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Kind names a bootstrapped collection.
type Kind string

const (
	KindStock    Kind = "stock"
	KindProducts Kind = "products"
)

// namespaceExistsCode is MongoDB's NamespaceExists error code, returned
// when two callers race on creating the same collection.
const namespaceExistsCode = 48

// schemas holds the $jsonSchema validator attached to each collection at
// creation time. The store enforces these on every write.
var schemas = map[Kind]bson.M{
	KindStock: {
		"bsonType": "object",
		"required": bson.A{"product_id", "stock_amount"},
		"properties": bson.M{
			"product_id": bson.M{
				"bsonType":    "string",
				"description": "must be a string and is required",
			},
			"stock_amount": bson.M{
				"bsonType":    "int",
				"description": "must be an integer and is required",
			},
		},
	},
	KindProducts: {
		"bsonType": "object",
		"required": bson.A{"product_id", "seller_id", "name", "price", "image_b64", "description"},
		"properties": bson.M{
			"product_id": bson.M{
				"bsonType":    "string",
				"description": "must be a string and is required",
			},
			"seller_id": bson.M{
				"bsonType":    "string",
				"description": "must be a string and is required",
			},
			"name": bson.M{
				"bsonType":    "string",
				"description": "must be a string and is required",
			},
			"price": bson.M{
				"bsonType":    "double",
				"description": "must be a double and is required",
			},
			"image_b64": bson.M{
				"bsonType":    "string",
				"description": "must be a string and is required",
			},
			"description": bson.M{
				"bsonType":    "string",
				"description": "must be a string and is required",
			},
		},
	},
}

// database is the slice of *mongo.Database the bootstrapper needs.
type database interface {
	ListCollectionNames(ctx context.Context, filter interface{}, opts ...*options.ListCollectionsOptions) ([]string, error)
	CreateCollection(ctx context.Context, name string, opts ...*options.CreateCollectionOptions) error
}

// Bootstrapper lazily creates the stock and products collections with
// their schema validators attached. It is called before every data
// operation, so EnsureCollection must be cheap to repeat and must never
// fail when the collection is already present.
type Bootstrapper struct {
	logger *zap.Logger
}

func NewBootstrapper(logger *zap.Logger) *Bootstrapper {
	return &Bootstrapper{
		logger: logger,
	}
}

// EnsureCollection creates the collection for kind if it does not exist
// yet. Only a definitive "collection absent" answer triggers creation;
// any other store error propagates so connectivity failures are not
// masked as a missing collection.
func (b *Bootstrapper) EnsureCollection(ctx context.Context, db database, kind Kind) error {
	names, err := db.ListCollectionNames(ctx, bson.M{"name": string(kind)})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}
	if len(names) > 0 {
		return nil
	}

	b.logger.Info("Creating collection",
		zap.String("collection", string(kind)))

	opts := options.CreateCollection().SetValidator(bson.M{"$jsonSchema": schemas[kind]})
	if err := db.CreateCollection(ctx, string(kind), opts); err != nil {
		var cmdErr mongo.CommandError
		if errors.As(err, &cmdErr) && cmdErr.Code == namespaceExistsCode {
			// Lost the creation race; the collection exists now.
			return nil
		}
		return fmt.Errorf("failed to create collection %q: %w", kind, err)
	}

	return nil
}
