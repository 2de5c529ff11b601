package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names in the analytics database.
const (
	employeesCollection    = "employees_salaries"
	customersCollection    = "customers"
	accountsCollection     = "accounts"
	transactionsCollection = "transactions"
	tripsCollection        = "trips"
)

// BaseRepository provides common functionality for all repositories.
type BaseRepository struct {
	DB *mongo.Database
}

// aggregate runs a pipeline against the named collection and decodes every
// resulting document into results, which must be a pointer to a slice.
func (r *BaseRepository) aggregate(ctx context.Context, collection string, pipeline mongo.Pipeline, results interface{}) error {
	cur, err := r.DB.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return fmt.Errorf("error running %s aggregation: %w", collection, err)
	}
	defer cur.Close(ctx)

	if err := cur.All(ctx, results); err != nil {
		return fmt.Errorf("error decoding %s aggregation rows: %w", collection, err)
	}
	return nil
}
