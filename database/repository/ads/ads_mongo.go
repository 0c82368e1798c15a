// File: database/repository/ads/ads_mongo.go
package adsRepo

import (
	"context"
	"fmt"
	"time"

	"ard/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAdRepo implements AdRepository using MongoDB.
type MongoAdRepo struct {
	coll *mongo.Collection
}

// NewMongoAdRepo creates a new instance of AdRepository using MongoDB.
func NewMongoAdRepo() AdRepository {
	coll := database.MongoClient.Database("ard").Collection("ads")
	repo := &MongoAdRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAdRepo) ensureIndexes() error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "expiresAt", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
