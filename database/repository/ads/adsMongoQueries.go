// File: database/repository/ads/adsMongoQueries.go
package adsRepo

import (
	"errors"
	"fmt"
	"time"

	"ard/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID retrieves an ad by its unique ID.
func (r *MongoAdRepo) GetByID(id string) (*models.Ad, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var ad models.Ad
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&ad); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch ad with id %s: %w", id, err)
	}
	return &ad, nil
}

// GetAll retrieves the full ad snapshot, newest first.
func (r *MongoAdRepo) GetAll() ([]models.Ad, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ads: %w", err)
	}
	defer cursor.Close(ctx)

	var ads []models.Ad
	if err := cursor.All(ctx, &ads); err != nil {
		return nil, fmt.Errorf("failed to decode ads: %w", err)
	}
	return ads, nil
}

// GetByUser retrieves every ad owned by the given user, newest first.
func (r *MongoAdRepo) GetByUser(userID string) ([]models.Ad, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ads for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var ads []models.Ad
	if err := cursor.All(ctx, &ads); err != nil {
		return nil, fmt.Errorf("failed to decode ads for user %s: %w", userID, err)
	}
	return ads, nil
}
