// File: database/repository/ads/adsMongoCrud.go
package adsRepo

import (
	"fmt"
	"time"

	"ard/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Insert stores a new ad document.
func (r *MongoAdRepo) Insert(ad *models.Ad) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, ad); err != nil {
		return fmt.Errorf("failed to insert ad: %w", err)
	}
	return nil
}

// Replace overwrites an existing ad document.
func (r *MongoAdRepo) Replace(ad *models.Ad) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.ReplaceOne(ctx, bson.M{"id": ad.ID}, ad)
	if err != nil {
		return fmt.Errorf("failed to replace ad with id %s: %w", ad.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an ad document by its ID.
func (r *MongoAdRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete ad with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteExpired removes every document past its expiry.
func (r *MongoAdRepo) DeleteExpired(nowMillis int64) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteMany(ctx, bson.M{"expiresAt": bson.M{"$lte": nowMillis}})
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired ads: %w", err)
	}
	return result.DeletedCount, nil
}

// IncrementInsight bumps a single counter, and the derived contacts total for
// contact-classified kinds, in one update document so the composite increment
// cannot race a concurrent recording for the same ad.
func (r *MongoAdRepo) IncrementInsight(id string, kind models.InsightKind, contact bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	inc := bson.M{"insights." + string(kind): 1}
	if contact {
		inc["insights.contacts"] = 1
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$inc": inc})
	if err != nil {
		return fmt.Errorf("failed to record %s insight for ad %s: %w", kind, id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// PushReview prepends a review so storage order stays newest-first.
func (r *MongoAdRepo) PushReview(id string, review models.Review) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{
			"reviews": bson.M{
				"$each":     []models.Review{review},
				"$position": 0,
			},
		},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to add review to ad %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
