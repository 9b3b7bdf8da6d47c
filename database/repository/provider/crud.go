// File: database/repository/provider/crud.go
package providerRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"carelink/models"
)

func (r *mongoProviderRepo) GetAll(ctx context.Context) ([]models.Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Sort by insertion time so List order stays stable across restarts.
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var providers []models.Provider
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

func (r *mongoProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var provider models.Provider
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&provider); err != nil {
		return nil, err
	}
	return &provider, nil
}

func (r *mongoProviderRepo) UpsertMany(ctx context.Context, providers []models.Provider) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	writes := make([]mongo.WriteModel, 0, len(providers))
	for _, p := range providers {
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"id": p.ID}).
			SetReplacement(p).
			SetUpsert(true))
	}
	if len(writes) == 0 {
		return nil
	}
	_, err := r.coll.BulkWrite(ctx, writes)
	return err
}

func (r *mongoProviderRepo) UpdateAvailability(ctx context.Context, id string, available bool, nextAvailable time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"available":     available,
		"nextAvailable": nextAvailable,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
