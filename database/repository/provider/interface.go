// File: database/repository/provider/interface.go
package providerRepo

import (
	"context"
	"time"

	"carelink/database"
	"carelink/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ProviderRepository persists the provider catalog. The directory itself is
// read-only at query time; writes come from seeding and the external
// scheduling feed.
type ProviderRepository interface {
	GetAll(ctx context.Context) ([]models.Provider, error)
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	UpsertMany(ctx context.Context, providers []models.Provider) error
	UpdateAvailability(ctx context.Context, id string, available bool, nextAvailable time.Time) error
}

type mongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo constructs a new MongoDB ProviderRepository.
func NewMongoProviderRepo() ProviderRepository {
	db := database.MongoClient.Database("carelink")
	return &mongoProviderRepo{
		coll: db.Collection("providers"),
	}
}
