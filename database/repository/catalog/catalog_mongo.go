package catalog

import (
	"context"
	"fmt"
	"time"

	"hogarlink/database"
	"hogarlink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCatalogRepo reads the service_catalog collection.
type MongoCatalogRepo struct {
	coll *mongo.Collection
}

func NewMongoCatalogRepo() *MongoCatalogRepo {
	return &MongoCatalogRepo{coll: database.Collection("service_catalog")}
}

func (r *MongoCatalogRepo) ListEntries(ctx context.Context) ([]models.ServiceCatalogEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to load service catalog: %w", err)
	}
	var entries []models.ServiceCatalogEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode service catalog: %w", err)
	}
	return entries, nil
}
