package invoice

import (
	"context"
	"fmt"
	"time"

	"hogarlink/database"
	"hogarlink/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoInvoiceRepo implements InvoiceRepository backed by MongoDB.
type MongoInvoiceRepo struct {
	coll *mongo.Collection
}

func NewMongoInvoiceRepo() *MongoInvoiceRepo {
	return &MongoInvoiceRepo{coll: database.Collection("invoices")}
}

func (r *MongoInvoiceRepo) Create(ctx context.Context, invoice *models.Invoice) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, invoice); err != nil {
		return fmt.Errorf("failed to insert invoice: %w", err)
	}
	return nil
}
