package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"poojaghar/config"
	"poojaghar/database"
	"poojaghar/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	mantras     *mongo.Collection
	serviceItem *mongo.Collection
	astrologers *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoCatalogRepo{
		mantras:     db.Collection("mantras"),
		serviceItem: db.Collection("service_item"),
		astrologers: db.Collection("astrologers"),
	}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// AllMantras retrieves every document in the mantras collection.
func (r *MongoCatalogRepo) AllMantras() ([]models.Mantra, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.mantras.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve mantras: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Mantra
	for cursor.Next(ctx) {
		var m models.Mantra
		if err := cursor.Decode(&m); err != nil {
			return nil, fmt.Errorf("failed to decode mantra: %w", err)
		}
		out = append(out, m)
	}
	return out, cursor.Err()
}

// AllServiceItems retrieves every document in the service_item collection.
func (r *MongoCatalogRepo) AllServiceItems() ([]models.ServiceItem, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.serviceItem.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve service items: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.ServiceItem
	for cursor.Next(ctx) {
		var item models.ServiceItem
		if err := cursor.Decode(&item); err != nil {
			return nil, fmt.Errorf("failed to decode service item: %w", err)
		}
		out = append(out, item)
	}
	return out, cursor.Err()
}

// AllAstrologers retrieves every document in the astrologers collection.
func (r *MongoCatalogRepo) AllAstrologers() ([]models.Astrologer, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.astrologers.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve astrologers: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Astrologer
	for cursor.Next(ctx) {
		var a models.Astrologer
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode astrologer: %w", err)
		}
		out = append(out, a)
	}
	return out, cursor.Err()
}

// AstrologerByID retrieves a single astrologer document.
func (r *MongoCatalogRepo) AstrologerByID(id string) (*models.Astrologer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	// Catalog documents carry string IDs (they originate from an external
	// importer), so no ObjectID conversion here.
	var a models.Astrologer
	if err := r.astrologers.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch astrologer with id %s: %w", id, err)
	}
	return &a, nil
}
