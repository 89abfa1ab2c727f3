package referenceRepo

import (
	"context"
	"fmt"
	"time"

	"saarthi/database"
	"saarthi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoReferenceRepo implements ReferenceRepository using MongoDB.
type MongoReferenceRepo struct {
	sections *mongo.Collection
	rights   *mongo.Collection
}

// NewMongoReferenceRepo creates a new instance of ReferenceRepository using
// MongoDB.
func NewMongoReferenceRepo() ReferenceRepository {
	return &MongoReferenceRepo{
		sections: database.Collection("ipc_sections"),
		rights:   database.Collection("legal_rights"),
	}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetIPCSections retrieves all seeded IPC sections.
func (r *MongoReferenceRepo) GetIPCSections() ([]models.IPCSection, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.sections.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve IPC sections: %w", err)
	}
	defer cursor.Close(ctx)

	var sections []models.IPCSection
	for cursor.Next(ctx) {
		var s models.IPCSection
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode IPC section: %w", err)
		}
		sections = append(sections, s)
	}
	return sections, nil
}

// GetLegalRights retrieves all seeded legal rights.
func (r *MongoReferenceRepo) GetLegalRights() ([]models.LegalRight, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.rights.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve legal rights: %w", err)
	}
	defer cursor.Close(ctx)

	var rights []models.LegalRight
	for cursor.Next(ctx) {
		var lr models.LegalRight
		if err := cursor.Decode(&lr); err != nil {
			return nil, fmt.Errorf("failed to decode legal right: %w", err)
		}
		rights = append(rights, lr)
	}
	return rights, nil
}
