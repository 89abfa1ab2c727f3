package policeRepo

import (
	"context"
	"fmt"
	"time"

	"saarthi/database"
	"saarthi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPoliceRepo implements PoliceRepository using MongoDB.
type MongoPoliceRepo struct {
	coll *mongo.Collection
}

// NewMongoPoliceRepo creates a new instance of PoliceRepository using MongoDB.
func NewMongoPoliceRepo() PoliceRepository {
	coll := database.Collection("police")
	repo := &MongoPoliceRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPoliceRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an officer by its unique ID.
func (r *MongoPoliceRepo) GetByID(id string) (*models.PoliceOfficer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var officer models.PoliceOfficer
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&officer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch officer with id %s: %w", id, err)
	}
	return &officer, nil
}

// GetByEmail retrieves an officer by its email address.
func (r *MongoPoliceRepo) GetByEmail(email string) (*models.PoliceOfficer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var officer models.PoliceOfficer
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&officer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch officer with email %s: %w", email, err)
	}
	return &officer, nil
}

// Create inserts a new officer document.
func (r *MongoPoliceRepo) Create(officer *models.PoliceOfficer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	officer.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, officer); err != nil {
		return fmt.Errorf("failed to create officer: %w", err)
	}
	return nil
}
