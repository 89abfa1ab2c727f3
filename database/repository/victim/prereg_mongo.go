package victimRepo

import (
	"fmt"
	"time"

	"saarthi/database"
	"saarthi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPreRegisteredRepo implements PreRegisteredRepository using MongoDB.
type MongoPreRegisteredRepo struct {
	coll *mongo.Collection
}

// NewMongoPreRegisteredRepo creates a new instance of PreRegisteredRepository
// using MongoDB.
func NewMongoPreRegisteredRepo() PreRegisteredRepository {
	coll := database.Collection("pre_registered_victims")
	repo := &MongoPreRegisteredRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoPreRegisteredRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "phone", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a pre-registration by its unique ID.
func (r *MongoPreRegisteredRepo) GetByID(id string) (*models.PreRegisteredVictim, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var victim models.PreRegisteredVictim
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&victim); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch pre-registration with id %s: %w", id, err)
	}
	return &victim, nil
}

// GetByPhone retrieves a pre-registration by phone number.
func (r *MongoPreRegisteredRepo) GetByPhone(phone string) (*models.PreRegisteredVictim, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var victim models.PreRegisteredVictim
	if err := r.coll.FindOne(ctx, bson.M{"phone": phone}).Decode(&victim); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch pre-registration with phone %s: %w", phone, err)
	}
	return &victim, nil
}

// Create inserts a new pre-registration document.
func (r *MongoPreRegisteredRepo) Create(victim *models.PreRegisteredVictim) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	victim.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, victim); err != nil {
		return fmt.Errorf("failed to create pre-registration: %w", err)
	}
	return nil
}

// Update applies a partial update document to a pre-registration.
func (r *MongoPreRegisteredRepo) Update(id string, update bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update pre-registration with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("pre-registration with id %s not found", id)
	}
	return nil
}
