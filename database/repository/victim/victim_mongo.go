package victimRepo

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

// MongoVictimRepo implements VictimRepository using MongoDB.
type MongoVictimRepo struct {
	coll *mongo.Collection
}

// NewMongoVictimRepo creates a new instance of VictimRepository using MongoDB.
func NewMongoVictimRepo() VictimRepository {
	coll := database.Collection("victims")
	repo := &MongoVictimRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoVictimRepo) ensureIndexes() error {
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

// GetByID retrieves a victim by its unique ID.
func (r *MongoVictimRepo) GetByID(id string) (*models.Victim, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var victim models.Victim
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&victim); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch victim with id %s: %w", id, err)
	}
	return &victim, nil
}

// GetByPhone retrieves a victim by its unique phone number.
func (r *MongoVictimRepo) GetByPhone(phone string) (*models.Victim, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var victim models.Victim
	if err := r.coll.FindOne(ctx, bson.M{"phone": phone}).Decode(&victim); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch victim with phone %s: %w", phone, err)
	}
	return &victim, nil
}

// Create inserts a new victim document.
func (r *MongoVictimRepo) Create(victim *models.Victim) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	victim.CreatedAt = now
	victim.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, victim); err != nil {
		return fmt.Errorf("failed to create victim: %w", err)
	}
	return nil
}

// Update applies a partial update document to a victim record.
func (r *MongoVictimRepo) Update(id string, update bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set, ok := update["$set"].(bson.M)
	if !ok {
		set = bson.M{}
		update["$set"] = set
	}
	set["updated_at"] = time.Now()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update victim with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("victim with id %s not found", id)
	}
	return nil
}
