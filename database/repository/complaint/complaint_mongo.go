package complaintRepo

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

// MongoComplaintRepo implements ComplaintRepository using MongoDB.
type MongoComplaintRepo struct {
	coll *mongo.Collection
}

// NewMongoComplaintRepo creates a new instance of ComplaintRepository using MongoDB.
func NewMongoComplaintRepo() ComplaintRepository {
	coll := database.Collection("complaints")
	repo := &MongoComplaintRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoComplaintRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "complainantId", Value: 1}}},
		{Keys: bson.D{{Key: "complainantPhone", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoComplaintRepo) find(filter bson.M) ([]models.Complaint, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "filedAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve complaints: %w", err)
	}
	defer cursor.Close(ctx)

	var complaints []models.Complaint
	for cursor.Next(ctx) {
		var c models.Complaint
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode complaint: %w", err)
		}
		complaints = append(complaints, c)
	}
	return complaints, nil
}

// GetByID retrieves a complaint by its unique ID.
func (r *MongoComplaintRepo) GetByID(id string) (*models.Complaint, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var complaint models.Complaint
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&complaint); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch complaint with id %s: %w", id, err)
	}
	return &complaint, nil
}

// GetAll retrieves all complaints, newest first.
func (r *MongoComplaintRepo) GetAll() ([]models.Complaint, error) {
	return r.find(bson.M{})
}

// GetByComplainant retrieves complaints filed under a complainant ID.
func (r *MongoComplaintRepo) GetByComplainant(complainantID string) ([]models.Complaint, error) {
	return r.find(bson.M{"complainantId": complainantID})
}

// GetByComplainantOrPhone retrieves complaints linked to either the
// complainant ID or the phone number.
func (r *MongoComplaintRepo) GetByComplainantOrPhone(complainantID, phone string) ([]models.Complaint, error) {
	return r.find(bson.M{"$or": []bson.M{
		{"complainantId": complainantID},
		{"complainantPhone": phone},
	}})
}

// GetByPhone retrieves complaints keyed by complainant phone number.
func (r *MongoComplaintRepo) GetByPhone(phone string) ([]models.Complaint, error) {
	return r.find(bson.M{"complainantPhone": phone})
}

// Create inserts a new complaint document.
func (r *MongoComplaintRepo) Create(complaint *models.Complaint) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, complaint); err != nil {
		return fmt.Errorf("failed to create complaint: %w", err)
	}
	return nil
}

// Update applies a partial update document to a complaint.
func (r *MongoComplaintRepo) Update(id string, update bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update complaint with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("complaint with id %s not found", id)
	}
	return nil
}

// RelinkByPhone points all complaints carrying the phone number at a new
// complainant ID.
func (r *MongoComplaintRepo) RelinkByPhone(phone, complainantID string) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateMany(ctx,
		bson.M{"complainantPhone": phone},
		bson.M{"$set": bson.M{"complainantId": complainantID}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to relink complaints for phone %s: %w", phone, err)
	}
	return result.ModifiedCount, nil
}
