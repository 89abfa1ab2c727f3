package casenoteRepo

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

// MongoCaseNoteRepo implements CaseNoteRepository using MongoDB.
type MongoCaseNoteRepo struct {
	coll *mongo.Collection
}

// NewMongoCaseNoteRepo creates a new instance of CaseNoteRepository using MongoDB.
func NewMongoCaseNoteRepo() CaseNoteRepository {
	coll := database.Collection("case_notes")
	repo := &MongoCaseNoteRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCaseNoteRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "complaint_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoCaseNoteRepo) find(filter bson.M) ([]models.CaseNote, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve case notes: %w", err)
	}
	defer cursor.Close(ctx)

	var notes []models.CaseNote
	for cursor.Next(ctx) {
		var n models.CaseNote
		if err := cursor.Decode(&n); err != nil {
			return nil, fmt.Errorf("failed to decode case note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// Create inserts a new case note document.
func (r *MongoCaseNoteRepo) Create(note *models.CaseNote) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, note); err != nil {
		return fmt.Errorf("failed to create case note: %w", err)
	}
	return nil
}

// GetByComplaint retrieves all notes for a complaint, newest first.
func (r *MongoCaseNoteRepo) GetByComplaint(complaintID string) ([]models.CaseNote, error) {
	return r.find(bson.M{"complaint_id": complaintID})
}

// GetPublicByComplaint retrieves only public-visibility notes for a complaint.
func (r *MongoCaseNoteRepo) GetPublicByComplaint(complaintID string) ([]models.CaseNote, error) {
	return r.find(bson.M{
		"complaint_id": complaintID,
		"visibility":   models.VisibilityPublic,
	})
}
