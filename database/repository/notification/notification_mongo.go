package notificationRepo

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

// MongoNotificationRepo implements NotificationRepository using MongoDB.
type MongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo creates a new instance of NotificationRepository
// using MongoDB.
func NewMongoNotificationRepo() NotificationRepository {
	coll := database.Collection("notifications")
	repo := &MongoNotificationRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoNotificationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "complaint_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Append records a dispatch attempt.
func (r *MongoNotificationRepo) Append(record *models.NotificationRecord) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to append notification record: %w", err)
	}
	return nil
}

// GetByComplaint retrieves all dispatch records for a complaint, newest first.
func (r *MongoNotificationRepo) GetByComplaint(complaintID string) ([]models.NotificationRecord, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "sent_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"complaint_id": complaintID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve notification records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.NotificationRecord
	for cursor.Next(ctx) {
		var rec models.NotificationRecord
		if err := cursor.Decode(&rec); err != nil {
			return nil, fmt.Errorf("failed to decode notification record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}
