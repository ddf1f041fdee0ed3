package meetingRepo

import (
	"context"
	"fmt"
	"time"

	"smartmeet/database"
	"smartmeet/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMeetingRepo implements Repository using MongoDB.
type MongoMeetingRepo struct {
	coll *mongo.Collection
}

// NewMongoMeetingRepo creates a new meeting repository backed by MongoDB.
func NewMongoMeetingRepo() Repository {
	coll := database.MongoClient.Database("smartmeet").Collection("meetings")
	repo := &MongoMeetingRepo{coll: coll}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "startTime", Value: 1}},
		},
	})
	if err != nil {
		fmt.Printf("failed to create meeting indexes: %v\n", err)
	}
	return repo
}

// Save upserts the draft by its stable ID.
func (r *MongoMeetingRepo) Save(ctx context.Context, draft models.MeetingDraft) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"id": draft.ID}, draft, opts); err != nil {
		return fmt.Errorf("failed to save meeting %s: %w", draft.ID, err)
	}
	return nil
}

// GetByID returns the meeting with the given ID, or nil when absent.
func (r *MongoMeetingRepo) GetByID(ctx context.Context, id string) (*models.MeetingDraft, error) {
	var m models.MeetingDraft
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&m); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch meeting %s: %w", id, err)
	}
	return &m, nil
}

// ListByDateRange returns scheduled meetings starting within [from, to).
func (r *MongoMeetingRepo) ListByDateRange(ctx context.Context, from, to string) ([]models.MeetingDraft, error) {
	fromDay, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil, fmt.Errorf("invalid range start %q: %w", from, err)
	}
	toDay, err := time.Parse("2006-01-02", to)
	if err != nil {
		return nil, fmt.Errorf("invalid range end %q: %w", to, err)
	}

	filter := bson.M{
		"status":    models.MeetingScheduled,
		"startTime": bson.M{"$gte": fromDay, "$lt": toDay},
	}
	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	defer cursor.Close(ctx)

	var meetings []models.MeetingDraft
	if err := cursor.All(ctx, &meetings); err != nil {
		return nil, fmt.Errorf("failed to decode meetings: %w", err)
	}
	return meetings, nil
}
