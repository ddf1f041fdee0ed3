package availabilityRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"smartmeet/database"
	"smartmeet/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// calendarDoc is the persisted calendar for one participant.
type calendarDoc struct {
	Email       string       `bson:"email"`
	BusyWindows []BusyWindow `bson:"busyWindows"`
}

// MongoAvailabilityRepo implements Repository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo creates a new availability repository backed by MongoDB.
func NewMongoAvailabilityRepo() Repository {
	coll := database.MongoClient.Database("smartmeet").Collection("calendars")
	repo := &MongoAvailabilityRepo{coll: coll}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		fmt.Printf("failed to create calendar indexes: %v\n", err)
	}
	return repo
}

// GetAvailability reports each email's status for [startMin, endMin) on date.
func (r *MongoAvailabilityRepo) GetAvailability(ctx context.Context, emails []string, date string, startMin, endMin int) (map[string]models.AvailabilityStatus, error) {
	lowered := make([]string, len(emails))
	for i, e := range emails {
		lowered[i] = strings.ToLower(e)
	}

	cursor, err := r.coll.Find(ctx, bson.M{"email": bson.M{"$in": lowered}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch calendars: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []calendarDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode calendars: %w", err)
	}

	byEmail := make(map[string]calendarDoc, len(docs))
	for _, d := range docs {
		byEmail[strings.ToLower(d.Email)] = d
	}

	result := make(map[string]models.AvailabilityStatus, len(emails))
	for i, email := range emails {
		doc, tracked := byEmail[lowered[i]]
		if !tracked {
			result[email] = models.StatusUnknown
			continue
		}
		status := models.StatusAvailable
		for _, w := range doc.BusyWindows {
			if w.Overlaps(date, startMin, endMin) {
				status = models.StatusBusy
				break
			}
		}
		result[email] = status
	}
	return result, nil
}
