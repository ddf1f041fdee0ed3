package directoryRepo

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

// MongoDirectoryRepo implements Repository using MongoDB.
type MongoDirectoryRepo struct {
	coll *mongo.Collection
}

// NewMongoDirectoryRepo creates a new directory repository backed by MongoDB.
func NewMongoDirectoryRepo() Repository {
	coll := database.MongoClient.Database("smartmeet").Collection("participants")
	repo := &MongoDirectoryRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create directory indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoDirectoryRepo) ensureIndexes() error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "name", Value: 1}},
		},
	})
	return err
}

// List returns every directory identity.
func (r *MongoDirectoryRepo) List(ctx context.Context) ([]models.Participant, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer cursor.Close(ctx)

	var participants []models.Participant
	if err := cursor.All(ctx, &participants); err != nil {
		return nil, fmt.Errorf("failed to decode participants: %w", err)
	}
	return participants, nil
}

// GetByEmail returns the identity with the given email, or nil when absent.
func (r *MongoDirectoryRepo) GetByEmail(ctx context.Context, email string) (*models.Participant, error) {
	var p models.Participant
	filter := bson.M{"email": strings.ToLower(email)}
	if err := r.coll.FindOne(ctx, filter).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch participant with email %s: %w", email, err)
	}
	return &p, nil
}

// Search returns up to limit identities whose name or email contains the
// query. An exact email hit sorts first.
func (r *MongoDirectoryRepo) Search(ctx context.Context, query string, limit int) ([]models.Participant, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = models.MaxMatchCandidates
	}

	pattern := bson.M{"$regex": regexEscape(query), "$options": "i"}
	filter := bson.M{"$or": []bson.M{
		{"name": pattern},
		{"email": pattern},
	}}
	opts := options.Find().SetLimit(int64(limit))
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search participants for %q: %w", query, err)
	}
	defer cursor.Close(ctx)

	var found []models.Participant
	if err := cursor.All(ctx, &found); err != nil {
		return nil, fmt.Errorf("failed to decode participant search results: %w", err)
	}

	// Promote an exact email match to the front.
	for i, p := range found {
		if strings.EqualFold(p.Email, query) && i > 0 {
			hit := found[i]
			copy(found[1:i+1], found[0:i])
			found[0] = hit
			break
		}
	}
	return found, nil
}

func regexEscape(s string) string {
	specials := `\.+*?()|[]{}^$`
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(specials, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
