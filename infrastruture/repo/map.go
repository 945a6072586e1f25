package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/vinom-tilemap/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MapRepo handles the persistence of converted maps.
type MapRepo struct {
	collection *mongo.Collection
	timeout    time.Duration
}

// NewMapRepo creates a new MapRepo with the given MongoDB client, database name, and collection name.
func NewMapRepo(client *mongo.Client, dbName, collectionName string) *MapRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MapRepo{
		collection: collection,
		timeout:    2 * time.Second,
	}
}

// EnsureIndexes creates the unique checksum index that keeps one map per maze.
func (r *MapRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "checksum", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Save inserts or replaces a map.
func (r *MapRepo) Save(ctx context.Context, m *dmn.Map) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	filter := bson.M{"_id": m.ID}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, filter, m, opts); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.New("map checksum conflict")
		}
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByID retrieves a map by its ID.
func (r *MapRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.Map, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// ByChecksum retrieves the map converted from the maze with the given checksum.
func (r *MapRepo) ByChecksum(ctx context.Context, checksum string) (*dmn.Map, error) {
	return r.findOne(ctx, bson.M{"checksum": checksum})
}

func (r *MapRepo) findOne(ctx context.Context, filter bson.M) (*dmn.Map, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var m dmn.Map
	if err := r.collection.FindOne(ctx, filter).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrMapNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &m, nil
}
