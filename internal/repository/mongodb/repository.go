package mongodb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/mamadbah2/farmplan/internal/repository/storage"
)

// document is the shape of one key-value entry in the collection. The value
// itself is kept as a JSON text so the stored format stays independent of
// BSON field-name rules.
type document struct {
	Key       string    `bson:"_id"`
	Data      string    `bson:"data"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Repository is the MongoDB-backed persistence gateway.
type Repository struct {
	client   *mongo.Client
	dbName   string
	collName string
	logger   *zap.Logger
}

var _ storage.Gateway = (*Repository)(nil)

// NewRepository connects to MongoDB and verifies the connection.
func NewRepository(ctx context.Context, uri, dbName string, logger *zap.Logger) (*Repository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Repository{
		client:   client,
		dbName:   dbName,
		collName: "app_state",
		logger:   logger,
	}, nil
}

func (r *Repository) collection() *mongo.Collection {
	return r.client.Database(r.dbName).Collection(r.collName)
}

// Set serializes value to JSON and upserts it under key.
func (r *Repository) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		r.logger.Error("failed to serialize value", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("serialize value for key %s: %w", key, err)
	}

	doc := document{Key: key, Data: string(data), UpdatedAt: time.Now().UTC()}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection().ReplaceOne(ctx, bson.M{"_id": key}, doc, opts); err != nil {
		r.logger.Error("failed to store value", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("store value for key %s: %w", key, err)
	}

	return nil
}

// Get loads the document under key into out. Missing keys, unreachable
// storage and corrupt payloads all report found=false; the latter two are
// logged rather than surfaced.
func (r *Repository) Get(ctx context.Context, key string, out any) (bool, error) {
	var doc document
	err := r.collection().FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		r.logger.Error("failed to read value", zap.String("key", key), zap.Error(err))
		return false, nil
	}

	if err := json.Unmarshal([]byte(doc.Data), out); err != nil {
		r.logger.Error("corrupt document treated as absent", zap.String("key", key), zap.Error(err))
		return false, nil
	}

	return true, nil
}

// Remove deletes the entry under key. Removing a missing key is a no-op.
func (r *Repository) Remove(ctx context.Context, key string) error {
	if _, err := r.collection().DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		r.logger.Error("failed to remove key", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("remove key %s: %w", key, err)
	}
	return nil
}

// Clear drops every entry in the collection.
func (r *Repository) Clear(ctx context.Context) error {
	if _, err := r.collection().DeleteMany(ctx, bson.M{}); err != nil {
		r.logger.Error("failed to clear storage", zap.Error(err))
		return fmt.Errorf("clear storage: %w", err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
