package storage

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/akarasev/harvester/internal/types"
)

// Mongo writes articles to a MongoDB collection, upserting on link so
// re-processing an article replaces its document instead of
// duplicating it.
type Mongo struct {
	client     *mongo.Client
	collection *mongo.Collection
	count      atomic.Int64
	logger     *slog.Logger
}

// NewMongo connects to MongoDB and ensures the link index.
func NewMongo(uri, database, collection string, logger *slog.Logger) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongodb connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongodb ping: %w", err)
	}

	coll := client.Database(database).Collection(collection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "link", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("mongodb index: %w", err)
	}

	return &Mongo{
		client:     client,
		collection: coll,
		logger:     logger.With("component", "mongo_storage"),
	}, nil
}

func (s *Mongo) Name() string { return "mongodb" }

func (s *Mongo) Store(ctx context.Context, art *types.Article) error {
	rec := NewRecord(art)
	_, err := s.collection.ReplaceOne(ctx,
		bson.M{"link": rec.Link}, rec, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongodb upsert: %w", err)
	}
	s.count.Add(1)
	return nil
}

func (s *Mongo) Close() error {
	s.logger.Info("mongodb storage closing", "articles", s.count.Load())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
