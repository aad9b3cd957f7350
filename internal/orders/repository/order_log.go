package repository

import (
	"context"
	"fmt"
	"time"

	"ashiyu/pkg/config"
	"ashiyu/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderLogRepository is append-only. Entries survive order deletion and
// the end-of-day board clear.
type OrderLogRepository interface {
	Append(ctx context.Context, entry *model.OrderLog) error
	FindAll(ctx context.Context, limit int, offset int64) ([]*model.OrderLog, error)
	Count(ctx context.Context) (int64, error)
}

type mongoOrderLogRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoOrderLogRepository(cfg *config.Config) OrderLogRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoOrderLogRepository{
		cfg:        cfg,
		collection: db.Collection("Order_logs"),
	}
}

func (r *mongoOrderLogRepository) Append(ctx context.Context, entry *model.OrderLog) error {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	entry.ID = ""
	entry.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)

	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return fmt.Errorf("failed to append order log: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		entry.ID = oid.Hex()
	}
	return nil
}

func (r *mongoOrderLogRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.OrderLog, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(offset)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find order logs: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []*model.OrderLog
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode order logs: %w", err)
	}

	return entries, nil
}

func (r *mongoOrderLogRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count order logs: %w", err)
	}

	return count, nil
}
