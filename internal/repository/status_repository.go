package repository

import (
	"context"
	"time"

	"food-orders-service/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Flags de disponibilidad: un documento por tipo ("app", "delivery").
type MongoStatusRepository struct {
	col *mongo.Collection
}

func NewMongoStatusRepository(db *mongo.Database) *MongoStatusRepository {
	return &MongoStatusRepository{col: db.Collection("service_status")}
}

func (m *MongoStatusRepository) Find(ctx context.Context, kind string) (*model.ServiceStatus, error) {
	var res model.ServiceStatus
	err := m.col.FindOne(ctx, bson.M{"_id": kind}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &res, err
}

// Upsert mergea flag + mensaje sobre el documento singleton.
func (m *MongoStatusRepository) Upsert(ctx context.Context, kind string, open bool, message string) error {
	update := bson.M{
		"$set": bson.M{
			"open":       open,
			"message":    message,
			"updated_at": time.Now().UTC(),
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := m.col.UpdateOne(ctx, bson.M{"_id": kind}, update, opts)
	return err
}
