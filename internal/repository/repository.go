package repository

import (
	"context"
	"errors"
	"time"

	"food-orders-service/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("documento no encontrado")

// Mongo implementation
type MongoOrderRepository struct {
	col *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{col: db.Collection("orders")}
}

// Create inserta la orden y devuelve el id generado.
// Los timestamps los pone el servidor, nunca el cliente.
func (m *MongoOrderRepository) Create(ctx context.Context, o *model.Order) (string, error) {
	now := time.Now().UTC()

	o.ID = primitive.NewObjectID()
	o.CreatedAt = now
	o.StatusUpdatedAt = now

	if _, err := m.col.InsertOne(ctx, o); err != nil {
		return "", err
	}
	return o.ID.Hex(), nil
}

func (m *MongoOrderRepository) FindByID(ctx context.Context, orderID string) (*model.Order, error) {
	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		// Un id que no parsea es equivalente a uno que no existe
		return nil, ErrNotFound
	}

	var res model.Order
	err = m.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &res, err
}

// UpdateStatus pisa el estado y refresca status_updated_at.
// No hay pre-chequeo de existencia: MatchedCount decide el not-found.
func (m *MongoOrderRepository) UpdateStatus(ctx context.Context, orderID, status string) error {
	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return ErrNotFound
	}

	update := bson.M{
		"$set": bson.M{
			"status":            status,
			"status_updated_at": time.Now().UTC(),
		},
	}

	r, err := m.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return err
	}
	if r.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// FindAll devuelve toda la colección, más recientes primero.
func (m *MongoOrderRepository) FindAll(ctx context.Context) ([]*model.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := m.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*model.Order
	for cur.Next(ctx) {
		var v model.Order
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	return out, nil
}
