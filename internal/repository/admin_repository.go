package repository

import (
	"context"
	"time"

	"food-orders-service/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// adminDocID es la clave fija del documento único de perfil admin.
const adminDocID = "Admin"

type MongoAdminRepository struct {
	col *mongo.Collection
}

func NewMongoAdminRepository(db *mongo.Database) *MongoAdminRepository {
	return &MongoAdminRepository{col: db.Collection("admin_profile")}
}

func (m *MongoAdminRepository) Find(ctx context.Context) (*model.AdminProfile, error) {
	var res model.AdminProfile
	err := m.col.FindOne(ctx, bson.M{"_id": adminDocID}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &res, err
}

// SavePushToken reemplaza el token guardado. Un solo dispositivo admin
// recibe notificaciones: el último que se logueó.
func (m *MongoAdminRepository) SavePushToken(ctx context.Context, token string) error {
	update := bson.M{
		"$set": bson.M{
			"push_token":    token,
			"last_login_at": time.Now().UTC(),
		},
	}
	_, err := m.col.UpdateOne(ctx, bson.M{"_id": adminDocID}, update)
	return err
}

// Seed crea el perfil admin si todavía no existe. No pisa uno existente.
func (m *MongoAdminRepository) Seed(ctx context.Context, passwordHash string) error {
	update := bson.M{
		"$setOnInsert": bson.M{
			"password_hash": passwordHash,
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := m.col.UpdateOne(ctx, bson.M{"_id": adminDocID}, update, opts)
	return err
}
