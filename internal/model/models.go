// models.go
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Items           []OrderItem        `bson:"items" json:"items"`
	Total           float64            `bson:"total" json:"total"`
	Status          string             `bson:"status" json:"status"` // estado libre, lo fija el admin
	CreatedAt       time.Time          `bson:"created_at" json:"createdAt"`
	StatusUpdatedAt time.Time          `bson:"status_updated_at" json:"statusUpdatedAt"`
}

type OrderItem struct {
	SKU   string  `bson:"sku" json:"sku"`
	Name  string  `bson:"name,omitempty" json:"name,omitempty"`
	Qty   int     `bson:"qty" json:"qty"`
	Price float64 `bson:"price,omitempty" json:"price,omitempty"`
}

// AdminProfile es un documento único con _id "Admin".
// PushToken es el Expo push token del último dispositivo admin logueado;
// un login nuevo lo reemplaza, nunca se guardan varios.
type AdminProfile struct {
	ID           string    `bson:"_id" json:"id"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	PushToken    string    `bson:"push_token,omitempty" json:"pushToken,omitempty"`
	LastLoginAt  time.Time `bson:"last_login_at,omitempty" json:"lastLoginAt,omitempty"`
}

// ServiceStatus son los flags app/delivery que lee el cliente.
// Son informativos: nada en el flujo de órdenes los consulta.
type ServiceStatus struct {
	ID        string    `bson:"_id" json:"id"` // "app" | "delivery"
	Open      bool      `bson:"open" json:"open"`
	Message   string    `bson:"message" json:"message"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
