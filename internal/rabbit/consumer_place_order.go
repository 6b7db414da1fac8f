package rabbit

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"food-orders-service/internal/model"
	"food-orders-service/internal/service"
)

type PlaceOrderConsumer struct {
	Service *service.OrderService
}

func NewPlaceOrderConsumer(s *service.OrderService) *PlaceOrderConsumer {
	return &PlaceOrderConsumer{Service: s}
}

// PlacedOrderMessage es el evento que publica el carrito al confirmar.
// Entra por el mismo camino que el POST de la app: alta en pending
// y notificación al admin.
type PlacedOrderMessage struct {
	CorrelationID string `json:"correlation_id"`
	Exchange      string `json:"exchange"`
	RoutingKey    string `json:"routing_key"`
	Message       struct {
		Items []struct {
			SKU   string  `json:"sku"`
			Name  string  `json:"name"`
			Qty   int     `json:"qty"`
			Price float64 `json:"price"`
		} `json:"items"`
		Total float64 `json:"total"`
	} `json:"message"`
}

func (c *PlaceOrderConsumer) Handle(msg []byte) error {
	logrus.Info("[Rabbit] Evento recibido: order_placed")

	var event PlacedOrderMessage
	if err := json.Unmarshal(msg, &event); err != nil {
		logrus.WithError(err).Error("error parseando mensaje")
		return err
	}

	items := make([]model.OrderItem, 0, len(event.Message.Items))
	for _, it := range event.Message.Items {
		items = append(items, model.OrderItem{
			SKU:   it.SKU,
			Name:  it.Name,
			Qty:   it.Qty,
			Price: it.Price,
		})
	}

	orderID, err := c.Service.Create(context.Background(), items, event.Message.Total)
	if err != nil {
		logrus.WithError(err).Error("❌ Error creando orden desde evento")
		return err
	}

	logrus.WithField("orderId", orderID).Info("✔ Orden creada desde evento")
	return nil
}
