// setup.go
package rabbit

import (
	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"food-orders-service/internal/service"
)

func SetupConsumers(ch *amqp091.Channel, svc *service.OrderService) {
	consumer := NewPlaceOrderConsumer(svc)

	// 1. Declarar la queue
	q, err := ch.QueueDeclare(
		"food_orders_service_orders", // cola exclusiva de este servicio
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logrus.WithError(err).Error("❌ Error declarando queue")
		return
	}

	// 2. Bindear al exchange fanout
	err = ch.QueueBind(
		q.Name,
		"",             // fanout ignora routing key
		"order_placed", // exchange del carrito
		false,
		nil,
	)
	if err != nil {
		logrus.WithError(err).Error("❌ Error binding exchange")
		return
	}

	// 3. Consumir
	msgs, err := ch.Consume(
		q.Name,
		"",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logrus.WithError(err).Error("❌ Error al consumir queue")
		return
	}

	go func() {
		for m := range msgs {
			consumer.Handle(m.Body)
		}
	}()

	logrus.Info("🐰 Suscrito a exchange order_placed (fanout)")
}
