// message.go
package push

import (
	"fmt"
	"strconv"
)

// Message es el payload que espera el gateway de push de Expo.
type Message struct {
	To    string `json:"to"`
	Sound string `json:"sound"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// shortID devuelve los últimos 6 caracteres del id para mostrar.
// Ids más cortos se usan enteros; es solo presentación, no validación.
func shortID(orderID string) string {
	if len(orderID) <= 6 {
		return orderID
	}
	return orderID[len(orderID)-6:]
}

// NewOrderMessage arma la notificación al admin por orden nueva.
func NewOrderMessage(token, orderID string, total float64) Message {
	amount := "—"
	if total != 0 {
		amount = strconv.FormatFloat(total, 'f', -1, 64)
	}
	return Message{
		To:    token,
		Sound: "default",
		Title: "📦 Nova porudžbina",
		Body:  fmt.Sprintf("Porudžbina #%s • %s RSD", shortID(orderID), amount),
	}
}

// StatusChangeMessage arma la notificación al cliente por cambio de estado.
func StatusChangeMessage(token, orderID, status string) Message {
	return Message{
		To:    token,
		Sound: "default",
		Title: "📣 Status porudžbine",
		Body:  fmt.Sprintf("Porudžbina #%s je sada: %s", shortID(orderID), status),
	}
}
