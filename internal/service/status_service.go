package service

import (
	"context"
	"errors"

	"food-orders-service/internal/model"
)

type StatusRepository interface {
	Find(ctx context.Context, kind string) (*model.ServiceStatus, error)
	Upsert(ctx context.Context, kind string, open bool, message string) error
}

const (
	KindApp      = "app"
	KindDelivery = "delivery"
)

var ErrUnknownKind = errors.New("tipo de estado desconocido")

// Mensajes por defecto cuando el admin no escribe ninguno
var defaultMessages = map[string]string{
	KindApp:      "Trenutno ne primamo porudžbine.",
	KindDelivery: "Dostava trenutno nije dostupna.",
}

// StatusService lee y escribe los flags de disponibilidad.
// Son puramente informativos: el alta de órdenes no los consulta.
type StatusService struct {
	repo StatusRepository
}

func NewStatusService(r StatusRepository) *StatusService {
	return &StatusService{repo: r}
}

func (s *StatusService) Get(ctx context.Context, kind string) (*model.ServiceStatus, error) {
	if kind != KindApp && kind != KindDelivery {
		return nil, ErrUnknownKind
	}
	return s.repo.Find(ctx, kind)
}

// Set normaliza el mensaje vacío al default del tipo y mergea sobre
// el documento singleton.
func (s *StatusService) Set(ctx context.Context, kind string, open bool, message string) error {
	if kind != KindApp && kind != KindDelivery {
		return ErrUnknownKind
	}
	if message == "" {
		message = defaultMessages[kind]
	}
	return s.repo.Upsert(ctx, kind, open, message)
}
