package service

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"food-orders-service/internal/model"
	"food-orders-service/internal/push"
	"food-orders-service/internal/repository"
)

// Interfaces que deben implementar repository y push
type OrderRepository interface {
	Create(ctx context.Context, o *model.Order) (string, error)
	FindByID(ctx context.Context, orderID string) (*model.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
	FindAll(ctx context.Context) ([]*model.Order, error)
}

type AdminRepository interface {
	Find(ctx context.Context) (*model.AdminProfile, error)
	SavePushToken(ctx context.Context, token string) error
	Seed(ctx context.Context, passwordHash string) error
}

type Notifier interface {
	Send(ctx context.Context, msg push.Message) (map[string]interface{}, error)
}

// Errores de negocio exportados (los usa el controller)
var (
	ErrInvalidOrder = errors.New("la orden necesita al menos un item y un total no negativo")
)

// StatusPending es el estado inicial de toda orden nueva. Después del alta
// el estado es texto libre: lo fija el admin y no hay máquina de estados.
const StatusPending = "pending"

type OrderService struct {
	repo      OrderRepository
	adminRepo AdminRepository
	notifier  Notifier
}

func NewOrderService(r OrderRepository, a AdminRepository, n Notifier) *OrderService {
	return &OrderService{repo: r, adminRepo: a, notifier: n}
}

// Create da de alta la orden en "pending" y devuelve solo el id generado.
// La notificación al admin sale en una goroutine aparte: la respuesta al
// cliente nunca espera al gateway, y un fallo de push no se propaga.
func (s *OrderService) Create(ctx context.Context, items []model.OrderItem, total float64) (string, error) {
	if len(items) == 0 || total < 0 {
		return "", ErrInvalidOrder
	}

	order := &model.Order{
		Items:  items,
		Total:  total,
		Status: StatusPending,
	}

	orderID, err := s.repo.Create(ctx, order)
	if err != nil {
		return "", err
	}

	s.notifyAdmin(ctx, orderID, total)

	return orderID, nil
}

// notifyAdmin busca el token del admin y despacha fire-and-forget.
// Sin token guardado no hay nada que mandar.
func (s *OrderService) notifyAdmin(ctx context.Context, orderID string, total float64) {
	profile, err := s.adminRepo.Find(ctx)
	if err != nil || profile.PushToken == "" {
		if err != nil && err != repository.ErrNotFound {
			logrus.WithError(err).Warn("no se pudo leer el perfil admin para notificar")
		}
		return
	}

	msg := push.NewOrderMessage(profile.PushToken, orderID, total)

	go func() {
		// Contexto propio: el del request ya puede estar cancelado
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if _, err := s.notifier.Send(ctx, msg); err != nil {
			logrus.WithError(err).WithField("orderId", orderID).
				Warn("falló la notificación al admin por orden nueva")
		}
	}()
}

// UpdateStatus pisa el estado con el string que mande el admin.
// No manda ninguna notificación: eso lo dispara el cliente admin
// por separado contra /notify-user.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) error {
	return s.repo.UpdateStatus(ctx, orderID, status)
}

// Getters
func (s *OrderService) GetByID(ctx context.Context, orderID string) (*model.Order, error) {
	return s.repo.FindByID(ctx, orderID)
}

func (s *OrderService) GetAll(ctx context.Context) ([]*model.Order, error) {
	return s.repo.FindAll(ctx)
}
