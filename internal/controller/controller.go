package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"food-orders-service/internal/dto"
	"food-orders-service/internal/model"
	"food-orders-service/internal/repository"
	"food-orders-service/internal/service"
)

type OrderController struct {
	Orders *service.OrderService
	Auth   *service.AuthService
	Status *service.StatusService
	Push   service.Notifier
}

func NewOrderController(o *service.OrderService, a *service.AuthService, st *service.StatusService, p service.Notifier) *OrderController {
	return &OrderController{Orders: o, Auth: a, Status: st, Push: p}
}

// POST /create-order — No requiere token
func (ctl *OrderController) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := make([]model.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, model.OrderItem{
			SKU:   it.SKU,
			Name:  it.Name,
			Qty:   it.Qty,
			Price: it.Price,
		})
	}

	orderID, err := ctl.Orders.Create(c.Request.Context(), items, *req.Total)
	if err != nil {
		if err == service.ErrInvalidOrder {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Se devuelve solo el id, nunca el documento completo
	c.JSON(http.StatusCreated, gin.H{"success": true, "orderId": orderID})
}

// POST /admin/update-order-status — requiere token
func (ctl *OrderController) UpdateOrderStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := ctl.Orders.UpdateStatus(c.Request.Context(), req.OrderID, req.Status)
	if err != nil {
		if err == repository.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /order/:orderId
func (ctl *OrderController) GetOrder(c *gin.Context) {
	orderID := c.Param("orderId")

	order, err := ctl.Orders.GetByID(c.Request.Context(), orderID)
	if err != nil {
		if err == repository.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

// GET /admin/orders — requiere token
func (ctl *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := ctl.Orders.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}
