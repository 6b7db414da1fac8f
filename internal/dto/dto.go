// dto.go
package dto

// CreateOrderRequest lo manda la app del cliente al confirmar el carrito.
// Total es puntero para distinguir "falta el campo" de un total 0.
type CreateOrderRequest struct {
	Items []OrderItemDTO `json:"items" binding:"required,min=1,dive"`
	Total *float64       `json:"total" binding:"required"`
}

type OrderItemDTO struct {
	SKU   string  `json:"sku"`
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

type UpdateOrderStatusRequest struct {
	OrderID string `json:"orderId" binding:"required"`
	Status  string `json:"status" binding:"required"`
}

type AdminLoginRequest struct {
	Password  string `json:"password" binding:"required"`
	PushToken string `json:"pushToken"`
}

// NotifyAdminRequest / NotifyUserRequest replican el contrato del relay
// original: el cliente manda el token destino junto con los datos de la orden.
type NotifyAdminRequest struct {
	Token   string  `json:"token" binding:"required"`
	OrderID string  `json:"orderId" binding:"required"`
	Total   float64 `json:"total"`
}

type NotifyUserRequest struct {
	Token   string `json:"token" binding:"required"`
	OrderID string `json:"orderId" binding:"required"`
	Status  string `json:"status" binding:"required"`
}

type UpdateServiceStatusRequest struct {
	Open    *bool  `json:"open" binding:"required"`
	Message string `json:"message"`
}
