package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"food-orders-service/internal/dto"
	"food-orders-service/internal/push"
)

// En los endpoints de notify el caller manda el token destino y acá solo
// se arma y reenvía el mensaje. A diferencia del alta de órdenes, acá sí
// se espera al gateway y el error se le devuelve al caller tal cual.

// POST /notify-admin
func (ctl *OrderController) NotifyAdmin(c *gin.Context) {
	var req dto.NotifyAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg := push.NewOrderMessage(req.Token, req.OrderID, req.Total)

	data, err := ctl.Push.Send(c.Request.Context(), msg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// POST /notify-user
func (ctl *OrderController) NotifyUser(c *gin.Context) {
	var req dto.NotifyUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg := push.StatusChangeMessage(req.Token, req.OrderID, req.Status)

	data, err := ctl.Push.Send(c.Request.Context(), msg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}
