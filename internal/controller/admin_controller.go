package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"food-orders-service/internal/dto"
	"food-orders-service/internal/repository"
	"food-orders-service/internal/service"
)

// POST /admin/login — No requiere token (acá se obtiene)
func (ctl *OrderController) Login(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := ctl.Auth.Login(c.Request.Context(), req.Password, req.PushToken)
	if err != nil {
		switch err {
		case service.ErrNoAdmin:
			c.JSON(http.StatusNotFound, gin.H{"error": "admin profile not found"})
		case service.ErrUnauthorized:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong password"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

// GET /status — devuelve ambos flags juntos
func (ctl *OrderController) GetServiceStatus(c *gin.Context) {
	app, err := ctl.Status.Get(c.Request.Context(), service.KindApp)
	if err != nil {
		statusError(c, err)
		return
	}

	delivery, err := ctl.Status.Get(c.Request.Context(), service.KindDelivery)
	if err != nil {
		statusError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "app": app, "delivery": delivery})
}

// GET /status/:kind — kind es "app" o "delivery"
func (ctl *OrderController) GetServiceStatusByKind(c *gin.Context) {
	st, err := ctl.Status.Get(c.Request.Context(), c.Param("kind"))
	if err != nil {
		statusError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "status": st})
}

// POST /admin/app-status — requiere token
func (ctl *OrderController) UpdateAppStatus(c *gin.Context) {
	ctl.updateServiceStatus(c, service.KindApp)
}

// POST /admin/delivery-status — requiere token
func (ctl *OrderController) UpdateDeliveryStatus(c *gin.Context) {
	ctl.updateServiceStatus(c, service.KindDelivery)
}

func (ctl *OrderController) updateServiceStatus(c *gin.Context, kind string) {
	var req dto.UpdateServiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.Status.Set(c.Request.Context(), kind, *req.Open, req.Message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func statusError(c *gin.Context, err error) {
	switch err {
	case service.ErrUnknownKind:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case repository.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "status not set"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
