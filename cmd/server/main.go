package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"food-orders-service/internal/config"
	"food-orders-service/internal/controller"
	"food-orders-service/internal/middleware"
	"food-orders-service/internal/push"
	"food-orders-service/internal/rabbit"
	"food-orders-service/internal/repository"
	"food-orders-service/internal/service"
)

func main() {
	cfg := config.Load()

	// Conexión a MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logrus.Fatal(err)
	}
	db := client.Database(cfg.MongoDBName)

	// Repositorios y servicios
	orderRepo := repository.NewMongoOrderRepository(db)
	adminRepo := repository.NewMongoAdminRepository(db)
	statusRepo := repository.NewMongoStatusRepository(db)

	pushClient := push.NewClient(cfg.PushGatewayURL)

	orderService := service.NewOrderService(orderRepo, adminRepo, pushClient)
	authService := service.NewAuthService(adminRepo, cfg.JWTSecret)
	statusService := service.NewStatusService(statusRepo)

	// Siembra el perfil admin en el primer arranque
	if err := authService.EnsureAdmin(ctx, cfg.AdminPassword); err != nil {
		logrus.Fatal(err)
	}

	// Handlers
	ctrl := controller.NewOrderController(orderService, authService, statusService, pushClient)

	// Router
	r := gin.Default()
	r.Use(middleware.RequestID())

	// Liveness probe para el hosting
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Rutas públicas
	r.POST("/create-order", ctrl.CreateOrder)
	r.GET("/order/:orderId", ctrl.GetOrder)
	r.POST("/notify-admin", ctrl.NotifyAdmin)
	r.POST("/notify-user", ctrl.NotifyUser)
	r.GET("/status", ctrl.GetServiceStatus)
	r.GET("/status/:kind", ctrl.GetServiceStatusByKind)
	r.POST("/admin/login", ctrl.Login)

	// Rutas admin (requieren token de sesión)
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authService))
	admin.POST("/update-order-status", ctrl.UpdateOrderStatus)
	admin.GET("/orders", ctrl.GetAllOrders)
	admin.POST("/app-status", ctrl.UpdateAppStatus)
	admin.POST("/delivery-status", ctrl.UpdateDeliveryStatus)

	// Conexión a RabbitMQ (opcional: solo si hay broker configurado)
	if cfg.RabbitURL != "" {
		conn, err := amqp091.Dial(cfg.RabbitURL)
		if err != nil {
			logrus.Fatalf("Error conectando a RabbitMQ: %v", err)
		}
		ch, err := conn.Channel()
		if err != nil {
			logrus.Fatalf("Error creando canal en RabbitMQ: %v", err)
		}
		rabbit.SetupConsumers(ch, orderService)
	}

	// Ejecutar servidor
	logrus.Printf("Food Orders Service ejecutándose en puerto %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.Fatal(err)
	}
}
