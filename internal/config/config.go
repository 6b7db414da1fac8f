// config.go
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI       string
	MongoDBName    string
	PushGatewayURL string
	RabbitURL      string
	JWTSecret      string
	AdminPassword  string
	Port           string
}

func Load() *Config {
	// .env es opcional; en el deploy todo viene del entorno
	_ = godotenv.Load()

	return &Config{
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:    getEnv("MONGO_DB_NAME", "food_orders_db"),
		PushGatewayURL: getEnv("PUSH_GATEWAY_URL", "https://exp.host/--/api/v2/push/send"),
		RabbitURL:      getEnv("RABBIT_URL", ""),
		JWTSecret:      getEnv("JWT_SECRET", "dev-secret"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", ""),
		Port:           getEnv("PORT", "3000"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
