package main

import (
	"log"

	"craftlink-be/internal/config"
	"craftlink-be/internal/db"
	"craftlink-be/internal/events"
	"craftlink-be/internal/logger"
	"craftlink-be/internal/notification"
	"craftlink-be/internal/order"
	"craftlink-be/internal/product"
	"craftlink-be/internal/transport"
	"craftlink-be/internal/user"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	var cache *redis.Client
	if cfg.RedisAddr != "" {
		cache = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	publisher := events.NewNoopPublisher()
	if cfg.AmqpURL != "" {
		p, err := events.NewPublisher(cfg.AmqpURL, cfg.AmqpExchange)
		if err != nil {
			log.Printf("⚠️  event publisher unavailable, continuing without broker: %v", err)
		} else {
			publisher = p
		}
	}
	defer publisher.Close()

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo, cache)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, userRepo, publisher)

	notificationRepo := notification.NewRepository(database)
	notificationSvc := notification.NewService(notificationRepo, publisher)

	router := transport.NewRouter(transport.Services{
		Orders:        orderSvc,
		Users:         userSvc,
		Products:      productSvc,
		Notifications: notificationSvc,
	})

	log.Printf("🚀 API server running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(router.Run(":" + cfg.AppPort))
}
