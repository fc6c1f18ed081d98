package main

import (
	"context"
	"log"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"tienda_backend/internal/app/router"
	authadapters "tienda_backend/internal/feature/auth/adapters"
	authhandler "tienda_backend/internal/feature/auth/transport/handler"
	authusecase "tienda_backend/internal/feature/auth/usecase"
	productadapters "tienda_backend/internal/feature/product/adapters"
	producthandler "tienda_backend/internal/feature/product/transport/handler"
	productusecase "tienda_backend/internal/feature/product/usecase"
	"tienda_backend/internal/platform/cache"
	"tienda_backend/internal/platform/config"
	"tienda_backend/internal/platform/db"
	jwtmw "tienda_backend/internal/platform/jwt"
	"tienda_backend/internal/platform/mail"
	"tienda_backend/internal/platform/mongodb"
	platformredis "tienda_backend/internal/platform/redis"
)

func main() {
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set. Set a strong secret before starting the server.")
	}

	// MongoDB (users)
	mongoClient, mongoDB, err := mongodb.Connect(cfg)
	if err != nil {
		log.Fatalf("MongoDB connection failed: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Println("[ERROR] Failed to disconnect MongoDB client:", err)
		}
	}()

	// MySQL (products)
	gormDB := db.OpenDB(cfg)

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(cfg); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserMongo(mongoDB)
	if err := userRepo.EnsureIndexes(context.Background()); err != nil {
		log.Println("[WARN] Failed to ensure user indexes:", err)
	}
	productRepo := productadapters.NewProductRepository(gormDB)
	cachedProductRepo := cache.NewCachingProductRepository(rdb, 5*time.Minute, productRepo, "products")

	// Token manager and mail sender
	tokens := jwtmw.NewManager(cfg.JWTSecret)
	sender := mail.NewSender(mail.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
		BaseURL:  cfg.BaseURL,
		FrontURL: cfg.FrontURL,
	})

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokens, sender)
	productUC := productusecase.NewProductUsecase(cachedProductRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	productH := producthandler.NewProductHandler(productUC)

	r := router.NewRouter(authH, productH, tokens, cfg.APIKey)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
