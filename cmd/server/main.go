package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"floramart-be/internal/address"
	"floramart-be/internal/auth"
	"floramart-be/internal/cart"
	"floramart-be/internal/category"
	"floramart-be/internal/config"
	"floramart-be/internal/db"
	"floramart-be/internal/flower"
	"floramart-be/internal/handler"
	"floramart-be/internal/logger"
	"floramart-be/internal/middleware"
	"floramart-be/internal/order"
	"floramart-be/internal/payment"
	"floramart-be/internal/payment/callback"
	"floramart-be/internal/payment/vnpay"
	"floramart-be/internal/seller"
	"floramart-be/internal/user"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("production")
		logger.L().Fatal("failed to load config", zap.Error(err))
	}

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	tokens := auth.NewTokenManager(cfg.JWTSecret)

	limiter := middleware.NewRateLimiter()
	defer limiter.Close()

	categoryRepo := category.NewRepository(database)
	categorySvc := category.NewService(categoryRepo)

	flowerRepo := flower.NewRepository(database)
	flowerSvc := flower.NewService(flowerRepo)

	sellerRepo := seller.NewRepository(database)
	sellerSvc := seller.NewService(sellerRepo)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo, tokens)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, flowerRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	addressRepo := address.NewRepository(database)
	addressSvc := address.NewService(addressRepo)

	paymentRepo := payment.NewRepository(database)
	verifier := vnpay.NewSignatureVerifier(cfg.VNPHashSecret)
	processor := callback.NewProcessor(verifier, orderSvc, cartSvc, paymentRepo)

	router := handler.NewRouter(handler.Deps{
		Tokens:    tokens,
		Limiter:   limiter,
		Users:     handler.NewUserHandler(userSvc),
		Catalog:   handler.NewCatalogHandler(categorySvc, flowerSvc, sellerSvc, userSvc),
		Carts:     handler.NewCartHandler(cartSvc),
		Orders:    handler.NewOrderHandler(orderSvc, paymentRepo),
		Addresses: handler.NewAddressHandler(addressSvc),
		Callback:  callback.NewHandler(processor),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.L().Info("server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.L().Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L().Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.L().Error("server forced to shutdown", zap.Error(err))
	}
	logger.L().Info("server stopped")
}
