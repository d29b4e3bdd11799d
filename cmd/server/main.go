package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"bananex-be/internal/admin"
	"bananex-be/internal/config"
	"bananex-be/internal/db"
	"bananex-be/internal/gallery"
	"bananex-be/internal/inquiry"
	"bananex-be/internal/invoice"
	"bananex-be/internal/logger"
	"bananex-be/internal/notification"
	"bananex-be/internal/order"
	"bananex-be/internal/price"
	"bananex-be/internal/product"
	"bananex-be/internal/transport"
	"bananex-be/internal/user"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	invoiceRepo := invoice.NewRepository(database)
	orderRepo := order.NewRepository(database)

	services := transport.Services{
		Users:         user.NewService(user.NewRepository(database)),
		Admins:        admin.NewService(admin.NewRepository(database)),
		Products:      product.NewService(product.NewRepository(database)),
		Prices:        price.NewService(price.NewRepository(database)),
		Orders:        order.NewService(orderRepo, invoiceRepo),
		Invoices:      invoice.NewService(invoiceRepo),
		Inquiries:     inquiry.NewService(inquiry.NewRepository(database)),
		Notifications: notification.NewService(notification.NewRepository(database)),
		Gallery:       gallery.NewService(gallery.NewRepository(database), cfg.UploadDir),
		UploadDir:     cfg.UploadDir,
	}

	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      transport.NewRouter(services),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.L().Info("server listening", zap.String("port", cfg.AppPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L().Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.L().Error("graceful shutdown failed", zap.Error(err))
	}
}
