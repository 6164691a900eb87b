package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/yusariii/jp-learning-app-sub000/config"
	"github.com/yusariii/jp-learning-app-sub000/internal/appctx"
	"github.com/yusariii/jp-learning-app-sub000/internal/logger"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	logger.GetAppLogger().Info("Logger system initialized successfully")
}

// serve khởi động Fiber server, có hỗ trợ TLS khi được cấu hình
func serve(app *fiber.App, cfg *config.Configuration) {
	log := logger.GetAppLogger()
	address := cfg.Address()

	if cfg.EnableTLS && cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		cert, err := tls.LoadX509KeyPair(cfg.TLSCertFile, cfg.TLSKeyFile)
		if err != nil {
			log.Fatalf("Error loading TLS certificate: %v", err)
		}

		ln, err := net.Listen("tcp", address)
		if err != nil {
			log.Fatalf("Error creating listener: %v", err)
		}
		tlsListener := tls.NewListener(ln, &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		})

		log.WithField("address", address).Info("Starting server with HTTPS/TLS")
		if err := app.Listener(tlsListener); err != nil {
			log.Fatalf("Error in Fiber Listener with TLS: %v", err)
		}
		return
	}

	log.WithFields(map[string]interface{}{
		"address":  address,
		"protocol": "HTTP",
	}).Info("Starting server with HTTP")
	if err := app.Listen(address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()
	log := logger.GetAppLogger()

	// Đọc cấu hình từ env
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	// Khởi tạo app context: kết nối MongoDB, registry collection, validator
	appCtx, err := appctx.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app context: %v", err)
	}
	defer func() {
		if err := appCtx.Close(); err != nil {
			log.WithError(err).Error("Error closing app context")
		}
	}()
	log.Info("Connected to MongoDB")

	// Khởi tạo index và dữ liệu mặc định
	InitDefaultData(appCtx)

	// Đăng ký subscriber audit cho các sự kiện thay đổi dữ liệu
	InitEventSubscribers()

	// Khởi tạo Fiber app với đầy đủ middleware và route
	app, err := InitFiberApp(appCtx)
	if err != nil {
		log.Fatalf("Failed to initialize Fiber app: %v", err)
	}

	// Shutdown gọn khi nhận SIGINT/SIGTERM
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.WithError(err).Error("Error during server shutdown")
		}
	}()

	serve(app, cfg)
}
