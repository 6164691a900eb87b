package main

import (
	"context"
	"time"

	"github.com/yusariii/jp-learning-app-sub000/internal/api/events"
	"github.com/yusariii/jp-learning-app-sub000/internal/api/initsvc"
	"github.com/yusariii/jp-learning-app-sub000/internal/appctx"
	"github.com/yusariii/jp-learning-app-sub000/internal/database"
	"github.com/yusariii/jp-learning-app-sub000/internal/logger"
)

// InitDefaultData khởi tạo index và dữ liệu mặc định của hệ thống
func InitDefaultData(app *appctx.App) {
	log := logger.GetAppLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 1. Tạo index cho các collection (unique email, lessonNumber, updatedAt...)
	if err := database.CreateIndexes(ctx, app.DB); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}
	log.Info("Ensured collection indexes")

	// 2. Tạo role Administrator và admin gốc nếu hệ thống còn trống
	initService, err := initsvc.NewInitService(app)
	if err != nil {
		log.Fatalf("Failed to initialize init service: %v", err)
	}
	if err := initService.InitRootAdmin(ctx); err != nil {
		log.Fatalf("Failed to initialize root admin: %v", err)
	}
	log.Info("Default data initialized")
}

// InitEventSubscribers đăng ký các subscriber xử lý sự kiện thay đổi
// dữ liệu. Hiện tại chỉ có subscriber ghi audit log.
func InitEventSubscribers() {
	auditLog := logger.GetAuditLogger()
	events.OnDataChanged(func(ctx context.Context, event events.DataChangeEvent) {
		auditLog.WithFields(map[string]interface{}{
			"collection": event.CollectionName,
			"operation":  event.Operation,
		}).Info("Data changed")
	})
	logger.GetAppLogger().Info("Registered data change subscribers")
}
