package basehdl

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/yusariii/jp-learning-app-sub000/internal/appctx"
	"github.com/yusariii/jp-learning-app-sub000/internal/common"
)

// SystemHandler xử lý các route liên quan đến system operations
type SystemHandler struct {
	app *appctx.App
}

// NewSystemHandler tạo một instance mới của SystemHandler
func NewSystemHandler(app *appctx.App) *SystemHandler {
	return &SystemHandler{app: app}
}

// HandleHealth kiểm tra tình trạng hệ thống: API và database connection.
// Trả về 503 khi không ping được MongoDB.
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	healthData := fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"services": fiber.Map{
			"api":      "ok",
			"database": "ok",
		},
	}

	if err := h.app.MongoClient.Ping(ctx, nil); err != nil {
		healthData["status"] = "degraded"
		healthData["services"].(fiber.Map)["database"] = "error"
		return JSONResponse(c, common.StatusServiceUnavailable, healthData)
	}

	return JSONResponse(c, common.StatusOK, healthData)
}
