package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/google/uuid"

	authrouter "github.com/yusariii/jp-learning-app-sub000/internal/api/auth/router"
	basehdl "github.com/yusariii/jp-learning-app-sub000/internal/api/base/handler"
	contentrouter "github.com/yusariii/jp-learning-app-sub000/internal/api/content/router"
	apirouter "github.com/yusariii/jp-learning-app-sub000/internal/api/router"
	"github.com/yusariii/jp-learning-app-sub000/internal/appctx"
	"github.com/yusariii/jp-learning-app-sub000/internal/common"
	"github.com/yusariii/jp-learning-app-sub000/internal/logger"
)

// InitFiberApp khởi tạo ứng dụng Fiber với đầy đủ middleware và route
func InitFiberApp(appCtx *appctx.App) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName:       "JP Learning CMS API",
		ServerHeader:  "JP Learning CMS API",
		StrictRouting: false,
		CaseSensitive: true,
		UnescapePath:  true,

		BodyLimit:       10 * 1024 * 1024, // Max size của request body (10MB)
		Concurrency:     256 * 1024,
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,

		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,

		// Mọi lỗi rơi đến đây đều trả về body dạng {message}
		ErrorHandler: func(c fiber.Ctx, err error) error {
			var customErr *common.Error
			if errors.As(err, &customErr) {
				return c.Status(customErr.StatusCode).JSON(fiber.Map{
					"message": customErr.Message,
				})
			}

			code := fiber.StatusInternalServerError
			message := common.MsgInternalError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
				message = fiberErr.Message
			}

			logger.WithRequest(c).WithFields(map[string]interface{}{
				"code":    code,
				"message": message,
			}).Error("Request error")

			return c.Status(code).JSON(fiber.Map{"message": message})
		},
	})

	// 1. Request ID - tạo ID duy nhất cho mỗi request để trace
	app.Use(requestid.New(requestid.Config{
		Header:    "X-Request-ID",
		Generator: uuid.NewString,
	}))

	// 2. CORS - phải đặt trước các middleware khác để xử lý preflight
	var allowOrigins []string
	if appCtx.Config.CORS_Origins == "*" {
		allowOrigins = []string{"*"}
	} else {
		allowOrigins = strings.Split(appCtx.Config.CORS_Origins, ",")
		for i, origin := range allowOrigins {
			allowOrigins[i] = strings.TrimSpace(origin)
		}
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Request-ID",
			"X-Requested-With",
		},
		AllowCredentials: appCtx.Config.CORS_AllowCredentials,
		ExposeHeaders:    []string{"Content-Length", "Content-Range", "X-Request-ID"},
		MaxAge:           24 * 60 * 60,
	}))

	// 3. Security headers
	app.Use(func(c fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		return c.Next()
	})

	// 4. Rate limiting theo IP, bỏ qua health check và preflight
	if appCtx.Config.RateLimit_Enabled && appCtx.Config.RateLimit_Max > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        appCtx.Config.RateLimit_Max,
			Expiration: time.Duration(appCtx.Config.RateLimit_Window) * time.Second,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"message": "Quá nhiều yêu cầu, vui lòng thử lại sau",
				})
			},
			Next: func(c fiber.Ctx) bool {
				return c.Path() == "/system/health" || c.Method() == "OPTIONS"
			},
		}))
		logger.GetAppLogger().Infof("Rate limiting enabled: %d requests per %d seconds",
			appCtx.Config.RateLimit_Max, appCtx.Config.RateLimit_Window)
	} else {
		logger.GetAppLogger().Info("Rate limiting disabled")
	}

	// 5. Recover - bắt panic, log stack trace và trả về {message}
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			logger.WithRequest(c).WithFields(map[string]interface{}{
				"panic": e,
			}).Error("Panic recovered")
			c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": common.MsgInternalError,
			})
		},
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/system/health"
		},
	}))

	// Health check
	systemHandler := basehdl.NewSystemHandler(appCtx)
	app.Get("/system/health", systemHandler.HandleHealth)

	// Đăng ký route của các domain
	if err := apirouter.SetupRoutes(app,
		contentrouter.Register(appCtx),
		authrouter.Register(appCtx),
	); err != nil {
		return nil, fmt.Errorf("setup routes: %w", err)
	}

	// Catch-all cho route không tồn tại, phải đăng ký SAU tất cả route khác
	app.Use(func(c fiber.Ctx) error {
		return basehdl.JSONResponse(c, common.StatusNotFound, fiber.Map{
			"message": common.MsgRouteNotFound,
		})
	})

	return app, nil
}
