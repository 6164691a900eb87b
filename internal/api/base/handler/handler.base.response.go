package basehdl

import (
	"errors"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	"github.com/yusariii/jp-learning-app-sub000/internal/common"
	"github.com/yusariii/jp-learning-app-sub000/internal/logger"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8.
// Charset tường minh để nội dung tiếng Nhật hiển thị đúng trên mọi client.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// HandleError trả lỗi về client theo format thống nhất {"message": ...}.
// Status code lấy từ error taxonomy; error ngoài taxonomy là lỗi 500 và
// không lộ chi tiết nội bộ ra ngoài.
func HandleError(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		return JSONResponse(c, customErr.StatusCode, fiber.Map{
			"message": customErr.Message,
		})
	}

	logger.GetErrorLogger().WithError(err).WithFields(map[string]interface{}{
		"path":   c.Path(),
		"method": c.Method(),
	}).Error("Unhandled error")

	return JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"message": common.MsgInternalError,
	})
}

// SafeHandler bọc các handler với recover để bắt panic và xử lý lỗi an toàn.
// Đảm bảo server luôn trả về response cho client, kể cả khi có panic xảy ra.
func (h *BaseHandler[T, C, U]) SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			debug.PrintStack()
			logger.GetErrorLogger().WithField("panic", r).Error("Handler panic recovered")
			_ = JSONResponse(c, common.StatusInternalServerError, fiber.Map{
				"message": common.MsgInternalError,
			})
		}
	}()
	return handler()
}
