package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"
)

// Actor middleware đọc JWT token từ header Authorization (nếu có)
// và lưu adminId vào context để các handler ghi audit trail.
// QUAN TRỌNG: middleware này KHÔNG từ chối request — các route CRUD
// không yêu cầu đăng nhập, token chỉ dùng để gắn thông tin người thao tác.
// - Không có header Authorization: cho qua, không set gì
// - Token không hợp lệ hoặc hết hạn: cho qua, không set gì
// - Token hợp lệ: set Locals("admin_id") = claim adminId
func Actor(secret string) fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}

		// Chỉ chấp nhận scheme Bearer
		tokenStr, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			return c.Next()
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			// Chỉ chấp nhận HMAC, tránh tấn công đổi thuật toán
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return c.Next()
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Next()
		}

		if adminID, ok := claims["adminId"].(string); ok && adminID != "" {
			c.Locals("admin_id", adminID)
		}

		return c.Next()
	}
}
