// Package middleware - Test gắn actor từ JWT vào request context.
package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// runActor chạy một request qua middleware Actor và trả về
// giá trị Locals("admin_id") mà handler phía sau nhìn thấy.
func runActor(t *testing.T, authHeader string) string {
	t.Helper()

	var actorID string
	app := fiber.New()
	app.Use(Actor(testSecret))
	app.Get("/word", func(c fiber.Ctx) error {
		if v, ok := c.Locals("admin_id").(string); ok {
			actorID = v
		}
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/word", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, "middleware không bao giờ được từ chối request")
	return actorID
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestActor_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{"adminId": "66f1a2b3c4d5e6f708091a0b"})
	actorID := runActor(t, "Bearer "+token)
	assert.Equal(t, "66f1a2b3c4d5e6f708091a0b", actorID)
}

func TestActor_NoHeader(t *testing.T) {
	assert.Empty(t, runActor(t, ""), "không có Authorization thì không set actor")
}

func TestActor_WrongScheme(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{"adminId": "abc"})
	assert.Empty(t, runActor(t, "Basic "+token), "scheme khác Bearer bị bỏ qua")
}

func TestActor_InvalidSignature(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{"adminId": "abc"})
	assert.Empty(t, runActor(t, "Bearer "+token), "token sai chữ ký cho qua nhưng không set actor")
}

func TestActor_MalformedToken(t *testing.T) {
	assert.Empty(t, runActor(t, "Bearer not.a.jwt"))
}

func TestActor_MissingAdminIDClaim(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{"sub": "someone"})
	assert.Empty(t, runActor(t, "Bearer "+token), "token hợp lệ nhưng thiếu claim adminId thì không set actor")
}
