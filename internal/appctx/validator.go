package appctx

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewValidator khởi tạo validator và đăng ký các custom validator.
// Kiểm tra tồn tại của reference (ví dụ roleId) nằm ở tầng service,
// nơi visibility predicate soft-delete được tôn trọng — validator
// chỉ kiểm tra được hình thức của dữ liệu.
func NewValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("no_xss", validateNoXSS)
	_ = v.RegisterValidation("objectid", validateObjectID)

	return v
}

// validateNoXSS chặn các pattern script phổ biến trong input dạng text
func validateNoXSS(fl validator.FieldLevel) bool {
	value := strings.ToLower(fl.Field().String())
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"eval(",
		"document.cookie",
		"document.write",
		"<iframe",
		"<object",
		"<embed",
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateObjectID kiểm tra chuỗi là ObjectID hex hợp lệ.
// Chuỗi rỗng được coi là hợp lệ (kết hợp với omitempty cho field optional).
func validateObjectID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := primitive.ObjectIDFromHex(value)
	return err == nil
}
