// Package basehdl - base CRUD handlers.
// Package này cung cấp các endpoint CRUD cơ bản và các tiện ích xử lý
// request/response dùng chung cho mọi resource.
package basehdl

import (
	"bytes"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	basesvc "github.com/yusariii/jp-learning-app-sub000/internal/api/base/service"
	"github.com/yusariii/jp-learning-app-sub000/internal/common"
)

// CreateModeler là constraint cho DTO tạo mới: DTO tự biết cách chuyển
// mình thành model đầy đủ. Thay cho cơ chế transform bằng reflection,
// mỗi DTO khai báo tường minh model nó sinh ra.
type CreateModeler[T any] interface {
	ToModel() (T, error)
}

// UpdateSetter là constraint cho DTO cập nhật: DTO trả về map $set chỉ
// chứa các trường client thực sự gửi lên (field con trỏ nil = không gửi).
type UpdateSetter interface {
	ToSet() (map[string]interface{}, error)
}

// Auditable được các model có audit stamping implement (pointer receiver)
type Auditable interface {
	SetCreatedBy(adminID string)
	SetUpdatedBy(adminID string)
}

// BaseHandler là base handler cho các Fiber handler, cung cấp các chức năng
// CRUD cơ bản. Struct này sử dụng Generic Type để tái sử dụng cho nhiều
// loại model khác nhau.
//
// Type parameters:
//   - T: Kiểu dữ liệu của model
//   - C: DTO tạo mới (phải implement CreateModeler[T])
//   - U: DTO cập nhật (phải implement UpdateSetter)
type BaseHandler[T any, C CreateModeler[T], U UpdateSetter] struct {
	BaseService basesvc.BaseServiceMongo[T] // Service xử lý nghiệp vụ với MongoDB
	Validate    *validator.Validate         // Validator inject từ app context
	Resource    string                      // Tên resource (dùng cho audit log)
	List        ListConfig                  // Cấu hình search/sort/filter cho danh sách
}

// NewBaseHandler tạo mới một BaseHandler với service và cấu hình danh sách
func NewBaseHandler[T any, C CreateModeler[T], U UpdateSetter](
	service basesvc.BaseServiceMongo[T],
	validate *validator.Validate,
	resource string,
	list ListConfig,
) *BaseHandler[T, C, U] {
	return &BaseHandler[T, C, U]{
		BaseService: service,
		Validate:    validate,
		Resource:    resource,
		List:        list,
	}
}

// ParseRequestBody parse dữ liệu từ request body.
// Sử dụng json.Decoder với UseNumber() để xử lý chính xác các số.
func (h *BaseHandler[T, C, U]) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(c.Body()))
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err)
	}
	return nil
}

// ValidateInput validate input với struct tag (validate, oneof, etc.)
func (h *BaseHandler[T, C, U]) ValidateInput(input interface{}) error {
	if h.Validate == nil {
		return nil
	}
	if err := h.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}
	return nil
}

// ActorID trả về admin id do actor middleware đặt vào locals, "" nếu
// request không mang token hợp lệ.
func ActorID(c fiber.Ctx) string {
	if v := c.Locals("admin_id"); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
