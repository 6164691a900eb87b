package router

import (
	"github.com/gofiber/fiber/v3"
)

// CRUDHandler là interface các handler CRUD phải implement để đăng ký route.
// Mỗi resource (word, grammar, lesson, ...) có một handler thỏa interface này.
type CRUDHandler interface {
	FindWithPagination(c fiber.Ctx) error
	FindOneById(c fiber.Ctx) error
	InsertOne(c fiber.Ctx) error
	UpdateById(c fiber.Ctx) error
	DeleteById(c fiber.Ctx) error
}

// CRUDConfig cấu hình những operation nào được bật cho một resource
type CRUDConfig struct {
	List   bool // GET /<resource>
	Detail bool // GET /<resource>/:id
	Create bool // POST /<resource>
	Update bool // PUT /<resource>/:id
	Delete bool // DELETE /<resource>/:id
}

// ReadWriteConfig bật đầy đủ các operation CRUD
var ReadWriteConfig = CRUDConfig{
	List:   true,
	Detail: true,
	Create: true,
	Update: true,
	Delete: true,
}

// ReadOnlyConfig chỉ bật các operation đọc dữ liệu
var ReadOnlyConfig = CRUDConfig{
	List:   true,
	Detail: true,
}

// Router quản lý việc định tuyến cho API
type Router struct {
	App *fiber.App
}

// NewRouter tạo mới Router
func NewRouter(app *fiber.App) *Router {
	return &Router{App: app}
}

// RegisterGroupWithMiddleware tạo group route và gắn middleware qua group.Use().
//
// QUAN TRỌNG - Lưu ý về Fiber v3:
// KHÔNG truyền middleware trực tiếp khi đăng ký route
// (ví dụ: group.Get("/path", middleware, handler)) — khi đăng ký kiểu này
// Fiber v3 không đảm bảo middleware chạy trước handler, request có thể
// bỏ qua middleware hoàn toàn. Luôn gắn middleware qua group.Use()
// trước khi đăng ký route như hàm này làm.
func (r *Router) RegisterGroupWithMiddleware(prefix string, middlewares ...fiber.Handler) fiber.Router {
	group := r.App.Group(prefix)
	for _, m := range middlewares {
		group.Use(m)
	}
	return group
}

// RegisterCRUDRoutes đăng ký các route CRUD chuẩn cho một resource
// theo CRUDConfig. Các route đặc thù của resource (ví dụ /admins/roles)
// phải được đăng ký TRƯỚC khi gọi hàm này để không bị /:id nuốt mất.
func RegisterCRUDRoutes(group fiber.Router, handler CRUDHandler, config CRUDConfig) {
	if config.List {
		group.Get("", handler.FindWithPagination)
	}
	if config.Create {
		group.Post("", handler.InsertOne)
	}
	if config.Detail {
		group.Get("/:id", handler.FindOneById)
	}
	if config.Update {
		group.Put("/:id", handler.UpdateById)
	}
	if config.Delete {
		group.Delete("/:id", handler.DeleteById)
	}
}

// RegisterFunc là hàm đăng ký route của một nhóm resource
type RegisterFunc func(r *Router) error

// SetupRoutes gọi lần lượt các hàm đăng ký route của từng nhóm resource
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	r := NewRouter(app)
	for _, reg := range regs {
		if err := reg(r); err != nil {
			return err
		}
	}
	return nil
}
