package authhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authdto "github.com/yusariii/jp-learning-app-sub000/internal/api/auth/dto"
	models "github.com/yusariii/jp-learning-app-sub000/internal/api/auth/models"
	authsvc "github.com/yusariii/jp-learning-app-sub000/internal/api/auth/service"
	basehdl "github.com/yusariii/jp-learning-app-sub000/internal/api/base/handler"
	"github.com/yusariii/jp-learning-app-sub000/internal/appctx"
	"github.com/yusariii/jp-learning-app-sub000/internal/common"
)

// AdminHandler xử lý các request liên quan đến tài khoản admin
type AdminHandler struct {
	*basehdl.BaseHandler[models.Admin, authdto.AdminCreateInput, authdto.AdminUpdateInput]
	AdminService *authsvc.AdminService
}

// NewAdminHandler tạo mới AdminHandler
func NewAdminHandler(app *appctx.App) (*AdminHandler, error) {
	adminService, err := authsvc.NewAdminService(app)
	if err != nil {
		return nil, fmt.Errorf("failed to create admin service: %w", err)
	}
	hdl := &AdminHandler{AdminService: adminService}
	hdl.BaseHandler = basehdl.NewBaseHandler[models.Admin, authdto.AdminCreateInput, authdto.AdminUpdateInput](
		adminService,
		app.Validate,
		"Admins",
		basehdl.ListConfig{
			SearchFields: []string{"email", "fullName"},
			SortFields:   []string{"updatedAt", "createdAt", "email"},
		},
	)
	return hdl, nil
}

// HandleGetRoles trả về danh sách role đang hoạt động cho picker
// chọn role khi tạo/sửa admin
func (h *AdminHandler) HandleGetRoles(c fiber.Ctx) error {
	roles, err := h.AdminService.RoleService().ListActive(c.Context())
	if err != nil {
		return basehdl.HandleError(c, err)
	}
	return basehdl.JSONResponse(c, common.StatusOK, roles)
}
