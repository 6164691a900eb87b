package authhdl

import (
	"fmt"

	authdto "github.com/yusariii/jp-learning-app-sub000/internal/api/auth/dto"
	models "github.com/yusariii/jp-learning-app-sub000/internal/api/auth/models"
	authsvc "github.com/yusariii/jp-learning-app-sub000/internal/api/auth/service"
	basehdl "github.com/yusariii/jp-learning-app-sub000/internal/api/base/handler"
	"github.com/yusariii/jp-learning-app-sub000/internal/appctx"
)

// RoleHandler xử lý các request liên quan đến role
type RoleHandler struct {
	*basehdl.BaseHandler[models.Role, authdto.RoleCreateInput, authdto.RoleUpdateInput]
	RoleService *authsvc.RoleService
}

// NewRoleHandler tạo mới RoleHandler
func NewRoleHandler(app *appctx.App) (*RoleHandler, error) {
	roleService, err := authsvc.NewRoleService(app)
	if err != nil {
		return nil, fmt.Errorf("failed to create role service: %w", err)
	}
	hdl := &RoleHandler{RoleService: roleService}
	hdl.BaseHandler = basehdl.NewBaseHandler[models.Role, authdto.RoleCreateInput, authdto.RoleUpdateInput](
		roleService,
		app.Validate,
		"Roles",
		basehdl.ListConfig{
			SearchFields: []string{"title", "description"},
			SortFields:   []string{"updatedAt", "createdAt", "title"},
		},
	)
	return hdl, nil
}
