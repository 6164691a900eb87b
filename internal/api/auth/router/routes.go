// Package router đăng ký các route quản lý Admin và Role.
package router

import (
	"fmt"

	authhdl "github.com/yusariii/jp-learning-app-sub000/internal/api/auth/handler"
	"github.com/yusariii/jp-learning-app-sub000/internal/api/middleware"
	apirouter "github.com/yusariii/jp-learning-app-sub000/internal/api/router"
	"github.com/yusariii/jp-learning-app-sub000/internal/appctx"
)

// Register trả về hàm đăng ký các route admin/role lên router
func Register(app *appctx.App) apirouter.RegisterFunc {
	return func(r *apirouter.Router) error {
		actor := middleware.Actor(app.Config.JwtSecret)

		adminHandler, err := authhdl.NewAdminHandler(app)
		if err != nil {
			return fmt.Errorf("create admin handler: %w", err)
		}
		adminGroup := r.RegisterGroupWithMiddleware("/admins", actor)
		// Route tĩnh phải đăng ký trước các route /:id
		adminGroup.Get("/roles", adminHandler.HandleGetRoles)
		apirouter.RegisterCRUDRoutes(adminGroup, adminHandler, apirouter.ReadWriteConfig)

		roleHandler, err := authhdl.NewRoleHandler(app)
		if err != nil {
			return fmt.Errorf("create role handler: %w", err)
		}
		apirouter.RegisterCRUDRoutes(r.RegisterGroupWithMiddleware("/roles", actor), roleHandler, apirouter.ReadWriteConfig)

		return nil
	}
}
