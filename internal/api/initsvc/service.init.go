// Package initsvc khởi tạo dữ liệu mặc định của hệ thống:
// role Administrator và tài khoản admin gốc.
package initsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	authmodels "github.com/yusariii/jp-learning-app-sub000/internal/api/auth/models"
	authsvc "github.com/yusariii/jp-learning-app-sub000/internal/api/auth/service"
	"github.com/yusariii/jp-learning-app-sub000/internal/appctx"
	"github.com/yusariii/jp-learning-app-sub000/internal/common"
	"github.com/yusariii/jp-learning-app-sub000/internal/logger"
)

// AdministratorRoleTitle tên role quản trị mặc định
const AdministratorRoleTitle = "Administrator"

// InitService là service khởi tạo dữ liệu mặc định
type InitService struct {
	app          *appctx.App
	roleService  *authsvc.RoleService
	adminService *authsvc.AdminService
}

// NewInitService tạo mới InitService
func NewInitService(app *appctx.App) (*InitService, error) {
	roleService, err := authsvc.NewRoleService(app)
	if err != nil {
		return nil, fmt.Errorf("failed to create role service: %w", err)
	}
	adminService, err := authsvc.NewAdminService(app)
	if err != nil {
		return nil, fmt.Errorf("failed to create admin service: %w", err)
	}
	return &InitService{
		app:          app,
		roleService:  roleService,
		adminService: adminService,
	}, nil
}

// InitAdministratorRole đảm bảo role Administrator tồn tại,
// trả về role (tạo mới nếu chưa có)
func (s *InitService) InitAdministratorRole(ctx context.Context) (authmodels.Role, error) {
	role, err := s.roleService.FindOne(ctx, bson.M{"title": AdministratorRoleTitle}, nil)
	if err == nil {
		return role, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return authmodels.Role{}, err
	}

	role, err = s.roleService.InsertOne(ctx, authmodels.Role{
		Title:       AdministratorRoleTitle,
		Description: "Role quản trị mặc định với toàn quyền trên CMS",
	})
	if err != nil {
		return authmodels.Role{}, err
	}
	logger.GetAppLogger().WithField("role_id", role.ID.Hex()).Info("Created default Administrator role")
	return role, nil
}

// InitRootAdmin tạo tài khoản admin gốc khi collection admins còn trống.
// Email và mật khẩu lấy từ cấu hình SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD.
func (s *InitService) InitRootAdmin(ctx context.Context) error {
	count, err := s.adminService.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	role, err := s.InitAdministratorRole(ctx)
	if err != nil {
		return err
	}

	admin, err := s.adminService.InsertOne(ctx, authmodels.Admin{
		Email:    strings.ToLower(s.app.Config.SeedAdminEmail),
		Password: s.app.Config.SeedAdminPassword,
		FullName: "Root Administrator",
		RoleID:   role.ID,
	})
	if err != nil {
		return err
	}

	logger.GetAppLogger().WithFields(map[string]interface{}{
		"admin_id": admin.ID.Hex(),
		"email":    admin.Email,
	}).Info("Created root admin account, hãy đổi mật khẩu mặc định ngay")
	return nil
}
