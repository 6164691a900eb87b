package authsvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	models "github.com/yusariii/jp-learning-app-sub000/internal/api/auth/models"
	basemodels "github.com/yusariii/jp-learning-app-sub000/internal/api/base/models"
	basesvc "github.com/yusariii/jp-learning-app-sub000/internal/api/base/service"
	"github.com/yusariii/jp-learning-app-sub000/internal/appctx"
	"github.com/yusariii/jp-learning-app-sub000/internal/common"
)

// AdminService là service quản lý tài khoản admin.
// Service chịu trách nhiệm hash password, kiểm tra roleId tham chiếu
// đến role đang hoạt động, và đính kèm thông tin role khi đọc.
type AdminService struct {
	*basesvc.BaseServiceMongoImpl[models.Admin]
	roleService *RoleService
}

// NewAdminService tạo mới AdminService
func NewAdminService(app *appctx.App) (*AdminService, error) {
	collection, exists := app.Collections.Get(appctx.ColNames.Admins)
	if !exists {
		return nil, fmt.Errorf("failed to get admins collection: %w", common.ErrNotFound)
	}
	roleService, err := NewRoleService(app)
	if err != nil {
		return nil, fmt.Errorf("failed to create role service: %w", err)
	}
	return &AdminService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Admin](collection),
		roleService:          roleService,
	}, nil
}

// RoleService trả về service role dùng chung với admin
func (s *AdminService) RoleService() *RoleService {
	return s.roleService
}

// HashPassword hash mật khẩu bằng bcrypt trước khi lưu
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Hash mật khẩu thất bại", common.StatusInternalServerError, err)
	}
	return string(hash), nil
}

// ComparePassword so khớp mật khẩu plaintext với hash đã lưu
func ComparePassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// ensureActiveRole kiểm tra roleID trỏ đến role tồn tại và chưa bị xóa mềm
func (s *AdminService) ensureActiveRole(ctx context.Context, roleID primitive.ObjectID) error {
	_, err := s.roleService.FindOneById(ctx, roleID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrBadRoleRef
		}
		return err
	}
	return nil
}

// attachRole đính kèm thông tin role rút gọn vào admin.
// Role dangling (đã xóa mềm hoặc không tồn tại) thì bỏ qua,
// client thấy trường role vắng mặt.
func (s *AdminService) attachRole(ctx context.Context, admin *models.Admin) {
	role, err := s.roleService.FindOneById(ctx, admin.RoleID)
	if err != nil {
		return
	}
	admin.Role = &models.RoleRef{ID: role.ID, Title: role.Title}
}

// attachRoles đính kèm role cho một trang admin bằng một truy vấn $in
func (s *AdminService) attachRoles(ctx context.Context, admins []models.Admin) {
	if len(admins) == 0 {
		return
	}
	idSet := map[primitive.ObjectID]struct{}{}
	ids := make([]primitive.ObjectID, 0, len(admins))
	for _, admin := range admins {
		if _, seen := idSet[admin.RoleID]; !seen {
			idSet[admin.RoleID] = struct{}{}
			ids = append(ids, admin.RoleID)
		}
	}
	roles, err := s.roleService.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
	if err != nil {
		return
	}
	byID := make(map[primitive.ObjectID]models.Role, len(roles))
	for _, role := range roles {
		byID[role.ID] = role
	}
	for i := range admins {
		if role, ok := byID[admins[i].RoleID]; ok {
			admins[i].Role = &models.RoleRef{ID: role.ID, Title: role.Title}
		}
	}
}

// InsertOne tạo admin mới: kiểm tra role, hash mật khẩu rồi insert.
// Email trùng (unique index) được map thành lỗi 409.
func (s *AdminService) InsertOne(ctx context.Context, admin models.Admin) (models.Admin, error) {
	if err := s.ensureActiveRole(ctx, admin.RoleID); err != nil {
		return models.Admin{}, err
	}

	hash, err := HashPassword(admin.Password)
	if err != nil {
		return models.Admin{}, err
	}
	admin.Password = hash

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, admin)
	if err != nil {
		if errors.Is(err, common.ErrDuplicate) {
			return models.Admin{}, common.ErrEmailTaken
		}
		return models.Admin{}, err
	}

	s.attachRole(ctx, &created)
	return created, nil
}

// UpdateById cập nhật admin: roleId mới phải trỏ đến role đang hoạt
// động, mật khẩu mới được hash lại trước khi lưu
func (s *AdminService) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (models.Admin, error) {
	if set, ok := data.(map[string]interface{}); ok {
		if roleID, ok := set["roleId"].(primitive.ObjectID); ok {
			if err := s.ensureActiveRole(ctx, roleID); err != nil {
				return models.Admin{}, err
			}
		}
		if plain, ok := set["password"].(string); ok && plain != "" {
			hash, err := HashPassword(plain)
			if err != nil {
				return models.Admin{}, err
			}
			set["password"] = hash
		}
	}

	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, data)
	if err != nil {
		if errors.Is(err, common.ErrDuplicate) {
			return models.Admin{}, common.ErrEmailTaken
		}
		return models.Admin{}, err
	}

	s.attachRole(ctx, &updated)
	return updated, nil
}

// FindOneById đọc admin và đính kèm thông tin role
func (s *AdminService) FindOneById(ctx context.Context, id primitive.ObjectID) (models.Admin, error) {
	admin, err := s.BaseServiceMongoImpl.FindOneById(ctx, id)
	if err != nil {
		return admin, err
	}
	s.attachRole(ctx, &admin)
	return admin, nil
}

// FindWithPagination đọc một trang admin và đính kèm role cho cả trang
func (s *AdminService) FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[models.Admin], error) {
	result, err := s.BaseServiceMongoImpl.FindWithPagination(ctx, filter, page, limit, opts)
	if err != nil {
		return nil, err
	}
	s.attachRoles(ctx, result.Items)
	return result, nil
}
