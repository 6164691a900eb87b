// Package authsvc - service quản lý Admin, Role và User của CMS
package authsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	models "github.com/yusariii/jp-learning-app-sub000/internal/api/auth/models"
	basesvc "github.com/yusariii/jp-learning-app-sub000/internal/api/base/service"
	"github.com/yusariii/jp-learning-app-sub000/internal/appctx"
	"github.com/yusariii/jp-learning-app-sub000/internal/common"
)

// roleVisibility loại role đã xóa mềm khỏi mọi truy vấn đọc.
// Predicate được merge ở tầng repository nên không handler nào
// phải tự nhớ thêm điều kiện deleted.
var roleVisibility = bson.M{"deleted": bson.M{"$ne": true}}

// RoleService là service quản lý role của admin
type RoleService struct {
	*basesvc.BaseServiceMongoImpl[models.Role]
}

// NewRoleService tạo mới RoleService
func NewRoleService(app *appctx.App) (*RoleService, error) {
	collection, exists := app.Collections.Get(appctx.ColNames.Roles)
	if !exists {
		return nil, fmt.Errorf("failed to get roles collection: %w", common.ErrNotFound)
	}
	return &RoleService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongoWithVisibility[models.Role](collection, roleVisibility),
	}, nil
}

// DeleteById xóa mềm role: set deleted=true thay vì xóa document.
// Record vẫn nằm trong collection nhưng biến mất khỏi mọi API đọc.
func (s *RoleService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	return s.SoftDeleteById(ctx, id)
}

// ListActive trả về toàn bộ role đang hoạt động, sắp theo title,
// dùng cho picker chọn role khi tạo admin
func (s *RoleService) ListActive(ctx context.Context) ([]models.Role, error) {
	opts := options.Find().SetSort(bson.D{{Key: "title", Value: 1}})
	return s.Find(ctx, bson.M{}, opts)
}
