package authsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	models "github.com/yusariii/jp-learning-app-sub000/internal/api/auth/models"
	basesvc "github.com/yusariii/jp-learning-app-sub000/internal/api/base/service"
	"github.com/yusariii/jp-learning-app-sub000/internal/appctx"
	"github.com/yusariii/jp-learning-app-sub000/internal/common"
)

// UserService là service quản lý người học.
// CMS chưa mở route quản lý user, service chỉ phục vụ schema,
// index và các truy vấn nội bộ.
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService(app *appctx.App) (*UserService, error) {
	collection, exists := app.Collections.Get(appctx.ColNames.Users)
	if !exists {
		return nil, fmt.Errorf("failed to get users collection: %w", common.ErrNotFound)
	}
	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](collection),
	}, nil
}

// FindByEmail tìm người học theo email
func (s *UserService) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return s.FindOne(ctx, bson.M{"email": email}, nil)
}
