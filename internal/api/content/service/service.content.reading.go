package contentsvc

import (
	"fmt"

	basesvc "github.com/yusariii/jp-learning-app-sub000/internal/api/base/service"
	contentmodels "github.com/yusariii/jp-learning-app-sub000/internal/api/content/models"
	"github.com/yusariii/jp-learning-app-sub000/internal/appctx"
	"github.com/yusariii/jp-learning-app-sub000/internal/common"
)

// ReadingService là service quản lý bài đọc
type ReadingService struct {
	*basesvc.BaseServiceMongoImpl[contentmodels.Reading]
}

// NewReadingService tạo mới ReadingService
func NewReadingService(app *appctx.App) (*ReadingService, error) {
	collection, exists := app.Collections.Get(appctx.ColNames.Readings)
	if !exists {
		return nil, fmt.Errorf("failed to get readings collection: %w", common.ErrNotFound)
	}
	return &ReadingService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[contentmodels.Reading](collection),
	}, nil
}
