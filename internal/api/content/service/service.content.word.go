package contentsvc

import (
	"fmt"

	basesvc "github.com/yusariii/jp-learning-app-sub000/internal/api/base/service"
	contentmodels "github.com/yusariii/jp-learning-app-sub000/internal/api/content/models"
	"github.com/yusariii/jp-learning-app-sub000/internal/appctx"
	"github.com/yusariii/jp-learning-app-sub000/internal/common"
)

// WordService là service quản lý từ vựng
type WordService struct {
	*basesvc.BaseServiceMongoImpl[contentmodels.Word]
}

// NewWordService tạo mới WordService
func NewWordService(app *appctx.App) (*WordService, error) {
	collection, exists := app.Collections.Get(appctx.ColNames.Words)
	if !exists {
		return nil, fmt.Errorf("failed to get words collection: %w", common.ErrNotFound)
	}
	return &WordService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[contentmodels.Word](collection),
	}, nil
}
