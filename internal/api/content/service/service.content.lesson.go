package contentsvc

import (
	"fmt"

	basesvc "github.com/yusariii/jp-learning-app-sub000/internal/api/base/service"
	contentmodels "github.com/yusariii/jp-learning-app-sub000/internal/api/content/models"
	"github.com/yusariii/jp-learning-app-sub000/internal/appctx"
	"github.com/yusariii/jp-learning-app-sub000/internal/common"
)

// LessonService là service quản lý bài học
type LessonService struct {
	*basesvc.BaseServiceMongoImpl[contentmodels.Lesson]
}

// NewLessonService tạo mới LessonService
func NewLessonService(app *appctx.App) (*LessonService, error) {
	collection, exists := app.Collections.Get(appctx.ColNames.Lessons)
	if !exists {
		return nil, fmt.Errorf("failed to get lessons collection: %w", common.ErrNotFound)
	}
	return &LessonService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[contentmodels.Lesson](collection),
	}, nil
}
