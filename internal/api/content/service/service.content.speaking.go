package contentsvc

import (
	"fmt"

	basesvc "github.com/yusariii/jp-learning-app-sub000/internal/api/base/service"
	contentmodels "github.com/yusariii/jp-learning-app-sub000/internal/api/content/models"
	"github.com/yusariii/jp-learning-app-sub000/internal/appctx"
	"github.com/yusariii/jp-learning-app-sub000/internal/common"
)

// SpeakingService là service quản lý bài luyện nói
type SpeakingService struct {
	*basesvc.BaseServiceMongoImpl[contentmodels.Speaking]
}

// NewSpeakingService tạo mới SpeakingService
func NewSpeakingService(app *appctx.App) (*SpeakingService, error) {
	collection, exists := app.Collections.Get(appctx.ColNames.Speakings)
	if !exists {
		return nil, fmt.Errorf("failed to get speakings collection: %w", common.ErrNotFound)
	}
	return &SpeakingService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[contentmodels.Speaking](collection),
	}, nil
}
