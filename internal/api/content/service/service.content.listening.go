package contentsvc

import (
	"fmt"

	basesvc "github.com/yusariii/jp-learning-app-sub000/internal/api/base/service"
	contentmodels "github.com/yusariii/jp-learning-app-sub000/internal/api/content/models"
	"github.com/yusariii/jp-learning-app-sub000/internal/appctx"
	"github.com/yusariii/jp-learning-app-sub000/internal/common"
)

// ListeningService là service quản lý bài nghe
type ListeningService struct {
	*basesvc.BaseServiceMongoImpl[contentmodels.Listening]
}

// NewListeningService tạo mới ListeningService
func NewListeningService(app *appctx.App) (*ListeningService, error) {
	collection, exists := app.Collections.Get(appctx.ColNames.Listenings)
	if !exists {
		return nil, fmt.Errorf("failed to get listenings collection: %w", common.ErrNotFound)
	}
	return &ListeningService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[contentmodels.Listening](collection),
	}, nil
}
