package contentsvc

import (
	"fmt"

	basesvc "github.com/yusariii/jp-learning-app-sub000/internal/api/base/service"
	contentmodels "github.com/yusariii/jp-learning-app-sub000/internal/api/content/models"
	"github.com/yusariii/jp-learning-app-sub000/internal/appctx"
	"github.com/yusariii/jp-learning-app-sub000/internal/common"
)

// GrammarService là service quản lý ngữ pháp
type GrammarService struct {
	*basesvc.BaseServiceMongoImpl[contentmodels.Grammar]
}

// NewGrammarService tạo mới GrammarService
func NewGrammarService(app *appctx.App) (*GrammarService, error) {
	collection, exists := app.Collections.Get(appctx.ColNames.Grammars)
	if !exists {
		return nil, fmt.Errorf("failed to get grammars collection: %w", common.ErrNotFound)
	}
	return &GrammarService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[contentmodels.Grammar](collection),
	}, nil
}
