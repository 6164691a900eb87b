package contentsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/yusariii/jp-learning-app-sub000/internal/api/base/service"
	contentmodels "github.com/yusariii/jp-learning-app-sub000/internal/api/content/models"
	"github.com/yusariii/jp-learning-app-sub000/internal/appctx"
	"github.com/yusariii/jp-learning-app-sub000/internal/common"
)

// TestService là service quản lý đề thi JLPT
type TestService struct {
	*basesvc.BaseServiceMongoImpl[contentmodels.Test]
}

// NewTestService tạo mới TestService
func NewTestService(app *appctx.App) (*TestService, error) {
	collection, exists := app.Collections.Get(appctx.ColNames.Tests)
	if !exists {
		return nil, fmt.Errorf("failed to get tests collection: %w", common.ErrNotFound)
	}
	return &TestService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[contentmodels.Test](collection),
	}, nil
}

// InsertOne điền thời lượng chuẩn cho các phần thi trước khi insert
func (s *TestService) InsertOne(ctx context.Context, test contentmodels.Test) (contentmodels.Test, error) {
	ApplyTimeBudget(&test)
	return s.BaseServiceMongoImpl.InsertOne(ctx, test)
}

// UpdateById cập nhật đề thi rồi tính lại thời lượng các phần thi.
// Nếu cập nhật làm thay đổi cấp độ hoặc các phần thi thì thời lượng
// suy ra được ghi lại bằng một lần $set thứ hai.
func (s *TestService) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (contentmodels.Test, error) {
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, data)
	if err != nil {
		return updated, err
	}

	if !ApplyTimeBudget(&updated) {
		return updated, nil
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, map[string]interface{}{
		"vocabSection.totalTime":          updated.VocabSection.TotalTime,
		"grammarReadingSection.totalTime": updated.GrammarReadingSection.TotalTime,
		"listeningSection.totalTime":      updated.ListeningSection.TotalTime,
		"totalTime":                       updated.TotalTime,
	})
}
