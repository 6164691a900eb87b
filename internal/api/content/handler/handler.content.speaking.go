package contenthdl

import (
	"fmt"

	basehdl "github.com/yusariii/jp-learning-app-sub000/internal/api/base/handler"
	contentdto "github.com/yusariii/jp-learning-app-sub000/internal/api/content/dto"
	contentmodels "github.com/yusariii/jp-learning-app-sub000/internal/api/content/models"
	contentsvc "github.com/yusariii/jp-learning-app-sub000/internal/api/content/service"
	"github.com/yusariii/jp-learning-app-sub000/internal/appctx"
)

// SpeakingHandler xử lý các request liên quan đến bài luyện nói
type SpeakingHandler struct {
	*basehdl.BaseHandler[contentmodels.Speaking, contentdto.SpeakingCreateInput, contentdto.SpeakingUpdateInput]
	SpeakingService *contentsvc.SpeakingService
}

// NewSpeakingHandler tạo mới SpeakingHandler
func NewSpeakingHandler(app *appctx.App) (*SpeakingHandler, error) {
	speakingService, err := contentsvc.NewSpeakingService(app)
	if err != nil {
		return nil, fmt.Errorf("failed to create speaking service: %w", err)
	}
	hdl := &SpeakingHandler{SpeakingService: speakingService}
	hdl.BaseHandler = basehdl.NewBaseHandler[contentmodels.Speaking, contentdto.SpeakingCreateInput, contentdto.SpeakingUpdateInput](
		speakingService,
		app.Validate,
		"Speakings",
		basehdl.ListConfig{
			SearchFields: []string{"title", "guidance"},
			SortFields:   []string{"updatedAt", "createdAt", "title"},
		},
	)
	return hdl, nil
}
