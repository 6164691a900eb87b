package contenthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	basehdl "github.com/yusariii/jp-learning-app-sub000/internal/api/base/handler"
	contentdto "github.com/yusariii/jp-learning-app-sub000/internal/api/content/dto"
	contentmodels "github.com/yusariii/jp-learning-app-sub000/internal/api/content/models"
	contentsvc "github.com/yusariii/jp-learning-app-sub000/internal/api/content/service"
	"github.com/yusariii/jp-learning-app-sub000/internal/appctx"
)

// ListeningHandler xử lý các request liên quan đến bài nghe
type ListeningHandler struct {
	*basehdl.BaseHandler[contentmodels.Listening, contentdto.ListeningCreateInput, contentdto.ListeningUpdateInput]
	ListeningService *contentsvc.ListeningService
}

// NewListeningHandler tạo mới ListeningHandler
func NewListeningHandler(app *appctx.App) (*ListeningHandler, error) {
	listeningService, err := contentsvc.NewListeningService(app)
	if err != nil {
		return nil, fmt.Errorf("failed to create listening service: %w", err)
	}
	hdl := &ListeningHandler{ListeningService: listeningService}
	hdl.BaseHandler = basehdl.NewBaseHandler[contentmodels.Listening, contentdto.ListeningCreateInput, contentdto.ListeningUpdateInput](
		listeningService,
		app.Validate,
		"Listenings",
		basehdl.ListConfig{
			SearchFields: []string{"title", "transcriptJP", "transcriptEN"},
			SortFields:   []string{"updatedAt", "createdAt", "title"},
			BuildFilter: func(c fiber.Ctx) bson.M {
				filter := bson.M{}
				if difficulty := c.Query("difficulty"); difficulty != "" {
					filter["difficulty"] = difficulty
				}
				return filter
			},
		},
	)
	return hdl, nil
}
