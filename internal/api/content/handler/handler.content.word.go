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

// WordHandler xử lý các request liên quan đến từ vựng
type WordHandler struct {
	*basehdl.BaseHandler[contentmodels.Word, contentdto.WordCreateInput, contentdto.WordUpdateInput]
	WordService *contentsvc.WordService
}

// NewWordHandler tạo mới WordHandler
func NewWordHandler(app *appctx.App) (*WordHandler, error) {
	wordService, err := contentsvc.NewWordService(app)
	if err != nil {
		return nil, fmt.Errorf("failed to create word service: %w", err)
	}
	hdl := &WordHandler{WordService: wordService}
	hdl.BaseHandler = basehdl.NewBaseHandler[contentmodels.Word, contentdto.WordCreateInput, contentdto.WordUpdateInput](
		wordService,
		app.Validate,
		"Words",
		basehdl.ListConfig{
			SearchFields: []string{"termJP", "hiraKata", "romaji", "meaningVI", "meaningEN", "kanji", "tags"},
			SortFields:   []string{"updatedAt", "createdAt", "termJP"},
			BuildFilter: func(c fiber.Ctx) bson.M {
				filter := bson.M{}
				if jlpt := c.Query("jlpt"); jlpt != "" {
					filter["jlptLevel"] = jlpt
				}
				return filter
			},
		},
	)
	return hdl, nil
}
