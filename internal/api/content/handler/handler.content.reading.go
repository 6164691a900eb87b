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

// ReadingHandler xử lý các request liên quan đến bài đọc
type ReadingHandler struct {
	*basehdl.BaseHandler[contentmodels.Reading, contentdto.ReadingCreateInput, contentdto.ReadingUpdateInput]
	ReadingService *contentsvc.ReadingService
}

// NewReadingHandler tạo mới ReadingHandler
func NewReadingHandler(app *appctx.App) (*ReadingHandler, error) {
	readingService, err := contentsvc.NewReadingService(app)
	if err != nil {
		return nil, fmt.Errorf("failed to create reading service: %w", err)
	}
	hdl := &ReadingHandler{ReadingService: readingService}
	hdl.BaseHandler = basehdl.NewBaseHandler[contentmodels.Reading, contentdto.ReadingCreateInput, contentdto.ReadingUpdateInput](
		readingService,
		app.Validate,
		"Readings",
		basehdl.ListConfig{
			SearchFields: []string{"title", "textJP", "textEN"},
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
