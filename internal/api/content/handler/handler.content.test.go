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

// TestHandler xử lý các request liên quan đến đề thi JLPT
type TestHandler struct {
	*basehdl.BaseHandler[contentmodels.Test, contentdto.TestCreateInput, contentdto.TestUpdateInput]
	TestService *contentsvc.TestService
}

// NewTestHandler tạo mới TestHandler.
// TestService được truyền vào BaseHandler để các route CRUD đi qua
// logic tính thời lượng phần thi của service.
func NewTestHandler(app *appctx.App) (*TestHandler, error) {
	testService, err := contentsvc.NewTestService(app)
	if err != nil {
		return nil, fmt.Errorf("failed to create test service: %w", err)
	}
	hdl := &TestHandler{TestService: testService}
	hdl.BaseHandler = basehdl.NewBaseHandler[contentmodels.Test, contentdto.TestCreateInput, contentdto.TestUpdateInput](
		testService,
		app.Validate,
		"Tests",
		basehdl.ListConfig{
			SearchFields: []string{"title", "description"},
			SortFields:   []string{"updatedAt", "createdAt", "title"},
			BuildFilter: func(c fiber.Ctx) bson.M {
				filter := bson.M{}
				if level := c.Query("level"); level != "" {
					filter["jlptLevel"] = level
				}
				// published chỉ nhận đúng hai giá trị 'true'/'false'
				switch c.Query("published") {
				case "true":
					filter["published"] = true
				case "false":
					filter["published"] = false
				}
				return filter
			},
		},
	)
	return hdl, nil
}
