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

// GrammarHandler xử lý các request liên quan đến ngữ pháp
type GrammarHandler struct {
	*basehdl.BaseHandler[contentmodels.Grammar, contentdto.GrammarCreateInput, contentdto.GrammarUpdateInput]
	GrammarService *contentsvc.GrammarService
}

// NewGrammarHandler tạo mới GrammarHandler
func NewGrammarHandler(app *appctx.App) (*GrammarHandler, error) {
	grammarService, err := contentsvc.NewGrammarService(app)
	if err != nil {
		return nil, fmt.Errorf("failed to create grammar service: %w", err)
	}
	hdl := &GrammarHandler{GrammarService: grammarService}
	hdl.BaseHandler = basehdl.NewBaseHandler[contentmodels.Grammar, contentdto.GrammarCreateInput, contentdto.GrammarUpdateInput](
		grammarService,
		app.Validate,
		"Grammars",
		basehdl.ListConfig{
			SearchFields: []string{"title", "description", "explanationJP", "explanationEN"},
			SortFields:   []string{"updatedAt", "createdAt", "title"},
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
