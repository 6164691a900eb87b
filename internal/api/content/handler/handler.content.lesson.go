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

// LessonHandler xử lý các request liên quan đến bài học
type LessonHandler struct {
	*basehdl.BaseHandler[contentmodels.Lesson, contentdto.LessonCreateInput, contentdto.LessonUpdateInput]
	LessonService *contentsvc.LessonService
}

// NewLessonHandler tạo mới LessonHandler
func NewLessonHandler(app *appctx.App) (*LessonHandler, error) {
	lessonService, err := contentsvc.NewLessonService(app)
	if err != nil {
		return nil, fmt.Errorf("failed to create lesson service: %w", err)
	}
	hdl := &LessonHandler{LessonService: lessonService}
	hdl.BaseHandler = basehdl.NewBaseHandler[contentmodels.Lesson, contentdto.LessonCreateInput, contentdto.LessonUpdateInput](
		lessonService,
		app.Validate,
		"Lessons",
		basehdl.ListConfig{
			SearchFields: []string{"title", "slug", "description", "tags"},
			SortFields:   []string{"updatedAt", "createdAt", "title", "lessonNumber"},
			BuildFilter: func(c fiber.Ctx) bson.M {
				filter := bson.M{}
				if jlptLevel := c.Query("jlptLevel"); jlptLevel != "" {
					filter["jlptLevel"] = jlptLevel
				}
				return filter
			},
		},
	)
	return hdl, nil
}
