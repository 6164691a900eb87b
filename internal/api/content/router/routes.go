// Package router đăng ký các route thuộc domain Content: Word, Grammar,
// Lesson, Reading, Listening, Speaking, Test.
package router

import (
	"fmt"

	contenthdl "github.com/yusariii/jp-learning-app-sub000/internal/api/content/handler"
	"github.com/yusariii/jp-learning-app-sub000/internal/api/middleware"
	apirouter "github.com/yusariii/jp-learning-app-sub000/internal/api/router"
	"github.com/yusariii/jp-learning-app-sub000/internal/appctx"
)

// Register trả về hàm đăng ký tất cả route content lên router
func Register(app *appctx.App) apirouter.RegisterFunc {
	return func(r *apirouter.Router) error {
		actor := middleware.Actor(app.Config.JwtSecret)

		wordHandler, err := contenthdl.NewWordHandler(app)
		if err != nil {
			return fmt.Errorf("create word handler: %w", err)
		}
		apirouter.RegisterCRUDRoutes(r.RegisterGroupWithMiddleware("/word", actor), wordHandler, apirouter.ReadWriteConfig)

		grammarHandler, err := contenthdl.NewGrammarHandler(app)
		if err != nil {
			return fmt.Errorf("create grammar handler: %w", err)
		}
		apirouter.RegisterCRUDRoutes(r.RegisterGroupWithMiddleware("/grammar", actor), grammarHandler, apirouter.ReadWriteConfig)

		lessonHandler, err := contenthdl.NewLessonHandler(app)
		if err != nil {
			return fmt.Errorf("create lesson handler: %w", err)
		}
		apirouter.RegisterCRUDRoutes(r.RegisterGroupWithMiddleware("/lesson", actor), lessonHandler, apirouter.ReadWriteConfig)

		readingHandler, err := contenthdl.NewReadingHandler(app)
		if err != nil {
			return fmt.Errorf("create reading handler: %w", err)
		}
		apirouter.RegisterCRUDRoutes(r.RegisterGroupWithMiddleware("/reading", actor), readingHandler, apirouter.ReadWriteConfig)

		listeningHandler, err := contenthdl.NewListeningHandler(app)
		if err != nil {
			return fmt.Errorf("create listening handler: %w", err)
		}
		apirouter.RegisterCRUDRoutes(r.RegisterGroupWithMiddleware("/listening", actor), listeningHandler, apirouter.ReadWriteConfig)

		speakingHandler, err := contenthdl.NewSpeakingHandler(app)
		if err != nil {
			return fmt.Errorf("create speaking handler: %w", err)
		}
		apirouter.RegisterCRUDRoutes(r.RegisterGroupWithMiddleware("/speaking", actor), speakingHandler, apirouter.ReadWriteConfig)

		testHandler, err := contenthdl.NewTestHandler(app)
		if err != nil {
			return fmt.Errorf("create test handler: %w", err)
		}
		apirouter.RegisterCRUDRoutes(r.RegisterGroupWithMiddleware("/test", actor), testHandler, apirouter.ReadWriteConfig)

		return nil
	}
}
