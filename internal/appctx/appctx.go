// Package appctx chứa application context: toàn bộ tài nguyên dùng chung
// (config, kết nối mongo, registry collection, validator) được khởi tạo
// một lần ở cmd/server và inject xuống các tầng dưới qua con trỏ *App.
// Không dùng biến global để các tầng có thể test độc lập.
package appctx

import (
	"fmt"

	"github.com/yusariii/jp-learning-app-sub000/config"
	"github.com/yusariii/jp-learning-app-sub000/internal/database"
	"github.com/yusariii/jp-learning-app-sub000/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionNames liệt kê tên các collection của hệ thống.
// Tên collection là hợp đồng với dữ liệu đang có, không đổi tùy tiện.
type CollectionNames struct {
	Words      string
	Grammars   string
	Lessons    string
	Readings   string
	Listenings string
	Speakings  string
	Tests      string
	Admins     string
	Roles      string
	Users      string
}

// ColNames là bảng tên collection chuẩn của hệ thống
var ColNames = CollectionNames{
	Words:      "words",
	Grammars:   "grammars",
	Lessons:    "lessons",
	Readings:   "readings",
	Listenings: "listenings",
	Speakings:  "speakings",
	Tests:      "tests",
	Admins:     "admins",
	Roles:      "roles",
	Users:      "users",
}

// All trả về danh sách tất cả tên collection
func (c CollectionNames) All() []string {
	return []string{
		c.Words, c.Grammars, c.Lessons, c.Readings, c.Listenings,
		c.Speakings, c.Tests, c.Admins, c.Roles, c.Users,
	}
}

// App là application context được truyền xuyên suốt ứng dụng
type App struct {
	Config      *config.Configuration
	MongoClient *mongo.Client
	DB          *mongo.Database
	Collections *registry.Registry[*mongo.Collection]
	Validate    *validator.Validate
}

// New khởi tạo application context: kết nối mongo, đăng ký collections
// vào registry và khởi tạo validator.
func New(cfg *config.Configuration) (*App, error) {
	client, err := database.GetInstance(cfg)
	if err != nil {
		return nil, fmt.Errorf("init mongodb: %w", err)
	}

	db := client.Database(cfg.MongoDBName)

	collections := registry.NewRegistry[*mongo.Collection]()
	for _, name := range ColNames.All() {
		if _, err := collections.Register(name, db.Collection(name)); err != nil {
			return nil, fmt.Errorf("register collection %s: %w", name, err)
		}
	}

	app := &App{
		Config:      cfg,
		MongoClient: client,
		DB:          db,
		Collections: collections,
		Validate:    NewValidator(),
	}

	return app, nil
}

// Close giải phóng các tài nguyên của application context
func (a *App) Close() error {
	return database.CloseInstance(a.MongoClient)
}
