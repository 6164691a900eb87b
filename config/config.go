package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng.
// Hai biến bắt buộc là MONGO_URL và PORT, các biến còn lại có default
// hợp lý để chạy được ngay trong môi trường development.
type Configuration struct {
	MongoURL    string `env:"MONGO_URL,required"`                 // URL kết nối MongoDB
	Port        int    `env:"PORT" envDefault:"8080"`             // Cổng HTTP server
	MongoDBName string `env:"MONGO_DB_NAME" envDefault:"jplearn"` // Tên database
	JwtSecret   string `env:"JWT_SECRET" envDefault:"dev-secret"` // Bí mật ký JWT của actor token

	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting

	// Tài khoản admin mặc định, chỉ được tạo khi collection admins rỗng
	SeedAdminEmail    string `env:"SEED_ADMIN_EMAIL" envDefault:"admin@local"`
	SeedAdminPassword string `env:"SEED_ADMIN_PASSWORD" envDefault:"changeme"`

	// TLS/HTTPS Configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Bật HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Đường dẫn đến file certificate (.crt hoặc .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Đường dẫn đến file private key (.key)
}

// Address trả về địa chỉ listen dạng ":<port>" cho Fiber.
func (c *Configuration) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường.
// Đi ngược từ thư mục hiện tại lên cho đến khi gặp config/env.
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Tìm thư mục config/env
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		// Đi lên thư mục cha
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig đọc cấu hình từ file env (nếu có) rồi parse từ biến môi trường.
// Khi chạy trong container không có file env, biến môi trường process vẫn
// được dùng bình thường.
func NewConfig() (*Configuration, error) {
	if envPath := getEnvPath(); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return nil, fmt.Errorf("không thể load file env tại %s: %w", envPath, err)
			}
		}
	}

	cfg := &Configuration{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("lỗi khi parse config: %w", err)
	}

	return cfg, nil
}
