package basehdl

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yusariii/jp-learning-app-sub000/internal/utility"
)

// Giới hạn phân trang của mọi danh sách
const (
	DefaultPage  int64 = 1
	DefaultLimit int64 = 20
	MaxLimit     int64 = 100
)

// ListConfig khai báo hợp đồng danh sách của một resource:
// các trường được search bằng q, các trường được phép sort,
// và cách dựng filter từ các query param riêng của resource.
type ListConfig struct {
	// SearchFields là danh sách trường áp dụng q (regex không phân biệt hoa thường, $or)
	SearchFields []string
	// SortFields là allow-list các trường được phép sort
	SortFields []string
	// BuildFilter dựng filter đẳng thức từ query params riêng của resource.
	// Nil nếu resource không có filter riêng.
	BuildFilter func(c fiber.Ctx) bson.M
}

// defaultSort là sort fallback của mọi danh sách
var defaultSort = bson.D{{Key: "updatedAt", Value: -1}}

// ParsePagination đọc page/limit từ query string.
// page < 1 hoặc không parse được thì về 1; limit không parse được thì về
// mặc định 20 và luôn bị kẹp trong [1, 100].
func ParsePagination(c fiber.Ctx) (page int64, limit int64) {
	page = DefaultPage
	if raw := c.Query("page"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v >= 1 {
			page = v
		}
	}

	limit = DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			limit = v
		}
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return page, limit
}

// BuildListFilter dựng filter cho danh sách: filter riêng của resource
// cộng với search q. q được escape bằng QuoteMeta — tìm kiếm là so khớp
// chuỗi literal, client không inject được metacharacter regex.
func (cfg ListConfig) BuildListFilter(c fiber.Ctx) bson.M {
	filter := bson.M{}
	if cfg.BuildFilter != nil {
		for k, v := range cfg.BuildFilter(c) {
			filter[k] = v
		}
	}

	q := strings.TrimSpace(c.Query("q"))
	if q != "" && len(cfg.SearchFields) > 0 {
		pattern := regexp.QuoteMeta(q)
		or := make(bson.A, 0, len(cfg.SearchFields))
		for _, field := range cfg.SearchFields {
			or = append(or, bson.M{field: primitive.Regex{Pattern: pattern, Options: "i"}})
		}
		filter["$or"] = or
	}

	return filter
}

// ResolveSort trả về sort document từ query param "sort".
// Chấp nhận "field" (tăng dần) hoặc "-field" (giảm dần); trường không
// nằm trong allow-list thì về mặc định {updatedAt: -1}.
func (cfg ListConfig) ResolveSort(c fiber.Ctx) bson.D {
	raw := strings.TrimSpace(c.Query("sort"))
	if raw == "" {
		return defaultSort
	}

	direction := 1
	field := raw
	if strings.HasPrefix(raw, "-") {
		direction = -1
		field = raw[1:]
	}

	if !utility.Contains(cfg.SortFields, field) {
		return defaultSort
	}

	return bson.D{{Key: field, Value: direction}}
}
