// Package basehdl - Test hợp đồng danh sách: phân trang, search q và sort.
package basehdl

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// listSnapshot ghi lại kết quả parse của một request danh sách
type listSnapshot struct {
	page   int64
	limit  int64
	filter bson.M
	sort   bson.D
}

// runListQuery chạy một request GET qua Fiber để lấy fiber.Ctx thật,
// rồi parse query string với cấu hình danh sách cho trước.
func runListQuery(t *testing.T, cfg ListConfig, target string) listSnapshot {
	t.Helper()

	var snap listSnapshot
	app := fiber.New()
	app.Get("/items", func(c fiber.Ctx) error {
		snap.page, snap.limit = ParsePagination(c)
		snap.filter = cfg.BuildListFilter(c)
		snap.sort = cfg.ResolveSort(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err, "app.Test không được lỗi")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return snap
}

var wordListConfig = ListConfig{
	SearchFields: []string{"termJP", "meaningVI"},
	SortFields:   []string{"updatedAt", "createdAt", "termJP"},
	BuildFilter: func(c fiber.Ctx) bson.M {
		filter := bson.M{}
		if level := c.Query("jlpt"); level != "" {
			filter["jlptLevel"] = level
		}
		return filter
	},
}

func TestParsePagination_Defaults(t *testing.T) {
	snap := runListQuery(t, wordListConfig, "/items")
	assert.Equal(t, int64(1), snap.page, "page mặc định phải là 1")
	assert.Equal(t, int64(20), snap.limit, "limit mặc định phải là 20")
}

func TestParsePagination_LimitClamping(t *testing.T) {
	cases := []struct {
		name   string
		target string
		want   int64
	}{
		{"limit 0 kẹp về 1", "/items?limit=0", 1},
		{"limit âm kẹp về 1", "/items?limit=-5", 1},
		{"limit quá lớn kẹp về 100", "/items?limit=250", 100},
		{"limit hợp lệ giữ nguyên", "/items?limit=50", 50},
		{"limit 100 là biên trên hợp lệ", "/items?limit=100", 100},
		{"limit không parse được về mặc định", "/items?limit=abc", 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap := runListQuery(t, wordListConfig, tc.target)
			assert.Equal(t, tc.want, snap.limit)
		})
	}
}

func TestParsePagination_Page(t *testing.T) {
	cases := []struct {
		name   string
		target string
		want   int64
	}{
		{"page 0 về 1", "/items?page=0", 1},
		{"page âm về 1", "/items?page=-3", 1},
		{"page hợp lệ giữ nguyên", "/items?page=7", 7},
		{"page không parse được về 1", "/items?page=xyz", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap := runListQuery(t, wordListConfig, tc.target)
			assert.Equal(t, tc.want, snap.page)
		})
	}
}

func TestBuildListFilter_EmptyQ(t *testing.T) {
	snap := runListQuery(t, wordListConfig, "/items")
	_, hasOr := snap.filter["$or"]
	assert.False(t, hasOr, "không có q thì filter không được chứa $or")

	// q toàn khoảng trắng coi như không có
	snap = runListQuery(t, wordListConfig, "/items?q=%20%20")
	_, hasOr = snap.filter["$or"]
	assert.False(t, hasOr, "q rỗng sau trim cũng không được sinh $or")
}

func TestBuildListFilter_SearchJapanese(t *testing.T) {
	snap := runListQuery(t, wordListConfig, "/items?q=%E9%A3%9F%E3%81%B9%E3%82%8B") // 食べる
	or, ok := snap.filter["$or"].(bson.A)
	require.True(t, ok, "q phải sinh mảng $or")
	require.Len(t, or, 2, "mỗi search field một nhánh $or")

	first, ok := or[0].(bson.M)
	require.True(t, ok)
	re, ok := first["termJP"].(primitive.Regex)
	require.True(t, ok, "mỗi nhánh phải là regex trên search field")
	assert.Equal(t, "食べる", re.Pattern, "text tiếng Nhật giữ nguyên trong pattern")
	assert.Equal(t, "i", re.Options, "regex phải không phân biệt hoa thường")
}

func TestBuildListFilter_QuotesRegexMeta(t *testing.T) {
	snap := runListQuery(t, wordListConfig, "/items?q=a.b%2A")
	or, ok := snap.filter["$or"].(bson.A)
	require.True(t, ok)

	first := or[0].(bson.M)
	re := first["termJP"].(primitive.Regex)
	assert.Equal(t, `a\.b\*`, re.Pattern, "metacharacter regex phải bị escape, q là literal match")
}

func TestBuildListFilter_MergesResourceFilter(t *testing.T) {
	snap := runListQuery(t, wordListConfig, "/items?jlpt=N5&q=taberu")
	assert.Equal(t, "N5", snap.filter["jlptLevel"], "filter riêng của resource phải được merge")
	_, hasOr := snap.filter["$or"]
	assert.True(t, hasOr, "q và filter riêng phải cùng tồn tại trong filter")
}

func TestResolveSort(t *testing.T) {
	cases := []struct {
		name   string
		target string
		want   bson.D
	}{
		{"không có sort về mặc định", "/items", bson.D{{Key: "updatedAt", Value: -1}}},
		{"sort tăng dần", "/items?sort=termJP", bson.D{{Key: "termJP", Value: 1}}},
		{"sort giảm dần với prefix -", "/items?sort=-createdAt", bson.D{{Key: "createdAt", Value: -1}}},
		{"trường ngoài allow-list về mặc định", "/items?sort=password", bson.D{{Key: "updatedAt", Value: -1}}},
		{"prefix - với trường ngoài allow-list về mặc định", "/items?sort=-password", bson.D{{Key: "updatedAt", Value: -1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap := runListQuery(t, wordListConfig, tc.target)
			assert.Equal(t, tc.want, snap.sort)
		})
	}
}
