// Package basehdl - Test audit stamping của đường tạo mới và cập nhật.
package basehdl

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "github.com/yusariii/jp-learning-app-sub000/internal/api/base/models"
	contentmodels "github.com/yusariii/jp-learning-app-sub000/internal/api/content/models"
)

// stubService ghi lại dữ liệu service nhận được, không chạm database
type stubService[T any] struct {
	inserted *T
	updated  interface{}
}

func (s *stubService[T]) InsertOne(ctx context.Context, data T) (T, error) {
	s.inserted = &data
	return data, nil
}

func (s *stubService[T]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error) {
	var zero T
	return zero, nil
}

func (s *stubService[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	return []T{}, nil
}

func (s *stubService[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	return 0, nil
}

func (s *stubService[T]) FindOneById(ctx context.Context, id primitive.ObjectID) (T, error) {
	var zero T
	return zero, nil
}

func (s *stubService[T]) FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[T], error) {
	return &basemodels.PaginateResult[T]{Items: []T{}, Page: page, Limit: limit}, nil
}

func (s *stubService[T]) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (T, error) {
	s.updated = data
	var zero T
	return zero, nil
}

func (s *stubService[T]) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	return nil
}

func (s *stubService[T]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	return false, nil
}

// auditedNote là model có audit stamping
type auditedNote struct {
	contentmodels.Audit `bson:",inline"`

	Title string `json:"title" bson:"title"`
}

type auditedNoteCreateInput struct {
	Title string `json:"title"`
}

func (in auditedNoteCreateInput) ToModel() (auditedNote, error) {
	return auditedNote{Title: in.Title}, nil
}

type auditedNoteUpdateInput struct {
	Title *string `json:"title,omitempty"`
}

func (in auditedNoteUpdateInput) ToSet() (map[string]interface{}, error) {
	set := map[string]interface{}{}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	return set, nil
}

// plainNote là model không có audit stamping (như Admin, Role)
type plainNote struct {
	Title string `json:"title" bson:"title"`
}

type plainNoteCreateInput struct {
	Title string `json:"title"`
}

func (in plainNoteCreateInput) ToModel() (plainNote, error) {
	return plainNote{Title: in.Title}, nil
}

type plainNoteUpdateInput struct {
	Title *string `json:"title,omitempty"`
}

func (in plainNoteUpdateInput) ToSet() (map[string]interface{}, error) {
	set := map[string]interface{}{}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	return set, nil
}

const stampActorID = "66f1a2b3c4d5e6f708091a0b"

// newStampApp dựng app có middleware gắn actor sẵn vào Locals
func newStampApp(withActor bool) *fiber.App {
	app := fiber.New()
	if withActor {
		app.Use(func(c fiber.Ctx) error {
			c.Locals("admin_id", stampActorID)
			return c.Next()
		})
	}
	return app
}

func TestInsertOne_StampsAuditableModel(t *testing.T) {
	service := &stubService[auditedNote]{}
	handler := NewBaseHandler[auditedNote, auditedNoteCreateInput, auditedNoteUpdateInput](service, nil, "notes", ListConfig{})

	app := newStampApp(true)
	app.Post("/notes", handler.InsertOne)

	req := httptest.NewRequest("POST", "/notes", bytes.NewReader([]byte(`{"title":"ghi chú"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	require.NotNil(t, service.inserted)
	require.NotNil(t, service.inserted.CreatedBy, "model có audit phải được stamp createdBy")
	assert.Equal(t, stampActorID, service.inserted.CreatedBy.AdminID)
	require.NotNil(t, service.inserted.UpdatedBy)
	assert.Equal(t, stampActorID, service.inserted.UpdatedBy.AdminID)
}

func TestInsertOne_NoActorNoStamp(t *testing.T) {
	service := &stubService[auditedNote]{}
	handler := NewBaseHandler[auditedNote, auditedNoteCreateInput, auditedNoteUpdateInput](service, nil, "notes", ListConfig{})

	app := newStampApp(false)
	app.Post("/notes", handler.InsertOne)

	req := httptest.NewRequest("POST", "/notes", bytes.NewReader([]byte(`{"title":"ghi chú"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	require.NotNil(t, service.inserted)
	assert.Nil(t, service.inserted.CreatedBy, "không có actor thì không stamp")
}

func TestUpdateById_StampsAuditableModel(t *testing.T) {
	service := &stubService[auditedNote]{}
	handler := NewBaseHandler[auditedNote, auditedNoteCreateInput, auditedNoteUpdateInput](service, nil, "notes", ListConfig{})

	app := newStampApp(true)
	app.Put("/notes/:id", handler.UpdateById)

	req := httptest.NewRequest("PUT", "/notes/"+primitive.NewObjectID().Hex(), bytes.NewReader([]byte(`{"title":"sửa"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	set, ok := service.updated.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "sửa", set["title"])
	assert.Equal(t, map[string]interface{}{"adminId": stampActorID}, set["updatedBy"])
}

func TestUpdateById_SkipsStampForPlainModel(t *testing.T) {
	// Model không có audit (Admin, Role) không được nhận field updatedBy lạ
	service := &stubService[plainNote]{}
	handler := NewBaseHandler[plainNote, plainNoteCreateInput, plainNoteUpdateInput](service, nil, "roles", ListConfig{})

	app := newStampApp(true)
	app.Put("/roles/:id", handler.UpdateById)

	req := httptest.NewRequest("PUT", "/roles/"+primitive.NewObjectID().Hex(), bytes.NewReader([]byte(`{"title":"Editor"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	set, ok := service.updated.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Editor", set["title"])
	_, hasStamp := set["updatedBy"]
	assert.False(t, hasStamp, "model không có audit không được stamp updatedBy")
}
