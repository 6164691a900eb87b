package basehdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yusariii/jp-learning-app-sub000/internal/common"
	"github.com/yusariii/jp-learning-app-sub000/internal/logger"
	"github.com/yusariii/jp-learning-app-sub000/internal/utility"
)

// parseIDParam đọc và validate :id từ URI.
// ID không đúng định dạng ObjectID hành xử y hệt document không tồn tại:
// route detail/update/delete chỉ có hai kết quả 200 hoặc 404.
func parseIDParam(c fiber.Ctx) (primitive.ObjectID, error) {
	id := c.Params("id")
	if id == "" || !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.ErrNotFound
	}
	return utility.String2ObjectID(id), nil
}

// FindWithPagination trả về danh sách resource với phân trang, search và sort.
// Envelope: {"data": [...], "page": n, "limit": n, "total": n}
func (h *BaseHandler[T, C, U]) FindWithPagination(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := ParsePagination(c)
		filter := h.List.BuildListFilter(c)
		sort := h.List.ResolveSort(c)

		opts := mongoopts.Find().SetSort(sort)
		result, err := h.BaseService.FindWithPagination(c.Context(), filter, page, limit, opts)
		if err != nil {
			return HandleError(c, err)
		}

		return JSONResponse(c, common.StatusOK, fiber.Map{
			"data":  result.Items,
			"page":  result.Page,
			"limit": result.Limit,
			"total": result.Total,
		})
	})
}

// FindOneById trả về chi tiết một resource theo ID
func (h *BaseHandler[T, C, U]) FindOneById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := parseIDParam(c)
		if err != nil {
			return HandleError(c, err)
		}

		data, err := h.BaseService.FindOneById(c.Context(), id)
		if err != nil {
			return HandleError(c, err)
		}

		return JSONResponse(c, common.StatusOK, data)
	})
}

// InsertOne tạo mới một resource từ DTO CreateInput.
// DTO được validate bằng struct tag rồi tự chuyển thành model qua ToModel.
func (h *BaseHandler[T, C, U]) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input C
		if err := h.ParseRequestBody(c, &input); err != nil {
			return HandleError(c, err)
		}

		if err := h.ValidateInput(&input); err != nil {
			return HandleError(c, err)
		}

		model, err := input.ToModel()
		if err != nil {
			return HandleError(c, err)
		}

		// Gán audit stamp nếu model hỗ trợ và request có actor
		if actorID := ActorID(c); actorID != "" {
			if a, ok := any(&model).(Auditable); ok {
				a.SetCreatedBy(actorID)
				a.SetUpdatedBy(actorID)
			}
		}

		data, err := h.BaseService.InsertOne(c.Context(), model)
		if err != nil {
			return HandleError(c, err)
		}

		logger.LogCRUD("create", h.Resource, "", c, nil)
		return JSONResponse(c, common.StatusCreated, data)
	})
}

// UpdateById cập nhật một resource theo ID từ DTO UpdateInput.
// Chỉ các trường client thực sự gửi lên mới được đưa vào $set.
func (h *BaseHandler[T, C, U]) UpdateById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := parseIDParam(c)
		if err != nil {
			return HandleError(c, err)
		}

		var input U
		if err := h.ParseRequestBody(c, &input); err != nil {
			return HandleError(c, err)
		}

		if err := h.ValidateInput(&input); err != nil {
			return HandleError(c, err)
		}

		set, err := input.ToSet()
		if err != nil {
			return HandleError(c, err)
		}

		// Chỉ stamp updatedBy cho model có audit, đối xứng với đường tạo mới
		if actorID := ActorID(c); actorID != "" {
			var model T
			if _, ok := any(&model).(Auditable); ok {
				set["updatedBy"] = map[string]interface{}{"adminId": actorID}
			}
		}

		data, err := h.BaseService.UpdateById(c.Context(), id, set)
		if err != nil {
			return HandleError(c, err)
		}

		logger.LogCRUD("update", h.Resource, utility.ObjectID2String(id), c, nil)
		return JSONResponse(c, common.StatusOK, data)
	})
}

// DeleteById xóa một resource theo ID. Response: {"ok": true}
func (h *BaseHandler[T, C, U]) DeleteById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := parseIDParam(c)
		if err != nil {
			return HandleError(c, err)
		}

		if err := h.BaseService.DeleteById(c.Context(), id); err != nil {
			return HandleError(c, err)
		}

		logger.LogCRUD("delete", h.Resource, utility.ObjectID2String(id), c, nil)
		return JSONResponse(c, common.StatusOK, fiber.Map{"ok": true})
	})
}
