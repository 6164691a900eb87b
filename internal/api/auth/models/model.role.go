package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role đại diện cho một vai trò của admin.
// Role không bị xóa cứng: xóa role chỉ set deleted=true, mọi
// truy vấn đọc sau đó loại role đã xóa qua visibility predicate.
type Role struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của role

	Title       string `json:"title" bson:"title"`                                 // Tên role (bắt buộc)
	Description string `json:"description,omitempty" bson:"description,omitempty"` // Mô tả role
	Deleted     bool   `json:"deleted,omitempty" bson:"deleted,omitempty"`         // Cờ xóa mềm
	DeletedAt   int64  `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`     // Thời gian xóa mềm

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
