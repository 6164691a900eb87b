package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoleRef thông tin role rút gọn đính kèm vào Admin khi đọc
type RoleRef struct {
	ID    primitive.ObjectID `json:"id" bson:"_id"`      // ID của role
	Title string             `json:"title" bson:"title"` // Tên role
}

// Admin đại diện cho một tài khoản quản trị CMS.
// Email là duy nhất (unique index) và luôn được lưu dạng chữ thường.
// Password chỉ lưu dạng bcrypt hash, không bao giờ trả về qua JSON.
type Admin struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của admin

	Email    string             `json:"email" bson:"email"`                           // Email đăng nhập (bắt buộc, unique, chữ thường)
	Password string             `json:"-" bson:"password"`                            // Mật khẩu đã hash bằng bcrypt
	FullName string             `json:"fullName,omitempty" bson:"fullName,omitempty"` // Họ tên
	RoleID   primitive.ObjectID `json:"roleId" bson:"roleId"`                         // Tham chiếu đến Role (bắt buộc)

	// Role được service đính kèm sau khi đọc, không lưu trong collection
	Role *RoleRef `json:"role,omitempty" bson:"-"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
