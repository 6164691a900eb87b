package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User đại diện cho một người học trong ứng dụng mobile.
// CMS admin chỉ giữ schema và collection này, chưa mở API quản lý.
type User struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của người học

	Email       string `json:"email" bson:"email"`                                 // Email đăng nhập (bắt buộc, unique)
	Password    string `json:"-" bson:"password"`                                  // Mật khẩu đã hash
	FullName    string `json:"fullName,omitempty" bson:"fullName,omitempty"`       // Họ tên
	AvatarURL   string `json:"avatarUrl,omitempty" bson:"avatarUrl,omitempty"`     // URL ảnh đại diện
	Level       string `json:"level" bson:"level"`                                 // Cấp độ JLPT hiện tại, mặc định N5
	Streak      int    `json:"streak" bson:"streak"`                               // Số ngày học liên tiếp
	LastStudyAt int64  `json:"lastStudyAt,omitempty" bson:"lastStudyAt,omitempty"` // Lần học gần nhất

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
