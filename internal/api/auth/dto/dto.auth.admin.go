package authdto

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	models "github.com/yusariii/jp-learning-app-sub000/internal/api/auth/models"
	"github.com/yusariii/jp-learning-app-sub000/internal/common"
)

// AdminCreateInput dữ liệu đầu vào khi tạo admin
type AdminCreateInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"fullName,omitempty"`
	RoleID   string `json:"roleId" validate:"required,objectid"`
}

// ToModel chuyển input thành model Admin để insert.
// Email luôn được hạ về chữ thường; roleId không đúng định dạng
// ObjectID bị chặn ngay tại đây. Password giữ dạng plaintext,
// service chịu trách nhiệm hash trước khi lưu.
func (in AdminCreateInput) ToModel() (models.Admin, error) {
	roleID, err := primitive.ObjectIDFromHex(in.RoleID)
	if err != nil {
		return models.Admin{}, common.ErrBadRoleRef
	}
	return models.Admin{
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Password: in.Password,
		FullName: in.FullName,
		RoleID:   roleID,
	}, nil
}

// AdminUpdateInput dữ liệu đầu vào khi cập nhật admin.
// Trường nil nghĩa là không thay đổi.
type AdminUpdateInput struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
	FullName *string `json:"fullName,omitempty"`
	RoleID   *string `json:"roleId,omitempty" validate:"omitempty,objectid"`
}

// ToSet dựng map $set từ các trường có giá trị.
// roleId được parse thành ObjectID ngay tại đây để service chỉ phải
// kiểm tra role có tồn tại hay không.
func (in AdminUpdateInput) ToSet() (map[string]interface{}, error) {
	set := map[string]interface{}{}
	if in.Email != nil {
		set["email"] = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.Password != nil {
		set["password"] = *in.Password
	}
	if in.FullName != nil {
		set["fullName"] = *in.FullName
	}
	if in.RoleID != nil {
		roleID, err := primitive.ObjectIDFromHex(*in.RoleID)
		if err != nil {
			return nil, common.ErrBadRoleRef
		}
		set["roleId"] = roleID
	}
	return set, nil
}
