package authdto

import (
	models "github.com/yusariii/jp-learning-app-sub000/internal/api/auth/models"
)

// RoleCreateInput dữ liệu đầu vào khi tạo role
type RoleCreateInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
}

// ToModel chuyển input thành model Role để insert
func (in RoleCreateInput) ToModel() (models.Role, error) {
	return models.Role{
		Title:       in.Title,
		Description: in.Description,
	}, nil
}

// RoleUpdateInput dữ liệu đầu vào khi cập nhật role.
// Trường nil nghĩa là không thay đổi.
type RoleUpdateInput struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
}

// ToSet dựng map $set từ các trường có giá trị
func (in RoleUpdateInput) ToSet() (map[string]interface{}, error) {
	set := map[string]interface{}{}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.Description != nil {
		set["description"] = *in.Description
	}
	return set, nil
}
