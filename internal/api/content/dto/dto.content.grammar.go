package contentdto

import (
	contentmodels "github.com/yusariii/jp-learning-app-sub000/internal/api/content/models"
)

// GrammarCreateInput dữ liệu đầu vào khi tạo điểm ngữ pháp
type GrammarCreateInput struct {
	Title         string                         `json:"title" validate:"required,no_xss"`
	Description   string                         `json:"description,omitempty" validate:"omitempty,no_xss"`
	ExplanationJP string                         `json:"explanationJP" validate:"required"`
	ExplanationEN string                         `json:"explanationEN,omitempty"`
	Examples      []contentmodels.GrammarExample `json:"examples,omitempty" validate:"omitempty,dive"`
	JlptLevel     string                         `json:"jlptLevel,omitempty" validate:"omitempty,oneof=N5 N4 N3 N2 N1"`
}

// ToModel chuyển input thành model Grammar để insert
func (in GrammarCreateInput) ToModel() (contentmodels.Grammar, error) {
	return contentmodels.Grammar{
		Title:         in.Title,
		Description:   in.Description,
		ExplanationJP: in.ExplanationJP,
		ExplanationEN: in.ExplanationEN,
		Examples:      in.Examples,
		JlptLevel:     in.JlptLevel,
	}, nil
}

// GrammarUpdateInput dữ liệu đầu vào khi cập nhật điểm ngữ pháp.
// Trường nil nghĩa là không thay đổi.
type GrammarUpdateInput struct {
	Title         *string                        `json:"title,omitempty" validate:"omitempty,min=1,no_xss"`
	Description   *string                        `json:"description,omitempty" validate:"omitempty,no_xss"`
	ExplanationJP *string                        `json:"explanationJP,omitempty" validate:"omitempty,min=1,no_xss"`
	ExplanationEN *string                        `json:"explanationEN,omitempty"`
	Examples      []contentmodels.GrammarExample `json:"examples,omitempty" validate:"omitempty,dive"`
	JlptLevel     *string                        `json:"jlptLevel,omitempty" validate:"omitempty,oneof=N5 N4 N3 N2 N1"`
}

// ToSet dựng map $set từ các trường có giá trị
func (in GrammarUpdateInput) ToSet() (map[string]interface{}, error) {
	set := map[string]interface{}{}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.Description != nil {
		set["description"] = *in.Description
	}
	if in.ExplanationJP != nil {
		set["explanationJP"] = *in.ExplanationJP
	}
	if in.ExplanationEN != nil {
		set["explanationEN"] = *in.ExplanationEN
	}
	if in.Examples != nil {
		set["examples"] = in.Examples
	}
	if in.JlptLevel != nil {
		set["jlptLevel"] = *in.JlptLevel
	}
	return set, nil
}
