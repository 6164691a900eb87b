package contentdto

import (
	contentmodels "github.com/yusariii/jp-learning-app-sub000/internal/api/content/models"
)

// ReadingCreateInput dữ liệu đầu vào khi tạo bài đọc
type ReadingCreateInput struct {
	Title         string                                `json:"title,omitempty" validate:"omitempty,no_xss"`
	TextJP        string                                `json:"textJP" validate:"required"`
	TextEN        string                                `json:"textEN,omitempty"`
	AudioURL      string                                `json:"audioUrl,omitempty"`
	Comprehension []contentmodels.ComprehensionQuestion `json:"comprehension,omitempty" validate:"omitempty,dive"`
	Difficulty    string                                `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
}

// ToModel chuyển input thành model Reading để insert.
// difficulty không được cung cấp thì mặc định easy.
func (in ReadingCreateInput) ToModel() (contentmodels.Reading, error) {
	difficulty := in.Difficulty
	if difficulty == "" {
		difficulty = contentmodels.DifficultyEasy
	}
	return contentmodels.Reading{
		Title:         in.Title,
		TextJP:        in.TextJP,
		TextEN:        in.TextEN,
		AudioURL:      in.AudioURL,
		Comprehension: in.Comprehension,
		Difficulty:    difficulty,
	}, nil
}

// ReadingUpdateInput dữ liệu đầu vào khi cập nhật bài đọc.
// Trường nil nghĩa là không thay đổi.
type ReadingUpdateInput struct {
	Title         *string                               `json:"title,omitempty" validate:"omitempty,no_xss"`
	TextJP        *string                               `json:"textJP,omitempty" validate:"omitempty,min=1,no_xss"`
	TextEN        *string                               `json:"textEN,omitempty"`
	AudioURL      *string                               `json:"audioUrl,omitempty"`
	Comprehension []contentmodels.ComprehensionQuestion `json:"comprehension,omitempty" validate:"omitempty,dive"`
	Difficulty    *string                               `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
}

// ToSet dựng map $set từ các trường có giá trị
func (in ReadingUpdateInput) ToSet() (map[string]interface{}, error) {
	set := map[string]interface{}{}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.TextJP != nil {
		set["textJP"] = *in.TextJP
	}
	if in.TextEN != nil {
		set["textEN"] = *in.TextEN
	}
	if in.AudioURL != nil {
		set["audioUrl"] = *in.AudioURL
	}
	if in.Comprehension != nil {
		set["comprehension"] = in.Comprehension
	}
	if in.Difficulty != nil {
		set["difficulty"] = *in.Difficulty
	}
	return set, nil
}
