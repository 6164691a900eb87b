package contentdto

import (
	contentmodels "github.com/yusariii/jp-learning-app-sub000/internal/api/content/models"
)

// SpeakingCreateInput dữ liệu đầu vào khi tạo bài luyện nói
type SpeakingCreateInput struct {
	Title          string                         `json:"title" validate:"required,no_xss"`
	Prompts        []contentmodels.SpeakingPrompt `json:"prompts,omitempty" validate:"omitempty,dive"`
	Guidance       string                         `json:"guidance,omitempty" validate:"omitempty,no_xss"`
	SampleAudioURL string                         `json:"sampleAudioUrl,omitempty"`
}

// ToModel chuyển input thành model Speaking để insert
func (in SpeakingCreateInput) ToModel() (contentmodels.Speaking, error) {
	return contentmodels.Speaking{
		Title:          in.Title,
		Prompts:        in.Prompts,
		Guidance:       in.Guidance,
		SampleAudioURL: in.SampleAudioURL,
	}, nil
}

// SpeakingUpdateInput dữ liệu đầu vào khi cập nhật bài luyện nói.
// Trường nil nghĩa là không thay đổi.
type SpeakingUpdateInput struct {
	Title          *string                        `json:"title,omitempty" validate:"omitempty,min=1,no_xss"`
	Prompts        []contentmodels.SpeakingPrompt `json:"prompts,omitempty" validate:"omitempty,dive"`
	Guidance       *string                        `json:"guidance,omitempty" validate:"omitempty,no_xss"`
	SampleAudioURL *string                        `json:"sampleAudioUrl,omitempty"`
}

// ToSet dựng map $set từ các trường có giá trị
func (in SpeakingUpdateInput) ToSet() (map[string]interface{}, error) {
	set := map[string]interface{}{}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.Prompts != nil {
		set["prompts"] = in.Prompts
	}
	if in.Guidance != nil {
		set["guidance"] = *in.Guidance
	}
	if in.SampleAudioURL != nil {
		set["sampleAudioUrl"] = *in.SampleAudioURL
	}
	return set, nil
}
