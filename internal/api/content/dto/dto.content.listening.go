package contentdto

import (
	contentmodels "github.com/yusariii/jp-learning-app-sub000/internal/api/content/models"
)

// ListeningCreateInput dữ liệu đầu vào khi tạo bài nghe
type ListeningCreateInput struct {
	Title        string                            `json:"title,omitempty" validate:"omitempty,no_xss"`
	AudioURL     string                            `json:"audioUrl" validate:"required"`
	TranscriptJP string                            `json:"transcriptJP,omitempty"`
	TranscriptEN string                            `json:"transcriptEN,omitempty"`
	Questions    []contentmodels.ListeningQuestion `json:"questions,omitempty" validate:"omitempty,dive"`
	Difficulty   string                            `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
}

// ToModel chuyển input thành model Listening để insert.
// difficulty không được cung cấp thì mặc định easy.
func (in ListeningCreateInput) ToModel() (contentmodels.Listening, error) {
	difficulty := in.Difficulty
	if difficulty == "" {
		difficulty = contentmodels.DifficultyEasy
	}
	return contentmodels.Listening{
		Title:        in.Title,
		AudioURL:     in.AudioURL,
		TranscriptJP: in.TranscriptJP,
		TranscriptEN: in.TranscriptEN,
		Questions:    in.Questions,
		Difficulty:   difficulty,
	}, nil
}

// ListeningUpdateInput dữ liệu đầu vào khi cập nhật bài nghe.
// Trường nil nghĩa là không thay đổi.
type ListeningUpdateInput struct {
	Title        *string                           `json:"title,omitempty" validate:"omitempty,no_xss"`
	AudioURL     *string                           `json:"audioUrl,omitempty" validate:"omitempty,min=1,no_xss"`
	TranscriptJP *string                           `json:"transcriptJP,omitempty"`
	TranscriptEN *string                           `json:"transcriptEN,omitempty"`
	Questions    []contentmodels.ListeningQuestion `json:"questions,omitempty" validate:"omitempty,dive"`
	Difficulty   *string                           `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
}

// ToSet dựng map $set từ các trường có giá trị
func (in ListeningUpdateInput) ToSet() (map[string]interface{}, error) {
	set := map[string]interface{}{}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.AudioURL != nil {
		set["audioUrl"] = *in.AudioURL
	}
	if in.TranscriptJP != nil {
		set["transcriptJP"] = *in.TranscriptJP
	}
	if in.TranscriptEN != nil {
		set["transcriptEN"] = *in.TranscriptEN
	}
	if in.Questions != nil {
		set["questions"] = in.Questions
	}
	if in.Difficulty != nil {
		set["difficulty"] = *in.Difficulty
	}
	return set, nil
}
