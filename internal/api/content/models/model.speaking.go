package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SpeakingPrompt một đề bài luyện nói
type SpeakingPrompt struct {
	PromptJP       string `json:"promptJP" bson:"promptJP" validate:"required"`             // Đề bài tiếng Nhật (bắt buộc)
	PromptEN       string `json:"promptEN,omitempty" bson:"promptEN,omitempty"`             // Đề bài tiếng Anh
	ExpectedSample string `json:"expectedSample,omitempty" bson:"expectedSample,omitempty"` // Câu trả lời mẫu
}

// Speaking đại diện cho một bài luyện nói tiếng Nhật
type Speaking struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của bài luyện nói

	Title          string           `json:"title" bson:"title"`                                       // Tên bài luyện nói (bắt buộc)
	Prompts        []SpeakingPrompt `json:"prompts,omitempty" bson:"prompts,omitempty"`               // Danh sách đề bài
	Guidance       string           `json:"guidance,omitempty" bson:"guidance,omitempty"`             // Hướng dẫn luyện tập
	SampleAudioURL string           `json:"sampleAudioUrl,omitempty" bson:"sampleAudioUrl,omitempty"` // URL audio mẫu

	Audit     `bson:",inline"`
	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
