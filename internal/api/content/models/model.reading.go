package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ComprehensionQuestionType định nghĩa các loại câu hỏi đọc hiểu
const (
	ComprehensionTypeMCQ         = "mcq"          // Trắc nghiệm
	ComprehensionTypeShortAnswer = "short_answer" // Trả lời ngắn
)

// ComprehensionQuestion câu hỏi đọc hiểu đi kèm bài đọc
type ComprehensionQuestion struct {
	QuestionJP string      `json:"questionJP" bson:"questionJP" validate:"required"`             // Câu hỏi tiếng Nhật (bắt buộc)
	Type       string      `json:"type" bson:"type" validate:"omitempty,oneof=mcq short_answer"` // Loại câu hỏi: mcq, short_answer
	Options    []string    `json:"options,omitempty" bson:"options,omitempty"`                   // Các lựa chọn (cho mcq)
	Answer     interface{} `json:"answer,omitempty" bson:"answer,omitempty"`                     // Đáp án, kiểu tùy loại câu hỏi
}

// Reading đại diện cho một bài đọc hiểu tiếng Nhật
type Reading struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của bài đọc

	Title         string                  `json:"title,omitempty" bson:"title,omitempty"`                 // Tên bài đọc
	TextJP        string                  `json:"textJP" bson:"textJP"`                                   // Nội dung tiếng Nhật (bắt buộc)
	TextEN        string                  `json:"textEN,omitempty" bson:"textEN,omitempty"`               // Bản dịch tiếng Anh
	AudioURL      string                  `json:"audioUrl,omitempty" bson:"audioUrl,omitempty"`           // URL file đọc mẫu
	Comprehension []ComprehensionQuestion `json:"comprehension,omitempty" bson:"comprehension,omitempty"` // Câu hỏi đọc hiểu
	Difficulty    string                  `json:"difficulty" bson:"difficulty"`                           // Độ khó: easy, medium, hard (mặc định easy)

	Audit     `bson:",inline"`
	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
