package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListeningQuestionType định nghĩa các loại câu hỏi nghe hiểu
const (
	ListeningTypeMCQ         = "mcq"          // Trắc nghiệm
	ListeningTypeFillBlank   = "fill_blank"   // Điền vào chỗ trống
	ListeningTypeTrueFalse   = "true_false"   // Đúng/sai
	ListeningTypeShortAnswer = "short_answer" // Trả lời ngắn
)

// ListeningQuestion câu hỏi nghe hiểu đi kèm bài nghe
type ListeningQuestion struct {
	QuestionJP string      `json:"questionJP" bson:"questionJP" validate:"required"`                                   // Câu hỏi tiếng Nhật (bắt buộc)
	Type       string      `json:"type" bson:"type" validate:"omitempty,oneof=mcq fill_blank true_false short_answer"` // Loại câu hỏi: mcq, fill_blank, true_false, short_answer
	Options    []string    `json:"options,omitempty" bson:"options,omitempty"`                                         // Các lựa chọn (cho mcq)
	Answer     interface{} `json:"answer,omitempty" bson:"answer,omitempty"`                                           // Đáp án, kiểu tùy loại câu hỏi
}

// Listening đại diện cho một bài nghe hiểu tiếng Nhật
type Listening struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của bài nghe

	Title        string              `json:"title,omitempty" bson:"title,omitempty"`               // Tên bài nghe
	AudioURL     string              `json:"audioUrl" bson:"audioUrl"`                             // URL file audio (bắt buộc)
	TranscriptJP string              `json:"transcriptJP,omitempty" bson:"transcriptJP,omitempty"` // Transcript tiếng Nhật
	TranscriptEN string              `json:"transcriptEN,omitempty" bson:"transcriptEN,omitempty"` // Transcript tiếng Anh
	Questions    []ListeningQuestion `json:"questions,omitempty" bson:"questions,omitempty"`       // Câu hỏi nghe hiểu
	Difficulty   string              `json:"difficulty" bson:"difficulty"`                         // Độ khó: easy, medium, hard

	Audit     `bson:",inline"`
	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
