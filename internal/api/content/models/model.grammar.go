package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GrammarExample câu ví dụ minh họa cấu trúc ngữ pháp
type GrammarExample struct {
	SentenceJP  string `json:"sentenceJP" bson:"sentenceJP" validate:"required"`   // Câu tiếng Nhật
	ReadingKana string `json:"readingKana,omitempty" bson:"readingKana,omitempty"` // Cách đọc kana
	MeaningVI   string `json:"meaningVI,omitempty" bson:"meaningVI,omitempty"`     // Nghĩa tiếng Việt
	MeaningEN   string `json:"meaningEN,omitempty" bson:"meaningEN,omitempty"`     // Nghĩa tiếng Anh
}

// Grammar đại diện cho một điểm ngữ pháp tiếng Nhật
type Grammar struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của điểm ngữ pháp

	Title         string           `json:"title" bson:"title"`                                     // Tên cấu trúc (bắt buộc)
	Description   string           `json:"description,omitempty" bson:"description,omitempty"`     // Mô tả ngắn
	ExplanationJP string           `json:"explanationJP" bson:"explanationJP"`                     // Giải thích tiếng Nhật (bắt buộc)
	ExplanationEN string           `json:"explanationEN,omitempty" bson:"explanationEN,omitempty"` // Giải thích tiếng Anh
	Examples      []GrammarExample `json:"examples,omitempty" bson:"examples,omitempty"`           // Danh sách câu ví dụ
	JlptLevel     string           `json:"jlptLevel,omitempty" bson:"jlptLevel,omitempty"`         // Cấp độ JLPT: N5..N1

	Audit     `bson:",inline"`
	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
