package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WordExample câu ví dụ minh họa cách dùng từ vựng
type WordExample struct {
	SentenceJP  string `json:"sentenceJP" bson:"sentenceJP" validate:"required"`   // Câu tiếng Nhật
	ReadingKana string `json:"readingKana,omitempty" bson:"readingKana,omitempty"` // Cách đọc kana
	MeaningVI   string `json:"meaningVI,omitempty" bson:"meaningVI,omitempty"`     // Nghĩa tiếng Việt
}

// Word đại diện cho một từ vựng tiếng Nhật
type Word struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của từ vựng

	TermJP    string        `json:"termJP" bson:"termJP"`                           // Từ tiếng Nhật (bắt buộc)
	HiraKata  string        `json:"hiraKata,omitempty" bson:"hiraKata,omitempty"`   // Cách viết hiragana/katakana
	Romaji    string        `json:"romaji,omitempty" bson:"romaji,omitempty"`       // Phiên âm romaji
	MeaningVI string        `json:"meaningVI,omitempty" bson:"meaningVI,omitempty"` // Nghĩa tiếng Việt
	MeaningEN string        `json:"meaningEN,omitempty" bson:"meaningEN,omitempty"` // Nghĩa tiếng Anh
	Kanji     string        `json:"kanji,omitempty" bson:"kanji,omitempty"`         // Chữ kanji
	Examples  []WordExample `json:"examples,omitempty" bson:"examples,omitempty"`   // Danh sách câu ví dụ
	AudioURL  string        `json:"audioUrl,omitempty" bson:"audioUrl,omitempty"`   // URL file phát âm
	Tags      []string      `json:"tags,omitempty" bson:"tags,omitempty"`           // Nhãn phân loại
	JlptLevel string        `json:"jlptLevel,omitempty" bson:"jlptLevel,omitempty"` // Cấp độ JLPT: N5..N1

	Audit     `bson:",inline"`
	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
