package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WordRef tham chiếu đến một từ vựng trong bài học
type WordRef struct {
	WordID string `json:"wordId" bson:"wordId"`
}

// ReadingRef tham chiếu đến một bài đọc trong bài học
type ReadingRef struct {
	ReadingID string `json:"readingId" bson:"readingId"`
}

// SpeakingRef tham chiếu đến một bài nói trong bài học
type SpeakingRef struct {
	SpeakingID string `json:"speakingId" bson:"speakingId"`
}

// Lesson đại diện cho một bài học.
// Các mảng tham chiếu chỉ lưu id dạng string, server không
// validate hay resolve các id này — client tự kết nối dữ liệu.
type Lesson struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của bài học

	Title           string        `json:"title" bson:"title"`                                 // Tên bài học (bắt buộc)
	LessonNumber    int           `json:"lessonNumber" bson:"lessonNumber"`                   // Số thứ tự bài học (bắt buộc, có index)
	Slug            string        `json:"slug,omitempty" bson:"slug,omitempty"`               // Slug đường dẫn
	Description     string        `json:"description,omitempty" bson:"description,omitempty"` // Mô tả bài học
	WordIDs         []WordRef     `json:"wordIds,omitempty" bson:"wordIds,omitempty"`         // Từ vựng thuộc bài học
	ReadingIDs      []ReadingRef  `json:"readingIds,omitempty" bson:"readingIds,omitempty"`   // Bài đọc thuộc bài học
	SpeakingIDs     []SpeakingRef `json:"speakingIds,omitempty" bson:"speakingIds,omitempty"` // Bài nói thuộc bài học
	JlptLevel       string        `json:"jlptLevel,omitempty" bson:"jlptLevel,omitempty"`     // Cấp độ JLPT: N5..N1
	DurationMinutes int           `json:"durationMinutes" bson:"durationMinutes"`             // Thời lượng dự kiến (phút), mặc định 10
	Published       bool          `json:"published" bson:"published"`                         // Đã xuất bản hay chưa
	Tags            []string      `json:"tags,omitempty" bson:"tags,omitempty"`               // Nhãn phân loại

	Audit     `bson:",inline"`
	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
