package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuestionOption một lựa chọn trong câu hỏi trắc nghiệm
type QuestionOption struct {
	Label string `json:"label,omitempty" bson:"label,omitempty"` // Nhãn lựa chọn (A, B, C...)
	Text  string `json:"text,omitempty" bson:"text,omitempty"`   // Nội dung lựa chọn
}

// BaseQuestion câu hỏi cơ bản dùng chung cho các phần thi
type BaseQuestion struct {
	QuestionText string           `json:"questionText" bson:"questionText" validate:"required"` // Nội dung câu hỏi (bắt buộc)
	Options      []QuestionOption `json:"options,omitempty" bson:"options,omitempty"`           // Các lựa chọn
	CorrectIndex int              `json:"correctIndex" bson:"correctIndex"`                     // Vị trí đáp án đúng, mặc định 0
	Points       int              `json:"points" bson:"points"`                                 // Điểm của câu hỏi, mặc định 1
	ContextJP    string           `json:"contextJP,omitempty" bson:"contextJP,omitempty"`       // Ngữ cảnh tiếng Nhật
	MediaURL     string           `json:"mediaUrl,omitempty" bson:"mediaUrl,omitempty"`         // URL media đính kèm
}

// SimpleUnit đơn vị bài thi đơn giản, dùng cho phần từ vựng và ngữ pháp
type SimpleUnit struct {
	Title          string         `json:"title,omitempty" bson:"title,omitempty"`                   // Tên đơn vị
	InstructionsJP string         `json:"instructionsJP,omitempty" bson:"instructionsJP,omitempty"` // Hướng dẫn tiếng Nhật
	InstructionsEN string         `json:"instructionsEN,omitempty" bson:"instructionsEN,omitempty"` // Hướng dẫn tiếng Anh
	Questions      []BaseQuestion `json:"questions,omitempty" bson:"questions,omitempty"`           // Danh sách câu hỏi
}

// ReadingPassage đoạn văn đọc hiểu trong đề thi
type ReadingPassage struct {
	PassageJP string         `json:"passageJP" bson:"passageJP" validate:"required"` // Đoạn văn tiếng Nhật (bắt buộc)
	Questions []BaseQuestion `json:"questions,omitempty" bson:"questions,omitempty"` // Câu hỏi của đoạn văn
}

// TestReadingUnit đơn vị đọc hiểu trong phần ngữ pháp - đọc hiểu
type TestReadingUnit struct {
	Title          string           `json:"title,omitempty" bson:"title,omitempty"`                   // Tên đơn vị
	InstructionsJP string           `json:"instructionsJP,omitempty" bson:"instructionsJP,omitempty"` // Hướng dẫn tiếng Nhật
	InstructionsEN string           `json:"instructionsEN,omitempty" bson:"instructionsEN,omitempty"` // Hướng dẫn tiếng Anh
	Passages       []ReadingPassage `json:"passages,omitempty" bson:"passages,omitempty"`             // Các đoạn văn
}

// TestListeningUnit đơn vị nghe hiểu trong phần nghe
type TestListeningUnit struct {
	Title          string         `json:"title,omitempty" bson:"title,omitempty"`                   // Tên đơn vị
	InstructionsJP string         `json:"instructionsJP,omitempty" bson:"instructionsJP,omitempty"` // Hướng dẫn tiếng Nhật
	InstructionsEN string         `json:"instructionsEN,omitempty" bson:"instructionsEN,omitempty"` // Hướng dẫn tiếng Anh
	MediaURL       string         `json:"mediaUrl,omitempty" bson:"mediaUrl,omitempty"`             // URL audio của đơn vị
	Questions      []BaseQuestion `json:"questions,omitempty" bson:"questions,omitempty"`           // Danh sách câu hỏi
}

// VocabSection phần thi từ vựng
type VocabSection struct {
	TotalTime  int          `json:"totalTime" bson:"totalTime"`                       // Thời gian phần thi (phút)
	VocabUnits []SimpleUnit `json:"vocabUnits,omitempty" bson:"vocabUnits,omitempty"` // Các đơn vị từ vựng
}

// GrammarReadingSection phần thi ngữ pháp - đọc hiểu
type GrammarReadingSection struct {
	TotalTime    int               `json:"totalTime" bson:"totalTime"`                           // Thời gian phần thi (phút)
	GrammarUnits []SimpleUnit      `json:"grammarUnits,omitempty" bson:"grammarUnits,omitempty"` // Các đơn vị ngữ pháp
	ReadingUnits []TestReadingUnit `json:"readingUnits,omitempty" bson:"readingUnits,omitempty"` // Các đơn vị đọc hiểu
}

// ListeningSection phần thi nghe hiểu
type ListeningSection struct {
	TotalTime      int                 `json:"totalTime" bson:"totalTime"`                               // Thời gian phần thi (phút)
	ListeningUnits []TestListeningUnit `json:"listeningUnits,omitempty" bson:"listeningUnits,omitempty"` // Các đơn vị nghe hiểu
}

// Test đại diện cho một đề thi theo cấu trúc JLPT.
// Thời gian từng phần được suy ra từ bảng chuẩn theo cấp độ JLPT
// khi không được cung cấp; totalTime luôn là tổng của ba phần.
type Test struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của đề thi

	Title                 string                `json:"title" bson:"title"`                                 // Tên đề thi (bắt buộc)
	JlptLevel             string                `json:"jlptLevel" bson:"jlptLevel"`                         // Cấp độ JLPT: N5..N1 (bắt buộc)
	Description           string                `json:"description,omitempty" bson:"description,omitempty"` // Mô tả đề thi
	VocabSection          VocabSection          `json:"vocabSection" bson:"vocabSection"`                   // Phần từ vựng
	GrammarReadingSection GrammarReadingSection `json:"grammarReadingSection" bson:"grammarReadingSection"` // Phần ngữ pháp - đọc hiểu
	ListeningSection      ListeningSection      `json:"listeningSection" bson:"listeningSection"`           // Phần nghe hiểu
	TotalTime             int                   `json:"totalTime" bson:"totalTime"`                         // Tổng thời gian (phút), luôn được tính lại
	PassingScorePercent   int                   `json:"passingScorePercent" bson:"passingScorePercent"`     // Điểm đạt (%), mặc định 70
	Published             bool                  `json:"published" bson:"published"`                         // Đã xuất bản hay chưa

	Audit     `bson:",inline"`
	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
