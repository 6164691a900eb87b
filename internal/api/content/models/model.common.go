package models

// JLPTLevel định nghĩa các cấp độ JLPT hợp lệ
const (
	JLPTLevelN5 = "N5"
	JLPTLevelN4 = "N4"
	JLPTLevelN3 = "N3"
	JLPTLevelN2 = "N2"
	JLPTLevelN1 = "N1"
)

// Difficulty định nghĩa các mức độ khó của bài đọc/bài nghe
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// ActorRef tham chiếu đến admin thực hiện thao tác.
// Chỉ lưu id dạng string, không ràng buộc khóa ngoại.
type ActorRef struct {
	AdminID string `json:"adminId" bson:"adminId"`
}

// Audit lưu thông tin người tạo/cập nhật, embed vào các model cần audit
type Audit struct {
	CreatedBy *ActorRef `json:"createdBy,omitempty" bson:"createdBy,omitempty"` // Admin tạo document
	UpdatedBy *ActorRef `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"` // Admin cập nhật lần cuối
}

// SetCreatedBy gắn admin tạo document
func (a *Audit) SetCreatedBy(adminID string) {
	a.CreatedBy = &ActorRef{AdminID: adminID}
}

// SetUpdatedBy gắn admin cập nhật document
func (a *Audit) SetUpdatedBy(adminID string) {
	a.UpdatedBy = &ActorRef{AdminID: adminID}
}
