package contentsvc

import (
	contentmodels "github.com/yusariii/jp-learning-app-sub000/internal/api/content/models"
)

// sectionBudget thời lượng chuẩn (phút) của ba phần thi
type sectionBudget struct {
	Vocab    int // Phần từ vựng
	GramRead int // Phần ngữ pháp - đọc hiểu
	Listen   int // Phần nghe hiểu
}

// jlptTimeBudgets bảng thời lượng chuẩn theo cấu trúc đề thi JLPT
var jlptTimeBudgets = map[string]sectionBudget{
	contentmodels.JLPTLevelN5: {Vocab: 20, GramRead: 40, Listen: 30},
	contentmodels.JLPTLevelN4: {Vocab: 25, GramRead: 55, Listen: 35},
	contentmodels.JLPTLevelN3: {Vocab: 30, GramRead: 70, Listen: 40},
	contentmodels.JLPTLevelN2: {Vocab: 35, GramRead: 70, Listen: 50},
	contentmodels.JLPTLevelN1: {Vocab: 45, GramRead: 65, Listen: 60},
}

// ApplyTimeBudget điền thời lượng chuẩn cho phần thi nào chưa có
// totalTime (totalTime = 0) và luôn tính lại tổng thời gian của đề
// bằng tổng ba phần. Phần đã có totalTime thì giữ nguyên giá trị đó.
// Cấp độ không có trong bảng thì giữ nguyên toàn bộ.
// Trả về true nếu document bị thay đổi.
func ApplyTimeBudget(t *contentmodels.Test) bool {
	budget, ok := jlptTimeBudgets[t.JlptLevel]
	if !ok {
		return false
	}

	changed := false
	if t.VocabSection.TotalTime == 0 {
		t.VocabSection.TotalTime = budget.Vocab
		changed = true
	}
	if t.GrammarReadingSection.TotalTime == 0 {
		t.GrammarReadingSection.TotalTime = budget.GramRead
		changed = true
	}
	if t.ListeningSection.TotalTime == 0 {
		t.ListeningSection.TotalTime = budget.Listen
		changed = true
	}

	total := t.VocabSection.TotalTime +
		t.GrammarReadingSection.TotalTime +
		t.ListeningSection.TotalTime
	if t.TotalTime != total {
		t.TotalTime = total
		changed = true
	}

	return changed
}
