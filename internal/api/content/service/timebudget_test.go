// Package contentsvc - Test suy diễn thời lượng đề thi theo cấp độ JLPT.
package contentsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	contentmodels "github.com/yusariii/jp-learning-app-sub000/internal/api/content/models"
)

func TestApplyTimeBudget_N5FillsAllSections(t *testing.T) {
	test := contentmodels.Test{JlptLevel: contentmodels.JLPTLevelN5}

	changed := ApplyTimeBudget(&test)

	assert.True(t, changed)
	assert.Equal(t, 20, test.VocabSection.TotalTime, "N5 phần từ vựng 20 phút")
	assert.Equal(t, 40, test.GrammarReadingSection.TotalTime, "N5 phần ngữ pháp - đọc hiểu 40 phút")
	assert.Equal(t, 30, test.ListeningSection.TotalTime, "N5 phần nghe 30 phút")
	assert.Equal(t, 90, test.TotalTime, "tổng thời gian N5 là 90 phút")
}

func TestApplyTimeBudget_KeepsExplicitSectionTime(t *testing.T) {
	test := contentmodels.Test{
		JlptLevel:    contentmodels.JLPTLevelN5,
		VocabSection: contentmodels.VocabSection{TotalTime: 99},
	}

	ApplyTimeBudget(&test)

	assert.Equal(t, 99, test.VocabSection.TotalTime, "totalTime đã khai báo không bị ghi đè")
	assert.Equal(t, 40, test.GrammarReadingSection.TotalTime)
	assert.Equal(t, 30, test.ListeningSection.TotalTime)
	assert.Equal(t, 169, test.TotalTime, "tổng phải cộng từ giá trị khai báo: 99+40+30")
}

func TestApplyTimeBudget_AlwaysRecomputesTotal(t *testing.T) {
	// Tổng top-level sai lệch so với ba phần thì luôn được tính lại
	test := contentmodels.Test{
		JlptLevel:             contentmodels.JLPTLevelN4,
		VocabSection:          contentmodels.VocabSection{TotalTime: 25},
		GrammarReadingSection: contentmodels.GrammarReadingSection{TotalTime: 55},
		ListeningSection:      contentmodels.ListeningSection{TotalTime: 35},
		TotalTime:             999,
	}

	changed := ApplyTimeBudget(&test)

	assert.True(t, changed)
	assert.Equal(t, 115, test.TotalTime)
}

func TestApplyTimeBudget_NoChangeWhenConsistent(t *testing.T) {
	test := contentmodels.Test{
		JlptLevel:             contentmodels.JLPTLevelN3,
		VocabSection:          contentmodels.VocabSection{TotalTime: 30},
		GrammarReadingSection: contentmodels.GrammarReadingSection{TotalTime: 70},
		ListeningSection:      contentmodels.ListeningSection{TotalTime: 40},
		TotalTime:             140,
	}

	changed := ApplyTimeBudget(&test)

	assert.False(t, changed, "document đã đúng thì không được đánh dấu thay đổi")
}

func TestApplyTimeBudget_UnknownLevelIsNoOp(t *testing.T) {
	test := contentmodels.Test{JlptLevel: "N9", TotalTime: 5}

	changed := ApplyTimeBudget(&test)

	assert.False(t, changed, "cấp độ ngoài bảng phải là no-op")
	assert.Equal(t, 0, test.VocabSection.TotalTime)
	assert.Equal(t, 5, test.TotalTime, "không được tính lại tổng khi cấp độ không xác định")
}

func TestApplyTimeBudget_EmptyLevelIsNoOp(t *testing.T) {
	test := contentmodels.Test{}

	changed := ApplyTimeBudget(&test)

	assert.False(t, changed)
	assert.Equal(t, 0, test.TotalTime)
}
