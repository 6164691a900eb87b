package contentdto

import (
	contentmodels "github.com/yusariii/jp-learning-app-sub000/internal/api/content/models"
)

// TestCreateInput dữ liệu đầu vào khi tạo đề thi
type TestCreateInput struct {
	Title                 string                               `json:"title" validate:"required,no_xss"`
	JlptLevel             string                               `json:"jlptLevel" validate:"required,oneof=N5 N4 N3 N2 N1"`
	Description           string                               `json:"description,omitempty" validate:"omitempty,no_xss"`
	VocabSection          *contentmodels.VocabSection          `json:"vocabSection,omitempty"`
	GrammarReadingSection *contentmodels.GrammarReadingSection `json:"grammarReadingSection,omitempty"`
	ListeningSection      *contentmodels.ListeningSection      `json:"listeningSection,omitempty"`
	PassingScorePercent   *int                                 `json:"passingScorePercent,omitempty" validate:"omitempty,min=0,max=100"`
	Published             bool                                 `json:"published,omitempty"`
}

// applyQuestionDefaults điền điểm mặc định 1 cho câu hỏi không khai báo points
func applyQuestionDefaults(questions []contentmodels.BaseQuestion) {
	for i := range questions {
		if questions[i].Points == 0 {
			questions[i].Points = 1
		}
	}
}

func applyVocabSectionDefaults(s *contentmodels.VocabSection) {
	for i := range s.VocabUnits {
		applyQuestionDefaults(s.VocabUnits[i].Questions)
	}
}

func applyGrammarReadingSectionDefaults(s *contentmodels.GrammarReadingSection) {
	for i := range s.GrammarUnits {
		applyQuestionDefaults(s.GrammarUnits[i].Questions)
	}
	for i := range s.ReadingUnits {
		for j := range s.ReadingUnits[i].Passages {
			applyQuestionDefaults(s.ReadingUnits[i].Passages[j].Questions)
		}
	}
}

func applyListeningSectionDefaults(s *contentmodels.ListeningSection) {
	for i := range s.ListeningUnits {
		applyQuestionDefaults(s.ListeningUnits[i].Questions)
	}
}

// ToModel chuyển input thành model Test để insert.
// passingScorePercent không được cung cấp thì mặc định 70; câu hỏi
// không khai báo points thì mặc định 1 điểm.
// Thời gian các phần thi do service tính từ bảng chuẩn JLPT.
func (in TestCreateInput) ToModel() (contentmodels.Test, error) {
	test := contentmodels.Test{
		Title:       in.Title,
		JlptLevel:   in.JlptLevel,
		Description: in.Description,
		Published:   in.Published,
	}
	if in.VocabSection != nil {
		test.VocabSection = *in.VocabSection
	}
	if in.GrammarReadingSection != nil {
		test.GrammarReadingSection = *in.GrammarReadingSection
	}
	if in.ListeningSection != nil {
		test.ListeningSection = *in.ListeningSection
	}
	applyVocabSectionDefaults(&test.VocabSection)
	applyGrammarReadingSectionDefaults(&test.GrammarReadingSection)
	applyListeningSectionDefaults(&test.ListeningSection)
	test.PassingScorePercent = 70
	if in.PassingScorePercent != nil {
		test.PassingScorePercent = *in.PassingScorePercent
	}
	return test, nil
}

// TestUpdateInput dữ liệu đầu vào khi cập nhật đề thi.
// Trường nil nghĩa là không thay đổi.
type TestUpdateInput struct {
	Title                 *string                              `json:"title,omitempty" validate:"omitempty,min=1,no_xss"`
	JlptLevel             *string                              `json:"jlptLevel,omitempty" validate:"omitempty,oneof=N5 N4 N3 N2 N1"`
	Description           *string                              `json:"description,omitempty" validate:"omitempty,no_xss"`
	VocabSection          *contentmodels.VocabSection          `json:"vocabSection,omitempty"`
	GrammarReadingSection *contentmodels.GrammarReadingSection `json:"grammarReadingSection,omitempty"`
	ListeningSection      *contentmodels.ListeningSection      `json:"listeningSection,omitempty"`
	PassingScorePercent   *int                                 `json:"passingScorePercent,omitempty" validate:"omitempty,min=0,max=100"`
	Published             *bool                                `json:"published,omitempty"`
}

// ToSet dựng map $set từ các trường có giá trị
func (in TestUpdateInput) ToSet() (map[string]interface{}, error) {
	set := map[string]interface{}{}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.JlptLevel != nil {
		set["jlptLevel"] = *in.JlptLevel
	}
	if in.Description != nil {
		set["description"] = *in.Description
	}
	if in.VocabSection != nil {
		section := *in.VocabSection
		applyVocabSectionDefaults(&section)
		set["vocabSection"] = section
	}
	if in.GrammarReadingSection != nil {
		section := *in.GrammarReadingSection
		applyGrammarReadingSectionDefaults(&section)
		set["grammarReadingSection"] = section
	}
	if in.ListeningSection != nil {
		section := *in.ListeningSection
		applyListeningSectionDefaults(&section)
		set["listeningSection"] = section
	}
	if in.PassingScorePercent != nil {
		set["passingScorePercent"] = *in.PassingScorePercent
	}
	if in.Published != nil {
		set["published"] = *in.Published
	}
	return set, nil
}
