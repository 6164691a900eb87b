// Package contentdto - Test chuyển đổi DTO content sang model và $set map.
package contentdto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contentmodels "github.com/yusariii/jp-learning-app-sub000/internal/api/content/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestWordCreateInput_ToModel(t *testing.T) {
	in := WordCreateInput{
		TermJP:    "食べる",
		HiraKata:  "たべる",
		Romaji:    "taberu",
		MeaningVI: "ăn",
		JlptLevel: "N5",
		Tags:      []string{"động từ"},
	}

	word, err := in.ToModel()
	require.NoError(t, err)

	assert.Equal(t, "食べる", word.TermJP)
	assert.Equal(t, "たべる", word.HiraKata)
	assert.Equal(t, "N5", word.JlptLevel)
	assert.Equal(t, []string{"động từ"}, word.Tags)
}

func TestWordUpdateInput_ToSet_OnlySentFields(t *testing.T) {
	in := WordUpdateInput{
		MeaningVI: strPtr("ăn uống"),
		Tags:      []string{},
	}

	set, err := in.ToSet()
	require.NoError(t, err)

	assert.Equal(t, "ăn uống", set["meaningVI"])
	assert.Equal(t, []string{}, set["tags"], "mảng rỗng là giá trị thực sự, khác với nil")
	_, hasTerm := set["termJP"]
	assert.False(t, hasTerm, "trường nil không được vào $set")
	_, hasLevel := set["jlptLevel"]
	assert.False(t, hasLevel)
}

func TestLessonCreateInput_DefaultDuration(t *testing.T) {
	lesson, err := LessonCreateInput{Title: "Bài 1", LessonNumber: 1}.ToModel()
	require.NoError(t, err)
	assert.Equal(t, 10, lesson.DurationMinutes, "thời lượng mặc định của bài học là 10 phút")

	lesson, err = LessonCreateInput{Title: "Bài 2", LessonNumber: 2, DurationMinutes: intPtr(45)}.ToModel()
	require.NoError(t, err)
	assert.Equal(t, 45, lesson.DurationMinutes, "thời lượng khai báo không bị ghi đè")
}

func TestReadingCreateInput_DefaultDifficulty(t *testing.T) {
	reading, err := ReadingCreateInput{Title: "初雪", TextJP: "雪が降っています。"}.ToModel()
	require.NoError(t, err)
	assert.Equal(t, contentmodels.DifficultyEasy, reading.Difficulty)
}

func TestTestCreateInput_Defaults(t *testing.T) {
	test, err := TestCreateInput{Title: "Đề N5 số 1", JlptLevel: "N5"}.ToModel()
	require.NoError(t, err)

	assert.Equal(t, 70, test.PassingScorePercent, "điểm đạt mặc định 70%")
	assert.Equal(t, 0, test.TotalTime, "DTO không tính thời gian, việc đó thuộc về service")
	assert.Equal(t, 0, test.VocabSection.TotalTime)
}

func TestTestCreateInput_KeepsExplicitSection(t *testing.T) {
	in := TestCreateInput{
		Title:               "Đề N5 số 2",
		JlptLevel:           "N5",
		VocabSection:        &contentmodels.VocabSection{TotalTime: 99},
		PassingScorePercent: intPtr(80),
	}

	test, err := in.ToModel()
	require.NoError(t, err)

	assert.Equal(t, 99, test.VocabSection.TotalTime)
	assert.Equal(t, 80, test.PassingScorePercent)
}

func TestTestCreateInput_DefaultQuestionPoints(t *testing.T) {
	in := TestCreateInput{
		Title:     "Đề N5 số 3",
		JlptLevel: "N5",
		VocabSection: &contentmodels.VocabSection{
			VocabUnits: []contentmodels.SimpleUnit{{
				Questions: []contentmodels.BaseQuestion{
					{QuestionText: "問1"},
					{QuestionText: "問2", Points: 3},
				},
			}},
		},
		GrammarReadingSection: &contentmodels.GrammarReadingSection{
			GrammarUnits: []contentmodels.SimpleUnit{{
				Questions: []contentmodels.BaseQuestion{{QuestionText: "問3"}},
			}},
			ReadingUnits: []contentmodels.TestReadingUnit{{
				Passages: []contentmodels.ReadingPassage{{
					PassageJP: "昔々あるところに...",
					Questions: []contentmodels.BaseQuestion{{QuestionText: "問4"}},
				}},
			}},
		},
		ListeningSection: &contentmodels.ListeningSection{
			ListeningUnits: []contentmodels.TestListeningUnit{{
				Questions: []contentmodels.BaseQuestion{{QuestionText: "問5"}},
			}},
		},
	}

	test, err := in.ToModel()
	require.NoError(t, err)

	assert.Equal(t, 1, test.VocabSection.VocabUnits[0].Questions[0].Points, "câu hỏi không khai báo points phải mặc định 1")
	assert.Equal(t, 3, test.VocabSection.VocabUnits[0].Questions[1].Points, "points khai báo không bị ghi đè")
	assert.Equal(t, 1, test.GrammarReadingSection.GrammarUnits[0].Questions[0].Points)
	assert.Equal(t, 1, test.GrammarReadingSection.ReadingUnits[0].Passages[0].Questions[0].Points)
	assert.Equal(t, 1, test.ListeningSection.ListeningUnits[0].Questions[0].Points)
}

func TestTestUpdateInput_ToSet_DefaultQuestionPoints(t *testing.T) {
	in := TestUpdateInput{
		VocabSection: &contentmodels.VocabSection{
			VocabUnits: []contentmodels.SimpleUnit{{
				Questions: []contentmodels.BaseQuestion{{QuestionText: "問1"}},
			}},
		},
	}

	set, err := in.ToSet()
	require.NoError(t, err)

	section, ok := set["vocabSection"].(contentmodels.VocabSection)
	require.True(t, ok)
	assert.Equal(t, 1, section.VocabUnits[0].Questions[0].Points, "đường update cũng phải điền điểm mặc định")
}

func TestTestUpdateInput_ToSet(t *testing.T) {
	in := TestUpdateInput{
		Title:     strPtr("Đề N5 chỉnh sửa"),
		Published: boolPtr(true),
	}

	set, err := in.ToSet()
	require.NoError(t, err)

	assert.Equal(t, "Đề N5 chỉnh sửa", set["title"])
	assert.Equal(t, true, set["published"])
	_, hasLevel := set["jlptLevel"]
	assert.False(t, hasLevel)
	_, hasVocab := set["vocabSection"]
	assert.False(t, hasVocab)
}
