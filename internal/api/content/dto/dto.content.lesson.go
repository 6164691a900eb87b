package contentdto

import (
	contentmodels "github.com/yusariii/jp-learning-app-sub000/internal/api/content/models"
)

// LessonCreateInput dữ liệu đầu vào khi tạo bài học
type LessonCreateInput struct {
	Title           string                      `json:"title" validate:"required,no_xss"`
	LessonNumber    int                         `json:"lessonNumber" validate:"required,min=1"`
	Slug            string                      `json:"slug,omitempty" validate:"omitempty,no_xss"`
	Description     string                      `json:"description,omitempty" validate:"omitempty,no_xss"`
	WordIDs         []contentmodels.WordRef     `json:"wordIds,omitempty"`
	ReadingIDs      []contentmodels.ReadingRef  `json:"readingIds,omitempty"`
	SpeakingIDs     []contentmodels.SpeakingRef `json:"speakingIds,omitempty"`
	JlptLevel       string                      `json:"jlptLevel,omitempty" validate:"omitempty,oneof=N5 N4 N3 N2 N1"`
	DurationMinutes *int                        `json:"durationMinutes,omitempty" validate:"omitempty,min=1"`
	Published       bool                        `json:"published,omitempty"`
	Tags            []string                    `json:"tags,omitempty"`
}

// ToModel chuyển input thành model Lesson để insert.
// durationMinutes không được cung cấp thì mặc định 10 phút.
func (in LessonCreateInput) ToModel() (contentmodels.Lesson, error) {
	duration := 10
	if in.DurationMinutes != nil {
		duration = *in.DurationMinutes
	}
	return contentmodels.Lesson{
		Title:           in.Title,
		LessonNumber:    in.LessonNumber,
		Slug:            in.Slug,
		Description:     in.Description,
		WordIDs:         in.WordIDs,
		ReadingIDs:      in.ReadingIDs,
		SpeakingIDs:     in.SpeakingIDs,
		JlptLevel:       in.JlptLevel,
		DurationMinutes: duration,
		Published:       in.Published,
		Tags:            in.Tags,
	}, nil
}

// LessonUpdateInput dữ liệu đầu vào khi cập nhật bài học.
// Trường nil nghĩa là không thay đổi.
type LessonUpdateInput struct {
	Title           *string                     `json:"title,omitempty" validate:"omitempty,min=1,no_xss"`
	LessonNumber    *int                        `json:"lessonNumber,omitempty" validate:"omitempty,min=1"`
	Slug            *string                     `json:"slug,omitempty" validate:"omitempty,no_xss"`
	Description     *string                     `json:"description,omitempty" validate:"omitempty,no_xss"`
	WordIDs         []contentmodels.WordRef     `json:"wordIds,omitempty"`
	ReadingIDs      []contentmodels.ReadingRef  `json:"readingIds,omitempty"`
	SpeakingIDs     []contentmodels.SpeakingRef `json:"speakingIds,omitempty"`
	JlptLevel       *string                     `json:"jlptLevel,omitempty" validate:"omitempty,oneof=N5 N4 N3 N2 N1"`
	DurationMinutes *int                        `json:"durationMinutes,omitempty" validate:"omitempty,min=1"`
	Published       *bool                       `json:"published,omitempty"`
	Tags            []string                    `json:"tags,omitempty"`
}

// ToSet dựng map $set từ các trường có giá trị
func (in LessonUpdateInput) ToSet() (map[string]interface{}, error) {
	set := map[string]interface{}{}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.LessonNumber != nil {
		set["lessonNumber"] = *in.LessonNumber
	}
	if in.Slug != nil {
		set["slug"] = *in.Slug
	}
	if in.Description != nil {
		set["description"] = *in.Description
	}
	if in.WordIDs != nil {
		set["wordIds"] = in.WordIDs
	}
	if in.ReadingIDs != nil {
		set["readingIds"] = in.ReadingIDs
	}
	if in.SpeakingIDs != nil {
		set["speakingIds"] = in.SpeakingIDs
	}
	if in.JlptLevel != nil {
		set["jlptLevel"] = *in.JlptLevel
	}
	if in.DurationMinutes != nil {
		set["durationMinutes"] = *in.DurationMinutes
	}
	if in.Published != nil {
		set["published"] = *in.Published
	}
	if in.Tags != nil {
		set["tags"] = in.Tags
	}
	return set, nil
}
