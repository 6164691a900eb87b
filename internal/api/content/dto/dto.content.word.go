package contentdto

import (
	contentmodels "github.com/yusariii/jp-learning-app-sub000/internal/api/content/models"
)

// WordCreateInput dữ liệu đầu vào khi tạo từ vựng
type WordCreateInput struct {
	TermJP    string                      `json:"termJP" validate:"required"`
	HiraKata  string                      `json:"hiraKata,omitempty"`
	Romaji    string                      `json:"romaji,omitempty"`
	MeaningVI string                      `json:"meaningVI,omitempty"`
	MeaningEN string                      `json:"meaningEN,omitempty"`
	Kanji     string                      `json:"kanji,omitempty"`
	Examples  []contentmodels.WordExample `json:"examples,omitempty" validate:"omitempty,dive"`
	AudioURL  string                      `json:"audioUrl,omitempty"`
	Tags      []string                    `json:"tags,omitempty"`
	JlptLevel string                      `json:"jlptLevel,omitempty" validate:"omitempty,oneof=N5 N4 N3 N2 N1"`
}

// ToModel chuyển input thành model Word để insert
func (in WordCreateInput) ToModel() (contentmodels.Word, error) {
	return contentmodels.Word{
		TermJP:    in.TermJP,
		HiraKata:  in.HiraKata,
		Romaji:    in.Romaji,
		MeaningVI: in.MeaningVI,
		MeaningEN: in.MeaningEN,
		Kanji:     in.Kanji,
		Examples:  in.Examples,
		AudioURL:  in.AudioURL,
		Tags:      in.Tags,
		JlptLevel: in.JlptLevel,
	}, nil
}

// WordUpdateInput dữ liệu đầu vào khi cập nhật từ vựng.
// Trường nil nghĩa là không thay đổi.
type WordUpdateInput struct {
	TermJP    *string                     `json:"termJP,omitempty" validate:"omitempty,min=1"`
	HiraKata  *string                     `json:"hiraKata,omitempty"`
	Romaji    *string                     `json:"romaji,omitempty"`
	MeaningVI *string                     `json:"meaningVI,omitempty"`
	MeaningEN *string                     `json:"meaningEN,omitempty"`
	Kanji     *string                     `json:"kanji,omitempty"`
	Examples  []contentmodels.WordExample `json:"examples,omitempty" validate:"omitempty,dive"`
	AudioURL  *string                     `json:"audioUrl,omitempty"`
	Tags      []string                    `json:"tags,omitempty"`
	JlptLevel *string                     `json:"jlptLevel,omitempty" validate:"omitempty,oneof=N5 N4 N3 N2 N1"`
}

// ToSet dựng map $set từ các trường có giá trị
func (in WordUpdateInput) ToSet() (map[string]interface{}, error) {
	set := map[string]interface{}{}
	if in.TermJP != nil {
		set["termJP"] = *in.TermJP
	}
	if in.HiraKata != nil {
		set["hiraKata"] = *in.HiraKata
	}
	if in.Romaji != nil {
		set["romaji"] = *in.Romaji
	}
	if in.MeaningVI != nil {
		set["meaningVI"] = *in.MeaningVI
	}
	if in.MeaningEN != nil {
		set["meaningEN"] = *in.MeaningEN
	}
	if in.Kanji != nil {
		set["kanji"] = *in.Kanji
	}
	if in.Examples != nil {
		set["examples"] = in.Examples
	}
	if in.AudioURL != nil {
		set["audioUrl"] = *in.AudioURL
	}
	if in.Tags != nil {
		set["tags"] = in.Tags
	}
	if in.JlptLevel != nil {
		set["jlptLevel"] = *in.JlptLevel
	}
	return set, nil
}
