// Package appctx - Test các custom validator đăng ký cho DTO.
package appctx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleInput struct {
	Title  string `validate:"required,no_xss"`
	RoleID string `validate:"omitempty,objectid"`
}

func TestNoXSS(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Struct(sampleInput{Title: "Bài 1: ひらがな"}), "text thường phải qua")
	assert.NoError(t, v.Struct(sampleInput{Title: "Lesson <b>one</b>"}), "markup vô hại không bị chặn")
	assert.Error(t, v.Struct(sampleInput{Title: `<script>alert(1)</script>`}))
	assert.Error(t, v.Struct(sampleInput{Title: `<img onerror=alert(1)>`}))
	assert.Error(t, v.Struct(sampleInput{Title: "javascript:void(0)"}))
}

func TestObjectIDTag(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Struct(sampleInput{Title: "x", RoleID: "66f1a2b3c4d5e6f708091a0b"}))
	assert.NoError(t, v.Struct(sampleInput{Title: "x"}), "field rỗng kết hợp omitempty được bỏ qua")
	assert.Error(t, v.Struct(sampleInput{Title: "x", RoleID: "not-hex"}))
	assert.Error(t, v.Struct(sampleInput{Title: "x", RoleID: "66f1"}), "hex quá ngắn không phải ObjectID")
}
