// Package common - Test error taxonomy và chuyển đổi lỗi MongoDB.
package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found là 404", ErrNotFound, StatusNotFound},
		{"duplicate là 409", ErrDuplicate, StatusConflict},
		{"email trùng là 409", ErrEmailTaken, StatusConflict},
		{"role không tồn tại là 400", ErrBadRoleRef, StatusBadRequest},
		{"input không hợp lệ là 400", ErrInvalidInput, StatusBadRequest},
		{"lỗi ngoài taxonomy là 500", errors.New("boom"), StatusInternalServerError},
		{"lỗi taxonomy bị wrap vẫn giữ status", fmt.Errorf("insert admin: %w", ErrNotFound), StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusOf(tc.err))
		})
	}
}

func TestConvertMongoError_NoDocuments(t *testing.T) {
	err := ConvertMongoError(mongo.ErrNoDocuments)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, StatusNotFound, StatusOf(err))
}

func TestConvertMongoError_DuplicateKey(t *testing.T) {
	dup := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
	}
	err := ConvertMongoError(dup)
	assert.True(t, errors.Is(err, ErrDuplicate), "lỗi duplicate key phải thành ErrDuplicate")
	assert.Equal(t, StatusConflict, StatusOf(err))
}

func TestConvertMongoError_PassthroughTaxonomy(t *testing.T) {
	// Lỗi đã thuộc taxonomy không bị wrap lại thành lỗi database
	err := ConvertMongoError(ErrBadRoleRef)
	assert.True(t, errors.Is(err, ErrBadRoleRef))
	assert.Equal(t, StatusBadRequest, StatusOf(err))
}

func TestConvertMongoError_Nil(t *testing.T) {
	assert.NoError(t, ConvertMongoError(nil))
}

func TestConvertMongoError_UnknownIs500(t *testing.T) {
	err := ConvertMongoError(errors.New("socket was unexpectedly closed"))
	assert.Equal(t, StatusInternalServerError, StatusOf(err))
}

func TestErrorMessages(t *testing.T) {
	// Message là body trả về client nên phải ổn định
	var e *Error
	assert.True(t, errors.As(ErrEmailTaken, &e))
	assert.Equal(t, MsgEmailAlreadyExists, e.Message)

	assert.True(t, errors.As(ErrBadRoleRef, &e))
	assert.Equal(t, "Role không tồn tại", e.Message)

	assert.True(t, errors.As(ErrNotFound, &e))
	assert.Equal(t, MsgNotFound, e.Message)
}
