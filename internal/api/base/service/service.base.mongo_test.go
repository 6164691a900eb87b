// Package basesvc - Test merge visibility predicate và chuẩn hóa update data.
package basesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type roleDoc struct {
	Title string `bson:"title"`
}

func TestApplyVisibility_NoPredicate(t *testing.T) {
	s := &BaseServiceMongoImpl[roleDoc]{}

	assert.Equal(t, bson.D{}, s.applyVisibility(nil), "filter nil về filter rỗng")

	filter := bson.M{"title": "Editor"}
	assert.Equal(t, filter, s.applyVisibility(filter), "không có predicate thì filter giữ nguyên")
}

func TestApplyVisibility_MergesPredicate(t *testing.T) {
	s := &BaseServiceMongoImpl[roleDoc]{
		visibility: bson.M{"deleted": bson.M{"$ne": true}},
	}

	merged, ok := s.applyVisibility(bson.M{"title": "Editor"}).(bson.M)
	require.True(t, ok)

	assert.Equal(t, "Editor", merged["title"])
	assert.Equal(t, bson.M{"$ne": true}, merged["deleted"], "predicate phải có mặt trong mọi filter")
}

func TestApplyVisibility_PredicateWins(t *testing.T) {
	// Caller không ghi đè được predicate để nhìn thấy document đã ẩn
	s := &BaseServiceMongoImpl[roleDoc]{
		visibility: bson.M{"deleted": bson.M{"$ne": true}},
	}

	merged := s.applyVisibility(bson.M{"deleted": true}).(bson.M)
	assert.Equal(t, bson.M{"$ne": true}, merged["deleted"])
}

func TestApplyVisibility_NilFilterGetsPredicate(t *testing.T) {
	s := &BaseServiceMongoImpl[roleDoc]{
		visibility: bson.M{"deleted": bson.M{"$ne": true}},
	}

	merged, ok := s.applyVisibility(nil).(bson.M)
	require.True(t, ok)
	assert.Equal(t, bson.M{"$ne": true}, merged["deleted"])
}

func TestApplyVisibility_BsonDUsesAnd(t *testing.T) {
	s := &BaseServiceMongoImpl[roleDoc]{
		visibility: bson.M{"deleted": bson.M{"$ne": true}},
	}

	id := primitive.NewObjectID()
	filter := bson.D{{Key: "_id", Value: id}}

	merged, ok := s.applyVisibility(filter).(bson.M)
	require.True(t, ok)
	and, ok := merged["$and"].(bson.A)
	require.True(t, ok, "filter bson.D phải được kết hợp bằng $and")
	assert.Len(t, and, 2)
}

func TestToUpdateData_WrapsPlainMap(t *testing.T) {
	update, err := ToUpdateData(map[string]interface{}{"title": "Editor"})
	require.NoError(t, err)

	assert.Equal(t, "Editor", update.Set["title"], "map thường phải được wrap trong $set")
	assert.Nil(t, update.Unset)
}

func TestToUpdateData_KeepsExistingOperators(t *testing.T) {
	update, err := ToUpdateData(map[string]interface{}{
		"$set":   map[string]interface{}{"title": "Editor"},
		"$unset": map[string]interface{}{"description": ""},
	})
	require.NoError(t, err)

	assert.Equal(t, "Editor", update.Set["title"])
	require.NotNil(t, update.Unset)
	_, hasDescription := update.Unset["description"]
	assert.True(t, hasDescription)
}

func TestToUpdateData_Passthrough(t *testing.T) {
	in := &UpdateData{Set: map[string]interface{}{"title": "Editor"}}
	update, err := ToUpdateData(in)
	require.NoError(t, err)
	assert.Same(t, in, update, "UpdateData có sẵn không bị copy lại")
}
