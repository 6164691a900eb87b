// Package authdto - Test chuyển đổi DTO admin sang model và $set map.
package authdto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yusariii/jp-learning-app-sub000/internal/common"
)

func strPtr(s string) *string { return &s }

func TestAdminCreateInput_ToModel(t *testing.T) {
	roleID := primitive.NewObjectID()
	in := AdminCreateInput{
		Email:    "  Admin@Example.COM ",
		Password: "secret123",
		FullName: "Nguyễn Văn A",
		RoleID:   roleID.Hex(),
	}

	admin, err := in.ToModel()
	require.NoError(t, err)

	assert.Equal(t, "admin@example.com", admin.Email, "email phải được trim và hạ chữ thường")
	assert.Equal(t, "secret123", admin.Password, "password giữ plaintext cho service hash")
	assert.Equal(t, roleID, admin.RoleID)
}

func TestAdminCreateInput_ToModel_BadRoleID(t *testing.T) {
	in := AdminCreateInput{
		Email:    "admin@example.com",
		Password: "secret123",
		RoleID:   "not-an-object-id",
	}

	_, err := in.ToModel()
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrBadRoleRef), "roleId sai định dạng phải trả ErrBadRoleRef")
	assert.Equal(t, common.StatusBadRequest, common.StatusOf(err))
}

func TestAdminUpdateInput_ToSet_OnlySentFields(t *testing.T) {
	in := AdminUpdateInput{
		Email: strPtr("New@Example.com"),
	}

	set, err := in.ToSet()
	require.NoError(t, err)

	assert.Equal(t, "new@example.com", set["email"])
	_, hasPassword := set["password"]
	assert.False(t, hasPassword, "trường nil không được vào $set")
	_, hasFullName := set["fullName"]
	assert.False(t, hasFullName)
	_, hasRole := set["roleId"]
	assert.False(t, hasRole)
}

func TestAdminUpdateInput_ToSet_Empty(t *testing.T) {
	set, err := AdminUpdateInput{}.ToSet()
	require.NoError(t, err)
	assert.Empty(t, set, "body rỗng sinh $set rỗng")
}

func TestAdminUpdateInput_ToSet_ParsesRoleID(t *testing.T) {
	roleID := primitive.NewObjectID()
	set, err := AdminUpdateInput{RoleID: strPtr(roleID.Hex())}.ToSet()
	require.NoError(t, err)
	assert.Equal(t, roleID, set["roleId"], "roleId phải được parse thành ObjectID")
}

func TestAdminUpdateInput_ToSet_BadRoleID(t *testing.T) {
	_, err := AdminUpdateInput{RoleID: strPtr("zzz")}.ToSet()
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrBadRoleRef))
}
