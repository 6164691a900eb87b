// Package database - Index startup cho các collection của hệ thống.
package database

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexes tạo các index cần thiết khi khởi động.
// Tính duy nhất của email được enforce bằng unique index (atomic tại store),
// không kiểm tra find-trước-insert ở tầng service.
func CreateIndexes(ctx context.Context, db *mongo.Database) error {
	// admins: email unique
	if _, err := db.Collection("admins").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("admin_email_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// users: email unique
	if _, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("user_email_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// lessons: lessonNumber — sort mặc định của màn hình danh sách bài học
	if _, err := db.Collection("lessons").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "lessonNumber", Value: 1}},
		Options: options.Index().SetName("lesson_number"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// roles: deleted — predicate soft-delete chạy trên mọi truy vấn role
	if _, err := db.Collection("roles").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "deleted", Value: 1}},
		Options: options.Index().SetName("role_deleted").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// updatedAt:-1 — sort fallback của mọi danh sách
	for _, name := range []string{
		"words", "grammars", "lessons", "readings",
		"listenings", "speakings", "tests", "admins", "roles",
	} {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "updatedAt", Value: -1}},
			Options: options.Index().SetName("updated_at_desc"),
		}); err != nil && !isIndexExistsError(err) {
			return err
		}
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
