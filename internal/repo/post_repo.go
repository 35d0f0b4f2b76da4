// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// AnonymousPost model.
//
// The repository follows a "thin" approach: it performs persistence and simple
// query composition, leaving business rules (required fields, the password
// gate) to the services package.
//
// Functions:
//
//   - CreatePost(ctx, db, post) -> *domain.AnonymousPost, error
//     Inserts a post row with UUID primary key and UTC timestamp.
//
//   - CountPosts(ctx, db, category) -> (int64, error)
//     Returns the total number of posts, optionally scoped to a category.
//
//   - ListPostsPage(ctx, db, category, offset, limit) -> []domain.PostSummary, error
//     Returns a page of summary rows (content and password excluded).
//
//   - GetPost(ctx, db, id) -> *domain.AnonymousPost, error
//     Fetches a single post by ID, or ErrNotFound if missing.
//
//   - IncrementPostViews(ctx, db, id) -> error
//     Adds one to the view counter in a single UPDATE.
//
//   - DeletePost(ctx, db, id) -> error
//     Removes the row; ErrNotFound when nothing was deleted.
package repo

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tripchat/tripchat-backend/internal/domain"
)

// CreatePost inserts a new AnonymousPost row. The ID is a randomly generated
// UUID and CreatedAt is set to UTC. The caller is responsible for field
// validation and for encoding the password before it reaches this function.
func CreatePost(ctx context.Context, db *gorm.DB, post *domain.AnonymousPost) (*domain.AnonymousPost, error) {
	post.ID = uuid.NewString()
	post.CreatedAt = time.Now().UTC()
	if err := db.WithContext(ctx).Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CountPosts returns the total number of posts, scoped to category when the
// category is non-empty (exact match). On DB error, it returns the error.
func CountPosts(ctx context.Context, db *gorm.DB, category string) (int64, error) {
	q := db.WithContext(ctx).Model(&domain.AnonymousPost{})
	if c := strings.TrimSpace(category); c != "" {
		q = q.Where("category = ?", c)
	}
	var total int64
	err := q.Count(&total).Error
	return total, err
}

// ListPostsPage returns a page of post summaries ordered by creation time
// descending. Content and password columns are never selected. The caller
// computes offset and limit (e.g. (page-1)*limit).
func ListPostsPage(ctx context.Context, db *gorm.DB, category string, offset, limit int) ([]domain.PostSummary, error) {
	q := db.WithContext(ctx).Model(&domain.AnonymousPost{}).
		Select("id", "title", "nickname", "category", "view_count", "created_at", "updated_at")
	if c := strings.TrimSpace(category); c != "" {
		q = q.Where("category = ?", c)
	}
	out := make([]domain.PostSummary, 0, limit)
	err := q.Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Scan(&out).Error
	return out, err
}

// GetPost fetches a single post by its ID. If the record does not exist, it
// returns ErrNotFound. On other DB errors, the raw error is returned.
func GetPost(ctx context.Context, db *gorm.DB, id string) (*domain.AnonymousPost, error) {
	var p domain.AnonymousPost
	if err := db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// IncrementPostViews adds one to the post's view counter with a single
// UPDATE, so concurrent fetches never lose an increment. A missing row yields
// ErrNotFound.
func IncrementPostViews(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Model(&domain.AnonymousPost{}).
		Where("id = ?", id).
		Update("view_count", gorm.Expr("view_count + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePost removes the post row identified by id. If no rows are affected,
// it returns ErrNotFound. On DB error, the raw error is returned.
func DeletePost(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.AnonymousPost{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
