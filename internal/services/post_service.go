// Package services – PostService
//
// This file implements the PostService, which governs the anonymous
// discussion board. It validates required fields on creation, encodes the
// deletion password before storage, increments the view counter on every
// detail fetch, and gates deletion behind the password check. Service-level
// errors (e.g. ErrPostNotFound, ErrPasswordMismatch) are returned for
// predictable cases so handlers can map them to HTTP results consistently.
package services

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/tripchat/tripchat-backend/internal/domain"
	"github.com/tripchat/tripchat-backend/internal/repo"
	"golang.org/x/text/unicode/norm"
)

// PostService implements the use-cases around anonymous posts. It uses the
// repo free functions directly over the provided GORM handle.
type PostService struct {
	// DB is the database handle used for all post operations.
	DB *gorm.DB
}

// CreatePostInput carries the caller-supplied fields for a new post.
// Category is optional and defaults to the general board.
type CreatePostInput struct {
	Title    string
	Content  string
	Nickname string
	Password string
	Category string
}

// ListPage returns a page of post summaries plus the total count for the
// (optional) category. Page and limit are defaulted when out of range.
func (s *PostService) ListPage(ctx context.Context, category string, page, limit int) ([]domain.PostSummary, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	offset := (page - 1) * limit

	total, err := repo.CountPosts(ctx, s.DB, category)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.PostSummary{}, 0, nil
	}

	items, err := repo.ListPostsPage(ctx, s.DB, category, offset, limit)
	return items, total, err
}

// Get returns the post with the given id and bumps its view counter. The
// returned record carries the pre-increment count, matching the behavior the
// web client has always seen. A repeated fetch bumps the counter again;
// there is no per-viewer deduplication.
func (s *PostService) Get(ctx context.Context, id string) (*domain.AnonymousPost, error) {
	p, err := repo.GetPost(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if err := repo.IncrementPostViews(ctx, s.DB, id); err != nil {
		return nil, err
	}
	return p, nil
}

// Create validates and persists a new post. Title, content, nickname, and
// password must all be non-blank; the category falls back to the general
// board. The password is stored base64-encoded, a reversible encoding kept
// for compatibility with the existing data, not a cryptographic hash.
func (s *PostService) Create(ctx context.Context, in CreatePostInput) (*domain.AnonymousPost, error) {
	if strings.TrimSpace(in.Title) == "" ||
		strings.TrimSpace(in.Content) == "" ||
		strings.TrimSpace(in.Nickname) == "" ||
		in.Password == "" {
		return nil, ErrMissingFields
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = domain.DefaultPostCategory
	}

	post := &domain.AnonymousPost{
		Title:    norm.NFC.String(in.Title),
		Content:  norm.NFC.String(in.Content),
		Nickname: norm.NFC.String(in.Nickname),
		Password: encodePassword(in.Password),
		Category: norm.NFC.String(category),
	}
	return repo.CreatePost(ctx, s.DB, post)
}

// Delete removes the post when the supplied password's encoding matches the
// stored value.
//
// Failure classification:
//   - ErrPasswordRequired when the password is empty,
//   - ErrPostNotFound when the id is unknown,
//   - ErrPasswordMismatch when the encodings differ.
func (s *PostService) Delete(ctx context.Context, id, password string) error {
	if password == "" {
		return ErrPasswordRequired
	}

	p, err := repo.GetPost(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	if p.Password != encodePassword(password) {
		return ErrPasswordMismatch
	}
	return repo.DeletePost(ctx, s.DB, id)
}

// encodePassword applies the reversible base64 encoding used by the stored
// rows. Intentionally not a hash: existing rows must keep verifying.
func encodePassword(plain string) string {
	return base64.StdEncoding.EncodeToString([]byte(plain))
}
