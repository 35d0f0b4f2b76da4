// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the CoffeeChat
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a chat is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tripchat/tripchat-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// ChatFilter narrows CoffeeChat list queries. Zero values mean "no filter".
//
//   - Country matches case-insensitively and exactly.
//   - Job matches case-insensitively as a substring.
type ChatFilter struct {
	Country string
	Job     string
}

// CreateCoffeeChat inserts a new CoffeeChat row. The chat ID is a randomly
// generated UUID (string), CreatedAt is set to UTC, and the caller is expected
// to have forced CurrentParticipants/Status to their creation defaults.
//
// On success, it returns the persisted CoffeeChat. On failure, a DB error.
func CreateCoffeeChat(ctx context.Context, db *gorm.DB, chat *domain.CoffeeChat) (*domain.CoffeeChat, error) {
	chat.ID = uuid.NewString()
	chat.CreatedAt = time.Now().UTC()
	if err := db.WithContext(ctx).Create(chat).Error; err != nil {
		return nil, err
	}
	return chat, nil
}

// ListCoffeeChats returns chats matching the filter, ordered by creation time
// descending (most recent first). An empty filter returns every chat. It
// returns an empty slice when nothing matches; on DB error, the error.
func ListCoffeeChats(ctx context.Context, db *gorm.DB, f ChatFilter) ([]domain.CoffeeChat, error) {
	q := db.WithContext(ctx).Model(&domain.CoffeeChat{})
	if c := strings.TrimSpace(f.Country); c != "" {
		q = q.Where("LOWER(country) = LOWER(?)", c)
	}
	if j := strings.TrimSpace(f.Job); j != "" {
		q = q.Where("LOWER(job) LIKE '%' || LOWER(?) || '%'", j)
	}
	var out []domain.CoffeeChat
	err := q.Order("created_at desc").Find(&out).Error
	return out, err
}

// GetCoffeeChat fetches a single chat by its ID. If the record does not
// exist, it returns ErrNotFound. On other DB errors, the raw error.
func GetCoffeeChat(ctx context.Context, db *gorm.DB, id string) (*domain.CoffeeChat, error) {
	var c domain.CoffeeChat
	if err := db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// JoinCoffeeChat increments the participant counter of an OPEN chat with free
// capacity, flipping the status to FULL when the increment reaches it.
//
// The increment is a conditional UPDATE guarded by
// `status = OPEN AND current_participants < max_participants`, so concurrent
// joins cannot overshoot the capacity. Both statements run in one transaction.
//
// Returns the number of rows affected by the increment (0 when the chat is
// missing, not OPEN, or already full; the caller classifies which) and the
// reloaded chat when the join succeeded.
func JoinCoffeeChat(ctx context.Context, db *gorm.DB, id string) (joined bool, chat *domain.CoffeeChat, err error) {
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.CoffeeChat{}).
			Where("id = ? AND status = ? AND current_participants < max_participants",
				id, domain.ChatStatusOpen).
			Update("current_participants", gorm.Expr("current_participants + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		joined = true

		// Flip to FULL when the increment reached capacity.
		if err := tx.Model(&domain.CoffeeChat{}).
			Where("id = ? AND current_participants >= max_participants", id).
			Update("status", domain.ChatStatusFull).Error; err != nil {
			return err
		}

		var c domain.CoffeeChat
		if err := tx.Where("id = ?", id).First(&c).Error; err != nil {
			return err
		}
		chat = &c
		return nil
	})
	if err != nil {
		return false, nil, err
	}
	return joined, chat, nil
}
