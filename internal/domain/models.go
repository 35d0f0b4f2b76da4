// Package domain defines the persistence models for coffee chats and
// anonymous posts. These types are mapped with GORM and form the core data
// layer of the TripChat application.
package domain

import (
	"time"
)

// CoffeeChat status values. A chat starts OPEN, flips to FULL when the join
// operation reaches capacity, and COMPLETED is only ever set by direct data
// manipulation (no endpoint transitions into it).
const (
	ChatStatusOpen      = "OPEN"
	ChatStatusFull      = "FULL"
	ChatStatusCompleted = "COMPLETED"
)

// CoffeeChat represents a scheduled informal meetup listing with a host and
// a participant capacity.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - CurrentParticipants: monotonically increasing join counter, starts at 0.
//   - MaxParticipants: upper bound on attendance.
//   - Tags: ordered list of free-text tags, persisted as a JSON column.
//   - Status: OPEN | FULL | COMPLETED (see constants above).
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
type CoffeeChat struct {
	ID                  string    `json:"id"                  gorm:"type:char(36);primaryKey"`
	Title               string    `json:"title"               gorm:"type:varchar(255);not null"`
	Host                string    `json:"host"                gorm:"type:varchar(64);not null"`
	Country             string    `json:"country"             gorm:"type:varchar(64);not null;index:idx_chat_country"`
	City                string    `json:"city"                gorm:"type:varchar(64)"`
	Job                 string    `json:"job"                 gorm:"type:varchar(128)"`
	Company             string    `json:"company"             gorm:"type:varchar(128)"`
	Experience          string    `json:"experience"          gorm:"type:varchar(64)"`
	Date                string    `json:"date"                gorm:"type:varchar(32)"`
	Time                string    `json:"time"                gorm:"type:varchar(32)"`
	MaxParticipants     int       `json:"maxParticipants"     gorm:"not null"`
	CurrentParticipants int       `json:"currentParticipants" gorm:"not null;default:0"`
	Description         string    `json:"description"         gorm:"type:text"`
	Tags                []string  `json:"tags"                gorm:"serializer:json;type:text"`
	Status              string    `json:"status"              gorm:"type:varchar(16);not null;default:'OPEN';check:status IN ('OPEN','FULL','COMPLETED')"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// TableName returns the database table name for CoffeeChat.
func (CoffeeChat) TableName() string { return "coffee_chats" }

// IsFull reports whether the chat has reached its participant capacity.
func (c CoffeeChat) IsFull() bool { return c.CurrentParticipants >= c.MaxParticipants }

// DefaultPostCategory is assigned to anonymous posts created without an
// explicit category.
const DefaultPostCategory = "일반"

// AnonymousPost represents a pseudonymous discussion-board entry. Deletion is
// gated by a caller-supplied password whose base64 encoding must match the
// stored value; the stored value itself is never serialized.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - Password: base64 encoding of the plaintext, hidden from JSON.
//   - ViewCount: incremented by one on every detail fetch.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
type AnonymousPost struct {
	ID        string    `json:"id"        gorm:"type:char(36);primaryKey"`
	Title     string    `json:"title"     gorm:"type:varchar(255);not null"`
	Content   string    `json:"content"   gorm:"type:text;not null"`
	Nickname  string    `json:"nickname"  gorm:"type:varchar(64);not null"`
	Password  string    `json:"-"         gorm:"type:varchar(255);not null"`
	Category  string    `json:"category"  gorm:"type:varchar(64);not null;default:'일반';index:idx_post_category"`
	ViewCount int       `json:"viewCount" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"createdAt" gorm:"index:idx_post_created"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the database table name for AnonymousPost.
func (AnonymousPost) TableName() string { return "anonymous_posts" }

// PostSummary is the reduced row shape used by the anonymous-post list
// endpoint: content and password are intentionally excluded.
type PostSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Nickname  string    `json:"nickname"`
	Category  string    `json:"category"`
	ViewCount int       `json:"viewCount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
