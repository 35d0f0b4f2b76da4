// Package services – CoffeeChatService
//
// This file implements the CoffeeChatService, which manages the lifecycle of
// coffee-chat listings. It normalizes free-text input, enforces the creation
// defaults (zero participants, OPEN status), and coordinates repository
// operations for listing (with country/job filters), fetching, creating, and
// joining chats.
//
// Service-level errors (e.g., ErrChatNotFound, ErrChatFull) are returned for
// predictable cases so handlers can map them to HTTP results consistently.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tripchat/tripchat-backend/internal/domain"
	"github.com/tripchat/tripchat-backend/internal/repo"
	"golang.org/x/text/unicode/norm"
)

// CoffeeChatRepo defines the repository contract required by CoffeeChatService.
// Implementations are responsible for persistence of coffee-chat aggregates.
type CoffeeChatRepo interface {
	// CreateChat inserts a new coffee-chat row.
	CreateChat(ctx context.Context, db *gorm.DB, chat *domain.CoffeeChat) (*domain.CoffeeChat, error)

	// ListChats returns chats matching the filter, newest first.
	ListChats(ctx context.Context, db *gorm.DB, f repo.ChatFilter) ([]domain.CoffeeChat, error)

	// GetChat fetches a chat by ID.
	GetChat(ctx context.Context, db *gorm.DB, id string) (*domain.CoffeeChat, error)

	// JoinChat performs the guarded participant increment. joined is false
	// when the chat is missing, closed, or already at capacity.
	JoinChat(ctx context.Context, db *gorm.DB, id string) (joined bool, chat *domain.CoffeeChat, err error)
}

// CoffeeChatService provides chat-level operations such as creating, listing,
// filtering, and joining coffee chats.
type CoffeeChatService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the coffee-chat repository used by this service.
	Repo CoffeeChatRepo
}

// NewCoffeeChatService constructs a CoffeeChatService.
func NewCoffeeChatService(db *gorm.DB, r CoffeeChatRepo) *CoffeeChatService {
	return &CoffeeChatService{DB: db, Repo: r}
}

// Create inserts a new coffee chat. Whatever the payload carried, the stored
// row always starts with zero participants and OPEN status. Free-text fields
// are NFC-normalized so later filter matches are stable across input methods.
func (s *CoffeeChatService) Create(ctx context.Context, chat *domain.CoffeeChat) (*domain.CoffeeChat, error) {
	normalizeChat(chat)
	chat.CurrentParticipants = 0
	chat.Status = domain.ChatStatusOpen
	return s.Repo.CreateChat(ctx, s.DB, chat)
}

// List returns chats ordered newest first. country filters by
// case-insensitive exact match, job by case-insensitive substring; either may
// be empty.
func (s *CoffeeChatService) List(ctx context.Context, country, job string) ([]domain.CoffeeChat, error) {
	return s.Repo.ListChats(ctx, s.DB, repo.ChatFilter{Country: country, Job: job})
}

// Get returns the chat with the given id, or ErrChatNotFound.
func (s *CoffeeChatService) Get(ctx context.Context, id string) (*domain.CoffeeChat, error) {
	c, err := s.Repo.GetChat(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatNotFound
		}
		return nil, err
	}
	return c, nil
}

// Join increments the chat's participant counter and flips the status to FULL
// at capacity, returning the updated chat.
//
// Failure classification:
//   - ErrChatNotFound when the id is unknown,
//   - ErrChatNotJoinable when the status is not OPEN,
//   - ErrChatFull when the chat is OPEN but already at capacity.
//
// The increment itself is a conditional update (see repo.JoinCoffeeChat), so
// concurrent joins cannot push the counter past MaxParticipants.
func (s *CoffeeChatService) Join(ctx context.Context, id string) (*domain.CoffeeChat, error) {
	joined, chat, err := s.Repo.JoinChat(ctx, s.DB, id)
	if err != nil {
		return nil, err
	}
	if joined {
		return chat, nil
	}

	// The guarded update matched nothing; load the row to say why.
	cur, err := s.Repo.GetChat(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatNotFound
		}
		return nil, err
	}
	if cur.Status != domain.ChatStatusOpen {
		return nil, ErrChatNotJoinable
	}
	return nil, ErrChatFull
}

// normalizeChat applies NFC normalization to the chat's free-text fields.
// Korean text in particular can arrive decomposed (NFD) from some clients,
// which would break the case-insensitive country match.
func normalizeChat(c *domain.CoffeeChat) {
	c.Title = norm.NFC.String(c.Title)
	c.Host = norm.NFC.String(c.Host)
	c.Country = norm.NFC.String(c.Country)
	c.City = norm.NFC.String(c.City)
	c.Job = norm.NFC.String(c.Job)
	c.Company = norm.NFC.String(c.Company)
	c.Description = norm.NFC.String(c.Description)
	for i, t := range c.Tags {
		c.Tags[i] = norm.NFC.String(t)
	}
}
