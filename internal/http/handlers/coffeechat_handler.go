// Coffee-chat HTTP handlers.
//
// This file exposes REST endpoints for coffee-chat resources:
//   - GET    /coffee-chats                    (list, optional country/job filters, ETag support)
//   - GET    /coffee-chats/{id}               (detail)
//   - POST   /coffee-chats                    (create)
//   - POST   /coffee-chats/{id}/join          (join)
//   - GET    /coffee-chats/country/{country}  (filter by country)
//   - GET    /coffee-chats/job/{job}          (filter by job)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses (including conditional responses
// and idempotent replays on create).
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tripchat/tripchat-backend/internal/domain"
	"github.com/tripchat/tripchat-backend/internal/http/middleware"
	"github.com/tripchat/tripchat-backend/internal/repo"
	"github.com/tripchat/tripchat-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// CoffeeChatService defines coffee-chat operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type CoffeeChatService interface {
	// Create inserts a new chat, forcing the creation defaults.
	Create(ctx context.Context, chat *domain.CoffeeChat) (*domain.CoffeeChat, error)
	// List returns chats newest first, optionally filtered by country
	// (case-insensitive exact) and job (case-insensitive substring).
	List(ctx context.Context, country, job string) ([]domain.CoffeeChat, error)
	// Get returns a chat by id or services.ErrChatNotFound.
	Get(ctx context.Context, id string) (*domain.CoffeeChat, error)
	// Join increments the participant counter, flipping to FULL at capacity.
	Join(ctx context.Context, id string) (*domain.CoffeeChat, error)
}

// PostService defines anonymous-post operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type PostService interface {
	// ListPage returns a page of post summaries and the total count.
	ListPage(ctx context.Context, category string, page, limit int) ([]domain.PostSummary, int64, error)
	// Get returns the full post (password never serialized) and bumps views.
	Get(ctx context.Context, id string) (*domain.AnonymousPost, error)
	// Create validates and persists a new post.
	Create(ctx context.Context, in services.CreatePostInput) (*domain.AnonymousPost, error)
	// Delete removes a post when the password matches.
	Delete(ctx context.Context, id, password string) error
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for coffee chats and anonymous posts.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	chatSvc CoffeeChatService
	postSvc PostService

	// idemTTL is how long an Idempotency-Key on a create endpoint stays
	// replayable.
	idemTTL time.Duration
}

// New constructs and returns a Handlers instance bound to the given services.
func New(chatSvc CoffeeChatService, postSvc PostService, idemTTL time.Duration) *Handlers {
	if idemTTL <= 0 {
		idemTTL = 24 * time.Hour
	}
	return &Handlers{chatSvc: chatSvc, postSvc: postSvc, idemTTL: idemTTL}
}

// chatDB exposes the GORM handle of the concrete chat service, when
// available, for ETag pre-checks and idempotency records. Stub services used
// in tests return nil and the extras are simply skipped.
func (h *Handlers) chatDB() *gorm.DB {
	if svc, ok := h.chatSvc.(*services.CoffeeChatService); ok {
		return svc.DB
	}
	return nil
}

// recordIdempotency persists an idempotency record for a completed create,
// best effort: a race with a concurrent retry (duplicate) or a store error
// must not fail the response that was already produced.
func (h *Handlers) recordIdempotency(c *gin.Context, db *gorm.DB, resourceID string, status int) {
	key, hasKey := middleware.GetIdempotencyKey(c)
	if !hasKey || db == nil {
		return
	}
	_, err := repo.CreateIdempotency(c.Request.Context(), db,
		middleware.ClientKey(c), c.FullPath(), key, resourceID, status, h.idemTTL)
	if err != nil && !errors.Is(err, repo.ErrDuplicate) {
		middleware.LoggerFrom(c).Warn().Err(err).Msg("idempotency record not saved")
	}
}

// replayResource returns the stored resource id of a prior completed request
// for this (client, route, key), or "" when there is nothing to replay.
func (h *Handlers) replayResource(c *gin.Context, db *gorm.DB) string {
	key, hasKey := middleware.GetIdempotencyKey(c)
	if !hasKey || db == nil || !middleware.IsReplay(c) {
		return ""
	}
	rec, err := repo.GetIdempotency(c.Request.Context(), db,
		middleware.ClientKey(c), c.FullPath(), key, time.Now().UTC())
	if err != nil || rec == nil {
		return ""
	}
	return rec.ResourceID
}

//
// Handlers
//

// ListCoffeeChats godoc
// @ID          listCoffeeChats
// @Summary     List coffee chats
// @Description Returns all coffee chats, newest first. Supports optional country (case-insensitive exact) and job (case-insensitive substring) filters, and a weak ETag on the unfiltered list.
// @Tags        CoffeeChats
// @Produce     json
//
// @Param       country        query   string  false "Country filter (exact, case-insensitive)"  example(일본)
// @Param       job            query   string  false "Job filter (substring, case-insensitive)"  example(개발자)
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"
//
// @Success     200  {array}  domain.CoffeeChat
// @Success     304  {string} string "Not Modified"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /coffee-chats [get]
func (h *Handlers) ListCoffeeChats(c *gin.Context) {
	ctx := c.Request.Context()
	country := c.Query("country")
	job := c.Query("job")

	// ETag pre-check (best effort, unfiltered list only).
	if db := h.chatDB(); db != nil && country == "" && job == "" {
		count, maxTS, err := repo.CoffeeChatsStats(ctx, db)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"coffee-chats:%d:%d"`, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	chats, err := h.chatSvc.List(ctx, country, job)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, msgServerError)
		return
	}
	ok(c, http.StatusOK, chats)
}

// ListCoffeeChatsByCountry godoc
// @ID          listCoffeeChatsByCountry
// @Summary     List coffee chats for a country
// @Description Case-insensitive exact match on the stored country.
// @Tags        CoffeeChats
// @Produce     json
// @Param       country  path  string  true  "Country"  example(일본)
// @Success     200  {array}  domain.CoffeeChat
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /coffee-chats/country/{country} [get]
func (h *Handlers) ListCoffeeChatsByCountry(c *gin.Context) {
	chats, err := h.chatSvc.List(c.Request.Context(), c.Param("country"), "")
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, msgServerError)
		return
	}
	ok(c, http.StatusOK, chats)
}

// ListCoffeeChatsByJob godoc
// @ID          listCoffeeChatsByJob
// @Summary     List coffee chats for a job
// @Description Case-insensitive substring match on the stored job title.
// @Tags        CoffeeChats
// @Produce     json
// @Param       job  path  string  true  "Job fragment"  example(개발자)
// @Success     200  {array}  domain.CoffeeChat
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /coffee-chats/job/{job} [get]
func (h *Handlers) ListCoffeeChatsByJob(c *gin.Context) {
	chats, err := h.chatSvc.List(c.Request.Context(), "", c.Param("job"))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, msgServerError)
		return
	}
	ok(c, http.StatusOK, chats)
}

// GetCoffeeChat godoc
// @ID          getCoffeeChat
// @Summary     Get a coffee chat
// @Tags        CoffeeChats
// @Produce     json
// @Param       id  path  string  true  "Coffee chat ID"
// @Success     200  {object} domain.CoffeeChat
// @Failure     404  {object} handlers.ErrorResponse "Not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /coffee-chats/{id} [get]
func (h *Handlers) GetCoffeeChat(c *gin.Context) {
	chat, err := h.chatSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrChatNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, msgChatNotFound)
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, msgServerError)
		return
	}
	ok(c, http.StatusOK, chat)
}

// CreateCoffeeChat godoc
// @ID          createCoffeeChat
// @Summary     Create a coffee chat
// @Description Creates a listing. Whatever the payload says, the stored chat starts with zero participants and OPEN status. Supports Idempotency-Key replay.
// @Tags        CoffeeChats
// @Accept      json
// @Produce     json
//
// @Param       Idempotency-Key  header  string  false "Client-chosen retry key"
// @Param       body             body    domain.CoffeeChat  true  "Chat fields"
//
// @Success     201  {object} domain.CoffeeChat
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /coffee-chats [post]
func (h *Handlers) CreateCoffeeChat(c *gin.Context) {
	db := h.chatDB()

	// Serve a replay of a previously completed create, if any.
	if id := h.replayResource(c, db); id != "" {
		if chat, err := h.chatSvc.Get(c.Request.Context(), id); err == nil {
			c.Header("Idempotency-Replayed", "true")
			ok(c, http.StatusCreated, chat)
			return
		}
	}

	var req domain.CoffeeChat
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, msgBadRequest)
		return
	}

	chat, err := h.chatSvc.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, msgServerError)
		return
	}
	h.recordIdempotency(c, db, chat.ID, http.StatusCreated)
	ok(c, http.StatusCreated, chat)
}

// JoinCoffeeChat godoc
// @ID          joinCoffeeChat
// @Summary     Join a coffee chat
// @Description Increments the participant counter of an OPEN chat with free capacity; flips the status to FULL when the increment reaches it.
// @Tags        CoffeeChats
// @Produce     json
// @Param       id  path  string  true  "Coffee chat ID"
// @Success     200  {object} domain.CoffeeChat
// @Failure     400  {object} handlers.ErrorResponse "Not joinable / full"
// @Failure     404  {object} handlers.ErrorResponse "Not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /coffee-chats/{id}/join [post]
func (h *Handlers) JoinCoffeeChat(c *gin.Context) {
	chat, err := h.chatSvc.Join(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrChatNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, msgChatNotFound)
		case errors.Is(err, services.ErrChatNotJoinable):
			fail(c, http.StatusBadRequest, ErrCodeConflict, msgChatNotJoinable)
		case errors.Is(err, services.ErrChatFull):
			fail(c, http.StatusBadRequest, ErrCodeConflict, msgChatFull)
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, msgServerError)
		}
		return
	}
	ok(c, http.StatusOK, chat)
}
