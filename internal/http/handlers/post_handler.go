// Anonymous-post HTTP handlers.
//
// This file exposes REST endpoints for the anonymous discussion board:
//   - GET    /anonymous-posts        (list, paginated, optional category filter)
//   - GET    /anonymous-posts/{id}   (detail; every call bumps the view counter)
//   - POST   /anonymous-posts        (create; password is encoded before storage)
//   - DELETE /anonymous-posts/{id}   (delete; gated by the password)
//
// Handlers are transport-thin: they parse and bound query parameters,
// delegate to PostService, and translate the service's sentinel errors into
// the HTTP taxonomy (400 validation, 401 password mismatch, 404 unknown id).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tripchat/tripchat-backend/internal/domain"
	"github.com/tripchat/tripchat-backend/internal/repo"
	"github.com/tripchat/tripchat-backend/internal/services"
	"github.com/tripchat/tripchat-backend/internal/utils"
)

//
// DTOs
//

// CreatePostRequest is the JSON payload for creating an anonymous post.
// Category is optional; blank falls back to the general board.
type CreatePostRequest struct {
	Title    string `json:"title"    example:"도쿄 집 구하기 팁 공유해요"`
	Content  string `json:"content"  example:"역세권보다 스퍼 근처가 좋아요..."`
	Nickname string `json:"nickname" example:"익명의 직장인"`
	Password string `json:"password" example:"pw1234"`
	Category string `json:"category" example:"일반"`
}

// DeletePostRequest is the JSON payload for deleting an anonymous post.
type DeletePostRequest struct {
	Password string `json:"password" example:"pw1234"`
}

// DeletePostResponse confirms a successful deletion.
type DeletePostResponse struct {
	Message string `json:"message" example:"게시글이 삭제되었습니다."`
}

// ListPostsResponse wraps a page of post summaries and pagination counters,
// in the exact shape the web client consumes.
type ListPostsResponse struct {
	Posts      []domain.PostSummary `json:"posts"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	TotalPages int                  `json:"totalPages"`
}

//
// Helpers
//

// clampPostPagination parses page/limit query parameters, applies defaults
// and caps, and returns the validated (page, limit).
func clampPostPagination(c *gin.Context) (page, limit int) {
	const (
		defaultPage  = 1
		defaultLimit = 20
		maxLimit     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	limit = utils.AtoiDefault(c.Query("limit"), defaultLimit)
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return
}

// postDB exposes the GORM handle of the concrete post service, when
// available, for idempotency records and replay lookups.
func (h *Handlers) postDB() *gorm.DB {
	if svc, ok := h.postSvc.(*services.PostService); ok {
		return svc.DB
	}
	return nil
}

//
// Handlers
//

// ListPosts godoc
// @ID          listPosts
// @Summary     List anonymous posts (paginated)
// @Description Returns a page of post summaries (content and password excluded), newest first, plus total and page counters.
// @Tags        AnonymousPosts
// @Produce     json
//
// @Param       category  query  string  false "Category filter (exact match)"  example(일반)
// @Param       page      query  int     false "Page number"      minimum(1) default(1)
// @Param       limit     query  int     false "Items per page"   minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.ListPostsResponse
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /anonymous-posts [get]
func (h *Handlers) ListPosts(c *gin.Context) {
	page, limit := clampPostPagination(c)

	posts, total, err := h.postSvc.ListPage(c.Request.Context(), c.Query("category"), page, limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, msgServerError)
		return
	}

	ok(c, http.StatusOK, ListPostsResponse{
		Posts:      posts,
		Total:      total,
		Page:       page,
		TotalPages: utils.TotalPages(total, limit),
	})
}

// GetPost godoc
// @ID          getPost
// @Summary     Get an anonymous post
// @Description Returns the full post (password never included). Every call increments the view counter, repeated views included.
// @Tags        AnonymousPosts
// @Produce     json
// @Param       id  path  string  true  "Post ID"
// @Success     200  {object} domain.AnonymousPost
// @Failure     404  {object} handlers.ErrorResponse "Not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /anonymous-posts/{id} [get]
func (h *Handlers) GetPost(c *gin.Context) {
	post, err := h.postSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, msgPostNotFound)
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, msgServerError)
		return
	}
	ok(c, http.StatusOK, post)
}

// CreatePost godoc
// @ID          createPost
// @Summary     Create an anonymous post
// @Description Title, content, nickname, and password are required; category defaults to the general board. The password is encoded before storage and never serialized. Supports Idempotency-Key replay.
// @Tags        AnonymousPosts
// @Accept      json
// @Produce     json
//
// @Param       Idempotency-Key  header  string  false "Client-chosen retry key"
// @Param       body             body    handlers.CreatePostRequest  true  "Post fields"
//
// @Success     201  {object} domain.AnonymousPost
// @Failure     400  {object} handlers.ErrorResponse "Missing required fields"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /anonymous-posts [post]
func (h *Handlers) CreatePost(c *gin.Context) {
	db := h.postDB()

	// Serve a replay of a previously completed create, if any. The replay
	// reads the row directly so it does not bump the view counter.
	if id := h.replayResource(c, db); id != "" {
		if post, err := repo.GetPost(c.Request.Context(), db, id); err == nil {
			c.Header("Idempotency-Replayed", "true")
			ok(c, http.StatusCreated, post)
			return
		}
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, msgBadRequest)
		return
	}

	post, err := h.postSvc.Create(c.Request.Context(), services.CreatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		Nickname: req.Nickname,
		Password: req.Password,
		Category: req.Category,
	})
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, msgMissingFields)
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, msgServerError)
		return
	}
	h.recordIdempotency(c, db, post.ID, http.StatusCreated)
	ok(c, http.StatusCreated, post)
}

// DeletePost godoc
// @ID          deletePost
// @Summary     Delete an anonymous post
// @Description Deletes the post when the supplied password's encoding matches the stored value.
// @Tags        AnonymousPosts
// @Accept      json
// @Produce     json
//
// @Param       id    path  string  true  "Post ID"
// @Param       body  body  handlers.DeletePostRequest  true  "Deletion password"
//
// @Success     200  {object} handlers.DeletePostResponse
// @Failure     400  {object} handlers.ErrorResponse "Password missing"
// @Failure     401  {object} handlers.ErrorResponse "Password mismatch"
// @Failure     404  {object} handlers.ErrorResponse "Not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /anonymous-posts/{id} [delete]
func (h *Handlers) DeletePost(c *gin.Context) {
	var req DeletePostRequest
	// A missing or malformed body is treated the same as a missing password.
	_ = c.ShouldBindJSON(&req)

	err := h.postSvc.Delete(c.Request.Context(), c.Param("id"), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPasswordRequired):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, msgPasswordNeeded)
		case errors.Is(err, services.ErrPostNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, msgPostNotFound)
		case errors.Is(err, services.ErrPasswordMismatch):
			fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, msgPasswordWrong)
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, msgServerError)
		}
		return
	}
	ok(c, http.StatusOK, DeletePostResponse{Message: msgPostDeleted})
}
