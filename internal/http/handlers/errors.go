// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// This file centralizes symbolic error code constants that are mapped to HTTP
// responses (via the `fail()` helper in this package). These codes give
// clients a stable, machine-readable error taxonomy that supplements the
// localized human-readable messages.
//
// Conventions:
//   - Codes are lowercase, snake_case, and domain-agnostic unless noted.
//   - Generic codes (bad_request, unauthorized, conflict, …) mirror common
//     HTTP status semantics.
//   - Domain-specific codes (create_failed, list_failed) are reserved for
//     business failures that the status alone cannot convey.
//
// Example response:
//
//	{
//	  "request_id": "e1b9be03-4999-4289-9f03-999b042d65d6",
//	  "code": "conflict",
//	  "message": "참여 인원이 가득 찼습니다."
//	}
package handlers

const (
	ErrCodeBadRequest   = "bad_request"
	ErrCodeUnauthorized = "unauthorized"
	ErrCodeNotFound     = "not_found"
	ErrCodeConflict     = "conflict"
	ErrCodeInternal     = "internal_error"

	// Domain-specific:
	ErrCodeCreateFailed     = "create_failed"
	ErrCodeListFailed       = "list_failed"
	ErrCodeMethodNotAllowed = "method_not_allowed"
)

// User-facing messages, carried over from the original community site. The
// web client shows these strings directly.
const (
	msgChatNotFound    = "커피챗을 찾을 수 없습니다."
	msgChatNotJoinable = "참여할 수 없는 커피챗입니다."
	msgChatFull        = "참여 인원이 가득 찼습니다."
	msgPostNotFound    = "게시글을 찾을 수 없습니다."
	msgMissingFields   = "필수 필드가 누락되었습니다."
	msgPasswordNeeded  = "비밀번호를 입력해주세요."
	msgPasswordWrong   = "비밀번호가 일치하지 않습니다."
	msgPostDeleted     = "게시글이 삭제되었습니다."
	msgServerError     = "서버 오류가 발생했습니다."
	msgBadRequest      = "잘못된 요청입니다."
)
