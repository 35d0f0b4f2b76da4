// Package services defines the business logic for coffee chats and anonymous
// posts. This file centralizes common service-level error values so that they
// can be consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the
// handler layer.
package services

import "errors"

// Coffee-chat errors.
var (
	// ErrChatNotFound indicates that the requested coffee chat does not exist.
	ErrChatNotFound = errors.New("coffee chat not found")

	// ErrChatNotJoinable is returned when a join is attempted on a chat whose
	// status is not OPEN (FULL or COMPLETED).
	ErrChatNotJoinable = errors.New("coffee chat is not joinable")

	// ErrChatFull is returned when a join is attempted on an OPEN chat that
	// already has no free capacity.
	ErrChatFull = errors.New("coffee chat is full")
)

// Anonymous-post errors.
var (
	// ErrPostNotFound indicates that the requested post does not exist.
	ErrPostNotFound = errors.New("post not found")

	// ErrMissingFields is returned when a create request omits one of the
	// required fields (title, content, nickname, password).
	ErrMissingFields = errors.New("required fields missing")

	// ErrPasswordRequired is returned when a delete request carries no password.
	ErrPasswordRequired = errors.New("password required")

	// ErrPasswordMismatch is returned when the encoding of the supplied
	// password does not match the stored value.
	ErrPasswordMismatch = errors.New("password mismatch")
)
