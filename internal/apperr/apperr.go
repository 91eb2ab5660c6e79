// Package apperr defines the closed set of request-level failures and the
// central responder that maps them onto HTTP responses. Store and service
// code return these values unchanged; handlers never invent status codes.
package apperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind tags one failure variant. The set is closed: every kind a handler can
// see is listed here and carries exactly one HTTP status.
type Kind int

const (
	KindValidation Kind = iota
	KindInvalidCredentials
	KindDuplicateUsername
	KindNotFound
	KindUnknownRecipient
	KindAlreadyRead
	KindUnauthorized
	KindForbidden
)

type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	// ErrInvalidCredentials is shared by unknown-username and wrong-password
	// so a caller cannot tell which check failed.
	ErrInvalidCredentials = &Error{KindInvalidCredentials, http.StatusNotFound, "invalid username/password"}
	ErrDuplicateUsername  = &Error{KindDuplicateUsername, http.StatusBadRequest, "username already taken"}
	ErrNotFound           = &Error{KindNotFound, http.StatusNotFound, "not found"}
	ErrUnknownRecipient   = &Error{KindUnknownRecipient, http.StatusBadRequest, "recipient does not exist"}
	ErrAlreadyRead        = &Error{KindAlreadyRead, http.StatusBadRequest, "message already marked as read"}
	ErrUnauthorized       = &Error{KindUnauthorized, http.StatusUnauthorized, "authorization required"}
	ErrForbidden          = &Error{KindForbidden, http.StatusForbidden, "forbidden"}
)

// Validation wraps a malformed-body message with a 400 status.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: msg}
}

// Respond writes the error envelope and aborts the request. Anything outside
// the closed set is reported as a generic 500; details stay in the logs.
func Respond(c *gin.Context, err error) {
	var ae *Error
	if !errors.As(err, &ae) {
		ae = &Error{Status: http.StatusInternalServerError, Message: "internal server error"}
	}
	c.AbortWithStatusJSON(ae.Status, gin.H{"error": gin.H{
		"message": ae.Message,
		"status":  ae.Status,
	}})
}
