package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mcolombo/habit-garden/internal/core/domain"
)

// Success payloads travel under "data", failures under "error"/"message".
// Clients switch on the top-level key, never on the HTTP status alone.

func respondData(c *gin.Context, status int, payload any) {
	c.JSON(status, gin.H{"data": payload})
}

func respondError(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{
		"error":   codeFor(status),
		"message": err.Error(),
	})
}

func codeFor(status int) string {
	switch status {
	case 400:
		return "bad_request"
	case 402:
		return "payment_required"
	case 404:
		return "not_found"
	case 409:
		return "conflict"
	default:
		return "internal_error"
	}
}

// statusFor maps domain errors onto HTTP statuses. Anything unrecognized is
// a 500; handlers never leak storage errors as 4xx.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrHabitNameEmpty),
		errors.Is(err, domain.ErrHabitNameTooLong),
		errors.Is(err, domain.ErrInvalidFrequency),
		errors.Is(err, domain.ErrInvalidWeeklyMask),
		errors.Is(err, domain.ErrInvalidDifficulty),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrHabitArchived):
		return 400
	case errors.Is(err, domain.ErrHabitNotFound),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrCompletionNotFound):
		return 404
	case errors.Is(err, domain.ErrDuplicateCompletion):
		return 409
	case errors.Is(err, domain.ErrInsufficientFunds):
		return 402
	default:
		return 500
	}
}

var errInternal = errors.New("internal server error")

// fail translates a service error into the response envelope, hiding the
// details of anything that maps to a 500.
func fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status == 500 {
		err = errInternal
	}
	respondError(c, status, err)
}
