package utils

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrInvalidStatus  = errors.New("invalid trip status")
	ErrInvalidTier    = errors.New("invalid hotel tier")
	ErrTripNotFound   = errors.New("trip not found")
	ErrDraftNotFound  = errors.New("no pending draft")
	ErrNoActiveTrip   = errors.New("no active trip")
	ErrReplanInFlight = errors.New("replan in progress")
	ErrDatabaseError  = errors.New("database error")
)
