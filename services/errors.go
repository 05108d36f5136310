package services

import "errors"

// Failure taxonomy shared by the service layer. Controllers map these onto
// HTTP statuses; nothing below retries anything.
var (
	ErrEmptyName       = errors.New("username is empty")
	ErrProfileNotFound = errors.New("profile not found")
	ErrUnknownUser     = errors.New("unknown user")
	ErrUnknownMeal     = errors.New("unknown meal")
	ErrEmptyFoodName   = errors.New("food name is empty")
	ErrIndexOutOfRange = errors.New("food index out of range")
	ErrEmptyQuery      = errors.New("food query is empty")
	ErrMissingAPIKey   = errors.New("no API key configured")
	ErrEstimateFailed  = errors.New("macro estimate failed")
	ErrBadTheme        = errors.New("theme must be light or dark")
)
