package apperrors

import "errors"

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrForbidden           = errors.New("forbidden")
	ErrNotRegistered       = errors.New("user not registered for event")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUsernameTaken       = errors.New("username already exists")
	ErrInvalidInput        = errors.New("invalid input")
	ErrQRCodeNotReady      = errors.New("qr code not generated")
	ErrBlobNotFound        = errors.New("blob not found")
	ErrInternalServerError = errors.New("internal server error")
)
