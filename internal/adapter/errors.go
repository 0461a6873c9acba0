package adapter

import "errors"

// Sentinel errors mapped from backend responses. Callers match with
// [errors.Is]; the wrapped message carries the server-supplied body for
// logging, never for direct display.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrOTPNotDelivered marks a 2xx send-otp response whose
	// delivery-confirmation field was falsy.
	ErrOTPNotDelivered = errors.New("otp not delivered")
)
