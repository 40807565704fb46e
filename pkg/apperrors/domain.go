package apperrors

import (
	"net/http"
)

// Factories for domain errors shared across services.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and friends)
// into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// Token verifier failure classes (spec'd taxonomy: bad signature/claims are
// terminal, key-set problems are upstream).

func ErrInvalidToken(err error) *AppError {
	return Wrap(err, CodeInvalidToken, "auth", "Invalid token", http.StatusUnauthorized)
}

func ErrTokenExpired(err error) *AppError {
	return Wrap(err, CodeTokenExpired, "auth", "Token expired", http.StatusUnauthorized)
}

func ErrKeyNotFound(kid string) *AppError {
	return New(CodeKeyNotFound, "auth", "No signing key matches the token key id", http.StatusUnauthorized).
		WithDetails(map[string]string{"kid": kid})
}

func ErrUpstreamUnavailable(err error) *AppError {
	return Wrap(err, CodeUpstreamUnavailable, "auth", "Identity provider key set unavailable", http.StatusUnauthorized)
}

// Order pipeline

func ErrEmptyCart() *AppError {
	return New(CodeEmptyCart, "order", "Cannot create order: cart is empty", http.StatusBadRequest)
}

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)
