package auth

import "errors"

// Sentinel errors returned by token validation. Callers compare with
// errors.Is to choose the right HTTP response.
var (
	// ErrInvalidToken covers malformed tokens and signature mismatches.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken means the token's expiry has passed.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid means the token carries a not-before claim in the future.
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken means no token was supplied where one is required.
	ErrMissingToken = errors.New("authentication token is missing")
)
