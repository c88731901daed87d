package service

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyDecided is returned when a decision is fired on a
	// submission that already left the pending state
	ErrAlreadyDecided = errors.New("submission already decided")

	// ErrInsufficientCredits is returned when a redemption would exceed
	// the user's balance
	ErrInsufficientCredits = errors.New("insufficient credit balance")

	// ErrRewardUnavailable is returned when redeeming a reward that is
	// not currently offered
	ErrRewardUnavailable = errors.New("reward not available")

	// ErrValidation is returned for malformed input
	ErrValidation = errors.New("validation failed")
)
