package service

import "errors"

// Sentinel kinds for draw rejections.
var (
	ErrEmptyRoster    = errors.New("no members selected for the draw")
	ErrSigmaTooLarge  = errors.New("sigma exceeds the configured maximum")
	ErrRosterTooLarge = errors.New("roster exceeds the configured maximum size")
)
