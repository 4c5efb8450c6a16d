package usecase

import "errors"

var (
	ErrEmptyQuery       = errors.New("search query must not be empty")
	ErrInvalidDateRange = errors.New("invalid date range: must be one of day, week, month, year")
	ErrUnknownCategory  = errors.New("unknown search category")
)
