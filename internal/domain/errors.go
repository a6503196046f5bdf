package domain

import "errors"

var (
	// ErrPageUnavailable is returned when a catalog page could not be
	// fetched. Non-200 statuses, timeouts and transport errors all map to
	// this one error; callers only learn presence vs absence.
	ErrPageUnavailable = errors.New("catalog page unavailable")

	// ErrCoffeeAPIFailure is returned when the coffee-data API request fails
	ErrCoffeeAPIFailure = errors.New("coffee API request failed")

	// ErrNoDrinks is returned when the coffee-data API yields an empty list
	ErrNoDrinks = errors.New("no drinks returned by coffee API")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
