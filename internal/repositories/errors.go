package repositories

import "errors"

// Sentinel errors returned by the repositories so callers can branch with
// errors.Is instead of matching message strings.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrUserNotFound    = errors.New("user not found")
)
