package services

import "errors"

// Sentinel errors for the like engine and chat relay. Store lookups report
// ErrUserNotFound; the services translate it into the error the operation
// contract calls for.
var (
	// ErrUserNotFound indicates a user id that does not resolve in the Users table.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidReference indicates a like or message operation referencing an
	// unknown user id. Terminal for the operation; never retried.
	ErrInvalidReference = errors.New("invalid user reference")

	// ErrUnauthenticated indicates a connection that is not bound to a verified
	// identity. The transport closes the connection on this error.
	ErrUnauthenticated = errors.New("connection not authenticated")
)
