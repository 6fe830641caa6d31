package code

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: invalid request parameters.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: unauthenticated.
	StatusUnauthorized = 401
	// StatusForbidden - 403: access denied.
	StatusForbidden = 403
	// StatusNotFound - 404: resource not found.
	StatusNotFound = 404
	// StatusInternalServerError - 500: internal server error.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: too many requests.
	StatusTooManyRequests = 429
)

// Generic error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request body binding failed.
	ErrBind
	// ErrValidation - 400: request validation failed.
	ErrValidation
	// ErrTokenInvalid - 401: missing, invalid or expired token.
	ErrTokenInvalid
	// ErrPermissionDenied - 403: authenticated but not entitled.
	ErrPermissionDenied
	// ErrTooManyRequests - 429: request rate too high.
	ErrTooManyRequests
)

// User error codes (101xxx).
const (
	// ErrUserNotFound - 404: user not found.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 400: user already exists.
	ErrUserAlreadyExist
	// ErrInvalidCredentials - 401: wrong username or password.
	ErrInvalidCredentials
)

// Home error codes (102xxx).
const (
	// ErrHomeNotFound - 404: home not found.
	ErrHomeNotFound int = iota + 102000
	// ErrMemberNotFound - 404: member not found in this home.
	ErrMemberNotFound
	// ErrMemberAlreadyExist - 400: member already exists in this home.
	ErrMemberAlreadyExist
	// ErrInviteNotFound - 404: invite not found.
	ErrInviteNotFound
	// ErrInviteStatusInvalid - 400: invalid invite status transition.
	ErrInviteStatusInvalid
)

// Room and device error codes (103xxx).
const (
	// ErrRoomNotFound - 404: room not found.
	ErrRoomNotFound int = iota + 103000
	// ErrDeviceNotFound - 404: device not found.
	ErrDeviceNotFound
)

// Access permission error codes (104xxx).
const (
	// ErrPermissionNotFound - 404: access permission not found.
	ErrPermissionNotFound int = iota + 104000
)

// Database error codes (105xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: record not found.
	ErrRecordNotFound
	// ErrSchemaMissing - 500: an expected relation is absent; the response
	// data carries the suggested schema-creation statement.
	ErrSchemaMissing
)

// Broker error codes (106xxx).
const (
	// ErrBrokerUnavailable - 500: MQTT broker not connected.
	ErrBrokerUnavailable int = iota + 106000
	// ErrPublishFailed - 500: MQTT publish failed.
	ErrPublishFailed
)
