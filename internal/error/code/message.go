package code

// Error code to message mapping
var codeMessageMap = map[int]string{
	// Generic error codes
	ErrSuccess:          "success",
	ErrUnknown:          "unknown error",
	ErrBind:             "failed to bind request body",
	ErrValidation:       "request validation failed",
	ErrTokenInvalid:     "missing or invalid token",
	ErrPermissionDenied: "permission denied",
	ErrTooManyRequests:  "too many requests",

	// User error codes
	ErrUserNotFound:       "user not found",
	ErrUserAlreadyExist:   "user already exists",
	ErrInvalidCredentials: "invalid credentials",

	// Home error codes
	ErrHomeNotFound:        "home not found",
	ErrMemberNotFound:      "member not found in this home",
	ErrMemberAlreadyExist:  "member already exists in this home",
	ErrInviteNotFound:      "invite not found",
	ErrInviteStatusInvalid: "invalid invite status",

	// Room and device error codes
	ErrRoomNotFound:   "room not found",
	ErrDeviceNotFound: "device not found",

	// Access permission error codes
	ErrPermissionNotFound: "access permission not found",

	// Database error codes
	ErrDatabase:       "database error",
	ErrRecordNotFound: "record not found",
	ErrSchemaMissing:  "required relation is missing, run the suggested migration",

	// Broker error codes
	ErrBrokerUnavailable: "MQTT broker unavailable",
	ErrPublishFailed:     "MQTT publish failed",
}

// Error code to HTTP status mapping
var codeStatusMap = map[int]int{
	// Generic error codes
	ErrSuccess:          StatusOK,
	ErrUnknown:          StatusInternalServerError,
	ErrBind:             StatusBadRequest,
	ErrValidation:       StatusBadRequest,
	ErrTokenInvalid:     StatusUnauthorized,
	ErrPermissionDenied: StatusForbidden,
	ErrTooManyRequests:  StatusTooManyRequests,

	// User error codes
	ErrUserNotFound:       StatusNotFound,
	ErrUserAlreadyExist:   StatusBadRequest,
	ErrInvalidCredentials: StatusUnauthorized,

	// Home error codes
	ErrHomeNotFound:        StatusNotFound,
	ErrMemberNotFound:      StatusNotFound,
	ErrMemberAlreadyExist:  StatusBadRequest,
	ErrInviteNotFound:      StatusNotFound,
	ErrInviteStatusInvalid: StatusBadRequest,

	// Room and device error codes
	ErrRoomNotFound:   StatusNotFound,
	ErrDeviceNotFound: StatusNotFound,

	// Access permission error codes
	ErrPermissionNotFound: StatusNotFound,

	// Database error codes
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
	ErrSchemaMissing:  StatusInternalServerError,

	// Broker error codes
	ErrBrokerUnavailable: StatusInternalServerError,
	ErrPublishFailed:     StatusInternalServerError,
}

// GetMessage returns the message for an error code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "unknown error"
}

// GetStatus returns the HTTP status for an error code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
