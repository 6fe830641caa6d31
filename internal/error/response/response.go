package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/endri-fradomos/local-api/internal/error/code"
)

// Response defines the unified response envelope
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    code.ErrSuccess,
		Message: code.GetMessage(code.ErrSuccess),
		Data:    data,
	})
}

// Created sends a 201 response for newly created resources
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    code.ErrSuccess,
		Message: code.GetMessage(code.ErrSuccess),
		Data:    data,
	})
}

// Fail sends a failure response
func Fail(c *gin.Context, errorCode int, data interface{}) {
	httpStatus := code.GetStatus(errorCode)
	message := code.GetMessage(errorCode)

	c.JSON(httpStatus, Response{
		Code:    errorCode,
		Message: message,
		Data:    data,
	})
}

// FailWithMessage sends a failure response with a custom message
func FailWithMessage(c *gin.Context, errorCode int, message string, data interface{}) {
	httpStatus := code.GetStatus(errorCode)

	c.JSON(httpStatus, Response{
		Code:    errorCode,
		Message: message,
		Data:    data,
	})
}

// ParamError sends a validation error response
func ParamError(c *gin.Context, message string) {
	FailWithMessage(c, code.ErrValidation, message, nil)
}

// ServerError sends a generic server error response
func ServerError(c *gin.Context) {
	Fail(c, code.ErrUnknown, nil)
}

// NotFound sends a resource-not-found response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "resource not found"
	}
	FailWithMessage(c, code.ErrRecordNotFound, message, nil)
}

// Unauthorized sends an authentication failure response
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		Fail(c, code.ErrTokenInvalid, nil)
		return
	}
	FailWithMessage(c, code.ErrTokenInvalid, message, nil)
}

// Forbidden sends an authorization failure response
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		Fail(c, code.ErrPermissionDenied, nil)
		return
	}
	FailWithMessage(c, code.ErrPermissionDenied, message, nil)
}

// SchemaMissing sends a 500 response carrying the suggested schema-creation
// statement for the missing relation
func SchemaMissing(c *gin.Context, table, suggestedDDL string) {
	Fail(c, code.ErrSchemaMissing, gin.H{
		"missing_relation": table,
		"suggested_ddl":    suggestedDDL,
	})
}
