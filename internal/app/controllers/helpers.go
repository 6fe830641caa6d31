package controllers

import (
	"strings"

	"github.com/endri-fradomos/local-api/internal/domain/services"
	"github.com/endri-fradomos/local-api/internal/error/code"
	"github.com/endri-fradomos/local-api/internal/error/response"

	"github.com/gin-gonic/gin"
)

// failFromService maps a service error onto the response envelope.
// Schema-missing errors carry the remediation payload; "not found" errors
// become 404 with the given code; everything else is a generic server error.
func failFromService(ctx *gin.Context, err error, notFoundCode int) {
	if sme, ok := services.AsSchemaMissing(err); ok {
		response.SchemaMissing(ctx, sme.Table, sme.SuggestedDDL())
		return
	}
	if strings.Contains(err.Error(), "not found") {
		response.Fail(ctx, notFoundCode, nil)
		return
	}
	response.FailWithMessage(ctx, code.ErrDatabase, err.Error(), nil)
}
