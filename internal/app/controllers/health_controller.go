package controllers

import (
	"github.com/endri-fradomos/local-api/internal/domain/services"
	"github.com/endri-fradomos/local-api/internal/domain/services/container"
	"github.com/endri-fradomos/local-api/internal/error/response"

	"github.com/gin-gonic/gin"
)

// HandlePingFunc returns the health probe handler
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} response.Response
// @Router /ping [get]
func HandlePingFunc(ctr *container.ServiceContainer) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		broker := ctr.GetService("mqtt").(services.InterfaceMQTTClientService)
		caps := ctr.Capabilities()

		response.Success(ctx, gin.H{
			"message":          "pong",
			"broker_connected": broker.IsConnected(),
			"schema": gin.H{
				"home_members":       caps.HomeMembers,
				"home_invites":       caps.HomeInvites,
				"access_permissions": caps.AccessPermissions,
			},
		})
	}
}
